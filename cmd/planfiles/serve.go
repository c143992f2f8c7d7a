package main

import (
	"fmt"
	"os"

	"planfiles/internal/config"
	planserver "planfiles/internal/server"
	"planfiles/internal/slogutil"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server (stdio transport)",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := config.NewViper()
		if err := v.BindPFlag("planning_dir", cmd.Flags().Lookup("dir")); err != nil {
			return err
		}
		if err := v.BindPFlag("max_read_chars", cmd.Flags().Lookup("max-read-chars")); err != nil {
			return err
		}
		if err := v.BindPFlag("status_resource", cmd.Flags().Lookup("status-resource")); err != nil {
			return err
		}
		if err := v.BindPFlag("log_level", cmd.Flags().Lookup("log-level")); err != nil {
			return err
		}

		settings, err := config.Load(v)
		if err != nil {
			return err
		}

		// Logs go to stderr — stdout belongs to the MCP stdio transport.
		log := slogutil.NewLogger(os.Stderr, slogutil.LevelFromString(settings.LogLevel))

		s, err := planserver.New(settings, log)
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		return mcpserver.ServeStdio(s)
	},
}

func init() {
	serveCmd.Flags().String("dir", config.DefaultPlanningDir,
		"Planning directory where the documents are stored")
	serveCmd.Flags().Int("max-read-chars", config.DefaultMaxReadChars,
		"Maximum characters returned per read operation")
	serveCmd.Flags().Bool("status-resource", true,
		"Offer the plan://status MCP resource")
	serveCmd.Flags().String("log-level", config.DefaultLogLevel,
		"Stderr log level: debug, info, warn, error")
}
