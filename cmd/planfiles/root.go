package main

import (
	"planfiles/internal/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planfiles",
	Short: "planfiles - persistent markdown planning MCP server",
	Long: `planfiles maintains three markdown documents as durable working memory
for long-running AI tasks: a task plan with a phased checklist, a
findings document for research notes, and a progress log. The mutation
operations are exposed as MCP tools over stdio.

Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "planfiles": {
        "command": "planfiles",
        "args": ["serve"]
      }
    }
  }`,
	Version: server.Version,
}

func init() {
	rootCmd.SetVersionTemplate("planfiles v{{.Version}}\n")
	rootCmd.AddCommand(serveCmd)
}
