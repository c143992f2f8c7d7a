// planfiles: persistent markdown planning MCP server.
//
// planfiles maintains three markdown documents (task_plan.md,
// findings.md, progress.md) as durable working memory for long-running
// AI tasks, and exposes the mutation operations as MCP tools over
// stdio.
//
// Usage:
//
//	planfiles serve       # Start the MCP server (stdio transport)
//	planfiles --version   # Print the version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
