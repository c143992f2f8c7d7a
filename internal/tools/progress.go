package tools

import (
	"context"

	"planfiles/internal/planner"

	"github.com/mark3labs/mcp-go/mcp"
)

// LogProgressTool handles the log_progress MCP tool.
type LogProgressTool struct {
	planner *planner.Planner
}

// NewLogProgressTool creates a LogProgressTool with the given planner.
func NewLogProgressTool(p *planner.Planner) *LogProgressTool {
	return &LogProgressTool{planner: p}
}

// Definition returns the MCP tool definition for registration.
func (t *LogProgressTool) Definition() mcp.Tool {
	return mcp.NewTool("log_progress",
		mcp.WithDescription(
			"Log an entry to the Session Log of progress.md. Entries are "+
				"inserted at the top of the log, most recent first.",
		),
		mcp.WithString("entry",
			mcp.Required(),
			mcp.Description("Progress entry to log"),
		),
		mcp.WithBoolean("timestamp",
			mcp.Description("Prefix the entry with the current date and time (default true)"),
		),
	)
}

// Handle processes the log_progress tool call.
func (t *LogProgressTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entry := req.GetString("entry", "")
	if entry == "" {
		return mcp.NewToolResultError("'entry' is required"), nil
	}
	withTimestamp := boolArg(req, "timestamp", true)
	return mcp.NewToolResultText(t.planner.LogProgress(entry, withTimestamp)), nil
}
