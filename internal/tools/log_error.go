package tools

import (
	"context"

	"planfiles/internal/planner"

	"github.com/mark3labs/mcp-go/mcp"
)

// LogErrorTool handles the log_error MCP tool.
// Besides the Error Log entry in the task plan, every logged error is
// mirrored into the progress session log.
type LogErrorTool struct {
	planner *planner.Planner
}

// NewLogErrorTool creates a LogErrorTool with the given planner.
func NewLogErrorTool(p *planner.Planner) *LogErrorTool {
	return &LogErrorTool{planner: p}
}

// Definition returns the MCP tool definition for registration.
func (t *LogErrorTool) Definition() mcp.Tool {
	return mcp.NewTool("log_error",
		mcp.WithDescription(
			"Log an error or failed attempt to the Error Log of task_plan.md. "+
				"Log errors before retrying so failures are never repeated blindly.",
		),
		mcp.WithString("error",
			mcp.Required(),
			mcp.Description("What went wrong"),
		),
		mcp.WithString("context",
			mcp.Description("Optional context: what was being attempted"),
		),
	)
}

// Handle processes the log_error tool call.
func (t *LogErrorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	errMsg := req.GetString("error", "")
	if errMsg == "" {
		return mcp.NewToolResultError("'error' is required"), nil
	}
	errCtx := req.GetString("context", "")
	return mcp.NewToolResultText(t.planner.LogError(errMsg, errCtx)), nil
}
