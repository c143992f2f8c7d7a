package tools

import (
	"context"

	"planfiles/internal/planner"

	"github.com/mark3labs/mcp-go/mcp"
)

// CleanupTool handles the cleanup_plan MCP tool.
type CleanupTool struct {
	planner *planner.Planner
}

// NewCleanupTool creates a CleanupTool with the given planner.
func NewCleanupTool(p *planner.Planner) *CleanupTool {
	return &CleanupTool{planner: p}
}

// Definition returns the MCP tool definition for registration.
func (t *CleanupTool) Definition() mcp.Tool {
	return mcp.NewTool("cleanup_plan",
		mcp.WithDescription(
			"Remove all planning documents after the task is done. The planning "+
				"directory itself is removed only if nothing else is left in it.",
		),
	)
}

// Handle processes the cleanup_plan tool call.
func (t *CleanupTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(t.planner.Cleanup()), nil
}
