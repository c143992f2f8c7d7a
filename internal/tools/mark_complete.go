package tools

import (
	"context"

	"planfiles/internal/planner"

	"github.com/mark3labs/mcp-go/mcp"
)

// MarkCompleteTool handles the mark_complete MCP tool.
// The item text doesn't have to match the checklist verbatim — exact,
// substring and similarity matching are tried in that order.
type MarkCompleteTool struct {
	planner *planner.Planner
}

// NewMarkCompleteTool creates a MarkCompleteTool with the given planner.
func NewMarkCompleteTool(p *planner.Planner) *MarkCompleteTool {
	return &MarkCompleteTool{planner: p}
}

// Definition returns the MCP tool definition for registration.
func (t *MarkCompleteTool) Definition() mcp.Tool {
	return mcp.NewTool("mark_complete",
		mcp.WithDescription(
			"Mark a checklist item in task_plan.md as complete. The item is "+
				"located by exact text, then substring, then fuzzy match over the "+
				"still-unchecked items.",
		),
		mcp.WithString("item",
			mcp.Required(),
			mcp.Description("Text of the checklist item to check off"),
		),
	)
}

// Handle processes the mark_complete tool call.
func (t *MarkCompleteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	item := req.GetString("item", "")
	if item == "" {
		return mcp.NewToolResultError("'item' is required"), nil
	}
	return mcp.NewToolResultText(t.planner.MarkComplete(item)), nil
}
