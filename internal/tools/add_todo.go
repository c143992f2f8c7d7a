package tools

import (
	"context"

	"planfiles/internal/planner"

	"github.com/mark3labs/mcp-go/mcp"
)

// AddTodoTool handles the add_todo MCP tool.
type AddTodoTool struct {
	planner *planner.Planner
}

// NewAddTodoTool creates an AddTodoTool with the given planner.
func NewAddTodoTool(p *planner.Planner) *AddTodoTool {
	return &AddTodoTool{planner: p}
}

// Definition returns the MCP tool definition for registration.
func (t *AddTodoTool) Definition() mcp.Tool {
	return mcp.NewTool("add_todo",
		mcp.WithDescription(
			"Add a new unchecked todo item to task_plan.md. With 'phase' the item "+
				"is placed under that phase heading ('Analysis' also matches "+
				"'Phase 1: Analysis'); a missing phase is created. Without 'phase' "+
				"the item goes to the end of the Phases section.",
		),
		mcp.WithString("item",
			mcp.Required(),
			mcp.Description("Text of the new todo item"),
		),
		mcp.WithString("phase",
			mcp.Description("Optional phase heading to add the item under"),
		),
	)
}

// Handle processes the add_todo tool call.
func (t *AddTodoTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	item := req.GetString("item", "")
	if item == "" {
		return mcp.NewToolResultError("'item' is required"), nil
	}
	phase := req.GetString("phase", "")
	return mcp.NewToolResultText(t.planner.AddTodo(item, phase)), nil
}
