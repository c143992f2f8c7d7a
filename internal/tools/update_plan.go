package tools

import (
	"context"

	"planfiles/internal/planner"

	"github.com/mark3labs/mcp-go/mcp"
)

// UpdatePlanTool handles the update_plan MCP tool.
// It replaces one section's body in the task plan, appending the
// section when it doesn't exist yet.
type UpdatePlanTool struct {
	planner *planner.Planner
}

// NewUpdatePlanTool creates an UpdatePlanTool with the given planner.
func NewUpdatePlanTool(p *planner.Planner) *UpdatePlanTool {
	return &UpdatePlanTool{planner: p}
}

// Definition returns the MCP tool definition for registration.
func (t *UpdatePlanTool) Definition() mcp.Tool {
	return mcp.NewTool("update_plan",
		mcp.WithDescription(
			"Update a '## <section>' of task_plan.md. The section body is replaced "+
				"entirely; a missing section is appended at the end of the document.",
		),
		mcp.WithString("section",
			mcp.Required(),
			mcp.Description("Section name without the '## ' marker, e.g. 'Decisions'"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("New body for the section"),
		),
	)
}

// Handle processes the update_plan tool call.
func (t *UpdatePlanTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	section := req.GetString("section", "")
	content := req.GetString("content", "")

	if section == "" {
		return mcp.NewToolResultError("'section' is required"), nil
	}
	if content == "" {
		return mcp.NewToolResultError("'content' is required"), nil
	}

	return mcp.NewToolResultText(t.planner.UpdatePlan(section, content)), nil
}
