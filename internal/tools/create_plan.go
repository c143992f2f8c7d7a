package tools

import (
	"context"

	"planfiles/internal/planner"

	"github.com/mark3labs/mcp-go/mcp"
)

// CreatePlanTool handles the create_plan MCP tool.
// It writes all three planning documents from their templates.
type CreatePlanTool struct {
	planner *planner.Planner
}

// NewCreatePlanTool creates a CreatePlanTool with the given planner.
func NewCreatePlanTool(p *planner.Planner) *CreatePlanTool {
	return &CreatePlanTool{planner: p}
}

// Definition returns the MCP tool definition for registration.
func (t *CreatePlanTool) Definition() mcp.Tool {
	return mcp.NewTool("create_plan",
		mcp.WithDescription(
			"Create a new task plan. Writes task_plan.md, findings.md and "+
				"progress.md in the planning directory, overwriting any existing set. "+
				"Provide 'phases' to customize the checklist (e.g. [\"Analyze\", \"Fix\"]).",
		),
		mcp.WithString("task_name",
			mcp.Required(),
			mcp.Description("Short name of the task"),
		),
		mcp.WithString("objective",
			mcp.Required(),
			mcp.Description("What the task is trying to achieve"),
		),
		mcp.WithArray("phases",
			mcp.Description("Optional phase names; each becomes a '### Phase N: <name>' checklist group"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

// Handle processes the create_plan tool call.
func (t *CreatePlanTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskName := req.GetString("task_name", "")
	objective := req.GetString("objective", "")

	if taskName == "" {
		return mcp.NewToolResultError("'task_name' is required"), nil
	}
	if objective == "" {
		return mcp.NewToolResultError("'objective' is required"), nil
	}

	phases := stringSliceArg(req, "phases")
	return mcp.NewToolResultText(t.planner.CreatePlan(taskName, objective, phases)), nil
}
