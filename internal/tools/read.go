package tools

import (
	"context"

	"planfiles/internal/planner"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReadPlanTool handles the read_plan MCP tool.
type ReadPlanTool struct {
	planner *planner.Planner
}

// NewReadPlanTool creates a ReadPlanTool with the given planner.
func NewReadPlanTool(p *planner.Planner) *ReadPlanTool {
	return &ReadPlanTool{planner: p}
}

// Definition returns the MCP tool definition for registration.
func (t *ReadPlanTool) Definition() mcp.Tool {
	return mcp.NewTool("read_plan",
		mcp.WithDescription(
			"Read the current task_plan.md. Output is capped at the configured "+
				"character budget; use 'offset' to continue reading when truncated.",
		),
		mcp.WithNumber("offset",
			mcp.Description("Character offset to start reading from (default 0)"),
		),
	)
}

// Handle processes the read_plan tool call.
func (t *ReadPlanTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	offset := intArg(req, "offset", 0)
	return mcp.NewToolResultText(t.planner.ReadPlan(offset)), nil
}

// ReadFindingsTool handles the read_findings MCP tool.
type ReadFindingsTool struct {
	planner *planner.Planner
}

// NewReadFindingsTool creates a ReadFindingsTool with the given planner.
func NewReadFindingsTool(p *planner.Planner) *ReadFindingsTool {
	return &ReadFindingsTool{planner: p}
}

// Definition returns the MCP tool definition for registration.
func (t *ReadFindingsTool) Definition() mcp.Tool {
	return mcp.NewTool("read_findings",
		mcp.WithDescription(
			"Read all saved findings from findings.md. Use 'offset' to continue "+
				"reading when truncated.",
		),
		mcp.WithNumber("offset",
			mcp.Description("Character offset to start reading from (default 0)"),
		),
	)
}

// Handle processes the read_findings tool call.
func (t *ReadFindingsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	offset := intArg(req, "offset", 0)
	return mcp.NewToolResultText(t.planner.ReadFindings(offset)), nil
}
