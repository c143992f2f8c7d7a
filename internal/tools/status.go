package tools

import (
	"context"

	"planfiles/internal/planner"

	"github.com/mark3labs/mcp-go/mcp"
)

// StatusTool handles the get_planning_status MCP tool.
// The summary is recomputed from the documents on every call.
type StatusTool struct {
	planner *planner.Planner
}

// NewStatusTool creates a StatusTool with the given planner.
func NewStatusTool(p *planner.Planner) *StatusTool {
	return &StatusTool{planner: p}
}

// Definition returns the MCP tool definition for registration.
func (t *StatusTool) Definition() mcp.Tool {
	return mcp.NewTool("get_planning_status",
		mcp.WithDescription(
			"Get a summary of the current planning session: task, checklist "+
				"progress, error count, and which documents exist.",
		),
	)
}

// Handle processes the get_planning_status tool call.
func (t *StatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(t.planner.Status()), nil
}

// IntegrityTool handles the check_plan_integrity MCP tool.
type IntegrityTool struct {
	planner *planner.Planner
}

// NewIntegrityTool creates an IntegrityTool with the given planner.
func NewIntegrityTool(p *planner.Planner) *IntegrityTool {
	return &IntegrityTool{planner: p}
}

// Definition returns the MCP tool definition for registration.
func (t *IntegrityTool) Definition() mcp.Tool {
	return mcp.NewTool("check_plan_integrity",
		mcp.WithDescription(
			"Verify the planning documents are complete: all files present, "+
				"no pending checklist items, and progress actually logged.",
		),
	)
}

// Handle processes the check_plan_integrity tool call.
func (t *IntegrityTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(t.planner.CheckIntegrity()), nil
}
