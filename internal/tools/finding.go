package tools

import (
	"context"

	"planfiles/internal/planner"

	"github.com/mark3labs/mcp-go/mcp"
)

// SaveFindingTool handles the save_finding MCP tool.
type SaveFindingTool struct {
	planner *planner.Planner
}

// NewSaveFindingTool creates a SaveFindingTool with the given planner.
func NewSaveFindingTool(p *planner.Planner) *SaveFindingTool {
	return &SaveFindingTool{planner: p}
}

// Definition returns the MCP tool definition for registration.
func (t *SaveFindingTool) Definition() mcp.Tool {
	return mcp.NewTool("save_finding",
		mcp.WithDescription(
			"Save a research finding to findings.md as a timestamped entry under "+
				"a category section. The document is created on first use; an "+
				"unknown category becomes a new section.",
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Short title of the finding"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Body of the finding"),
		),
		mcp.WithString("category",
			mcp.Description("Category section to file the finding under"),
			mcp.DefaultString("Key Discoveries"),
		),
	)
}

// Handle processes the save_finding tool call.
func (t *SaveFindingTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := req.GetString("title", "")
	content := req.GetString("content", "")

	if title == "" {
		return mcp.NewToolResultError("'title' is required"), nil
	}
	if content == "" {
		return mcp.NewToolResultError("'content' is required"), nil
	}

	category := req.GetString("category", "Key Discoveries")
	return mcp.NewToolResultText(t.planner.SaveFinding(title, content, category)), nil
}
