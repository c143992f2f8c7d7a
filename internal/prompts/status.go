package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// StatusPrompt handles the planning-status MCP prompt.
// It instructs the AI to read and present the current planning state.
type StatusPrompt struct{}

// NewStatusPrompt creates a StatusPrompt.
func NewStatusPrompt() *StatusPrompt {
	return &StatusPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StatusPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("planning-status",
		mcp.WithPromptDescription(
			"Check the current planning session: checklist progress, logged "+
				"errors, and what to do next.",
		),
	)
}

// Handle processes the planning-status prompt request.
func (p *StatusPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Planning Session Status",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please run `get_planning_status` to check the planning session.\n\n" +
						"Then:\n" +
						"1. Summarize the checklist progress per phase\n" +
						"2. Highlight any logged errors and what they block\n" +
						"3. Tell me the immediate next step\n" +
						"4. If everything is complete, suggest running `check_plan_integrity`",
				),
			},
		},
	}, nil
}
