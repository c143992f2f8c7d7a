// Package prompts implements the MCP prompts for the planning workflow.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// MethodologyPrompt handles the planning-methodology MCP prompt.
// It teaches the host model the three-file planning workflow.
type MethodologyPrompt struct{}

// NewMethodologyPrompt creates a MethodologyPrompt.
func NewMethodologyPrompt() *MethodologyPrompt {
	return &MethodologyPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *MethodologyPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("planning-methodology",
		mcp.WithPromptDescription(
			"The persistent markdown planning methodology: when to create a "+
				"plan, how to use the three documents, and the rules that keep "+
				"long tasks on track.",
		),
	)
}

// Handle processes the planning-methodology prompt request.
func (p *MethodologyPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Persistent Markdown Planning Methodology",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"## Planning Methodology\n\n" +
						"For complex tasks (3+ steps), use the planning tools:\n\n" +
						"### Core Principle\n" +
						"- Context Window = RAM (volatile)\n" +
						"- Filesystem = Disk (persistent)\n" +
						"- Anything important goes to disk.\n\n" +
						"### The 3-File Pattern\n" +
						"1. **task_plan.md** - Phases, todos, errors, major decisions\n" +
						"2. **findings.md** - Research, discoveries, technical decisions\n" +
						"3. **progress.md** - Session log, test results, status checks\n\n" +
						"### Key Rules\n" +
						"1. **Create Plan First** - Use `create_plan` before complex tasks.\n" +
						"2. **2-Action Rule** - Save findings after every 2 operations.\n" +
						"3. **Log ALL Errors** - Use `log_error` to avoid repetition.\n" +
						"4. **Re-read Before Decisions** - Use `read_plan` before major choices.\n" +
						"5. **Never Repeat Failures** - Check the error log, mutate the approach.\n" +
						"6. **5-Question Check** - When resuming, verify status in `progress.md`.\n" +
						"7. **Verify Completion** - Ensure all phases are marked complete.",
				),
			},
		},
	}, nil
}
