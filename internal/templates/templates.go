// Package templates produces the initial contents of the three
// planning documents from a task name, objective, and phase list.
package templates

import (
	"fmt"
	"strings"
	"text/template"
)

// Kind selects which document template to render.
type Kind string

const (
	TaskPlan Kind = "task_plan"
	Findings Kind = "findings"
	Progress Kind = "progress"
)

const taskPlanTemplate = `# Task Plan: {{.TaskName}}
Created: {{.Date}}
Status: In Progress

## Objective
{{.Objective}}

## Phases
{{.Phases}}

## Decisions
<!-- Record key decisions here -->

## Error Log
<!-- Log any errors or failed attempts here -->

## Notes
<!-- Additional notes and observations -->
`

const findingsTemplate = `# Findings: {{.TaskName}}
Created: {{.Date}}

## Research Notes
<!-- Store research and findings here instead of context -->

## Technical Decisions
<!-- Record technical choices and rationale -->

## Key Discoveries

## References

## Code Snippets
<!-- Important code patterns found -->
`

const progressTemplate = `# Progress Log: {{.TaskName}}
Created: {{.Date}}

## Status Check
<!-- 5-Question Check when resuming -->
1. What is the current specific goal?
2. What has been done so far?
3. What is the immediate next step?
4. What information is missing?
5. Are there any errors or blockers?

## Session Log

### {{.Date}}
- Started task
- Created planning files

## Test Results
<!-- Document test outcomes here -->
| Test | Result | Notes |
|------|--------|-------|

## Next Steps
`

// TaskPlanData fills the task plan template. Phases is pre-rendered
// checklist markdown (see PhasesBlock).
type TaskPlanData struct {
	TaskName  string
	Date      string
	Objective string
	Phases    string
}

// DocData fills the findings and progress templates.
type DocData struct {
	TaskName string
	Date     string
}

// Renderer renders planning document templates.
type Renderer struct {
	templates map[Kind]*template.Template
}

// NewRenderer parses all document templates.
func NewRenderer() (*Renderer, error) {
	sources := map[Kind]string{
		TaskPlan: taskPlanTemplate,
		Findings: findingsTemplate,
		Progress: progressTemplate,
	}

	r := &Renderer{templates: make(map[Kind]*template.Template)}
	for kind, src := range sources {
		tmpl, err := template.New(string(kind)).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", kind, err)
		}
		r.templates[kind] = tmpl
	}
	return r, nil
}

// Render executes the template for kind with the given data.
func (r *Renderer) Render(kind Kind, data any) (string, error) {
	tmpl, ok := r.templates[kind]
	if !ok {
		return "", fmt.Errorf("unknown template kind %q", kind)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering %s template: %w", kind, err)
	}
	return b.String(), nil
}

// PhasesBlock renders the checklist block for the task plan's Phases
// section. An empty phase list yields a single default phase with three
// generic unchecked items; otherwise each phase gets a numbered level-3
// heading and one empty unchecked item.
func PhasesBlock(phases []string) string {
	if len(phases) == 0 {
		return "### Phase 1: Planning\n" +
			"- [ ] Define requirements\n" +
			"- [ ] Identify dependencies\n" +
			"- [ ] Create initial plan\n"
	}

	var b strings.Builder
	for i, phase := range phases {
		fmt.Fprintf(&b, "### Phase %d: %s\n- [ ] \n\n", i+1, phase)
	}
	return strings.TrimSpace(b.String())
}
