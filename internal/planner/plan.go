package planner

import (
	"fmt"

	"planfiles/internal/docstore"
	"planfiles/internal/mdtext"
	"planfiles/internal/templates"
)

// CreatePlan writes all three planning documents from their templates,
// overwriting any existing set. An empty phases list produces the
// default single-phase checklist.
func (p *Planner) CreatePlan(taskName, objective string, phases []string) string {
	date := now()

	planContent, err := p.renderer.Render(templates.TaskPlan, templates.TaskPlanData{
		TaskName:  taskName,
		Date:      date,
		Objective: objective,
		Phases:    templates.PhasesBlock(phases),
	})
	if err != nil {
		return fmt.Sprintf("%s Error creating plan: %v", PrefixError, err)
	}
	if err := p.docs.Write(docstore.Plan, planContent); err != nil {
		return fmt.Sprintf("%s Error creating plan: %v", PrefixError, err)
	}

	for _, doc := range []docstore.Doc{docstore.Findings, docstore.Progress} {
		content, err := p.renderSkeleton(doc, taskName, date)
		if err != nil {
			return fmt.Sprintf("%s Error creating plan: %v", PrefixError, err)
		}
		if err := p.docs.Write(doc, content); err != nil {
			return fmt.Sprintf("%s Error creating plan: %v", PrefixError, err)
		}
	}

	return fmt.Sprintf("%s Created planning files in %s\n\nTask: %s\nObjective: %s",
		PrefixOK, p.docs.Root(), taskName, objective)
}

// renderSkeleton renders the fixed findings/progress skeleton for a
// document.
func (p *Planner) renderSkeleton(doc docstore.Doc, taskName, date string) (string, error) {
	kind := templates.Findings
	if doc == docstore.Progress {
		kind = templates.Progress
	}
	return p.renderer.Render(kind, templates.DocData{TaskName: taskName, Date: date})
}

// ReadPlan returns the task plan content from offset onward, truncated
// to the configured budget.
func (p *Planner) ReadPlan(offset int) string {
	return p.readFrom(docstore.Plan, offset)
}

// UpdatePlan replaces the named section's body in the task plan, or
// appends the section when absent. The plan document must already
// exist — update never creates it.
func (p *Planner) UpdatePlan(section, content string) string {
	plan, exists, err := p.docs.Read(docstore.Plan)
	if err != nil {
		return fmt.Sprintf("%s Error updating plan: %v", PrefixError, err)
	}
	if !exists {
		return PrefixWarn + " No task_plan.md found."
	}

	updated, existed := mdtext.ReplaceOrAppendSection(plan, section, content)
	if err := p.docs.Write(docstore.Plan, updated); err != nil {
		return fmt.Sprintf("%s Error updating plan: %v", PrefixError, err)
	}

	if existed {
		return fmt.Sprintf("%s Updated section '%s'", PrefixOK, section)
	}
	return fmt.Sprintf("%s Added new section '%s'", PrefixOK, section)
}

// MarkComplete resolves target against the unchecked checklist items
// and flips the best match to checked. Only the matched line's bracket
// changes; text, bullet, and indentation stay verbatim.
func (p *Planner) MarkComplete(target string) string {
	plan, exists, err := p.docs.Read(docstore.Plan)
	if err != nil {
		return fmt.Sprintf("%s Error: %v", PrefixError, err)
	}
	if !exists {
		return PrefixWarn + " No task_plan.md found."
	}

	updated, label, ok := mdtext.MarkComplete(plan, target)
	if !ok {
		return fmt.Sprintf("%s Item '%s' not found (or already completed)", PrefixWarn, target)
	}

	if err := p.docs.Write(docstore.Plan, updated); err != nil {
		return fmt.Sprintf("%s Error: %v", PrefixError, err)
	}
	return fmt.Sprintf("%s Marked as complete: %s", PrefixOK, label)
}

// AddTodo adds a new unchecked item to the task plan, under the named
// phase when given (fuzzy phase-heading matching, creating the heading
// when absent) or at the checklist's default location otherwise.
func (p *Planner) AddTodo(item, phase string) string {
	plan, exists, err := p.docs.Read(docstore.Plan)
	if err != nil {
		return fmt.Sprintf("%s Error: %v", PrefixError, err)
	}
	if !exists {
		return PrefixWarn + " No task_plan.md found."
	}

	updated := mdtext.AddItem(plan, item, phase)
	if err := p.docs.Write(docstore.Plan, updated); err != nil {
		return fmt.Sprintf("%s Error: %v", PrefixError, err)
	}

	msg := fmt.Sprintf("%s Added todo: %s", PrefixOK, item)
	if phase != "" {
		msg += fmt.Sprintf(" (Phase: %s)", phase)
	}
	return msg
}
