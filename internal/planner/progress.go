package planner

import (
	"fmt"

	"planfiles/internal/docstore"
	"planfiles/internal/mdtext"
)

// LogProgress inserts a bullet entry at the top of the progress
// document's Session Log section, keeping the log most-recent-first.
// The document is created from its template on first use.
func (p *Planner) LogProgress(entry string, withTimestamp bool) string {
	progress, exists, err := p.docs.Read(docstore.Progress)
	if err != nil {
		return fmt.Sprintf("%s Error: %v", PrefixError, err)
	}
	if !exists {
		progress, err = p.renderSkeleton(docstore.Progress, "Task", now())
		if err != nil {
			return fmt.Sprintf("%s Error: %v", PrefixError, err)
		}
	}

	line := "- " + entry
	if withTimestamp {
		line = fmt.Sprintf("- [%s] %s", now(), entry)
	}

	updated, _ := mdtext.InsertAtSectionStart(progress, "Session Log", line)
	if err := p.docs.Write(docstore.Progress, updated); err != nil {
		return fmt.Sprintf("%s Error: %v", PrefixError, err)
	}
	return fmt.Sprintf("%s Logged: %s", PrefixOK, entry)
}

// LogError appends a timestamped error entry under the task plan's
// Error Log section and mirrors it into the progress session log. The
// "### Error at " marker is what status counting scans for, so its
// exact shape matters.
func (p *Planner) LogError(errMsg, context string) string {
	plan, exists, err := p.docs.Read(docstore.Plan)
	if err != nil {
		return fmt.Sprintf("%s Error: %v", PrefixError, err)
	}
	if !exists {
		return PrefixWarn + " No task_plan.md found."
	}

	entry := fmt.Sprintf("\n### Error at %s\n**Error:** %s\n", now(), errMsg)
	if context != "" {
		entry += fmt.Sprintf("**Context:** %s\n", context)
	}

	updated, _ := mdtext.InsertAtSectionEnd(plan, "Error Log", entry)
	if err := p.docs.Write(docstore.Plan, updated); err != nil {
		return fmt.Sprintf("%s Error: %v", PrefixError, err)
	}

	// Linked side effect: errors always show up in the session log too.
	p.LogProgress("ERROR: "+errMsg, true)

	return fmt.Sprintf("%s Logged error: %s", PrefixWarn, errMsg)
}
