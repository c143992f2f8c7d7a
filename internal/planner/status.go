package planner

import (
	"fmt"
	"strings"

	"planfiles/internal/docstore"
	"planfiles/internal/mdtext"
)

// Snapshot is the derived view of the document set. It is recomputed
// from disk on every call and never cached — the files are the sole
// source of truth, and external monitors poll this between mutations.
type Snapshot struct {
	Exists      bool          `json:"exists"`
	TaskName    string        `json:"task_name"`
	Objective   string        `json:"objective"`
	Items       []mdtext.Item `json:"items"`
	Completed   int           `json:"completed"`
	Total       int           `json:"total"`
	Errors      int           `json:"errors"`
	HasFindings bool          `json:"has_findings"`
	HasProgress bool          `json:"has_progress"`
	Dir         string        `json:"planning_dir"`
}

// errorMarker is the literal substring counted as one logged error.
// LogError writes entries beginning with exactly this text.
const errorMarker = "### Error at"

// Snapshot re-reads and re-parses the plan document and reports the
// derived statistics.
func (p *Planner) Snapshot() (Snapshot, error) {
	snap := Snapshot{
		TaskName:    "No Plan",
		Dir:         p.docs.Root(),
		HasFindings: p.docs.Exists(docstore.Findings),
		HasProgress: p.docs.Exists(docstore.Progress),
	}

	content, exists, err := p.docs.Read(docstore.Plan)
	if err != nil {
		return snap, err
	}
	if !exists {
		return snap, nil
	}
	snap.Exists = true

	if first, _, _ := strings.Cut(content, "\n"); strings.HasPrefix(first, "# Task Plan:") {
		snap.TaskName = strings.TrimSpace(strings.TrimPrefix(first, "# Task Plan:"))
	}

	if span := mdtext.LocateSection(content, "Objective"); span.Exists {
		snap.Objective = strings.TrimSpace(content[span.Start:span.End])
	}

	snap.Items = mdtext.ParseItems(content)
	snap.Total = len(snap.Items)
	for _, item := range snap.Items {
		if item.Completed {
			snap.Completed++
		}
	}
	snap.Errors = strings.Count(content, errorMarker)

	return snap, nil
}

// Status formats the snapshot as the human-readable summary.
func (p *Planner) Status() string {
	snap, err := p.Snapshot()
	if err != nil {
		return fmt.Sprintf("%s Error: %v", PrefixError, err)
	}
	if !snap.Exists {
		return "📋 No active planning session. Use create_plan to start."
	}

	pct := 0
	if snap.Total > 0 {
		pct = snap.Completed * 100 / snap.Total
	}

	check := func(present bool) string {
		if present {
			return "✅"
		}
		return "❌"
	}

	return fmt.Sprintf(`📋 **%s**

Progress: %d/%d (%d%%)
Errors: %d
Directory: %s

Files: task_plan.md ✅ | findings.md %s | progress.md %s`,
		snap.TaskName, snap.Completed, snap.Total, pct, snap.Errors, snap.Dir,
		check(snap.HasFindings), check(snap.HasProgress))
}

// CheckIntegrity reports missing documents, pending checklist items,
// and an empty session log. It passes only when all three are clean.
func (p *Planner) CheckIntegrity() string {
	snap, err := p.Snapshot()
	if err != nil {
		return fmt.Sprintf("%s Error checking integrity: %v", PrefixError, err)
	}
	if !snap.Exists {
		return PrefixWarn + " No plan found."
	}

	var issues []string
	if !snap.HasFindings {
		issues = append(issues, "- Missing findings.md")
	}
	if !snap.HasProgress {
		issues = append(issues, "- Missing progress.md")
	}

	if pending := snap.Total - snap.Completed; pending > 0 {
		issues = append(issues, fmt.Sprintf("- %d tasks pending in task_plan.md", pending))
	}

	if snap.HasProgress {
		content, _, err := p.docs.Read(docstore.Progress)
		if err != nil {
			return fmt.Sprintf("%s Error checking integrity: %v", PrefixError, err)
		}
		if !strings.Contains(content, "- ") {
			issues = append(issues, "- progress.md seems empty (no bullet points)")
		}
	}

	if len(issues) == 0 {
		return fmt.Sprintf("%s Plan Integrity Check Passed!\n- All files present\n- All %d tasks completed\n- Progress logged",
			PrefixOK, snap.Total)
	}
	return PrefixWarn + " Plan Incomplete / Issues Found:\n" + strings.Join(issues, "\n")
}
