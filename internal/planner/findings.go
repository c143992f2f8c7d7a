package planner

import (
	"fmt"

	"planfiles/internal/docstore"
	"planfiles/internal/mdtext"
)

// SaveFinding appends a timestamped sub-entry under the named category
// section of the findings document. The document is created from its
// template on first use; a missing category section is appended at
// document end.
func (p *Planner) SaveFinding(title, content, category string) string {
	findings, exists, err := p.docs.Read(docstore.Findings)
	if err != nil {
		return fmt.Sprintf("%s Error: %v", PrefixError, err)
	}
	if !exists {
		findings, err = p.renderSkeleton(docstore.Findings, "Task", now())
		if err != nil {
			return fmt.Sprintf("%s Error: %v", PrefixError, err)
		}
	}

	entry := fmt.Sprintf("\n### %s\n*%s*\n\n%s\n", title, now(), content)
	updated, _ := mdtext.InsertAtSectionEnd(findings, category, entry)

	if err := p.docs.Write(docstore.Findings, updated); err != nil {
		return fmt.Sprintf("%s Error: %v", PrefixError, err)
	}
	return fmt.Sprintf("%s Saved finding: '%s'", PrefixOK, title)
}

// ReadFindings returns the findings content from offset onward,
// truncated to the configured budget.
func (p *Planner) ReadFindings(offset int) string {
	return p.readFrom(docstore.Findings, offset)
}
