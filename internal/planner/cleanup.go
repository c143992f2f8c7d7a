package planner

import (
	"fmt"
	"os"
	"strings"

	"planfiles/internal/docstore"
)

// Cleanup removes the three planning documents and then the root
// directory itself when nothing else is left in it. A directory that
// still has other contents is kept and reported, not treated as a
// failure.
func (p *Planner) Cleanup() string {
	if _, err := os.Stat(p.docs.Root()); os.IsNotExist(err) {
		return PrefixWarn + " No planning directory."
	}

	var removed []string
	for _, doc := range docstore.All() {
		ok, err := p.docs.Remove(doc)
		if err != nil {
			return fmt.Sprintf("%s Error: %v", PrefixError, err)
		}
		if ok {
			removed = append(removed, doc.Filename())
		}
	}

	if p.docs.RemoveRootIfEmpty() {
		return fmt.Sprintf("%s Cleaned up: %s", PrefixOK, strings.Join(removed, ", "))
	}
	return fmt.Sprintf("%s Cleaned up: %s (directory kept)", PrefixOK, strings.Join(removed, ", "))
}
