package mdtext

import (
	"regexp"
	"strings"
)

// Item is one checklist line, derived from the document text on every
// parse. Phase is the title of the nearest preceding level-3 heading,
// or "" when none precedes the item.
type Item struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Phase     string `json:"phase,omitempty"`
}

var (
	phaseRe = regexp.MustCompile(`^###\s+(.+)$`)
	itemRe  = regexp.MustCompile(`^\s*[-*]\s+\[([ xX])\]\s?(.*)$`)

	// uncheckedRe matches lines still open for completion. Checked
	// items are never candidates for MarkComplete.
	uncheckedRe     = regexp.MustCompile(`^\s*[-*]\s*\[ \]`)
	uncheckedTextRe = regexp.MustCompile(`^\s*[-*]\s*\[ \]\s*`)
)

// ParseItems scans text once and returns all checklist items in
// document order. A "current phase" is carried through the scan and
// stamped onto each item; grouping by phase is left to callers.
func ParseItems(text string) []Item {
	var items []Item
	phase := ""
	for _, line := range strings.Split(text, "\n") {
		if m := phaseRe.FindStringSubmatch(line); m != nil {
			phase = strings.TrimSpace(m[1])
			continue
		}
		if m := itemRe.FindStringSubmatch(line); m != nil {
			items = append(items, Item{
				Text:      strings.TrimSpace(m[2]),
				Completed: m[1] == "x" || m[1] == "X",
				Phase:     phase,
			})
		}
	}
	return items
}

// nextHeadingAfter returns the offset of the first level-3 or level-2
// heading line strictly after from, or len(text).
func nextHeadingAfter(text string, from int) int {
	pos := from
	for {
		nl := strings.IndexByte(text[pos:], '\n')
		if nl == -1 {
			return len(text)
		}
		pos += nl + 1
		if strings.HasPrefix(text[pos:], "### ") || strings.HasPrefix(text[pos:], "## ") {
			return pos
		}
	}
}

// findPhaseHeading locates a level-3 heading for the given phase name.
// Exact marker equality ("### {phase}") wins; otherwise the first
// level-3 heading whose title contains the name case-insensitively is
// used, so "Analysis" finds "### Phase 1: Analysis". Returns -1 when
// no heading matches.
func findPhaseHeading(text, phase string) int {
	if at := findHeadingLine(text, "### "+phase); at != -1 {
		return at
	}
	needle := strings.ToLower(phase)
	pos := 0
	for pos <= len(text) {
		rest := text[pos:]
		lineEnd := strings.IndexByte(rest, '\n')
		var line string
		if lineEnd == -1 {
			line = rest
		} else {
			line = rest[:lineEnd]
		}
		if m := phaseRe.FindStringSubmatch(line); m != nil {
			if strings.Contains(strings.ToLower(m[1]), needle) {
				return pos
			}
		}
		if lineEnd == -1 {
			break
		}
		pos += lineEnd + 1
	}
	return -1
}

// AddItem inserts a new unchecked item into text and returns the
// updated document.
//
// With a phase, the item lands at the end of that phase's block — just
// before the next level-3 or level-2 heading — and a missing phase
// heading is created at document end. Without a phase, the item is
// appended to the "## Phases" section (before "## Notes" or
// "## Error Log", whichever comes first), falling back to a new
// "## Tasks" section when no Phases section exists.
func AddItem(text, item, phase string) string {
	newItem := "- [ ] " + item

	if phase != "" {
		at := findPhaseHeading(text, phase)
		if at == -1 {
			return strings.TrimRight(text, " \t\n") + "\n\n### " + phase + "\n" + newItem + "\n"
		}
		insert := nextHeadingAfter(text, at)
		if insert >= len(text) {
			return strings.TrimRight(text, " \t\n") + "\n" + newItem + "\n"
		}
		return strings.TrimRight(text[:insert], " \t\n") + "\n" + newItem + "\n\n" + text[insert:]
	}

	phases := LocateSection(text, "Phases")
	if !phases.Exists {
		return strings.TrimRight(text, " \t\n") + "\n\n## Tasks\n" + newItem + "\n"
	}

	insert := len(text)
	for _, name := range []string{"Notes", "Error Log"} {
		if at := findHeadingLine(text[phases.Start:], "## "+name); at != -1 {
			if p := phases.Start + at; p < insert {
				insert = p
			}
		}
	}
	if insert >= len(text) {
		return strings.TrimRight(text, " \t\n") + "\n" + newItem + "\n"
	}
	return strings.TrimRight(text[:insert], " \t\n") + "\n" + newItem + "\n\n" + text[insert:]
}

// MarkComplete flips the best-matching unchecked item to checked,
// rewriting only that line's bracket. The returned label is the matched
// item's display text; ok is false when nothing matched and text is
// returned unchanged.
//
// Resolution order: exact trimmed-text equality first, then the scored
// candidates from substring containment (0.9) and sequence similarity
// (> 0.8), highest score winning with earliest-document-order
// tie-breaking.
func MarkComplete(text, target string) (updated, label string, ok bool) {
	lines := strings.Split(text, "\n")
	wanted := strings.TrimSpace(target)
	targetLower := strings.ToLower(wanted)

	best := -1
	for i, line := range lines {
		if !uncheckedRe.MatchString(line) {
			continue
		}
		if itemText(line) == wanted {
			best = i
			break
		}
	}

	if best == -1 {
		bestScore := 0.0
		for i, line := range lines {
			if !uncheckedRe.MatchString(line) {
				continue
			}
			taskLower := strings.ToLower(itemText(line))
			score := 0.0
			if strings.Contains(taskLower, targetLower) {
				score = 0.9
			} else if r := SimilarityRatio(targetLower, taskLower); r > 0.8 {
				score = r
			}
			if score > bestScore {
				bestScore = score
				best = i
			}
		}
	}

	if best == -1 {
		return text, "", false
	}

	label = itemText(lines[best])
	lines[best] = strings.Replace(lines[best], "[ ]", "[x]", 1)
	return strings.Join(lines, "\n"), label, true
}

// itemText strips the bullet and checkbox prefix from an unchecked
// checklist line.
func itemText(line string) string {
	return strings.TrimSpace(uncheckedTextRe.ReplaceAllString(line, ""))
}
