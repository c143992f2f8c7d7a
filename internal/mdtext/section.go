// Package mdtext implements the markdown section and checklist models
// used by the planning documents.
//
// A document is never parsed into a retained tree: every function takes
// the full text, scans it forward once, and returns either spans or a
// rewritten copy. Offsets are always recomputed against the text passed
// in, so callers can't hold stale positions across mutations.
package mdtext

import "strings"

// Span is the half-open byte range of a section body: from just after
// the heading line to the start of the next level-2 heading (or end of
// text). Exists is false when the heading was not found, in which case
// Start and End are both len(text).
type Span struct {
	Start  int
	End    int
	Exists bool
}

// headingLineAt reports whether the line beginning at offset pos is
// exactly the given heading marker (trailing spaces ignored). Literal
// equality is required: "## Notes" must not match a "## Notes and more"
// line, and vice versa.
func headingLineAt(text string, pos int, marker string) bool {
	end := strings.IndexByte(text[pos:], '\n')
	var line string
	if end == -1 {
		line = text[pos:]
	} else {
		line = text[pos : pos+end]
	}
	return strings.TrimRight(line, " \t") == marker
}

// findHeadingLine returns the byte offset of the first line equal to
// marker, or -1.
func findHeadingLine(text, marker string) int {
	pos := 0
	for pos <= len(text) {
		if headingLineAt(text, pos, marker) {
			return pos
		}
		next := strings.IndexByte(text[pos:], '\n')
		if next == -1 {
			break
		}
		pos += next + 1
	}
	return -1
}

// nextLevel2Heading returns the offset of the first line at or after
// from that starts a level-2 heading, or -1.
func nextLevel2Heading(text string, from int) int {
	pos := from
	for pos <= len(text) {
		if strings.HasPrefix(text[pos:], "## ") {
			return pos
		}
		next := strings.IndexByte(text[pos:], '\n')
		if next == -1 {
			break
		}
		pos += next + 1
	}
	return -1
}

// LocateSection finds the body span of the first section whose level-2
// heading line equals "## {name}".
func LocateSection(text, name string) Span {
	marker := "## " + name
	at := findHeadingLine(text, marker)
	if at == -1 {
		return Span{Start: len(text), End: len(text)}
	}

	bodyStart := at + len(marker)
	if nl := strings.IndexByte(text[at:], '\n'); nl != -1 {
		bodyStart = at + nl + 1
	} else {
		bodyStart = len(text)
	}

	end := nextLevel2Heading(text, bodyStart)
	if end == -1 {
		end = len(text)
	}
	return Span{Start: bodyStart, End: end, Exists: true}
}

// ReplaceOrAppendSection replaces the entire body of the named section
// with body, or appends a new section at document end when the heading
// is absent. The second return value reports whether the section
// already existed. Existing content outside the section is untouched.
func ReplaceOrAppendSection(text, name, body string) (string, bool) {
	span := LocateSection(text, name)
	if !span.Exists {
		out := strings.TrimRight(text, " \t\n") + "\n\n## " + name + "\n" + strings.TrimRight(body, "\n") + "\n"
		return out, false
	}

	var b strings.Builder
	b.WriteString(text[:span.Start])
	b.WriteString(strings.TrimRight(body, "\n"))
	b.WriteString("\n")
	if span.End < len(text) {
		b.WriteString("\n")
		b.WriteString(text[span.End:])
	}
	return b.String(), true
}

// InsertAtSectionEnd inserts fragment immediately before the boundary
// that closes the named section — the next level-2 heading, or document
// end. The fragment should carry its own leading newline (callers
// insert block entries like "\n### Title\n..."). When the section is
// absent, a new one is appended with the fragment as its body. The
// second return value reports whether the section already existed.
func InsertAtSectionEnd(text, name, fragment string) (string, bool) {
	span := LocateSection(text, name)
	if !span.Exists {
		out := strings.TrimRight(text, " \t\n") + "\n\n## " + name + fragment
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		return out, false
	}

	if span.End >= len(text) {
		out := strings.TrimRight(text, " \t\n") + fragment
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		return out, true
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(text[:span.End], " \t\n"))
	b.WriteString(fragment)
	if !strings.HasSuffix(fragment, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(text[span.End:])
	return b.String(), true
}

// InsertAtSectionStart inserts line as the first body line of the named
// section, directly under its heading. Used for most-recent-first logs.
// When the section is absent, it is created at document end. The second
// return value reports whether the section already existed.
func InsertAtSectionStart(text, name, line string) (string, bool) {
	marker := "## " + name
	at := findHeadingLine(text, marker)
	if at == -1 {
		out := strings.TrimRight(text, " \t\n") + "\n\n" + marker + "\n" + line + "\n"
		return out, false
	}

	lineEnd := at + len(marker)
	if nl := strings.IndexByte(text[at:], '\n'); nl != -1 {
		lineEnd = at + nl
	} else {
		lineEnd = len(text)
	}
	return text[:lineEnd] + "\n" + line + text[lineEnd:], true
}
