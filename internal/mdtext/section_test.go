package mdtext

import (
	"strings"
	"testing"
)

const sampleDoc = `# Task Plan: Demo
Created: 2026-01-02 10:00

## Objective
Speed up the parser

## Phases
### Phase 1: Planning
- [ ] Define requirements

## Notes
<!-- Additional notes -->
`

// --- LocateSection ---

func TestLocateSection_Existing(t *testing.T) {
	span := LocateSection(sampleDoc, "Objective")
	if !span.Exists {
		t.Fatal("Objective section should exist")
	}

	body := sampleDoc[span.Start:span.End]
	if !strings.Contains(body, "Speed up the parser") {
		t.Errorf("body should contain objective text, got %q", body)
	}
	if strings.Contains(body, "## Phases") {
		t.Errorf("body should stop before the next level-2 heading, got %q", body)
	}
}

func TestLocateSection_LastSection(t *testing.T) {
	span := LocateSection(sampleDoc, "Notes")
	if !span.Exists {
		t.Fatal("Notes section should exist")
	}
	if span.End != len(sampleDoc) {
		t.Errorf("last section should end at len(text)=%d, got %d", len(sampleDoc), span.End)
	}
}

func TestLocateSection_Absent(t *testing.T) {
	span := LocateSection(sampleDoc, "Decisions")
	if span.Exists {
		t.Error("Decisions section should not exist")
	}
}

func TestLocateSection_NameIsPrefixOfOtherHeading(t *testing.T) {
	doc := "## Notes and more\nwrong body\n\n## Notes\nright body\n"

	span := LocateSection(doc, "Notes")
	if !span.Exists {
		t.Fatal("Notes section should exist")
	}
	if got := doc[span.Start:span.End]; !strings.Contains(got, "right body") {
		t.Errorf("should match the literal heading, got body %q", got)
	}

	// And the reverse: a longer name must not match the shorter heading.
	if LocateSection("## Notes\nbody\n", "Notes and more").Exists {
		t.Error("'Notes and more' should not match the '## Notes' heading")
	}
}

func TestLocateSection_IgnoresLevel3Headings(t *testing.T) {
	span := LocateSection(sampleDoc, "Phases")
	if !span.Exists {
		t.Fatal("Phases section should exist")
	}
	body := sampleDoc[span.Start:span.End]
	if !strings.Contains(body, "### Phase 1: Planning") {
		t.Errorf("level-3 headings belong to the section body, got %q", body)
	}
}

// --- ReplaceOrAppendSection ---

func TestReplaceOrAppendSection_ReplacesExistingBody(t *testing.T) {
	out, existed := ReplaceOrAppendSection(sampleDoc, "Objective", "New objective")
	if !existed {
		t.Fatal("section should have existed")
	}
	if !strings.Contains(out, "## Objective\nNew objective\n") {
		t.Errorf("body should be replaced, got:\n%s", out)
	}
	if strings.Contains(out, "Speed up the parser") {
		t.Error("old body should be gone")
	}
	if !strings.Contains(out, "### Phase 1: Planning") {
		t.Error("other sections must be untouched")
	}
}

func TestReplaceOrAppendSection_ReplacesLastSection(t *testing.T) {
	out, existed := ReplaceOrAppendSection(sampleDoc, "Notes", "fresh notes")
	if !existed {
		t.Fatal("section should have existed")
	}
	if !strings.HasSuffix(out, "## Notes\nfresh notes\n") {
		t.Errorf("last section body should be replaced through end of document, got tail %q", out[len(out)-40:])
	}
}

func TestReplaceOrAppendSection_AppendsWhenAbsent(t *testing.T) {
	out, existed := ReplaceOrAppendSection(sampleDoc, "Decisions", "Chose option A")
	if existed {
		t.Fatal("section should not have existed")
	}
	if !strings.HasSuffix(out, "\n\n## Decisions\nChose option A\n") {
		t.Errorf("new section should be appended at document end, got tail %q", out[len(out)-60:])
	}

	// Appending never deletes: the trimmed original is a prefix of the result.
	trimmed := strings.TrimRight(sampleDoc, " \t\n")
	if !strings.HasPrefix(out, trimmed) {
		t.Error("existing content should be preserved as a prefix")
	}
	if len(out) < len(trimmed) {
		t.Error("appending should never shrink the document")
	}
}

// --- InsertAtSectionEnd ---

func TestInsertAtSectionEnd_BeforeNextHeading(t *testing.T) {
	out, existed := InsertAtSectionEnd(sampleDoc, "Phases", "\n- [ ] Extra item\n")
	if !existed {
		t.Fatal("Phases section should exist")
	}

	itemPos := strings.Index(out, "- [ ] Extra item")
	notesPos := strings.Index(out, "## Notes")
	if itemPos == -1 || notesPos == -1 {
		t.Fatalf("both fragment and next heading expected, got:\n%s", out)
	}
	if itemPos > notesPos {
		t.Error("fragment should land before the next level-2 heading")
	}
	if !strings.Contains(out, "- [ ] Define requirements") {
		t.Error("existing body content must be preserved")
	}
}

func TestInsertAtSectionEnd_AtDocumentEnd(t *testing.T) {
	out, existed := InsertAtSectionEnd(sampleDoc, "Notes", "\n### Entry\nbody\n")
	if !existed {
		t.Fatal("Notes section should exist")
	}
	if !strings.HasSuffix(out, "### Entry\nbody\n") {
		t.Errorf("fragment should be appended at document end, got tail %q", out[len(out)-40:])
	}
}

func TestInsertAtSectionEnd_CreatesMissingSection(t *testing.T) {
	out, existed := InsertAtSectionEnd(sampleDoc, "Error Log", "\n### Error at 2026-01-02 10:30\n**Error:** boom\n")
	if existed {
		t.Fatal("Error Log section should not have existed")
	}
	if !strings.Contains(out, "## Error Log\n### Error at 2026-01-02 10:30") {
		t.Errorf("section should be created with the fragment as body, got:\n%s", out)
	}
}

// --- InsertAtSectionStart ---

func TestInsertAtSectionStart_MostRecentFirst(t *testing.T) {
	doc := "# Log\n\n## Session Log\n\n### 2026-01-01\n- old entry\n"

	out, existed := InsertAtSectionStart(doc, "Session Log", "- new entry")
	if !existed {
		t.Fatal("Session Log section should exist")
	}
	if !strings.Contains(out, "## Session Log\n- new entry\n") {
		t.Errorf("new entry should be the first line of the section, got:\n%s", out)
	}
	if strings.Index(out, "- new entry") > strings.Index(out, "- old entry") {
		t.Error("newest entry should come first")
	}
}

func TestInsertAtSectionStart_CreatesMissingSection(t *testing.T) {
	out, existed := InsertAtSectionStart("# Log\n", "Session Log", "- first entry")
	if existed {
		t.Fatal("section should not have existed")
	}
	if !strings.HasSuffix(out, "## Session Log\n- first entry\n") {
		t.Errorf("section should be created at document end, got %q", out)
	}
}
