// Package planner implements the planning operations over the three
// markdown documents: task plan, findings, and progress log.
//
// Every operation is a single read-modify-write cycle: load the raw
// document, transform a copy in memory, write the full result back.
// Nothing is cached between calls — the files are the only state, so a
// failed operation leaves the documents exactly as they were.
//
// All operations return human-readable confirmation strings. Successes
// are prefixed with "✅", warnings (missing document, no match) with
// "⚠️", and caught failures with "❌", so callers can branch on the
// outcome without parsing prose.
package planner

import (
	"fmt"
	"time"

	"planfiles/internal/docstore"
	"planfiles/internal/templates"
)

// Result prefixes. Kept as constants so tools and tests agree on the
// exact markers.
const (
	PrefixOK    = "✅"
	PrefixWarn  = "⚠️"
	PrefixError = "❌"
)

// timeNow is a package-level variable for testability.
// Tests can replace this to control timestamps in assertions.
var timeNow = time.Now

// timestampFormat is the literal layout used in error markers and log
// entries. Status scanning counts "### Error at " occurrences, so this
// format is load-bearing.
const timestampFormat = "2006-01-02 15:04"

// Config carries the settings the planner consumes. These are supplied
// by the caller (CLI flags, env, config file) — the planner never reads
// configuration itself.
type Config struct {
	// Dir is the planning root directory holding the documents.
	Dir string
	// MaxReadChars caps the content returned by read operations.
	// Zero means the default of 4000.
	MaxReadChars int
}

// DefaultMaxReadChars is the read budget applied when none is given.
const DefaultMaxReadChars = 4000

// Planner executes planning operations against one document set.
type Planner struct {
	docs     *docstore.Store
	renderer *templates.Renderer
	maxRead  int
}

// New creates a Planner for the configured planning root.
func New(cfg Config) (*Planner, error) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating template renderer: %w", err)
	}

	maxRead := cfg.MaxReadChars
	if maxRead <= 0 {
		maxRead = DefaultMaxReadChars
	}

	return &Planner{
		docs:     docstore.New(cfg.Dir),
		renderer: renderer,
		maxRead:  maxRead,
	}, nil
}

// Dir returns the planning root directory.
func (p *Planner) Dir() string {
	return p.docs.Root()
}

// now returns the current timestamp in the document format.
func now() string {
	return timeNow().Format(timestampFormat)
}

// truncate caps content at the configured read budget, appending a
// visible marker when content was cut. The budget counts characters,
// not bytes, so multibyte content is never split mid-rune.
func (p *Planner) truncate(content string) string {
	runes := []rune(content)
	if len(runes) <= p.maxRead {
		return content
	}
	return string(runes[:p.maxRead]) + fmt.Sprintf("\n... (truncated to %d characters)", p.maxRead)
}

// readFrom returns document content from offset onward, or a warning
// string for a missing document or an offset beyond the end. The
// offset is a character position, matching the truncation budget.
func (p *Planner) readFrom(doc docstore.Doc, offset int) string {
	content, exists, err := p.docs.Read(doc)
	if err != nil {
		return fmt.Sprintf("%s Error reading %s: %v", PrefixError, doc.Filename(), err)
	}
	if !exists {
		if doc == docstore.Plan {
			return PrefixWarn + " No task_plan.md found. Use create_plan to start."
		}
		return fmt.Sprintf("%s No %s found.", PrefixWarn, doc.Filename())
	}
	if offset > 0 {
		runes := []rune(content)
		if offset >= len(runes) {
			return PrefixWarn + " End of file reached."
		}
		content = string(runes[offset:])
	}
	return p.truncate(content)
}
