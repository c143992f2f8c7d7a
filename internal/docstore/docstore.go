// Package docstore resolves logical planning document names to files
// under a root directory and provides raw content access.
//
// The store has no knowledge of markdown structure — it reads and writes
// whole UTF-8 blobs. Higher layers (internal/planner) re-read a document
// before every mutation, so nothing is cached here.
package docstore

import (
	"fmt"
	"os"
	"path/filepath"
)

// Doc identifies one of the three planning documents.
type Doc string

const (
	Plan     Doc = "task_plan"
	Findings Doc = "findings"
	Progress Doc = "progress"
)

// Filename returns the on-disk filename for the document.
func (d Doc) Filename() string {
	return string(d) + ".md"
}

// All lists the documents in their canonical order.
func All() []Doc {
	return []Doc{Plan, Findings, Progress}
}

// Store maps documents to files under a single root directory.
type Store struct {
	root string
}

// New creates a store rooted at dir. The directory is created lazily
// on the first write, not here.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the planning root directory.
func (s *Store) Root() string {
	return s.root
}

// Path returns the absolute path of a document's backing file.
func (s *Store) Path(d Doc) string {
	return filepath.Join(s.root, d.Filename())
}

// Exists reports whether the document's backing file exists.
func (s *Store) Exists(d Doc) bool {
	_, err := os.Stat(s.Path(d))
	return err == nil
}

// Read returns the full content of a document. The second return value
// is false when the document does not exist — that is not an error, the
// document just hasn't been created yet.
func (s *Store) Read(d Doc) (string, bool, error) {
	data, err := os.ReadFile(s.Path(d))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading %s: %w", d.Filename(), err)
	}
	return string(data), true, nil
}

// Write replaces a document's content in a single write, creating the
// root directory if needed.
func (s *Store) Write(d Doc, content string) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("creating planning directory %s: %w", s.root, err)
	}
	if err := os.WriteFile(s.Path(d), []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", d.Filename(), err)
	}
	return nil
}

// Remove deletes a document's backing file. Returns true if a file was
// actually removed.
func (s *Store) Remove(d Doc) (bool, error) {
	err := os.Remove(s.Path(d))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("removing %s: %w", d.Filename(), err)
	}
	return true, nil
}

// RemoveRootIfEmpty removes the root directory if nothing is left in it.
// Returns true if the directory was removed. A non-empty directory is
// not an error — the caller reports it and moves on.
func (s *Store) RemoveRootIfEmpty() bool {
	return os.Remove(s.root) == nil
}
