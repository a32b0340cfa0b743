package docscan

import (
	"path/filepath"

	"git.home.luguber.info/inful/linkcheck/internal/util/sets"
)

// Snapshot is the fixed, ordered set of documents for a single run.
// Paths are root-relative with forward slashes.
type Snapshot struct {
	root  string
	files []string
	set   sets.Set[string]
}

func newSnapshot(root string, files []string) *Snapshot {
	return &Snapshot{
		root:  root,
		files: files,
		set:   sets.New(files...),
	}
}

// Root returns the documentation root directory.
func (s *Snapshot) Root() string { return s.root }

// Files returns the document paths in lexical order.
// Callers must not mutate the returned slice.
func (s *Snapshot) Files() []string { return s.files }

// Len returns the number of documents.
func (s *Snapshot) Len() int { return len(s.files) }

// Has reports whether rel is one of the scanned documents.
func (s *Snapshot) Has(rel string) bool { return s.set.Has(rel) }

// Abs returns the filesystem path for a root-relative document path.
func (s *Snapshot) Abs(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}
