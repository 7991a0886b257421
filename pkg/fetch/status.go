package fetch

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
)

// Status describes what is on disk at a dataset path.
type Status struct {
	Path         string
	Present      bool
	IsRepository bool
	Shallow      bool
	Branch       string
	Commit       string
}

// Inspect reports whether path holds a git checkout and, if so, which
// revision is checked out. A present directory that is not a repository, or
// a repository without a resolvable HEAD, usually means an interrupted clone.
func Inspect(path string) (Status, error) {
	st := Status{Path: path}

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return st, fmt.Errorf("%s exists but is not a directory", path)
	}
	st.Present = true

	r, err := git.PlainOpen(path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("open repository %s: %w", path, err)
	}
	st.IsRepository = true

	if shallow, err := r.Storer.Shallow(); err == nil && len(shallow) > 0 {
		st.Shallow = true
	}

	head, err := r.Head()
	if err != nil {
		// Empty or half-written repository: no HEAD to report.
		return st, nil
	}
	if head.Name().IsBranch() {
		st.Branch = head.Name().Short()
	}
	st.Commit = head.Hash().String()
	return st, nil
}

// Complete reports whether the checkout has a resolvable HEAD commit.
func (s Status) Complete() bool {
	return s.Present && s.IsRepository && s.Commit != ""
}

// Revision returns "<branch>-<short commit>", or just the short commit for a
// detached HEAD.
func (s Status) Revision() string {
	if s.Commit == "" {
		return ""
	}
	short := s.Commit
	if len(short) > 7 {
		short = short[:7]
	}
	if s.Branch == "" {
		return short
	}
	return fmt.Sprintf("%s-%s", s.Branch, short)
}

// String renders a human-readable status report.
func (s Status) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dataset: %s\n", s.Path)
	switch {
	case !s.Present:
		b.WriteString("  state: absent\n")
	case !s.IsRepository:
		b.WriteString("  state: present, not a git checkout (interrupted clone?)\n")
	case s.Commit == "":
		b.WriteString("  state: present, repository has no HEAD (interrupted clone?)\n")
	default:
		b.WriteString("  state: present\n")
		fmt.Fprintf(&b, "  revision: %s\n", s.Revision())
		fmt.Fprintf(&b, "  shallow: %v\n", s.Shallow)
	}
	return b.String()
}
