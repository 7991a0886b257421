package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DefaultDepth is the clone depth used when Options.Depth is unset: only the
// latest revision is fetched.
const DefaultDepth = 1

// Options describes one dataset: where it lives locally and where it comes from.
type Options struct {
	Root   string
	Name   string
	Remote string
	Depth  int
}

// DatasetPath returns Root/Name.
func (o Options) DatasetPath() string {
	return filepath.Join(o.Root, o.Name)
}

func (o Options) depth() int {
	if o.Depth <= 0 {
		return DefaultDepth
	}
	return o.Depth
}

// Validate checks the options before anything touches the filesystem. Name
// must be a single path element so the dataset stays inside Root.
func (o Options) Validate() error {
	if strings.TrimSpace(o.Root) == "" {
		return fmt.Errorf("%w: root path cannot be empty", ErrInvalidOptions)
	}
	if strings.TrimSpace(o.Name) == "" {
		return fmt.Errorf("%w: dataset name cannot be empty", ErrInvalidOptions)
	}
	if o.Name == "." || o.Name == ".." || filepath.IsAbs(o.Name) || strings.ContainsAny(o.Name, `/\`) {
		return fmt.Errorf("%w: dataset name %q must be a single directory name", ErrInvalidOptions, o.Name)
	}
	if strings.TrimSpace(o.Remote) == "" {
		return fmt.Errorf("%w: remote URL cannot be empty", ErrInvalidOptions)
	}
	if o.Depth < 0 {
		return fmt.Errorf("%w: depth must be positive, got %d", ErrInvalidOptions, o.Depth)
	}
	return nil
}

// Outcome reports which of the two successful paths EnsureDataset took.
type Outcome int

const (
	OutcomeAlreadyPresent Outcome = iota + 1
	OutcomeCloned
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAlreadyPresent:
		return "already-present"
	case OutcomeCloned:
		return "cloned"
	default:
		return "unknown"
	}
}

// Fetcher ensures a single dataset checkout exists.
type Fetcher struct {
	opts   Options
	cloner ShallowCloner
}

func New(opts Options, cloner ShallowCloner) *Fetcher {
	return &Fetcher{opts: opts, cloner: cloner}
}

// EnsureDataset creates the root directory if needed and clones the dataset
// into Root/Name unless that directory already exists. An existing directory
// is never inspected further, so an empty or partial checkout counts as
// present. Failures are returned as *FetchError and are not retried.
func (f *Fetcher) EnsureDataset(ctx context.Context) (Outcome, error) {
	if err := f.opts.Validate(); err != nil {
		return 0, err
	}
	if f.cloner == nil {
		return 0, fmt.Errorf("%w: no cloner configured", ErrInvalidOptions)
	}

	root := f.opts.Root
	if err := os.MkdirAll(root, 0o755); err != nil {
		return 0, &FetchError{Kind: DirectoryCreateFailed, Path: root, Err: err}
	}

	dest := f.opts.DatasetPath()
	if isDir(dest) {
		logSink.Info("dataset already exists, skipping clone", zap.String("path", dest))
		return OutcomeAlreadyPresent, nil
	}

	logSink.Info("cloning dataset",
		zap.String("remote", f.opts.Remote),
		zap.String("path", dest),
		zap.Int("depth", f.opts.depth()),
	)
	if err := f.cloner.Clone(ctx, f.opts.Remote, dest, f.opts.depth()); err != nil {
		return 0, &FetchError{Kind: CloneFailed, Path: dest, Remote: f.opts.Remote, Err: err}
	}

	logSink.Info("dataset cloned", zap.String("path", dest))
	return OutcomeCloned, nil
}

// EnsureDataset is a shorthand for New(...).EnsureDataset with a depth-1 clone.
func EnsureDataset(ctx context.Context, root, name, remote string, cloner ShallowCloner) (Outcome, error) {
	return New(Options{Root: root, Name: name, Remote: remote, Depth: DefaultDepth}, cloner).EnsureDataset(ctx)
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}
