package fetch

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrorKind classifies why EnsureDataset failed.
type ErrorKind int

const (
	// DirectoryCreateFailed means the dataset root could not be created.
	DirectoryCreateFailed ErrorKind = iota + 1
	// CloneFailed means the external clone did not complete.
	CloneFailed
)

func (k ErrorKind) String() string {
	switch k {
	case DirectoryCreateFailed:
		return "directory create failed"
	case CloneFailed:
		return "clone failed"
	default:
		return "unknown"
	}
}

var (
	// ErrDirectoryCreateFailed matches a *FetchError of kind DirectoryCreateFailed.
	ErrDirectoryCreateFailed = errors.New("directory create failed")
	// ErrCloneFailed matches a *FetchError of kind CloneFailed.
	ErrCloneFailed = errors.New("clone failed")
	// ErrInvalidOptions wraps validation failures reported before any filesystem action.
	ErrInvalidOptions = errors.New("invalid fetch options")
)

// FetchError is returned by EnsureDataset. Path is the directory the failing
// step was working on; Remote is set for clone failures.
type FetchError struct {
	Kind   ErrorKind
	Path   string
	Remote string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Kind == CloneFailed {
		return fmt.Sprintf("%s: %s into %s: %v", e.Kind, e.Remote, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is lets errors.Is match a FetchError against the kind sentinels.
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrDirectoryCreateFailed:
		return e.Kind == DirectoryCreateFailed
	case ErrCloneFailed:
		return e.Kind == CloneFailed
	}
	return false
}

// ExitCode maps err to a process exit status. A failing git process keeps
// its own exit code; any other error exits with 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
