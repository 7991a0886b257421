package fetch

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// ShallowCloner abstracts how a remote repository is copied into destPath.
// depth limits the history fetched; EnsureDataset always asks for 1.
type ShallowCloner interface {
	Clone(ctx context.Context, remoteURL, destPath string, depth int) error
}

// Cloner names accepted by NewCloner.
const (
	ClonerExec  = "exec"
	ClonerGoGit = "go-git"
	ClonerNoop  = "noop"
)

// ClonerNames lists the cloners NewCloner understands, default first.
var ClonerNames = []string{ClonerExec, ClonerGoGit, ClonerNoop}

// NewCloner builds the cloner registered under name. Output from the clone
// (git diagnostics or go-git progress) is written to out.
func NewCloner(name string, out io.Writer) (ShallowCloner, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ClonerExec:
		c := NewCommandCloner("git")
		if out != nil {
			c.Stdout = out
			c.Stderr = out
		}
		return c, nil
	case ClonerGoGit:
		return NewGoGitCloner(out), nil
	case ClonerNoop:
		return NewNoopCloner(), nil
	default:
		return nil, fmt.Errorf("unknown cloner %q (want one of %s)", name, strings.Join(ClonerNames, ", "))
	}
}
