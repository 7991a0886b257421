package fetch

import (
	"context"
	"fmt"
	"io"

	"github.com/go-git/go-git/v5"
	"go.uber.org/zap"
)

// GoGitCloner clones in-process with go-git, so no git binary is needed.
// Only anonymous transports are supported.
type GoGitCloner struct {
	Progress io.Writer
}

func NewGoGitCloner(progress io.Writer) *GoGitCloner {
	return &GoGitCloner{Progress: progress}
}

func (c *GoGitCloner) Clone(ctx context.Context, remoteURL, destPath string, depth int) error {
	logSink.Debug("go-git clone", zap.String("remote", remoteURL), zap.String("dest", destPath), zap.Int("depth", depth))

	opts := &git.CloneOptions{
		URL:          remoteURL,
		Depth:        depth,
		SingleBranch: true,
	}
	if c.Progress != nil {
		opts.Progress = c.Progress
	}

	if _, err := git.PlainCloneContext(ctx, destPath, false, opts); err != nil {
		return fmt.Errorf("go-git clone failed: %w", err)
	}
	return nil
}
