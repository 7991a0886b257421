package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// CommandCloner clones by invoking the git client as a child process. The
// child inherits the environment, so credential helpers and proxy settings
// configured for git apply unchanged. Its stdout and stderr are passed
// through rather than captured.
type CommandCloner struct {
	Binary string
	Stdout io.Writer
	Stderr io.Writer
}

func NewCommandCloner(binary string) *CommandCloner {
	if binary == "" {
		binary = "git"
	}
	return &CommandCloner{
		Binary: binary,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// CloneArgs returns the git arguments used for a shallow clone.
func CloneArgs(remoteURL, destPath string, depth int) []string {
	return []string{"clone", "--depth", strconv.Itoa(depth), remoteURL, destPath}
}

func (c *CommandCloner) Clone(ctx context.Context, remoteURL, destPath string, depth int) error {
	bin, err := exec.LookPath(c.Binary)
	if err != nil {
		return fmt.Errorf("missing required command %s: %w", c.Binary, err)
	}

	args := CloneArgs(remoteURL, destPath, depth)
	logSink.Debug("exec", zap.String("cmd", c.Binary+" "+strings.Join(args, " ")))

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s clone failed: %w", c.Binary, err)
	}
	return nil
}
