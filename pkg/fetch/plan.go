package fetch

import (
	"fmt"
	"os"
	"strings"
)

// Plan actions.
const (
	ActionSkip  = "skip"
	ActionClone = "clone"
)

// PlanResult is a description of what EnsureDataset would do right now.
type PlanResult struct {
	Root       string
	RootExists bool
	DatasetDir string
	Remote     string
	Depth      int
	Action     string
}

// Plan inspects the filesystem and the given options and reports whether a
// clone would happen. It never creates directories or touches the network.
func Plan(opts Options) (PlanResult, error) {
	if err := opts.Validate(); err != nil {
		return PlanResult{}, err
	}

	_, rootErr := os.Stat(opts.Root)

	action := ActionClone
	if isDir(opts.DatasetPath()) {
		action = ActionSkip
	}

	return PlanResult{
		Root:       opts.Root,
		RootExists: rootErr == nil,
		DatasetDir: opts.DatasetPath(),
		Remote:     opts.Remote,
		Depth:      opts.depth(),
		Action:     action,
	}, nil
}

// String renders a human-readable description of the plan.
func (p PlanResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Fetch plan: %s -> %s\n", p.Remote, p.DatasetDir)
	if !p.RootExists {
		fmt.Fprintf(&b, "  - create root %s\n", p.Root)
	}
	switch p.Action {
	case ActionSkip:
		fmt.Fprintf(&b, "  - skip: %s already exists\n", p.DatasetDir)
	default:
		fmt.Fprintf(&b, "  - clone (depth %d)\n", p.Depth)
	}
	return b.String()
}
