package fetch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// State log phases.
const (
	PhaseSkipped = "FETCH_SKIPPED"
	PhaseSuccess = "FETCH_SUCCESS"
	PhaseFailed  = "FETCH_FAILED"
)

const stateLogHeader = "# datafetch state log - one YAML document per run. Newest entries are at the bottom.\n"

// StateEntry is one run recorded in the state log.
type StateEntry struct {
	Phase   string `yaml:"phase"`
	Time    string `yaml:"time"`
	Root    string `yaml:"root"`
	Dataset string `yaml:"dataset"`
	Remote  string `yaml:"remote"`
	Depth   int    `yaml:"depth"`
	Cloner  string `yaml:"cloner,omitempty"`
	Error   string `yaml:"error,omitempty"`
}

// NewStateEntry records the result of an EnsureDataset call.
func NewStateEntry(opts Options, cloner string, outcome Outcome, err error) StateEntry {
	entry := StateEntry{
		Time:    time.Now().UTC().Format(time.RFC3339),
		Root:    opts.Root,
		Dataset: opts.DatasetPath(),
		Remote:  opts.Remote,
		Depth:   opts.depth(),
		Cloner:  cloner,
	}
	switch {
	case err != nil:
		entry.Phase = PhaseFailed
		entry.Error = err.Error()
	case outcome == OutcomeAlreadyPresent:
		entry.Phase = PhaseSkipped
	default:
		entry.Phase = PhaseSuccess
	}
	return entry
}

// AppendStateLog appends entry to the log at path as a YAML document. The
// log is informational only: it is never read to decide whether to clone.
func AppendStateLog(path string, entry StateEntry) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("state log: cannot create %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, statErr := f.Stat()
	if statErr == nil && info.Size() == 0 {
		if _, err := f.WriteString(stateLogHeader); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(entry)
	if err != nil {
		return fmt.Errorf("state log: encode entry: %w", err)
	}
	if _, err := f.WriteString("---\n"); err != nil {
		return err
	}
	_, err = f.Write(data)
	return err
}

// ReadStateLog returns all entries in the log at path, oldest first. A
// missing log yields no entries.
func ReadStateLog(path string) ([]StateEntry, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []StateEntry
	dec := yaml.NewDecoder(f)
	for {
		var e StateEntry
		err := dec.Decode(&e)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("state log: decode %s: %w", path, err)
		}
		if e.Phase == "" {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}
