package fetch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testRemote = "https://example.com/datasets/foundry.git"

type cloneCall struct {
	remote string
	dest   string
	depth  int
}

// fakeCloner records calls and, unless err is set, creates the destination
// directory the way a real clone would.
type fakeCloner struct {
	calls []cloneCall
	err   error
}

func (f *fakeCloner) Clone(_ context.Context, remoteURL, destPath string, depth int) error {
	f.calls = append(f.calls, cloneCall{remote: remoteURL, dest: destPath, depth: depth})
	if f.err != nil {
		return f.err
	}
	return os.MkdirAll(filepath.Join(destPath, ".git"), 0o755)
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

func TestEnsureDataset_FirstRunCreatesRootAndClones(t *testing.T) {
	logs := observeLogs(t)
	root := filepath.Join(t.TempDir(), "tests", "data")
	cloner := &fakeCloner{}

	outcome, err := EnsureDataset(context.Background(), root, "foundry", testRemote, cloner)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCloned, outcome)

	assert.DirExists(t, root)
	require.Len(t, cloner.calls, 1)
	assert.Equal(t, cloneCall{remote: testRemote, dest: filepath.Join(root, "foundry"), depth: 1}, cloner.calls[0])
	assert.Equal(t, 1, logs.FilterMessage("cloning dataset").Len())
}

func TestEnsureDataset_IsIdempotentWhenDatasetExists(t *testing.T) {
	logs := observeLogs(t)
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "foundry"), 0o755))
	cloner := &fakeCloner{}

	for i := 0; i < 2; i++ {
		outcome, err := EnsureDataset(context.Background(), root, "foundry", testRemote, cloner)
		require.NoError(t, err)
		assert.Equal(t, OutcomeAlreadyPresent, outcome)
	}

	assert.Empty(t, cloner.calls, "an existing dataset directory must not trigger a clone")
	assert.Equal(t, 2, logs.FilterMessage("dataset already exists, skipping clone").Len())
}

func TestEnsureDataset_SecondRunSkipsClone(t *testing.T) {
	root := filepath.Join(t.TempDir(), "tests", "data")
	cloner := &fakeCloner{}
	f := New(Options{Root: root, Name: "foundry", Remote: testRemote}, cloner)

	first, err := f.EnsureDataset(context.Background())
	require.NoError(t, err)
	second, err := f.EnsureDataset(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeCloned, first)
	assert.Equal(t, OutcomeAlreadyPresent, second)
	assert.Len(t, cloner.calls, 1)
}

func TestEnsureDataset_ExistingRootIsNotAnError(t *testing.T) {
	root := t.TempDir()
	marker := filepath.Join(root, "keep.txt")
	require.NoError(t, os.WriteFile(marker, []byte("x"), 0o644))
	cloner := &fakeCloner{}

	outcome, err := EnsureDataset(context.Background(), root, "foundry", testRemote, cloner)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCloned, outcome)
	assert.FileExists(t, marker, "existing root content must be left alone")
	assert.Len(t, cloner.calls, 1)
}

func TestEnsureDataset_DirectoryCreateFailure(t *testing.T) {
	// A regular file where a parent directory is expected makes MkdirAll fail
	// regardless of the user running the test.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	cloner := &fakeCloner{}

	_, err := EnsureDataset(context.Background(), filepath.Join(blocker, "data"), "foundry", testRemote, cloner)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDirectoryCreateFailed)
	assert.NotErrorIs(t, err, ErrCloneFailed)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, DirectoryCreateFailed, fe.Kind)
	assert.Empty(t, cloner.calls, "no clone may be attempted after a directory failure")
	assert.Equal(t, 1, ExitCode(err))
}

func TestEnsureDataset_CloneFailure(t *testing.T) {
	root := t.TempDir()
	cloner := &fakeCloner{err: errors.New("network unreachable")}

	_, err := EnsureDataset(context.Background(), root, "foundry", testRemote, cloner)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCloneFailed)
	assert.Contains(t, err.Error(), "network unreachable")
	assert.Contains(t, err.Error(), testRemote)
	assert.Len(t, cloner.calls, 1, "clone failures are not retried")
	assert.NotEqual(t, 0, ExitCode(err))
}

func TestEnsureDataset_FileAtDatasetPathIsNotPresent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "foundry"), []byte("x"), 0o644))
	cloner := &fakeCloner{err: errors.New("destination path already exists")}

	_, err := EnsureDataset(context.Background(), root, "foundry", testRemote, cloner)
	assert.ErrorIs(t, err, ErrCloneFailed)
	assert.Len(t, cloner.calls, 1)
}

func TestEnsureDataset_RejectsInvalidOptions(t *testing.T) {
	cases := []struct {
		name string
		opts Options
	}{
		{"empty root", Options{Name: "foundry", Remote: testRemote}},
		{"empty name", Options{Root: "data", Remote: testRemote}},
		{"parent name", Options{Root: "data", Name: "..", Remote: testRemote}},
		{"nested name", Options{Root: "data", Name: "a/b", Remote: testRemote}},
		{"empty remote", Options{Root: "data", Name: "foundry"}},
		{"negative depth", Options{Root: "data", Name: "foundry", Remote: testRemote, Depth: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cloner := &fakeCloner{}
			_, err := New(tc.opts, cloner).EnsureDataset(context.Background())
			assert.ErrorIs(t, err, ErrInvalidOptions)
			assert.Empty(t, cloner.calls)
		})
	}
}

func TestEnsureDataset_RequiresCloner(t *testing.T) {
	_, err := New(Options{Root: t.TempDir(), Name: "foundry", Remote: testRemote}, nil).EnsureDataset(context.Background())
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestOptions_DepthDefaultsToOne(t *testing.T) {
	root := t.TempDir()
	cloner := &fakeCloner{}

	_, err := New(Options{Root: root, Name: "foundry", Remote: testRemote}, cloner).EnsureDataset(context.Background())
	require.NoError(t, err)
	require.Len(t, cloner.calls, 1)
	assert.Equal(t, 1, cloner.calls[0].depth)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
	assert.Equal(t, 1, ExitCode(&FetchError{Kind: CloneFailed, Err: errors.New("boom")}))
}
