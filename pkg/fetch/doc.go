// Package fetch contains the core domain logic for datafetch: making sure a
// dataset root exists, detecting whether a dataset checkout is already
// present, and shallow-cloning it from its remote when it is not.
//
// The clone itself sits behind the ShallowCloner interface. CommandCloner
// shells out to the git client, GoGitCloner clones in-process with go-git and
// NoopCloner only logs. The CLI layer picks one; tests substitute fakes.
//
// Presence of the dataset directory is the only state consulted. A clone that
// was interrupted leaves a directory that later runs treat as present; use
// Inspect to check whether a directory is a usable checkout. Concurrent runs
// against the same root are not guarded against.
package fetch
