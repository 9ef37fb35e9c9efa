package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// watchLock stops two indexer processes from watching the same document
// root. The lock file is named after the absolute root.
type watchLock struct {
	path  string
	flock *flock.Flock
}

func newWatchLock(dir, root string) (*watchLock, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve doc root %s: %w", root, err)
	}

	name := uuid.NewSHA1(uuid.NameSpaceURL, []byte(filepath.ToSlash(abs))).String()
	path := filepath.Join(dir, "transcript-indexer-"+name+".lock")

	return &watchLock{path: path, flock: flock.New(path)}, nil
}

// Acquire fails when another process already watches the root.
func (l *watchLock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	ok, err := l.flock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock %s: %w", l.path, err)
	}
	if !ok {
		return fmt.Errorf("doc root is already watched by another process (lock %s)", l.path)
	}

	return nil
}

func (l *watchLock) Close() error {
	return l.flock.Unlock()
}
