// Package crawler finds files under a directory tree by name suffix, one
// directory at a time.
package crawler

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// Done is returned by Iterator.Next once every directory has been visited.
var Done = errors.New("no more files")

type Crawler struct {
	root string
}

// New returns a crawler rooted at root. Relative roots are resolved against
// the working directory so every yielded path is absolute.
func New(root string) (*Crawler, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve crawl root %s: %w", root, err)
	}

	return &Crawler{root: abs}, nil
}

func (c *Crawler) Root() string {
	return c.root
}

// FilesWithEnding returns a single-pass iterator over groups of files whose
// name ends with suffix. Each group holds the matches of one directory;
// directories without matches produce no group.
func (c *Crawler) FilesWithEnding(suffix string) *Iterator {
	return &Iterator{
		suffix:  suffix,
		pending: []string{c.root},
	}
}

// Iterator walks the tree depth first. Only the stack of directories still to
// visit is held in memory.
type Iterator struct {
	suffix  string
	pending []string
	done    bool
}

// Next returns the next non-empty group of absolute paths, or Done.
func (it *Iterator) Next() ([]string, error) {
	for !it.done {
		if len(it.pending) == 0 {
			it.done = true
			break
		}

		dir := it.pending[len(it.pending)-1]
		it.pending = it.pending[:len(it.pending)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("list directory %s: %w", dir, err)
		}

		var (
			group   []string
			subdirs []string
		)
		for _, e := range entries {
			path := filepath.Join(dir, e.Name())
			if e.IsDir() {
				subdirs = append(subdirs, path)
				continue
			}
			if strings.HasSuffix(e.Name(), it.suffix) {
				group = append(group, path)
			}
		}

		// pushed in reverse so siblings pop in listing order
		for i := len(subdirs) - 1; i >= 0; i-- {
			it.pending = append(it.pending, subdirs[i])
		}

		if len(group) > 0 {
			return group, nil
		}
	}

	return nil, Done
}

// All adapts the iterator for range loops. Iteration stops after the first
// error is yielded.
func (it *Iterator) All() iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		for {
			group, err := it.Next()
			if errors.Is(err, Done) {
				return
			}
			if !yield(group, err) || err != nil {
				return
			}
		}
	}
}

// Collect drains the iterator into a flat list of paths.
func (it *Iterator) Collect() ([]string, error) {
	var files []string
	for group, err := range it.All() {
		if err != nil {
			return files, err
		}
		files = append(files, group...)
	}

	return files, nil
}
