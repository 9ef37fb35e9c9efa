package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gamma-omg/transcript-indexer/docstore"
)

type DocStore interface {
	IndexTranscript(ctx context.Context, index, typ, path string, opts docstore.IndexOptions) (*docstore.Response, error)
	IndexDirectoryFiles(ctx context.Context, root, index, typ, ending string, opts docstore.DirectoryOptions) ([]*docstore.Response, error)
	GetData(ctx context.Context, index, typ, id string) (*docstore.Response, error)
	DeleteData(ctx context.Context, index, typ, id string) (*docstore.Response, error)
}

// DocRegistry keeps the documents of one index type in line with the
// transcripts under root.
type DocRegistry struct {
	log              *slog.Logger
	root             string
	index            string
	typ              string
	ending           string
	mergeEventsDelay time.Duration
	store            DocStore
}

// Sync indexes every transcript under root. Malformed transcripts are
// indexed without text so one bad file does not stop the run.
func (dr *DocRegistry) Sync(ctx context.Context) error {
	responses, err := dr.store.IndexDirectoryFiles(ctx, dr.root, dr.index, dr.typ, dr.ending, docstore.DirectoryOptions{
		OnParseFailure: docstore.Degrade,
	})

	failed := 0
	for _, r := range responses {
		if !r.OK() {
			failed++
			dr.log.Warn("engine rejected document", "status", r.StatusCode, "body", string(r.Body))
		}
	}

	if err != nil {
		return fmt.Errorf("failed to sync %s: %w", dr.root, err)
	}

	dr.log.Info("synced transcripts", "root", dr.root, "indexed", len(responses)-failed, "rejected", failed)
	return nil
}

// Watch re-indexes transcripts as they change on disk and deletes the
// documents of removed ones. It returns once the watcher is running; the
// watcher stops with ctx.
func (dr *DocRegistry) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := dr.watchTree(w, dr.root); err != nil {
		w.Close()
		return err
	}

	go dr.run(ctx, w)
	return nil
}

func (dr *DocRegistry) watchTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

func (dr *DocRegistry) run(ctx context.Context, w *fsnotify.Watcher) {
	defer w.Close()

	pending := make(map[string]struct{})
	var flush <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.Events:
			if !ok {
				return
			}

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := dr.watchTree(w, event.Name); err != nil {
						dr.log.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
					dr.queueTree(event.Name, pending)
					flush = time.After(dr.mergeEventsDelay)
					continue
				}
			}

			if !strings.HasSuffix(event.Name, dr.ending) {
				continue
			}

			pending[event.Name] = struct{}{}
			flush = time.After(dr.mergeEventsDelay)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			dr.log.Warn("watcher error", "error", err)

		case <-flush:
			flush = nil
			for path := range pending {
				dr.apply(ctx, path)
				delete(pending, path)
			}
		}
	}
}

// queueTree picks up transcripts that were moved in together with a
// directory, before the directory itself was watched.
func (dr *DocRegistry) queueTree(root string, pending map[string]struct{}) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() && strings.HasSuffix(path, dr.ending) {
			pending[path] = struct{}{}
		}
		return nil
	})
}

// apply looks at the file as it is now, which folds any burst of events
// into a single index or delete.
func (dr *DocRegistry) apply(ctx context.Context, path string) {
	id := docstore.DocumentID(dr.root, path)

	_, err := os.Stat(path)
	switch {
	case err == nil:
		resp, err := dr.store.IndexTranscript(ctx, dr.index, dr.typ, path, docstore.IndexOptions{
			OnParseFailure: docstore.Degrade,
			ID:             id,
		})
		if err != nil {
			dr.log.Error("failed to index transcript", "path", path, "error", err)
			return
		}
		dr.log.Info("indexed transcript", "path", path, "id", id, "status", resp.StatusCode)

	case errors.Is(err, fs.ErrNotExist):
		resp, err := dr.store.DeleteData(ctx, dr.index, dr.typ, id)
		if err != nil {
			dr.log.Error("failed to delete document", "path", path, "error", err)
			return
		}
		dr.log.Info("deleted document", "path", path, "id", id, "status", resp.StatusCode)

	default:
		dr.log.Warn("failed to stat transcript", "path", path, "error", err)
	}
}
