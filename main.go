package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gamma-omg/transcript-indexer/docstore"
	"github.com/gamma-omg/transcript-indexer/readers"
)

// app is shared by the commands once the config is loaded.
type app struct {
	cfg     *Config
	log     *slog.Logger
	store   *docstore.ElasticStore
	closers []io.Closer
}

func newApp(cfgPath string) (*app, error) {
	cfg, err := readConfig(cfgPath)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}

	out := io.Writer(os.Stderr)
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		a.closers = append(a.closers, logFile)
		out = logFile
	}
	a.log = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))

	a.store, err = docstore.NewElasticStore(docstore.ElasticStoreConfig{
		BaseURL:           cfg.Engine.URL,
		Timeout:           cfg.EngineTimeout(),
		Replicas:          *cfg.Index.Replicas,
		Shards:            *cfg.Index.Shards,
		RequestsPerSecond: cfg.Engine.RequestsPerSecond,
		Parser:            readers.DefaultRegistry(),
		Logger:            a.log,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

func (a *app) registry(root string) *DocRegistry {
	return &DocRegistry{
		log:              a.log,
		root:             root,
		index:            a.cfg.Index.Name,
		typ:              a.cfg.Index.Type,
		ending:           a.cfg.FileEnding,
		mergeEventsDelay: a.cfg.MergeEventsDelay(),
		store:            a.store,
	}
}

// lockRoot holds the watch lock of root until the app is closed.
func (a *app) lockRoot(root string) error {
	l, err := newWatchLock(a.cfg.LockDir, root)
	if err != nil {
		return err
	}
	if err := l.Acquire(); err != nil {
		return err
	}

	a.closers = append(a.closers, l)
	return nil
}

func (a *app) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}
