package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gamma-omg/transcript-indexer/docstore"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command of the indexer CLI.
func NewRootCmd() *cobra.Command {
	var (
		cfgPath string
		a       *app
	)

	cmd := &cobra.Command{
		Use:           "transcript-indexer",
		Short:         "Index course transcripts into a search engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(cfgPath)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a != nil {
				a.Close()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "cfg/config.yaml", "Configuration file")

	current := func() *app { return a }
	cmd.AddCommand(
		newSetupCmd(current),
		newTeardownCmd(current),
		newIndexCmd(current),
		newGetCmd(current),
		newBulkCmd(current),
		newWatchCmd(current),
		newServeCmd(current),
	)

	return cmd
}

func newSetupCmd(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Create the configured index and type mapping when missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			ctx := cmd.Context()
			idx := a.cfg.Index

			ok, err := a.store.HasIndex(ctx, idx.Name)
			if err != nil {
				return err
			}
			if !ok {
				resp, err := a.store.SetupIndex(ctx, idx.Name)
				if err != nil {
					return err
				}
				if !resp.OK() {
					return fmt.Errorf("failed to create index %s: %s", idx.Name, resp)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created index %s\n", idx.Name)
			}

			ok, err = a.store.HasType(ctx, idx.Name, idx.Type)
			if err != nil {
				return err
			}
			if ok {
				return nil
			}
			if idx.Mapping == "" {
				return errors.New("config index.mapping is required to create the type")
			}

			resp, err := a.store.SetupType(ctx, idx.Name, idx.Type, idx.Mapping)
			if err != nil {
				return err
			}
			if !resp.OK() {
				return fmt.Errorf("failed to create type %s/%s: %s", idx.Name, idx.Type, resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created type %s/%s\n", idx.Name, idx.Type)

			return nil
		},
	}
}

func newTeardownCmd(current func() *app) *cobra.Command {
	var typeOnly bool

	cmd := &cobra.Command{
		Use:   "teardown",
		Short: "Delete the configured index, or only its type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			idx := a.cfg.Index

			var (
				resp *docstore.Response
				err  error
			)
			if typeOnly {
				resp, err = a.store.DeleteType(cmd.Context(), idx.Name, idx.Type)
			} else {
				resp, err = a.store.DeleteIndex(cmd.Context(), idx.Name)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().BoolVar(&typeOnly, "type-only", false, "Delete only the type mapping and its documents")
	return cmd
}

func newIndexCmd(current func() *app) *cobra.Command {
	var (
		silent bool
		id     string
		ending string
	)

	cmd := &cobra.Command{
		Use:   "index [path]",
		Short: "Index a transcript file, or every transcript under a directory",
		Long: `Index a transcript file, or every transcript under a directory.

Without a path the configured doc_root is indexed. Malformed transcripts fail
the command unless --silent is set, in which case they are indexed with empty
text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			ctx := cmd.Context()

			path := a.cfg.DocRoot
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errors.New("no path given and config doc_root is empty")
			}
			if ending == "" {
				ending = a.cfg.FileEnding
			}

			policy := docstore.Raise
			if silent {
				policy = docstore.Degrade
			}

			info, err := os.Stat(path)
			if err != nil {
				return err
			}

			if !info.IsDir() {
				resp, err := a.store.IndexTranscript(ctx, a.cfg.Index.Name, a.cfg.Index.Type, path, docstore.IndexOptions{
					OnParseFailure: policy,
					ID:             id,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), resp)
				return nil
			}

			responses, err := a.store.IndexDirectoryFiles(ctx, path, a.cfg.Index.Name, a.cfg.Index.Type, ending, docstore.DirectoryOptions{
				OnParseFailure: policy,
			})
			for _, resp := range responses {
				fmt.Fprintln(cmd.OutOrStdout(), resp)
			}

			return err
		},
	}

	cmd.Flags().BoolVar(&silent, "silent", false, "Index malformed transcripts with empty text")
	cmd.Flags().StringVar(&id, "id", "", "Document id for a single file; generated when empty")
	cmd.Flags().StringVar(&ending, "ending", "", "File name suffix to index in directories (default from config)")

	return cmd
}

func newGetCmd(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print an indexed document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()

			resp, err := a.store.GetData(cmd.Context(), a.cfg.Index.Name, a.cfg.Index.Type, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp)
			return nil
		},
	}
}

func newBulkCmd(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bulk <payload.ndjson>",
		Short: "Send a newline delimited bulk payload, bulk_size actions per request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()

			payload, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			batcher := DefaultBatcher{batchSize: a.cfg.BulkSize}
			batches, err := batcher.Batch(payload)
			if err != nil {
				return fmt.Errorf("invalid bulk payload %s: %w", args[0], err)
			}

			for _, batch := range batches {
				resp, err := a.store.BulkIndex(cmd.Context(), batch)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), resp)
			}

			return nil
		},
	}
}

func newWatchCmd(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [root]",
		Short: "Index a directory, then keep it indexed as transcripts change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			ctx := cmd.Context()

			root := a.cfg.DocRoot
			if len(args) == 1 {
				root = args[0]
			}
			if root == "" {
				return errors.New("no root given and config doc_root is empty")
			}

			if err := a.lockRoot(root); err != nil {
				return err
			}

			reg := a.registry(root)
			if err := reg.Sync(ctx); err != nil {
				return err
			}
			if err := reg.Watch(ctx); err != nil {
				return err
			}

			<-ctx.Done()
			return nil
		},
	}
}

func newServeCmd(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the indexing tools over MCP (SSE), watching doc_root when set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			ctx := cmd.Context()

			if a.cfg.DocRoot != "" {
				if err := a.lockRoot(a.cfg.DocRoot); err != nil {
					return err
				}

				reg := a.registry(a.cfg.DocRoot)
				go func() {
					if err := reg.Sync(ctx); err != nil {
						a.log.Error("initial sync failed", "error", err)
					}
					if err := reg.Watch(ctx); err != nil {
						a.log.Error("failed to watch doc root", "error", err)
					}
				}()
			}

			srv := NewIndexServer(a.store, a.cfg.Index.Name, a.cfg.Index.Type)
			sse := server.NewSSEServer(srv, server.WithBaseURL(fmt.Sprintf("http://%s", a.cfg.ServerAddr)))

			errc := make(chan error, 1)
			go func() {
				errc <- sse.Start(a.cfg.ServerAddr)
			}()
			a.log.Info("serving MCP tools", "addr", a.cfg.ServerAddr)

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
				return sse.Shutdown(context.Background())
			}
		},
	}
}
