package main

import (
	"context"

	"github.com/gamma-omg/transcript-indexer/docstore"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type docIndexer interface {
	IndexTranscript(ctx context.Context, index, typ, path string, opts docstore.IndexOptions) (*docstore.Response, error)
	GetData(ctx context.Context, index, typ, id string) (*docstore.Response, error)
}

type indexTools struct {
	store docIndexer
	index string
	typ   string
}

func NewIndexServer(store docIndexer, index, typ string) *server.MCPServer {
	tools := &indexTools{store: store, index: index, typ: typ}

	indexTool := mcp.NewTool("index_transcript",
		mcp.WithDescription("Parse a course transcript file and index it as a searchable document"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path of the transcript file"),
		),
		mcp.WithString("id",
			mcp.Description("Document id; generated when omitted"),
		),
		mcp.WithBoolean("silent",
			mcp.Description("Index malformed transcripts with empty text instead of failing"),
		))

	getTool := mcp.NewTool("get_document",
		mcp.WithDescription("Read back an indexed transcript document"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Document id"),
		))

	srv := server.NewMCPServer("transcript-indexer", "0.0.1", server.WithToolCapabilities(false))
	srv.AddTool(indexTool, tools.indexTranscript)
	srv.AddTool(getTool, tools.getDocument)

	return srv
}

func (t *indexTools) indexTranscript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := docstore.IndexOptions{ID: request.GetString("id", "")}
	if request.GetBool("silent", false) {
		opts.OnParseFailure = docstore.Degrade
	}

	resp, err := t.store.IndexTranscript(ctx, t.index, t.typ, path, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return engineResult(resp), nil
}

func (t *indexTools) getDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := t.store.GetData(ctx, t.index, t.typ, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return engineResult(resp), nil
}

func engineResult(resp *docstore.Response) *mcp.CallToolResult {
	if !resp.OK() {
		return mcp.NewToolResultError(resp.String())
	}

	return mcp.NewToolResultText(string(resp.Body))
}
