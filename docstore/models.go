package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
)

const (
	SearchableText = "searchable_text"
	UUID           = "uuid"
)

// Response is the engine's answer, returned as is. Callers inspect the
// status code; a non-2xx answer is not an error.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode engine response (status %d): %w", r.StatusCode, err)
	}

	return nil
}

func (r *Response) String() string {
	return fmt.Sprintf("%d %s", r.StatusCode, r.Body)
}

// WriteResult holds the fields of a document write response.
type WriteResult struct {
	OK      bool   `json:"ok"`
	Index   string `json:"_index"`
	Type    string `json:"_type"`
	ID      string `json:"_id"`
	Version int64  `json:"_version"`
	Result  string `json:"result,omitempty"`
}

func (r *Response) WriteResult() (WriteResult, error) {
	var res WriteResult
	err := r.Decode(&res)
	return res, err
}

// GetResult holds the fields of a document read response.
type GetResult struct {
	Index   string         `json:"_index"`
	Type    string         `json:"_type"`
	ID      string         `json:"_id"`
	Version int64          `json:"_version"`
	Found   bool           `json:"found"`
	Exists  bool           `json:"exists"`
	Source  map[string]any `json:"_source"`
}

func (r *Response) Document() (GetResult, error) {
	var res GetResult
	err := r.Decode(&res)
	return res, err
}

// EngineError is returned by calls that hand back decoded metadata instead
// of a Response, when the engine answered with a non-2xx status.
type EngineError struct {
	StatusCode int
	Body       string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine answered %d: %s", e.StatusCode, e.Body)
}

// OnParseFailure decides what happens to a transcript that cannot be parsed.
type OnParseFailure int

const (
	// Raise aborts the write and returns the parse error.
	Raise OnParseFailure = iota
	// Degrade writes the document with empty text and a file derived uuid.
	Degrade
)

func (p OnParseFailure) String() string {
	switch p {
	case Raise:
		return "raise"
	case Degrade:
		return "degrade"
	default:
		return fmt.Sprintf("OnParseFailure(%d)", int(p))
	}
}

// IndexOptions tunes a single transcript write.
type IndexOptions struct {
	OnParseFailure OnParseFailure
	// ID of the document; a random one is generated when empty.
	ID string
	// Fields are extra document fields. Derived fields win on conflict.
	Fields map[string]any
}

// TranscriptIndexer indexes one transcript file.
type TranscriptIndexer interface {
	IndexTranscript(ctx context.Context, index, typ, path string, opts IndexOptions) (*Response, error)
}

type TranscriptIndexerFunc func(ctx context.Context, index, typ, path string, opts IndexOptions) (*Response, error)

func (f TranscriptIndexerFunc) IndexTranscript(ctx context.Context, index, typ, path string, opts IndexOptions) (*Response, error) {
	return f(ctx, index, typ, path, opts)
}

// DirectoryOptions tunes IndexDirectoryFiles.
type DirectoryOptions struct {
	OnParseFailure OnParseFailure
	// Indexer replaces the store's own IndexTranscript for every file.
	Indexer TranscriptIndexer
	// Fields are extra fields for every document.
	Fields map[string]any
	// FieldsFunc computes extra fields for a file, layered over Fields.
	FieldsFunc func(path string) map[string]any
	// ConserveFields computes the extra fields once, for the first file,
	// and shares them with the rest of the run.
	ConserveFields bool
}

func (o DirectoryOptions) fields(path string) map[string]any {
	if o.Fields == nil && o.FieldsFunc == nil {
		return nil
	}

	fields := maps.Clone(o.Fields)
	if fields == nil {
		fields = make(map[string]any)
	}
	if o.FieldsFunc != nil {
		maps.Copy(fields, o.FieldsFunc(path))
	}

	return fields
}
