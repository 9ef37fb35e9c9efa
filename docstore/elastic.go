package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/gamma-omg/transcript-indexer/crawler"
	"github.com/gamma-omg/transcript-indexer/readers"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

var _ TranscriptIndexer = (*ElasticStore)(nil)

// ElasticStoreConfig holds the engine connection and index defaults.
type ElasticStoreConfig struct {
	// BaseURL is the engine endpoint, e.g. http://localhost:9200
	BaseURL string
	Timeout time.Duration

	// Replicas and Shards are applied to every index created by SetupIndex.
	Replicas int
	Shards   int

	// RequestsPerSecond throttles requests to the engine; zero disables it.
	RequestsPerSecond float64

	Parser readers.Parser
	Logger *slog.Logger
}

func DefaultConfig(baseURL string) ElasticStoreConfig {
	return ElasticStoreConfig{
		BaseURL:  baseURL,
		Timeout:  30 * time.Second,
		Replicas: 1,
		Shards:   5,
	}
}

// ElasticStore talks to an Elasticsearch style REST API that addresses
// documents as /{index}/{type}/{id}.
type ElasticStore struct {
	transport esapi.Transport
	timeout   time.Duration
	limiter   *rate.Limiter
	replicas  int
	shards    int
	parser    readers.Parser
	log       *slog.Logger
}

func NewElasticStore(cfg ElasticStoreConfig) (*ElasticStore, error) {
	s := &ElasticStore{
		timeout:  cfg.Timeout,
		replicas: cfg.Replicas,
		shards:   cfg.Shards,
		parser:   cfg.Parser,
		log:      cfg.Logger,
	}

	var rt http.RoundTripper = http.DefaultTransport
	if cfg.RequestsPerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
		rt = &limitedTransport{limiter: s.limiter, next: rt}
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:    []string{strings.TrimSuffix(cfg.BaseURL, "/")},
		Transport:    rt,
		DisableRetry: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine client: %w", err)
	}
	// Requests go straight to the transport: the client's product check
	// would reject engines that do not announce themselves as Elasticsearch.
	s.transport = es.Transport

	if s.parser == nil {
		s.parser = readers.DefaultRegistry()
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return s, nil
}

// limitedTransport waits on the limiter before every round trip.
type limitedTransport struct {
	limiter *rate.Limiter
	next    http.RoundTripper
}

func (t *limitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	return t.next.RoundTrip(req)
}

// SetupIndex creates an index with the configured replica and shard counts.
// An existing index is not an error here: the engine's conflict answer is
// returned.
func (s *ElasticStore) SetupIndex(ctx context.Context, name string) (*Response, error) {
	body, err := json.Marshal(map[string]any{
		"settings": map[string]any{
			"number_of_replicas": s.replicas,
			"number_of_shards":   s.shards,
		},
	})
	if err != nil {
		return nil, err
	}

	return s.do(ctx, "create index "+name, esapi.IndicesCreateRequest{
		Index: name,
		Body:  bytes.NewReader(body),
	})
}

// SetupType registers the mapping stored in the JSON file at mappingPath
// under typ. The file is sent unchanged.
func (s *ElasticStore) SetupType(ctx context.Context, index, typ, mappingPath string) (*Response, error) {
	mapping, err := os.ReadFile(mappingPath)
	if err != nil {
		return nil, fmt.Errorf("read mapping %s: %w", mappingPath, err)
	}
	if !json.Valid(mapping) {
		return nil, fmt.Errorf("mapping %s is not valid json", mappingPath)
	}

	return s.perform(ctx, http.MethodPut, s.path(index, typ, "_mapping"), bytes.NewReader(mapping))
}

func (s *ElasticStore) HasIndex(ctx context.Context, name string) (bool, error) {
	resp, err := s.do(ctx, "index exists "+name, esapi.IndicesExistsRequest{Index: []string{name}})
	if err != nil {
		return false, err
	}

	return resp.StatusCode == http.StatusOK, nil
}

// HasType reports false, not an error, when the index itself is missing.
func (s *ElasticStore) HasType(ctx context.Context, index, typ string) (bool, error) {
	resp, err := s.perform(ctx, http.MethodGet, s.path(index, typ, "_mapping"), nil)
	if err != nil {
		return false, err
	}
	if resp.StatusCode != http.StatusOK {
		return false, nil
	}

	var mapping map[string]any
	if err := resp.Decode(&mapping); err != nil {
		return false, nil
	}

	return containsType(mapping, typ), nil
}

// containsType accepts both the {type: ...} and the {index: {mappings: {type: ...}}}
// layouts engines use for mapping responses.
func containsType(mapping map[string]any, typ string) bool {
	if _, ok := mapping[typ]; ok {
		return true
	}

	for _, v := range mapping {
		idx, ok := v.(map[string]any)
		if !ok {
			continue
		}
		types, ok := idx["mappings"].(map[string]any)
		if !ok {
			continue
		}
		if _, ok := types[typ]; ok {
			return true
		}
	}

	return false
}

func (s *ElasticStore) GetIndexSettings(ctx context.Context, name string) (map[string]any, error) {
	resp, err := s.do(ctx, "get settings "+name, esapi.IndicesGetSettingsRequest{Index: []string{name}})
	if err != nil {
		return nil, err
	}

	return decodeMap(resp)
}

func (s *ElasticStore) GetTypeMapping(ctx context.Context, index, typ string) (map[string]any, error) {
	resp, err := s.perform(ctx, http.MethodGet, s.path(index, typ, "_mapping"), nil)
	if err != nil {
		return nil, err
	}

	return decodeMap(resp)
}

func decodeMap(resp *Response) (map[string]any, error) {
	if !resp.OK() {
		return nil, &EngineError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}

	var res map[string]any
	if err := resp.Decode(&res); err != nil {
		return nil, err
	}

	return res, nil
}

// IndexTranscript parses the transcript at path and writes it as a document.
// A parse failure either aborts with a *readers.MalformedInputError or, with
// Degrade, is written with empty searchable text and a uuid taken from the
// file name.
func (s *ElasticStore) IndexTranscript(ctx context.Context, index, typ, path string, opts IndexOptions) (*Response, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript %s: %w", path, err)
	}

	derived, err := s.transcriptFields(path, content, opts.OnParseFailure)
	if err != nil {
		return nil, err
	}

	doc := make(map[string]any, len(opts.Fields)+len(derived))
	maps.Copy(doc, opts.Fields)
	maps.Copy(doc, derived)

	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}

	return s.IndexData(ctx, index, typ, id, doc)
}

func (s *ElasticStore) transcriptFields(path string, content []byte, policy OnParseFailure) (map[string]any, error) {
	text, err := s.parser.Parse(path, content)
	if err == nil {
		return map[string]any{SearchableText: text}, nil
	}
	if policy != Degrade || !errors.Is(err, readers.ErrMalformedInput) {
		return nil, err
	}

	s.log.Warn("indexing transcript without text", "path", path, "error", err)

	return map[string]any{
		SearchableText: "",
		UUID:           FileUUID(path),
	}, nil
}

// IndexData writes doc at id, replacing any previous version.
func (s *ElasticStore) IndexData(ctx context.Context, index, typ, id string, doc any) (*Response, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document %s: %w", id, err)
	}

	return s.do(ctx, "index "+id, esapi.IndexRequest{
		Index:        index,
		DocumentType: typ,
		DocumentID:   id,
		Body:         bytes.NewReader(body),
	})
}

// IndexDirectoryFiles indexes every file under root whose name ends with
// ending, one at a time in crawl order. Files get ids derived from their
// path so a second run bumps versions instead of adding documents.
// On error the responses collected so far are returned with it.
func (s *ElasticStore) IndexDirectoryFiles(ctx context.Context, root, index, typ, ending string, opts DirectoryOptions) ([]*Response, error) {
	c, err := crawler.New(root)
	if err != nil {
		return nil, err
	}

	var indexer TranscriptIndexer = s
	if opts.Indexer != nil {
		indexer = opts.Indexer
	}

	var (
		responses []*Response
		shared    map[string]any
		computed  bool
	)
	for group, err := range c.FilesWithEnding(ending).All() {
		if err != nil {
			return responses, err
		}

		for _, path := range group {
			if err := ctx.Err(); err != nil {
				return responses, err
			}

			fields := shared
			if !computed {
				fields = opts.fields(path)
				if opts.ConserveFields {
					shared, computed = fields, true
				}
			}

			resp, err := indexer.IndexTranscript(ctx, index, typ, path, IndexOptions{
				OnParseFailure: opts.OnParseFailure,
				ID:             DocumentID(c.Root(), path),
				Fields:         fields,
			})
			if err != nil {
				return responses, fmt.Errorf("index %s: %w", path, err)
			}
			if resp == nil {
				return responses, fmt.Errorf("index %s: indexer returned no response", path)
			}

			s.log.Debug("indexed file", "path", path, "status", resp.StatusCode)
			responses = append(responses, resp)
		}
	}

	return responses, nil
}

func (s *ElasticStore) GetData(ctx context.Context, index, typ, id string) (*Response, error) {
	return s.do(ctx, "get "+id, esapi.GetRequest{
		Index:        index,
		DocumentType: typ,
		DocumentID:   id,
	})
}

func (s *ElasticStore) DeleteData(ctx context.Context, index, typ, id string) (*Response, error) {
	return s.do(ctx, "delete "+id, esapi.DeleteRequest{
		Index:        index,
		DocumentType: typ,
		DocumentID:   id,
	})
}

// BulkIndex forwards a newline delimited action/document payload to the
// bulk endpoint without looking at it.
func (s *ElasticStore) BulkIndex(ctx context.Context, payload []byte) (*Response, error) {
	return s.do(ctx, "bulk", esapi.BulkRequest{Body: bytes.NewReader(payload)})
}

// DeleteType drops the mapping of typ with its documents. The client API has
// no call for it, so the request goes to the transport as is.
func (s *ElasticStore) DeleteType(ctx context.Context, index, typ string) (*Response, error) {
	return s.perform(ctx, http.MethodDelete, s.path(index, typ), nil)
}

// DeleteIndex drops the index together with all of its types.
func (s *ElasticStore) DeleteIndex(ctx context.Context, index string) (*Response, error) {
	return s.do(ctx, "delete index "+index, esapi.IndicesDeleteRequest{Index: []string{index}})
}

func (s *ElasticStore) path(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, seg := range segments {
		escaped[i] = url.PathEscape(seg)
	}

	return "/" + strings.Join(escaped, "/")
}

// do runs a client API request. op names the request in logs and errors.
func (s *ElasticStore) do(ctx context.Context, op string, req esapi.Request) (*Response, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := req.Do(ctx, s.transport)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.read(op, res.StatusCode, res.Header, res.Body)
}

// perform sends a request the client API does not model: the typed
// /{index}/{type}/_mapping endpoints and type deletion.
func (s *ElasticStore) perform(ctx context.Context, method, path string, body io.Reader) (*Response, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	op := method + " " + path
	req, err := http.NewRequestWithContext(ctx, method, path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := s.transport.Perform(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.read(op, res.StatusCode, res.Header, res.Body)
}

func (s *ElasticStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.timeout)
}

func (s *ElasticStore) read(op string, status int, header http.Header, body io.ReadCloser) (*Response, error) {
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", op, err)
	}

	s.log.Debug("engine request", "op", op, "status", status)

	return &Response{
		StatusCode: status,
		Header:     header,
		Body:       raw,
	}, nil
}

// FileUUID is the file name up to its first dot: "malformed.srt.sjson"
// becomes "malformed".
func FileUUID(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i > 0 {
		return base[:i]
	}

	return base
}
