package docstore

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeEngine is an in-memory stand-in for the search engine REST API.
type fakeEngine struct {
	mu       sync.Mutex
	indices  map[string]*fakeIndex
	bulks    [][]byte
	requests []string
}

type fakeIndex struct {
	settings map[string]any
	types    map[string]json.RawMessage
	docs     map[string]map[string]*fakeDoc
}

type fakeDoc struct {
	version int64
	source  json.RawMessage
}

func newFakeEngine(t *testing.T) (*fakeEngine, *httptest.Server) {
	t.Helper()

	e := &fakeEngine{indices: make(map[string]*fakeIndex)}
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return e, srv
}

func (e *fakeEngine) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.requests = append(e.requests, r.Method+" "+r.URL.Path)
	body, _ := io.ReadAll(r.Body)
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(parts) == 1 && parts[0] == "_bulk" && r.Method == http.MethodPost:
		e.bulk(w, body)
	case len(parts) == 1:
		e.index(w, r.Method, parts[0], body)
	case len(parts) == 2 && parts[1] == "_settings" && r.Method == http.MethodGet:
		e.settings(w, parts[0])
	case len(parts) == 2 && r.Method == http.MethodDelete:
		e.deleteType(w, parts[0], parts[1])
	case len(parts) == 3 && parts[2] == "_mapping":
		e.mapping(w, r.Method, parts[0], parts[1], body)
	case len(parts) == 3:
		e.document(w, r.Method, parts[0], parts[1], parts[2], body)
	default:
		reply(w, http.StatusBadRequest, map[string]any{"error": "unsupported request"})
	}
}

func (e *fakeEngine) index(w http.ResponseWriter, method, name string, body []byte) {
	_, exists := e.indices[name]

	switch method {
	case http.MethodHead:
		if exists {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	case http.MethodPut:
		if exists {
			reply(w, http.StatusBadRequest, map[string]any{"error": "IndexAlreadyExistsException[[" + name + "] Already exists]", "status": 400})
			return
		}
		var req struct {
			Settings map[string]any `json:"settings"`
		}
		_ = json.Unmarshal(body, &req)
		settings := make(map[string]any)
		for k, v := range req.Settings {
			settings["index."+k] = toString(v)
		}
		e.indices[name] = &fakeIndex{
			settings: settings,
			types:    make(map[string]json.RawMessage),
			docs:     make(map[string]map[string]*fakeDoc),
		}
		reply(w, http.StatusOK, map[string]any{"ok": true, "acknowledged": true})
	case http.MethodDelete:
		if !exists {
			reply(w, http.StatusNotFound, map[string]any{"error": "IndexMissingException[[" + name + "] missing]", "status": 404})
			return
		}
		delete(e.indices, name)
		reply(w, http.StatusOK, map[string]any{"ok": true, "acknowledged": true})
	default:
		reply(w, http.StatusMethodNotAllowed, nil)
	}
}

func (e *fakeEngine) settings(w http.ResponseWriter, name string) {
	idx, ok := e.indices[name]
	if !ok {
		reply(w, http.StatusNotFound, map[string]any{"error": "IndexMissingException[[" + name + "] missing]", "status": 404})
		return
	}

	reply(w, http.StatusOK, map[string]any{name: map[string]any{"settings": idx.settings}})
}

func (e *fakeEngine) mapping(w http.ResponseWriter, method, index, typ string, body []byte) {
	idx, ok := e.indices[index]
	if !ok {
		reply(w, http.StatusNotFound, map[string]any{"error": "IndexMissingException[[" + index + "] missing]", "status": 404})
		return
	}

	switch method {
	case http.MethodPut:
		if !json.Valid(body) {
			reply(w, http.StatusBadRequest, map[string]any{"error": "MapperParsingException"})
			return
		}
		idx.types[typ] = append(json.RawMessage(nil), body...)
		idx.docs[typ] = make(map[string]*fakeDoc)
		reply(w, http.StatusOK, map[string]any{"ok": true, "acknowledged": true})
	case http.MethodGet:
		mapping, ok := idx.types[typ]
		if !ok {
			reply(w, http.StatusNotFound, map[string]any{})
			return
		}
		// the stored file already carries the {type: ...} wrapper
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(mapping)
	default:
		reply(w, http.StatusMethodNotAllowed, nil)
	}
}

func (e *fakeEngine) deleteType(w http.ResponseWriter, index, typ string) {
	idx, ok := e.indices[index]
	if !ok {
		reply(w, http.StatusNotFound, map[string]any{"error": "IndexMissingException[[" + index + "] missing]", "status": 404})
		return
	}
	if _, ok := idx.types[typ]; !ok {
		reply(w, http.StatusNotFound, map[string]any{"error": "TypeMissingException[[" + index + "] type[" + typ + "] missing]", "status": 404})
		return
	}

	delete(idx.types, typ)
	delete(idx.docs, typ)
	reply(w, http.StatusOK, map[string]any{"ok": true})
}

func (e *fakeEngine) document(w http.ResponseWriter, method, index, typ, id string, body []byte) {
	idx, ok := e.indices[index]
	if !ok {
		reply(w, http.StatusNotFound, map[string]any{"error": "IndexMissingException[[" + index + "] missing]", "status": 404})
		return
	}
	docs, ok := idx.docs[typ]
	if !ok {
		reply(w, http.StatusNotFound, map[string]any{"error": "TypeMissingException[[" + index + "] type[" + typ + "] missing]", "status": 404})
		return
	}

	doc, exists := docs[id]
	switch method {
	case http.MethodPut, http.MethodPost:
		if !json.Valid(body) {
			reply(w, http.StatusBadRequest, map[string]any{"error": "MapperParsingException"})
			return
		}
		status := http.StatusOK
		if !exists {
			doc = &fakeDoc{}
			docs[id] = doc
			status = http.StatusCreated
		}
		doc.version++
		doc.source = append(json.RawMessage(nil), body...)
		reply(w, status, map[string]any{"ok": true, "_index": index, "_type": typ, "_id": id, "_version": doc.version})
	case http.MethodGet:
		if !exists {
			reply(w, http.StatusNotFound, map[string]any{"_index": index, "_type": typ, "_id": id, "exists": false})
			return
		}
		reply(w, http.StatusOK, map[string]any{
			"_index": index, "_type": typ, "_id": id, "_version": doc.version,
			"exists": true, "_source": doc.source,
		})
	case http.MethodDelete:
		if !exists {
			reply(w, http.StatusNotFound, map[string]any{"ok": true, "found": false, "_index": index, "_type": typ, "_id": id})
			return
		}
		delete(docs, id)
		reply(w, http.StatusOK, map[string]any{"ok": true, "found": true, "_index": index, "_type": typ, "_id": id, "_version": doc.version + 1})
	default:
		reply(w, http.StatusMethodNotAllowed, nil)
	}
}

func (e *fakeEngine) bulk(w http.ResponseWriter, body []byte) {
	e.bulks = append(e.bulks, append([]byte(nil), body...))

	var items []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		var action map[string]map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &action); err != nil {
			reply(w, http.StatusBadRequest, map[string]any{"error": "failed to parse action"})
			return
		}
		for op, meta := range action {
			if op != "delete" && !scanner.Scan() {
				reply(w, http.StatusBadRequest, map[string]any{"error": "missing document line"})
				return
			}
			items = append(items, map[string]any{op: map[string]any{"_index": meta["_index"], "_type": meta["_type"], "_id": meta["_id"], "ok": true}})
		}
	}

	reply(w, http.StatusOK, map[string]any{"took": 1, "items": items})
}

func (e *fakeEngine) docCount(index, typ string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx, ok := e.indices[index]
	if !ok {
		return 0
	}

	return len(idx.docs[typ])
}

func reply(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func toString(v any) string {
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	default:
		raw, _ := json.Marshal(val)
		return string(raw)
	}
}
