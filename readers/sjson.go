package readers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

const SJSONExt = ".sjson"

// SJSONReader decodes edX "subtitle JSON" transcripts: three parallel arrays
// holding segment start and end offsets (ms) and the spoken text.
type SJSONReader struct{}

type sjsonTranscript struct {
	Start *[]int64  `json:"start"`
	End   *[]int64  `json:"end"`
	Text  *[]string `json:"text"`
}

func (r *SJSONReader) CanRead(path string) bool {
	return strings.HasSuffix(path, SJSONExt)
}

func (r *SJSONReader) Parse(path string, content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", malformed(path, "content is not valid utf-8", nil)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	var t sjsonTranscript
	if err := dec.Decode(&t); err != nil {
		return "", malformed(path, "decoding sjson", err)
	}
	if dec.More() {
		return "", malformed(path, "trailing data after transcript object", nil)
	}

	if t.Text == nil {
		return "", malformed(path, `missing "text" segments`, nil)
	}

	n := len(*t.Text)
	if t.Start != nil && len(*t.Start) != n {
		return "", malformed(path, fmt.Sprintf("%d start offsets for %d segments", len(*t.Start), n), nil)
	}
	if t.End != nil && len(*t.End) != n {
		return "", malformed(path, fmt.Sprintf("%d end offsets for %d segments", len(*t.End), n), nil)
	}

	return strings.Join(*t.Text, " "), nil
}
