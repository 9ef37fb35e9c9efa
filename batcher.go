package main

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultBatcher splits a bulk payload into requests of at most batchSize
// actions. An action is its metadata line plus the document line, except
// for deletes which have no document.
type DefaultBatcher struct {
	batchSize int
}

func (b *DefaultBatcher) Batch(payload []byte) ([][]byte, error) {
	var lines [][]byte
	for _, line := range bytes.Split(payload, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			lines = append(lines, line)
		}
	}

	var actions [][][]byte
	for i := 0; i < len(lines); {
		var meta map[string]json.RawMessage
		if err := json.Unmarshal(lines[i], &meta); err != nil || len(meta) != 1 {
			return nil, fmt.Errorf("line %d is not a bulk action", i+1)
		}

		n := 2
		if _, ok := meta["delete"]; ok {
			n = 1
		}
		if i+n > len(lines) {
			return nil, fmt.Errorf("action on line %d has no document", i+1)
		}

		actions = append(actions, lines[i:i+n])
		i += n
	}

	l := len(actions)
	if l == 0 {
		return [][]byte{}, nil
	}

	pos := 0
	res := make([][]byte, 0, l/b.batchSize+1)

	for {
		end := min(pos+b.batchSize, l)

		var buf bytes.Buffer
		for _, action := range actions[pos:end] {
			for _, line := range action {
				buf.Write(line)
				buf.WriteByte('\n')
			}
		}
		res = append(res, buf.Bytes())

		if end >= l {
			break
		}

		pos = end
	}

	return res, nil
}
