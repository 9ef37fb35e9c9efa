package docstore

import (
	"path/filepath"

	"github.com/google/uuid"
)

var documentNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("transcript-indexer/documents"))

// DocumentID derives a stable document id from the position of path below
// root, so the same file always lands on the same document.
func DocumentID(root, path string) string {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	return uuid.NewSHA1(documentNamespace, []byte(filepath.ToSlash(rel))).String()
}
