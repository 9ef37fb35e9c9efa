package readers

import (
	"bytes"
	"path/filepath"

	"code.sajari.com/docconv/v2"
)

// UniversalFileReader extracts text from course handouts that sit next to
// the transcripts.
type UniversalFileReader struct {
}

func (r *UniversalFileReader) CanRead(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".docx" || ext == ".odt" || ext == ".pdf" || ext == ".xml"
}

func (r *UniversalFileReader) Parse(path string, content []byte) (string, error) {
	res, err := docconv.Convert(bytes.NewReader(content), docconv.MimeTypeByExtension(path), true)
	if err != nil {
		return "", malformed(path, "converting document", err)
	}

	return res.Body, nil
}
