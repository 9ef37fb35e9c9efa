package readers

// Parser turns the content of one file into plain searchable text.
// Failures are always reported as *MalformedInputError.
type Parser interface {
	CanRead(path string) bool
	Parse(path string, content []byte) (string, error)
}

// Registry picks the first registered parser that accepts a path.
type Registry []Parser

// DefaultRegistry handles SJSON and SubRip transcripts plus office handouts.
func DefaultRegistry() Registry {
	return Registry{&SJSONReader{}, &SRTReader{}, &UniversalFileReader{}}
}

func (r Registry) CanRead(path string) bool {
	return r.find(path) != nil
}

func (r Registry) Parse(path string, content []byte) (string, error) {
	p := r.find(path)
	if p == nil {
		return "", malformed(path, "no parser for file type", nil)
	}

	return p.Parse(path, content)
}

func (r Registry) find(path string) Parser {
	for _, p := range r {
		if p.CanRead(path) {
			return p
		}
	}

	return nil
}
