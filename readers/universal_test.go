package readers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_UniversalFileReader_CanRead(t *testing.T) {
	r := UniversalFileReader{}
	assert.True(t, r.CanRead("some/file.docx"))
	assert.True(t, r.CanRead("some/file.odt"))
	assert.True(t, r.CanRead("some/file.pdf"))
	assert.True(t, r.CanRead("some/file.xml"))
	assert.False(t, r.CanRead("some/file.srt.sjson"))
}

func Test_UniversalFileReader_Malformed(t *testing.T) {
	r := UniversalFileReader{}

	_, err := r.Parse("broken.docx", []byte("definitely not a zip archive"))
	assert.ErrorIs(t, err, ErrMalformedInput)
}
