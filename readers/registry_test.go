package readers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Registry_PicksParserBySuffix(t *testing.T) {
	r := DefaultRegistry()

	txt, err := r.Parse("a.srt.sjson", []byte(`{"text":["from sjson"]}`))
	require.NoError(t, err)
	assert.Equal(t, "from sjson", txt)

	txt, err = r.Parse("a.srt", []byte("1\n00:00:01,000 --> 00:00:02,000\nfrom srt\n"))
	require.NoError(t, err)
	assert.Equal(t, "from srt", txt)
}

func Test_Registry_UnknownType(t *testing.T) {
	r := DefaultRegistry()
	assert.False(t, r.CanRead("notes.bin"))

	_, err := r.Parse("notes.bin", []byte("whatever"))
	assert.ErrorIs(t, err, ErrMalformedInput)
}
