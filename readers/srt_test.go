package readers

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SRTReader_CanRead(t *testing.T) {
	r := SRTReader{}
	assert.True(t, r.CanRead("some/file.srt"))
	assert.False(t, r.CanRead("some/file.srt.sjson"))
}

func Test_SRTReader_Parse(t *testing.T) {
	r := SRTReader{}
	content, err := os.ReadFile("testdata/lecture.srt")
	require.NoError(t, err)

	txt, err := r.Parse("testdata/lecture.srt", content)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to the course. Today we talk about search engines.", txt)
}

func Test_SRTReader_WithoutCounterAndWithBOM(t *testing.T) {
	r := SRTReader{}
	content := []byte("\ufeff00:00:01.000 --> 00:00:02.000\nHello\r\n")

	txt, err := r.Parse("a.srt", content)
	require.NoError(t, err)
	assert.Equal(t, "Hello", txt)
}

func Test_SRTReader_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"no timing":      "1\nHello there\n",
		"garbage timing": "1\n00:00 -> 00:01\nHello\n",
	}

	r := SRTReader{}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := r.Parse("bad.srt", []byte(content))
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}
