package readers

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"
)

const SRTExt = ".srt"

var srtTiming = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}[,.]\d{1,3}\s+-->\s+\d{1,2}:\d{2}:\d{2}[,.]\d{1,3}`)

// SRTReader parses SubRip subtitle files.
type SRTReader struct{}

func (r *SRTReader) CanRead(path string) bool {
	return strings.HasSuffix(path, SRTExt)
}

func (r *SRTReader) Parse(path string, content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", malformed(path, "content is not valid utf-8", nil)
	}

	content = bytes.TrimPrefix(content, []byte("\ufeff"))
	scanner := bufio.NewScanner(bytes.NewReader(content))

	var (
		segments []string
		block    []string
	)

	flush := func() error {
		defer func() { block = block[:0] }()
		if len(block) == 0 {
			return nil
		}

		// counter line is optional in the wild
		timing := 0
		if !srtTiming.MatchString(block[0]) {
			timing = 1
		}
		if timing >= len(block) || !srtTiming.MatchString(block[timing]) {
			return malformed(path, "subtitle block without timing line", nil)
		}

		text := strings.Join(block[timing+1:], " ")
		if text != "" {
			segments = append(segments, text)
		}

		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if err := flush(); err != nil {
				return "", err
			}
			continue
		}

		block = append(block, line)
	}
	if err := scanner.Err(); err != nil {
		return "", malformed(path, "scanning subtitles", err)
	}
	if err := flush(); err != nil {
		return "", err
	}

	if len(segments) == 0 {
		return "", malformed(path, "no subtitle segments", nil)
	}

	return strings.Join(segments, " "), nil
}
