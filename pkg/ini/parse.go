package ini

import (
	"bytes"
	"io"
	"os"
	"regexp"
)

// headerPattern matches a bracketed header. The name may not contain ';'
// and extends to the last ']' the line offers, so "[A]b]" names "A]b" and
// "[A;B]" is not a header at all.
var headerPattern = regexp.MustCompile(`^\[([^;]+)\]`)

// Parse splits data into sections. Lines may end in CRLF, LF or a lone CR.
// The document keeps its own copy of data.
func Parse(data []byte) *Document {
	return parse(bytes.Clone(data))
}

// parse splits data without copying it; lines alias data.
func parse(data []byte) *Document {
	doc := New()
	header := Preamble

	for _, line := range splitLines(data) {
		if m := headerPattern.FindSubmatch(line); m != nil {
			header = string(m[1])
			continue
		}
		doc.EnsureSection(header).Append(line)
	}

	for _, s := range doc.sections {
		s.trimTrailing()
	}
	return doc
}

// Load reads all of r and parses it. Read errors are returned unchanged.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(data), nil
}

// LoadPath reads and parses the file at path.
func LoadPath(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data), nil
}

// splitLines breaks data at "\r\n", "\n" or "\r". A terminator at the very
// end does not produce an extra empty line.
func splitLines(data []byte) []Line {
	var lines []Line
	start := 0
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			lines = append(lines, Line(data[start:i:i]))
			start = i + 1
		case '\r':
			lines = append(lines, Line(data[start:i:i]))
			if i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, Line(data[start:len(data):len(data)]))
	}
	return lines
}
