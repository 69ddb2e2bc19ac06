package ini

import (
	"bytes"
	"strings"

	"github.com/morrowind-modding/numidium/internal/cp1252"
)

// commentedValue is the text after '=' of a line carrying an inline comment,
// split around the bare value.
type commentedValue struct {
	full []byte // everything after '=' on the trimmed line
	lead []byte // ASCII whitespace before the bare value
	bare string // decoded, trimmed value
	tail []byte // whitespace and comment after the bare value
}

// CommentIndex maps lowercased values to the commented text they were
// last written with. It is built from a section's lines just before they
// are replaced and is not meant to outlive that call.
type CommentIndex struct {
	entries map[string]commentedValue
}

// BuildCommentIndex indexes every line that has both '=' and a later ';'.
// Later lines win when two share a value.
func BuildCommentIndex(lines []Line) (*CommentIndex, error) {
	idx := &CommentIndex{entries: make(map[string]commentedValue)}
	for _, line := range lines {
		trimmed := trimSpace(line)
		eq := bytes.IndexByte(trimmed, Assignment)
		if eq < 0 {
			continue
		}
		rest := trimmed[eq+1:]
		semi := bytes.IndexByte(rest, CommentMarker)
		if semi < 0 {
			continue
		}
		raw := rest[:semi]
		value := trimSpace(raw)
		lead := raw[:len(raw)-len(bytes.TrimLeft(raw, Whitespace))]
		bare, err := cp1252.Decode(value)
		if err != nil {
			return nil, err
		}
		idx.entries[strings.ToLower(bare)] = commentedValue{
			full: rest,
			lead: lead,
			bare: bare,
			tail: rest[len(lead)+len(value):],
		}
	}
	return idx, nil
}

// Render returns the bytes to write after '=' for v. An indexed value that
// is unchanged comes back exactly as it was stored. A value differing only
// in case keeps its new spelling and the stored comment. Anything else is
// encoded as is. A nil index renders every value without a comment.
func (c *CommentIndex) Render(v string) ([]byte, error) {
	if c != nil {
		trimmed := strings.Trim(v, Whitespace)
		if e, ok := c.entries[strings.ToLower(trimmed)]; ok {
			if trimmed == e.bare {
				return append([]byte(nil), e.full...), nil
			}
			enc, err := cp1252.Encode(trimmed)
			if err != nil {
				return nil, err
			}
			out := make([]byte, 0, len(e.lead)+len(enc)+len(e.tail))
			out = append(out, e.lead...)
			out = append(out, enc...)
			return append(out, e.tail...), nil
		}
	}
	return cp1252.Encode(v)
}
