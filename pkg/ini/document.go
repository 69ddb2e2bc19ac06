package ini

import (
	"bytes"

	"github.com/morrowind-modding/numidium/internal/cp1252"
)

// Line is one raw line of a document, without its terminator.
type Line []byte

// Decode returns the line as text, failing on bytes Windows-1252 leaves
// undefined.
func (l Line) Decode() (string, error) {
	return cp1252.Decode(l)
}

// IsBlank reports whether the line is empty or holds only ASCII whitespace.
// Bytes above 0x7F are never whitespace, whatever they would mean as UTF-8.
func (l Line) IsBlank() bool {
	return len(trimSpace(l)) == 0
}

// trimSpace strips ASCII whitespace from both ends of b.
func trimSpace(b []byte) []byte {
	return bytes.Trim(b, Whitespace)
}

// EncodeLine builds a Line from text.
func EncodeLine(text string) (Line, error) {
	b, err := cp1252.Encode(text)
	if err != nil {
		return nil, err
	}
	return Line(b), nil
}

// Section is the run of lines under one header.
type Section struct {
	Name  string
	Lines []Line
}

// Append adds a line to the end of the section.
func (s *Section) Append(line Line) {
	s.Lines = append(s.Lines, line)
}

// HasContent reports whether at least one line is non-empty. Sections
// without content are skipped on save, header included.
func (s *Section) HasContent() bool {
	for _, line := range s.Lines {
		if len(line) > 0 {
			return true
		}
	}
	return false
}

// trimTrailing drops blank lines from the end so later appends stay contiguous.
func (s *Section) trimTrailing() {
	n := len(s.Lines)
	for n > 0 && s.Lines[n-1].IsBlank() {
		n--
	}
	if n == 0 {
		s.Lines = []Line{}
		return
	}
	s.Lines = s.Lines[:n]
}

// Document is an ordered collection of sections keyed by header name.
// The zero value is not usable; call New or Parse.
type Document struct {
	order    []string
	sections map[string]*Section
}

// New returns an empty document.
func New() *Document {
	return &Document{sections: make(map[string]*Section)}
}

// Section returns the named section without creating it.
func (d *Document) Section(name string) (*Section, bool) {
	s, ok := d.sections[name]
	return s, ok
}

// EnsureSection returns the named section, appending an empty one to the
// end of the document if it does not exist yet.
func (d *Document) EnsureSection(name string) *Section {
	if s, ok := d.sections[name]; ok {
		return s
	}
	s := &Section{Name: name, Lines: []Line{}}
	d.sections[name] = s
	d.order = append(d.order, name)
	return s
}

// Remove deletes the named section. It reports whether the section existed.
func (d *Document) Remove(name string) bool {
	if _, ok := d.sections[name]; !ok {
		return false
	}
	delete(d.sections, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

// Names returns the section names in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.order))
	copy(names, d.order)
	return names
}

// Sections returns the sections in document order.
func (d *Document) Sections() []*Section {
	out := make([]*Section, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.sections[name])
	}
	return out
}

// Len returns the number of sections, including empty ones.
func (d *Document) Len() int {
	return len(d.order)
}
