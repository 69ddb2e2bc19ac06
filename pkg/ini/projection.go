package ini

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/morrowind-modding/numidium/internal/cp1252"
)

// Projection exposes the values of "<KeyPrefix><N>=<value>" lines in one
// section as an ordered list.
type Projection struct {
	Section   string
	KeyPrefix string
	pattern   *regexp.Regexp
}

// NewProjection returns a projection over section for keys starting with
// keyPrefix. The prefix is matched literally, spaces included.
func NewProjection(section, keyPrefix string) *Projection {
	return &Projection{
		Section:   section,
		KeyPrefix: keyPrefix,
		pattern:   regexp.MustCompile(`^` + regexp.QuoteMeta(keyPrefix) + `\d+=([^;]+)`),
	}
}

var (
	// Archives projects "Archive N=" entries of the [Archives] section.
	Archives = NewProjection(ArchivesSection, ArchiveKeyPrefix)

	// GameFiles projects "GameFileN=" entries of the [Game Files] section.
	GameFiles = NewProjection(GameFilesSection, GameFileKeyPrefix)
)

// LineError locates a value that could not be decoded or encoded.
type LineError struct {
	Section string
	Line    int // 1-based within the section; 0 when regenerating
	Err     error
}

func (e *LineError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("ini: section %q: %v", e.Section, e.Err)
	}
	return fmt.Sprintf("ini: section %q line %d: %v", e.Section, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Extract returns the projected values in line order. The numeric part of
// each key is ignored. A missing section yields an empty list. Any value that
// fails to decode aborts extraction; no partial list is returned.
func (p *Projection) Extract(d *Document) ([]string, error) {
	values := []string{}
	s, ok := d.Section(p.Section)
	if !ok {
		return values, nil
	}
	for i, line := range s.Lines {
		m := p.pattern.FindSubmatch(line)
		if m == nil {
			continue
		}
		v, err := Line(m[1]).Decode()
		if err != nil {
			return nil, &LineError{Section: p.Section, Line: i + 1, Err: err}
		}
		values = append(values, v)
	}
	return values, nil
}

// Regenerate replaces the section's lines with one numbered key per value.
// Keys are renumbered from zero. A value that matches (case-insensitively) a
// value in the current lines keeps that line's inline comment. Nothing is
// created when the section is absent and values is empty. On error the
// document is unchanged.
func (p *Projection) Regenerate(d *Document, values []string) error {
	lines, err := p.Render(d, values)
	if err != nil {
		return err
	}
	p.Assign(d, lines)
	return nil
}

// Render builds the lines Regenerate would write for values without
// touching d.
func (p *Projection) Render(d *Document, values []string) ([]Line, error) {
	var index *CommentIndex
	if s, ok := d.Section(p.Section); ok {
		var err error
		if index, err = BuildCommentIndex(s.Lines); err != nil {
			return nil, &LineError{Section: p.Section, Err: err}
		}
	}

	lines := make([]Line, 0, len(values))
	for i, v := range values {
		content, err := index.Render(v)
		if err != nil {
			return nil, &LineError{Section: p.Section, Err: err}
		}
		line := make(Line, 0, len(p.KeyPrefix)+4+len(content))
		line = append(line, p.KeyPrefix...)
		line = strconv.AppendInt(line, int64(i), 10)
		line = append(line, Assignment)
		line = append(line, content...)
		lines = append(lines, line)
	}
	return lines, nil
}

// Assign stores lines as the section's content. An absent section is
// created only when there is something to store.
func (p *Projection) Assign(d *Document, lines []Line) {
	s, ok := d.Section(p.Section)
	if !ok {
		if len(lines) == 0 {
			return
		}
		s = d.EnsureSection(p.Section)
	}
	s.Lines = lines
}

// Codec errors, re-exported for callers outside this module.
var (
	ErrUndefinedByte = cp1252.ErrUndefinedByte
	ErrUnencodable   = cp1252.ErrUnencodable
)
