package ini

import (
	"bytes"
	"io"
	"os"
)

// Serialize renders the document in canonical form: sections without
// content are omitted, every line ends in CRLF, and one blank line separates
// consecutive sections with no blank line after the last.
func Serialize(d *Document) []byte {
	var buf bytes.Buffer
	d.writeTo(&buf)
	return buf.Bytes()
}

// WriteTo writes the serialized document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	d.writeTo(&buf)
	return buf.WriteTo(w)
}

// Save writes the serialized document to w. Write errors are returned
// unchanged.
func Save(d *Document, w io.Writer) error {
	_, err := d.WriteTo(w)
	return err
}

// SavePath writes the serialized document to path, replacing any existing
// file. It makes no attempt at crash atomicity.
func SavePath(path string, d *Document) error {
	return os.WriteFile(path, Serialize(d), 0o644)
}

func (d *Document) writeTo(buf *bytes.Buffer) {
	tail := d.tail()
	for _, s := range d.Sections() {
		if !s.HasContent() {
			continue
		}
		if s.Name != Preamble {
			buf.WriteString(HeaderOpen)
			buf.WriteString(s.Name)
			buf.WriteString(HeaderClose)
			buf.WriteString(CRLF)
		}
		for _, line := range s.Lines {
			buf.Write(line)
			buf.WriteString(CRLF)
		}
		if s != tail {
			buf.WriteString(CRLF)
		}
	}
}

// tail returns the last section that will be written, or nil.
func (d *Document) tail() *Section {
	for i := len(d.order) - 1; i >= 0; i-- {
		if s := d.sections[d.order[i]]; s.HasContent() {
			return s
		}
	}
	return nil
}
