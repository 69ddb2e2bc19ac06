// Package tes3 holds the game-specific views over Morrowind data files.
//
// MorrowindIni loads Morrowind.ini and exposes its archive and game file
// load orders as plain string slices. Callers edit the slices directly and
// call Save; every other line of the file is written back unchanged.
package tes3

import (
	"errors"
	"io"
	"strings"

	"github.com/morrowind-modding/numidium/pkg/ini"
)

// ErrNotLoaded is returned by Save when no document has been loaded.
var ErrNotLoaded = errors.New("tes3: ini not loaded")

// MorrowindIni is an editable Morrowind.ini.
//
// Archives and GameFiles may be modified freely between Load and Save. They
// have no effect on the underlying document until Save is called. A
// MorrowindIni is not safe for concurrent use.
type MorrowindIni struct {
	// Archives lists the active .bsa archives in load order.
	Archives []string

	// GameFiles lists the active .esm and .esp files in load order.
	GameFiles []string

	doc *ini.Document
}

// NewMorrowindIni returns an ini backed by an empty document.
func NewMorrowindIni() *MorrowindIni {
	return &MorrowindIni{
		Archives:  []string{},
		GameFiles: []string{},
		doc:       ini.New(),
	}
}

// Load replaces the current contents with the ini read from r. On failure
// the previous document and lists are discarded.
func (m *MorrowindIni) Load(r io.Reader) error {
	m.reset()
	doc, err := ini.Load(r)
	if err != nil {
		return err
	}
	return m.project(doc)
}

// LoadPath loads the ini stored at path.
func (m *MorrowindIni) LoadPath(path string) error {
	m.reset()
	doc, err := ini.LoadPath(path)
	if err != nil {
		return err
	}
	return m.project(doc)
}

// Parse loads the ini held in data.
func (m *MorrowindIni) Parse(data []byte) error {
	m.reset()
	return m.project(ini.Parse(data))
}

// Save writes the lists back into their sections and serializes the whole
// document to w. The ini stays loaded and editable afterwards.
func (m *MorrowindIni) Save(w io.Writer) error {
	if err := m.Sync(); err != nil {
		return err
	}
	return ini.Save(m.doc, w)
}

// SavePath writes the ini to path, replacing any existing file. Backups
// are the caller's responsibility.
func (m *MorrowindIni) SavePath(path string) error {
	if err := m.Sync(); err != nil {
		return err
	}
	return ini.SavePath(path, m.doc)
}

// Bytes returns the serialized ini.
func (m *MorrowindIni) Bytes() ([]byte, error) {
	if err := m.Sync(); err != nil {
		return nil, err
	}
	return ini.Serialize(m.doc), nil
}

// Sync regenerates the [Archives] and [Game Files] sections from the lists
// without serializing. Both sections are rendered before either is
// replaced, so a value that cannot be encoded leaves the document as it was.
func (m *MorrowindIni) Sync() error {
	if m.doc == nil {
		return ErrNotLoaded
	}
	archives, err := ini.Archives.Render(m.doc, m.Archives)
	if err != nil {
		return err
	}
	files, err := ini.GameFiles.Render(m.doc, m.GameFiles)
	if err != nil {
		return err
	}
	ini.Archives.Assign(m.doc, archives)
	ini.GameFiles.Assign(m.doc, files)
	return nil
}

// Document returns the underlying document, or nil if nothing is loaded.
// Changes made to the projected sections through it are overwritten by the
// next Save.
func (m *MorrowindIni) Document() *ini.Document {
	return m.doc
}

func (m *MorrowindIni) reset() {
	m.doc = nil
	m.Archives = nil
	m.GameFiles = nil
}

func (m *MorrowindIni) project(doc *ini.Document) error {
	archives, err := ini.Archives.Extract(doc)
	if err != nil {
		return err
	}
	files, err := ini.GameFiles.Extract(doc)
	if err != nil {
		return err
	}
	m.doc = doc
	m.Archives = archives
	m.GameFiles = files
	return nil
}

// HasArchive reports whether name is an active archive, ignoring case.
func (m *MorrowindIni) HasArchive(name string) bool {
	return indexFold(m.Archives, name) >= 0
}

// HasGameFile reports whether name is an active game file, ignoring case.
func (m *MorrowindIni) HasGameFile(name string) bool {
	return indexFold(m.GameFiles, name) >= 0
}

// RemoveArchive removes every archive equal to name, ignoring case, and
// reports whether anything was removed.
func (m *MorrowindIni) RemoveArchive(name string) bool {
	var removed bool
	m.Archives, removed = removeFold(m.Archives, name)
	return removed
}

// RemoveGameFile removes every game file equal to name, ignoring case.
func (m *MorrowindIni) RemoveGameFile(name string) bool {
	var removed bool
	m.GameFiles, removed = removeFold(m.GameFiles, name)
	return removed
}

// MoveArchive moves the first archive matching name to position to.
func (m *MorrowindIni) MoveArchive(name string, to int) error {
	return moveFold(m.Archives, name, to)
}

// MoveGameFile moves the first game file matching name to position to.
func (m *MorrowindIni) MoveGameFile(name string, to int) error {
	return moveFold(m.GameFiles, name, to)
}

func indexFold(list []string, name string) int {
	for i, v := range list {
		if strings.EqualFold(v, name) {
			return i
		}
	}
	return -1
}

func removeFold(list []string, name string) ([]string, bool) {
	out := list[:0]
	removed := false
	for _, v := range list {
		if strings.EqualFold(v, name) {
			removed = true
			continue
		}
		out = append(out, v)
	}
	return out, removed
}
