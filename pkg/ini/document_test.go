package ini

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morrowind-modding/numidium/internal/testutil"
)

func lines(ss ...string) []Line {
	out := make([]Line, 0, len(ss))
	for _, s := range ss {
		out = append(out, Line(s))
	}
	return out
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		names []string
		want  map[string][]Line
	}{
		{
			name:  "preamble and sections",
			input: "; top\r\n\r\n[A]\r\nx=1\r\n\r\n[B]\r\ny=2\r\n",
			names: []string{"", "A", "B"},
			want: map[string][]Line{
				"":  lines("; top"),
				"A": lines("x=1"),
				"B": lines("y=2"),
			},
		},
		{
			name:  "no preamble",
			input: "[A]\r\nx=1\r\n",
			names: []string{"A"},
			want:  map[string][]Line{"A": lines("x=1")},
		},
		{
			name:  "trailing blank lines trimmed",
			input: "[A]\r\nx=1\r\n\r\n  \r\n\t\r\n[B]\r\ny\r\n\r\n",
			names: []string{"A", "B"},
			want: map[string][]Line{
				"A": lines("x=1"),
				"B": lines("y"),
			},
		},
		{
			name:  "interior blank lines kept",
			input: "[A]\r\nx=1\r\n\r\ny=2\r\n",
			names: []string{"A"},
			want:  map[string][]Line{"A": lines("x=1", "", "y=2")},
		},
		{
			name:  "repeated header appends",
			input: "[A]\r\n1\r\n[B]\r\n2\r\n[A]\r\n3\r\n",
			names: []string{"A", "B"},
			want: map[string][]Line{
				"A": lines("1", "3"),
				"B": lines("2"),
			},
		},
		{
			name:  "whitespace only section keeps empty list",
			input: "[A]\r\n   \r\n\r\n[B]\r\nx\r\n",
			names: []string{"A", "B"},
			want: map[string][]Line{
				"A": {},
				"B": lines("x"),
			},
		},
		{
			name:  "mixed line endings",
			input: "[A]\na\rb\r\nc",
			names: []string{"A"},
			want:  map[string][]Line{"A": lines("a", "b", "c")},
		},
		{
			name:  "header text after bracket ignored",
			input: "[Game Files] ; load order\r\nGameFile0=Morrowind.esm\r\n",
			names: []string{"Game Files"},
			want:  map[string][]Line{"Game Files": lines("GameFile0=Morrowind.esm")},
		},
		{
			name:  "header name runs to last bracket",
			input: "[A]b]\r\nx\r\n",
			names: []string{"A]b"},
			want:  map[string][]Line{"A]b": lines("x")},
		},
		{
			name:  "semicolon inside brackets is not a header",
			input: "[A]\r\n[B;C]\r\nx\r\n",
			names: []string{"A"},
			want:  map[string][]Line{"A": lines("[B;C]", "x")},
		},
		{
			name:  "empty brackets are not a header",
			input: "[]\r\n",
			names: []string{""},
			want:  map[string][]Line{"": lines("[]")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse([]byte(tt.input))
			assert.Equal(t, tt.names, doc.Names())
			for name, want := range tt.want {
				s, ok := doc.Section(name)
				require.True(t, ok, "section %q", name)
				assert.Equal(t, want, s.Lines, "section %q", name)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	doc := Parse(nil)
	assert.Equal(t, 0, doc.Len())
	assert.Empty(t, Serialize(doc))
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "spacing normalized",
			input: "[A]\r\nx\r\n\r\n\r\n\r\n[B]\r\ny\r\n\r\n\r\n",
			want:  "[A]\r\nx\r\n\r\n[B]\r\ny\r\n",
		},
		{
			name:  "missing separator added",
			input: "pre\r\n[A]\r\nx\r\n[B]\r\ny\r\n",
			want:  "pre\r\n\r\n[A]\r\nx\r\n\r\n[B]\r\ny\r\n",
		},
		{
			name:  "empty sections dropped with header",
			input: "[A]\r\n[B]\r\ny\r\n[C]\r\n\r\n",
			want:  "[B]\r\ny\r\n",
		},
		{
			name:  "lf input written as crlf",
			input: "[A]\nx\n\n[B]\ny\n",
			want:  "[A]\r\nx\r\n\r\n[B]\r\ny\r\n",
		},
		{
			name:  "missing final newline added",
			input: "[A]\r\nx",
			want:  "[A]\r\nx\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Serialize(Parse([]byte(tt.input)))
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestRoundTrip_Canonical(t *testing.T) {
	inputs := []string{
		"",
		"[A]\r\nx\r\n",
		"pre\r\n\r\n[A]\r\nx\r\n\r\ny\r\n\r\n[B]\r\n; comment\r\nz=1 ; trailing\r\n",
		"[CustomStuff]\r\nanything goes here\r\n\t indented = yes;no\r\n",
	}
	for _, in := range inputs {
		assert.Equal(t, in, string(Serialize(Parse([]byte(in)))))
	}
}

func TestRoundTrip_Fixture(t *testing.T) {
	data := testutil.ReadFixture(t, testutil.MorrowindIni)

	doc := Parse(data)
	assert.Equal(t, []string{"", "General", "Archives", "Game Files", "Moons", "Weather Clear", "LightAttenuation"}, doc.Names())
	assert.Equal(t, data, Serialize(doc))
}

func TestParse_HighBytesAreNotBlank(t *testing.T) {
	inputs := []string{
		"[A]\r\nx\r\n\xc2\xa0\r\n",
		"[A]\r\nx\r\n\xc2\x85\r\n",
		"[A]\r\n\xa0\r\n",
	}
	for _, in := range inputs {
		assert.Equal(t, in, string(Serialize(Parse([]byte(in)))))
	}
}

func TestParse_CopiesInput(t *testing.T) {
	data := []byte("[A]\r\nx=1\r\n")
	doc := Parse(data)

	copy(data, "[B]\r\ny=2")
	s, ok := doc.Section("A")
	require.True(t, ok)
	assert.Equal(t, lines("x=1"), s.Lines)
}

func TestDocument_SectionDoesNotCreate(t *testing.T) {
	doc := Parse([]byte("[A]\r\nx\r\n"))

	_, ok := doc.Section("Missing")
	assert.False(t, ok)
	assert.Equal(t, 1, doc.Len())
}

func TestDocument_EnsureSection(t *testing.T) {
	doc := Parse([]byte("[A]\r\nx\r\n"))

	a := doc.EnsureSection("A")
	assert.Equal(t, lines("x"), a.Lines)

	b := doc.EnsureSection("B")
	b.Append(Line("y"))
	assert.Same(t, b, doc.EnsureSection("B"))
	assert.Equal(t, []string{"A", "B"}, doc.Names())
	assert.Equal(t, "[A]\r\nx\r\n\r\n[B]\r\ny\r\n", string(Serialize(doc)))
}

func TestDocument_Remove(t *testing.T) {
	doc := Parse([]byte("[A]\r\nx\r\n\r\n[B]\r\ny\r\n\r\n[C]\r\nz\r\n"))

	assert.True(t, doc.Remove("B"))
	assert.False(t, doc.Remove("B"))
	assert.Equal(t, []string{"A", "C"}, doc.Names())
	assert.Equal(t, "[A]\r\nx\r\n\r\n[C]\r\nz\r\n", string(Serialize(doc)))
}

func TestLine(t *testing.T) {
	assert.False(t, Line("\xc2\xa0").IsBlank())
	assert.False(t, Line("\xa0").IsBlank())
	assert.True(t, Line("\v\f\r").IsBlank())
	assert.True(t, Line("").IsBlank())
	assert.True(t, Line(" \t").IsBlank())
	assert.False(t, Line(" x ").IsBlank())

	s, err := Line("Caf\xe9").Decode()
	require.NoError(t, err)
	assert.Equal(t, "Café", s)

	_, err = Line("\x9d").Decode()
	assert.ErrorIs(t, err, ErrUndefinedByte)

	l, err := EncodeLine("Café")
	require.NoError(t, err)
	assert.Equal(t, Line("Caf\xe9"), l)
}

type failingIO struct{ err error }

func (f failingIO) Read([]byte) (int, error)  { return 0, f.err }
func (f failingIO) Write([]byte) (int, error) { return 0, f.err }

func TestLoad_ReadErrorPropagates(t *testing.T) {
	sentinel := errors.New("disk on fire")

	doc, err := Load(failingIO{err: sentinel})
	assert.Nil(t, doc)
	assert.Same(t, sentinel, err)
}

func TestSave_WriteErrorPropagates(t *testing.T) {
	sentinel := errors.New("disk full")

	err := Save(Parse([]byte("[A]\r\nx\r\n")), failingIO{err: sentinel})
	assert.Same(t, sentinel, err)
}

func TestLoadPath_Missing(t *testing.T) {
	_, err := LoadPath(filepath.Join(t.TempDir(), "nope.ini"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadSavePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Morrowind.ini")
	input := []byte("[A]\r\nx\r\n\r\n[B]\r\ny\r\n")
	require.NoError(t, os.WriteFile(path, input, 0o644))

	doc, err := LoadPath(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Save(doc, &buf))
	assert.Equal(t, input, buf.Bytes())

	doc.EnsureSection("C").Append(Line("z"))
	require.NoError(t, SavePath(path, doc))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[A]\r\nx\r\n\r\n[B]\r\ny\r\n\r\n[C]\r\nz\r\n", string(got))
}
