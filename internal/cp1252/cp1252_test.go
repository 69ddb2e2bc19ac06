package cp1252

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "ascii", input: []byte("Morrowind.esm"), want: "Morrowind.esm"},
		{name: "empty", input: nil, want: ""},
		{name: "euro sign", input: []byte{0x80}, want: "€"},
		{name: "latin1 range", input: []byte("Caf\xe9 \xc6"), want: "Café Æ"},
		{name: "smart quotes", input: []byte{0x93, 'x', 0x94}, want: "“x”"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_UndefinedBytes(t *testing.T) {
	for _, b := range []byte{0x81, 0x8D, 0x8F, 0x90, 0x9D} {
		input := []byte{'a', 'b', b, 'c'}
		got, err := Decode(input)
		require.Error(t, err, "byte 0x%02X", b)
		assert.Empty(t, got)
		assert.True(t, errors.Is(err, ErrUndefinedByte))

		var decErr *DecodeError
		require.ErrorAs(t, err, &decErr)
		assert.Equal(t, 2, decErr.Offset)
		assert.Equal(t, b, decErr.Byte)
	}
}

func TestEncode(t *testing.T) {
	got, err := Encode("Café €")
	require.NoError(t, err)
	assert.Equal(t, []byte("Caf\xe9 \x80"), got)
}

func TestEncode_Unrepresentable(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{name: "cjk", input: "ab日本", offset: 2},
		{name: "invalid utf8", input: "a\xffb", offset: 1},
		{name: "c1 control", input: "\u0081", offset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnencodable))

			var encErr *EncodeError
			require.ErrorAs(t, err, &encErr)
			assert.Equal(t, tt.offset, encErr.Offset)
		})
	}
}

func TestRoundTrip_AllDefinedBytes(t *testing.T) {
	var input []byte
	for i := 0; i < 256; i++ {
		if !undefined(byte(i)) {
			input = append(input, byte(i))
		}
	}

	text, err := Decode(input)
	require.NoError(t, err)

	back, err := Encode(text)
	require.NoError(t, err)
	assert.Equal(t, input, back)
}
