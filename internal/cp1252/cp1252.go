// Package cp1252 converts between Windows-1252 bytes and Go strings.
//
// Unlike the lenient decoders in golang.org/x/text, which map every byte to
// some rune, this codec rejects the five positions Windows-1252 leaves
// undefined (0x81, 0x8D, 0x8F, 0x90, 0x9D) and any rune the code page cannot
// represent. Nothing is ever replaced or skipped.
package cp1252

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrUndefinedByte is returned when input contains a byte with no
	// Windows-1252 mapping.
	ErrUndefinedByte = errors.New("cp1252: undefined byte")

	// ErrUnencodable is returned when a string contains a rune that has no
	// Windows-1252 byte.
	ErrUnencodable = errors.New("cp1252: rune not representable")
)

// DecodeError reports the first undefined byte encountered while decoding.
type DecodeError struct {
	Offset int
	Byte   byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cp1252: undefined byte 0x%02X at offset %d", e.Byte, e.Offset)
}

func (e *DecodeError) Unwrap() error { return ErrUndefinedByte }

// EncodeError reports the first rune that could not be encoded.
type EncodeError struct {
	Offset int
	Rune   rune
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("cp1252: cannot encode %U at offset %d", e.Rune, e.Offset)
}

func (e *EncodeError) Unwrap() error { return ErrUnencodable }

var table = charmap.Windows1252

// undefined reports whether b is one of the unassigned Windows-1252 positions.
func undefined(b byte) bool {
	switch b {
	case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
		return true
	}
	return false
}

// Decode converts Windows-1252 bytes to a UTF-8 string.
func Decode(data []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(data))
	for i, b := range data {
		if b < utf8.RuneSelf {
			sb.WriteByte(b)
			continue
		}
		if undefined(b) {
			return "", &DecodeError{Offset: i, Byte: b}
		}
		sb.WriteRune(table.DecodeByte(b))
	}
	return sb.String(), nil
}

// Encode converts a UTF-8 string to Windows-1252 bytes. Invalid UTF-8 is
// reported as an unencodable utf8.RuneError.
func Encode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i, r := range s {
		if r < utf8.RuneSelf {
			out = append(out, byte(r))
			continue
		}
		b, ok := table.EncodeRune(r)
		if !ok || r == utf8.RuneError || undefined(b) {
			return nil, &EncodeError{Offset: i, Rune: r}
		}
		out = append(out, b)
	}
	return out, nil
}
