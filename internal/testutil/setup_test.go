package testutil

import (
	"bytes"
	"os"
	"testing"
)

func TestCopyFixture(t *testing.T) {
	want := ReadFixture(t, MorrowindIni)
	if !bytes.HasPrefix(want, []byte(";\r\n")) {
		t.Fatalf("unexpected fixture start: %q", want[:8])
	}

	path := CopyFixture(t, MorrowindIni, "Morrowind.ini")
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading copy: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Error("copy differs from fixture")
	}

	// Copies are independent.
	if err := os.WriteFile(path, []byte("changed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ReadFixture(t, MorrowindIni), want) {
		t.Error("fixture modified through copy")
	}
}
