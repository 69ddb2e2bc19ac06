package tes3

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound is returned when a named entry is not in the list.
	ErrNotFound = errors.New("tes3: entry not found")

	// ErrIndexOutOfRange is returned for a move target outside the list.
	ErrIndexOutOfRange = errors.New("tes3: index out of range")
)

// IniFileName is the name of the ini in a Morrowind install directory.
const IniFileName = "Morrowind.ini"

// File extensions recognised by the game.
const (
	ExtMaster  = ".esm"
	ExtPlugin  = ".esp"
	ExtArchive = ".bsa"
)

// IsMaster reports whether name is a master file.
func IsMaster(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ExtMaster)
}

// IsPlugin reports whether name is a plugin file.
func IsPlugin(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ExtPlugin)
}

// IsGameFile reports whether name may appear in [Game Files].
func IsGameFile(name string) bool {
	return IsMaster(name) || IsPlugin(name)
}

// IsArchive reports whether name may appear in [Archives].
func IsArchive(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ExtArchive)
}

func moveFold(list []string, name string, to int) error {
	from := indexFold(list, name)
	if from < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if to < 0 || to >= len(list) {
		return fmt.Errorf("%w: %d (have %d entries)", ErrIndexOutOfRange, to, len(list))
	}
	v := list[from]
	if from < to {
		copy(list[from:to], list[from+1:to+1])
	} else {
		copy(list[to+1:from+1], list[to:from])
	}
	list[to] = v
	return nil
}
