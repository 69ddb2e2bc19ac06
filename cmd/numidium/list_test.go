package main

import (
	"testing"
)

func TestListCommand(t *testing.T) {
	tests := []struct {
		name           string
		archives       bool
		gameFiles      bool
		format         string
		wantContain    []string
		wantNotContain []string
		wantJSON       bool
		wantYAML       bool
	}{
		{
			name:        "both lists as text",
			wantContain: []string{"Archives (2):", "Tribunal.bsa", "Game Files (3):", "  0  Morrowind.esm", "  2  Bloodmoon.esm"},
		},
		{
			name:           "archives only",
			archives:       true,
			wantContain:    []string{"Archives (2):", "Bloodmoon.bsa"},
			wantNotContain: []string{"Game Files", "Morrowind.esm"},
		},
		{
			name:           "game files only",
			gameFiles:      true,
			wantContain:    []string{"Game Files (3):", "Tribunal.esm"},
			wantNotContain: []string{"Archives", ".bsa"},
		},
		{
			name:        "json",
			format:      outputJSON,
			wantJSON:    true,
			wantContain: []string{`"archives"`, `"game_files"`, `"Morrowind.esm"`},
		},
		{
			name:           "yaml game files",
			format:         outputYAML,
			gameFiles:      true,
			wantYAML:       true,
			wantContain:    []string{"game_files:", "- Morrowind.esm"},
			wantNotContain: []string{"archives:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(testIniPath(t))
			listArchives = tt.archives
			listGameFiles = tt.gameFiles
			if tt.format != "" {
				outputFormat = tt.format
			}

			output, err := captureOutput(t, runList)
			if err != nil {
				t.Fatalf("runList() error = %v", err)
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}
			if tt.wantYAML {
				assertYAML(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestListCommand_UnknownFormat(t *testing.T) {
	resetFlags(testIniPath(t))
	outputFormat = "xml"

	_, err := captureOutput(t, runList)
	if err == nil {
		t.Fatal("expected error for unknown output format")
	}
}

func TestListCommand_MissingIni(t *testing.T) {
	resetFlags(t.TempDir() + "/Morrowind.ini")

	_, err := captureOutput(t, runList)
	if err == nil {
		t.Fatal("expected error for missing ini")
	}
}
