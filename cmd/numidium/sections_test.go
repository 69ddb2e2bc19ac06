package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionsCommand(t *testing.T) {
	resetFlags(testIniPath(t))

	output, err := captureOutput(t, runSections)
	require.NoError(t, err)
	assertContains(t, output, []string{preambleLabel, "General", "Archives", "Game Files", "Weather Clear", "LightAttenuation"})

	// File order is kept.
	assert.Less(t, strings.Index(output, "General"), strings.Index(output, "Moons"))
	assert.Less(t, strings.Index(output, "Moons"), strings.Index(output, "LightAttenuation"))
}

func TestSectionsCommand_JSON(t *testing.T) {
	resetFlags(testIniPath(t))
	outputFormat = outputJSON

	output, err := captureOutput(t, runSections)
	require.NoError(t, err)
	assertJSON(t, output)
	assertContains(t, output, []string{`"name": "Game Files"`, `"lines": 3`, `"name": ""`})
}

func TestShowCommand(t *testing.T) {
	tests := []struct {
		name           string
		section        string
		format         string
		wantContain    []string
		wantNotContain []string
		wantJSON       bool
	}{
		{
			name:           "raw text",
			section:        "Weather Clear",
			wantContain:    []string{"Cloud Texture=Tx_Sky_Clear.tga ; high altitude\n", "Sky Day Color=095,135,203\n"},
			wantNotContain: []string{"[Weather Clear]", "\r"},
		},
		{
			name:        "preamble",
			section:     "",
			wantContain: []string{"; Morrowind.ini\n"},
		},
		{
			name:        "json",
			section:     "Archives",
			format:      outputJSON,
			wantJSON:    true,
			wantContain: []string{`"name": "Archives"`, `"Archive 1=Bloodmoon.bsa"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(testIniPath(t))
			if tt.format != "" {
				outputFormat = tt.format
			}

			output, err := captureOutput(t, func() error { return runShow([]string{tt.section}) })
			require.NoError(t, err)
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestShowCommand_Missing(t *testing.T) {
	resetFlags(testIniPath(t))

	_, err := captureOutput(t, func() error { return runShow([]string{"Plugins"}) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "section not found")
}
