package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/morrowind-modding/numidium/pkg/ini"
)

const preambleLabel = "(preamble)"

func init() {
	rootCmd.AddCommand(newSectionsCmd())
	rootCmd.AddCommand(newShowCmd())
}

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the sections of the ini",
		Long: `The sections command lists every section header in file order with
the number of lines it holds. Lines before the first header are shown as
` + preambleLabel + `.

Example:
  numidium sections
  numidium sections -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSections()
		},
	}
}

type sectionSummary struct {
	Name  string `json:"name" yaml:"name"`
	Lines int    `json:"lines" yaml:"lines"`
}

func runSections() error {
	_, m, err := openIni()
	if err != nil {
		return err
	}

	var summaries []sectionSummary
	for _, s := range m.Document().Sections() {
		summaries = append(summaries, sectionSummary{Name: s.Name, Lines: len(s.Lines)})
	}

	if done, err := printStructured(summaries); done {
		return err
	}
	for _, s := range summaries {
		name := s.Name
		if name == ini.Preamble {
			name = preambleLabel
		}
		fmt.Printf("%-32s %d\n", name, s.Lines)
	}
	return nil
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <section>",
		Short: "Print the raw lines of one section",
		Long: `The show command prints the lines of a section exactly as stored.
Use "" for the preamble.

Example:
  numidium show General
  numidium show "Game Files" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args)
		},
	}
}

func runShow(args []string) error {
	_, m, err := openIni()
	if err != nil {
		return err
	}

	s, ok := m.Document().Section(args[0])
	if !ok {
		return fmt.Errorf("section not found: %q", args[0])
	}

	if outputFormat == outputText || outputFormat == "" {
		for _, line := range s.Lines {
			os.Stdout.Write(line)
			os.Stdout.WriteString("\n")
		}
		return nil
	}

	text := make([]string, 0, len(s.Lines))
	for i, line := range s.Lines {
		decoded, err := line.Decode()
		if err != nil {
			return fmt.Errorf("section %q line %d: %w", s.Name, i+1, err)
		}
		text = append(text, decoded)
	}
	_, err = printStructured(map[string]interface{}{"name": s.Name, "lines": text})
	return err
}
