package main

import (
	"bytes"
	"errors"
	"os"

	"github.com/spf13/cobra"
)

var fmtCheck bool

var errNotCanonical = errors.New("ini is not in canonical form")

func init() {
	cmd := newFmtCmd()
	cmd.Flags().BoolVar(&fmtCheck, "check", false, "Report whether the file would change without writing it")
	addBackupFlag(cmd.Flags())
	rootCmd.AddCommand(cmd)
}

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt",
		Short: "Rewrite the ini in canonical form",
		Long: `The fmt command loads and saves the ini without other changes. Line
endings become CRLF, exactly one blank line separates sections, and
trailing blank lines are removed. Projected keys are renumbered from zero.

Example:
  numidium fmt
  numidium fmt --check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt()
		},
	}
}

func runFmt() error {
	path, m, err := openIni()
	if err != nil {
		return err
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	formatted, err := m.Bytes()
	if err != nil {
		return err
	}

	if bytes.Equal(original, formatted) {
		printInfo("%s is already canonical\n", path)
		return nil
	}
	if fmtCheck {
		return errNotCanonical
	}

	w, err := newWriter()
	if err != nil {
		return err
	}
	backupPath, err := w.Replace(path, formatted, backup)
	if err != nil {
		return err
	}
	if backupPath != "" {
		printVerbose("Backup written: %s\n", backupPath)
	}
	printInfo("Formatted %s\n", path)
	return nil
}
