package main

import (
	"github.com/spf13/cobra"

	"github.com/morrowind-modding/numidium/internal/filestore"
	"github.com/morrowind-modding/numidium/pkg/tes3"
)

func init() {
	rootCmd.AddCommand(newRestoreCmd())
}

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Restore the ini from its backup",
		Long: `The restore command copies the .backup file written by the last
edit back over the ini. The backup is validated by loading it first.

Example:
  numidium restore --ini Morrowind.ini`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore()
		},
	}
}

func runRestore() error {
	path, err := resolveIniPath()
	if err != nil {
		return err
	}

	backupPath := filestore.BackupPath(path)
	printVerbose("Validating backup: %s\n", backupPath)
	if filestore.HasBackup(path) {
		if err := tes3.NewMorrowindIni().LoadPath(backupPath); err != nil {
			return err
		}
	}

	w, err := newWriter()
	if err != nil {
		return err
	}
	if err := w.Restore(path); err != nil {
		return err
	}
	printInfo("Restored %s from %s\n", path, backupPath)
	return nil
}
