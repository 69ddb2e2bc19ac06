package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/morrowind-modding/numidium/pkg/tes3"
)

var (
	editArchive        bool
	editGameFile       bool
	addAllowDuplicates bool
)

var (
	errKindRequired    = errors.New("exactly one of --archive or --game-file is required")
	errNothingToRemove = errors.New("no matching entries")
)

// addKindFlags registers the flags choosing which list a command edits.
func addKindFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&editArchive, "archive", false, "Edit the archive list")
	flags.BoolVar(&editGameFile, "game-file", false, "Edit the game file list")
}

func init() {
	add := newAddCmd()
	addKindFlags(add.Flags())
	addBackupFlag(add.Flags())
	add.Flags().BoolVar(&addAllowDuplicates, "allow-duplicates", false, "Add entries already in the list")
	rootCmd.AddCommand(add)

	remove := newRemoveCmd()
	addKindFlags(remove.Flags())
	addBackupFlag(remove.Flags())
	rootCmd.AddCommand(remove)

	move := newMoveCmd()
	addKindFlags(move.Flags())
	addBackupFlag(move.Flags())
	rootCmd.AddCommand(move)
}

func checkKind() error {
	if editArchive == editGameFile {
		return errKindRequired
	}
	return nil
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add (--archive|--game-file) <name>...",
		Short: "Append entries to a load order",
		Long: `The add command appends archives or game files to the end of their
load order and saves the ini.

Example:
  numidium add --game-file "Tamriel_Data.esm" "TR_Mainland.esm"
  numidium add --archive "TR_Data.bsa"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(args)
		},
	}
}

func runAdd(args []string) error {
	if err := checkKind(); err != nil {
		return err
	}
	path, m, err := openIni()
	if err != nil {
		return err
	}

	added := 0
	for _, name := range args {
		if editArchive {
			if !tes3.IsArchive(name) {
				printWarning("%s does not look like a %s archive\n", name, tes3.ExtArchive)
			}
			if m.HasArchive(name) && !addAllowDuplicates {
				printVerbose("Already active: %s\n", name)
				continue
			}
			m.Archives = append(m.Archives, name)
		} else {
			if !tes3.IsGameFile(name) {
				printWarning("%s is neither a %s nor a %s file\n", name, tes3.ExtMaster, tes3.ExtPlugin)
			}
			if m.HasGameFile(name) && !addAllowDuplicates {
				printVerbose("Already active: %s\n", name)
				continue
			}
			m.GameFiles = append(m.GameFiles, name)
		}
		added++
	}

	if added == 0 {
		printInfo("Nothing to add\n")
		return nil
	}
	if err := saveIni(path, m); err != nil {
		return err
	}
	printInfo("Added %d entr%s\n", added, plural(added, "y", "ies"))
	return nil
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove (--archive|--game-file) <name>...",
		Short: "Remove entries from a load order",
		Long: `The remove command deletes archives or game files from their load
order, ignoring case, and saves the ini. Remaining entries are renumbered.

Example:
  numidium remove --game-file "Old Mod.esp"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args)
		},
	}
}

func runRemove(args []string) error {
	if err := checkKind(); err != nil {
		return err
	}
	path, m, err := openIni()
	if err != nil {
		return err
	}

	removed := 0
	for _, name := range args {
		var ok bool
		if editArchive {
			ok = m.RemoveArchive(name)
		} else {
			ok = m.RemoveGameFile(name)
		}
		if !ok {
			printWarning("not found: %s\n", name)
			continue
		}
		removed++
	}

	if removed == 0 {
		return errNothingToRemove
	}
	if err := saveIni(path, m); err != nil {
		return err
	}
	printInfo("Removed %d entr%s\n", removed, plural(removed, "y", "ies"))
	return nil
}

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move (--archive|--game-file) <name> <index>",
		Short: "Move an entry to a new position",
		Long: `The move command changes the load order position of one entry and
saves the ini. Index 0 loads first.

Example:
  numidium move --game-file "Patch.esp" 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(args)
		},
	}
}

func runMove(args []string) error {
	if err := checkKind(); err != nil {
		return err
	}
	name := args[0]
	to, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[1], err)
	}

	path, m, err := openIni()
	if err != nil {
		return err
	}

	if editArchive {
		err = m.MoveArchive(name, to)
	} else {
		err = m.MoveGameFile(name, to)
	}
	if err != nil {
		return err
	}

	if err := saveIni(path, m); err != nil {
		return err
	}
	printInfo("Moved %s to %d\n", name, to)
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
