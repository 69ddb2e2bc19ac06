package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listArchives  bool
	listGameFiles bool
)

func init() {
	cmd := newListCmd()
	cmd.Flags().BoolVar(&listArchives, "archives", false, "List only archives")
	cmd.Flags().BoolVar(&listGameFiles, "game-files", false, "List only game files")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active archives and game files",
		Long: `The list command prints the archive and game file load orders in
the order the game reads them.

Example:
  numidium list --ini Morrowind.ini
  numidium list --game-files
  numidium list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
	return cmd
}

type listResult struct {
	Archives  []string `json:"archives,omitempty" yaml:"archives,omitempty"`
	GameFiles []string `json:"game_files,omitempty" yaml:"game_files,omitempty"`
}

func runList() error {
	_, m, err := openIni()
	if err != nil {
		return err
	}

	// Neither flag means both
	showArchives := listArchives || !listGameFiles
	showGameFiles := listGameFiles || !listArchives

	var result listResult
	if showArchives {
		result.Archives = m.Archives
	}
	if showGameFiles {
		result.GameFiles = m.GameFiles
	}

	if done, err := printStructured(result); done {
		return err
	}

	if showArchives {
		printList("Archives", m.Archives)
	}
	if showArchives && showGameFiles {
		fmt.Println()
	}
	if showGameFiles {
		printList("Game Files", m.GameFiles)
	}
	return nil
}

func printList(title string, items []string) {
	fmt.Printf("%s (%d):\n", title, len(items))
	for i, item := range items {
		fmt.Printf("  %3d  %s\n", i, item)
	}
}
