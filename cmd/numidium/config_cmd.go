package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/morrowind-modding/numidium/internal/config"
	"github.com/morrowind-modding/numidium/pkg/tes3"
)

func init() {
	cmd := newConfigCmd()
	cmd.AddCommand(newConfigSetIniCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigWorkspaceCmd())
	ext := newConfigExtensionCmd()
	ext.AddCommand(newConfigExtensionEnableCmd())
	ext.AddCommand(newConfigExtensionDisableCmd())
	cmd.AddCommand(ext)
	rootCmd.AddCommand(cmd)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the numidium settings",
		Long: `The config command prints numidium's own settings. The file is
created with defaults on first use. NUMIDIUM_CONFIG_DIR moves it.

Example:
  numidium config
  numidium config -o json
  numidium config set-ini "C:\Games\Morrowind\Morrowind.ini"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}
}

func newConfigSetIniCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-ini <path>",
		Short: "Store the default Morrowind.ini path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSetIni(args)
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}

func configPath() (string, error) {
	e, err := config.ParseEnv()
	if err != nil {
		return "", err
	}
	return e.Path()
}

func runConfigShow() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	c, err := config.LoadOrCreate(path)
	if err != nil {
		return err
	}

	if done, err := printStructured(c); done {
		return err
	}
	fmt.Printf("Config:            %s\n", path)
	fmt.Printf("Ini:               %s\n", c.IniPath)
	fmt.Printf("Show welcome:      %t\n", c.ShowWelcome)
	fmt.Printf("Active extensions: %d\n", len(c.ActiveExtensions))
	for _, ext := range c.ActiveExtensions {
		fmt.Printf("  %s\n", ext)
	}
	fmt.Printf("Recent workspaces: %d\n", len(c.RecentWorkspaces))
	for _, ws := range c.RecentWorkspaceList() {
		fmt.Printf("  %s\n", ws)
	}
	return nil
}

func runConfigSetIni(args []string) error {
	target, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	// Refuse paths that do not hold a readable ini.
	if err := tes3.NewMorrowindIni().LoadPath(target); err != nil {
		return fmt.Errorf("cannot use %s: %w", target, err)
	}

	path, err := configPath()
	if err != nil {
		return err
	}
	c, err := config.LoadOrCreate(path)
	if err != nil {
		return err
	}
	c.IniPath = target
	if err := c.Save(path); err != nil {
		return err
	}
	printInfo("Default ini set to %s\n", target)
	return nil
}

func newConfigWorkspaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workspace [dir]",
		Short: "List recent workspaces or open one",
		Long: `A workspace is a Morrowind install directory. With no argument the
recent workspaces are listed, most recent first. With a directory that
holds a Morrowind.ini, that directory becomes the active workspace, and its
ini is edited when neither --ini nor set-ini chooses another.

Example:
  numidium config workspace
  numidium config workspace "C:\Games\Morrowind"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runConfigWorkspaces()
			}
			return runConfigOpenWorkspace(args[0], time.Now())
		},
	}
}

type workspaceResult struct {
	Active string   `json:"active" yaml:"active"`
	Recent []string `json:"recent" yaml:"recent"`
}

func runConfigWorkspaces() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	c, err := config.LoadOrCreate(path)
	if err != nil {
		return err
	}

	result := workspaceResult{Active: c.ActiveWorkspace(), Recent: c.RecentWorkspaceList()}
	if done, err := printStructured(result); done {
		return err
	}
	if len(result.Recent) == 0 {
		printInfo("No recent workspaces\n")
		return nil
	}
	for _, ws := range result.Recent {
		marker := " "
		if ws == result.Active {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, ws)
	}
	return nil
}

func runConfigOpenWorkspace(dir string, now time.Time) error {
	workspace, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	iniFile := filepath.Join(workspace, tes3.IniFileName)
	if err := tes3.NewMorrowindIni().LoadPath(iniFile); err != nil {
		return fmt.Errorf("%s is not a Morrowind install: %w", workspace, err)
	}

	path, err := configPath()
	if err != nil {
		return err
	}
	c, err := config.LoadOrCreate(path)
	if err != nil {
		return err
	}
	c.SetActiveWorkspace(workspace, now)
	if err := c.Save(path); err != nil {
		return err
	}
	printInfo("Active workspace set to %s\n", workspace)
	return nil
}

func newConfigExtensionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extension",
		Short: "List active extensions",
		Long: `The extension command lists the extensions recorded as active in
the config file, in activation order.

Example:
  numidium config extension
  numidium config extension enable screenshots`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigExtensions()
		},
	}
}

func newConfigExtensionEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable <name>...",
		Short: "Mark extensions as active",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigExtensionToggle(args, true)
		},
	}
}

func newConfigExtensionDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable <name>...",
		Short: "Mark extensions as inactive",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigExtensionToggle(args, false)
		},
	}
}

func runConfigExtensions() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	c, err := config.LoadOrCreate(path)
	if err != nil {
		return err
	}

	if done, err := printStructured(map[string][]string{"active_extensions": c.ActiveExtensions}); done {
		return err
	}
	for _, ext := range c.ActiveExtensions {
		fmt.Println(ext)
	}
	return nil
}

func runConfigExtensionToggle(names []string, enable bool) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	c, err := config.LoadOrCreate(path)
	if err != nil {
		return err
	}

	changed := 0
	for _, name := range names {
		if c.IsExtensionActive(name) == enable {
			printVerbose("Unchanged: %s\n", name)
			continue
		}
		if enable {
			c.ActivateExtension(name)
		} else {
			c.DeactivateExtension(name)
		}
		changed++
	}
	if changed == 0 {
		printInfo("Nothing to change\n")
		return nil
	}
	if err := c.Save(path); err != nil {
		return err
	}
	printInfo("Updated %d extension%s\n", changed, plural(changed, "", "s"))
	return nil
}
