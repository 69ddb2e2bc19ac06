package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/morrowind-modding/numidium/internal/config"
	"github.com/morrowind-modding/numidium/internal/filestore"
	"github.com/morrowind-modding/numidium/internal/logger"
	"github.com/morrowind-modding/numidium/pkg/tes3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var (
	// Global flags
	iniPath      string
	verbose      bool
	quiet        bool
	outputFormat string
	logLevel     string
	backup       = true
)

var errNoIni = errors.New("no ini file given: pass --ini or run `numidium config set-ini`")

var rootCmd = &cobra.Command{
	Use:   "numidium",
	Short: "Inspect and edit Morrowind.ini load orders",
	Long: `numidium reads and rewrites Morrowind.ini. The archive and game file
load orders can be listed and edited; everything else in the file is
written back exactly as it was found.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&iniPath, "ini", "", "Path to Morrowind.ini (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", outputText, "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogging() error {
	e, err := config.ParseEnv()
	if err != nil {
		return err
	}
	level := e.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	return logger.Init(logger.Options{
		Enabled: verbose || logLevel != "" || e.LogDir != "",
		LogDir:  e.LogDir,
		Level:   level,
	})
}

// addBackupFlag registers --backup on commands that rewrite files.
func addBackupFlag(flags *pflag.FlagSet) {
	flags.BoolVar(&backup, "backup", true, "Keep the previous file as a .backup copy")
}

// resolveIniPath picks the ini from --ini, the environment, the config
// file, or the active workspace, in that order.
func resolveIniPath() (string, error) {
	if iniPath != "" {
		return iniPath, nil
	}
	e, err := config.ParseEnv()
	if err != nil {
		return "", err
	}
	path, err := e.Path()
	if err != nil {
		return "", err
	}
	c, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		c = config.Default()
	} else if err != nil {
		return "", err
	}
	if p := c.ResolveIniPath(e); p != "" {
		return p, nil
	}
	return "", errNoIni
}

// newWriter returns a file writer using NUMIDIUM_TEMP_DIR for temporary
// files when it is set.
func newWriter() (*filestore.Writer, error) {
	e, err := config.ParseEnv()
	if err != nil {
		return nil, err
	}
	w := filestore.NewWriter()
	if e.TempDir != "" {
		w.SetTempDir(e.TempDir)
	}
	return w, nil
}

// openIni resolves and loads the ini.
func openIni() (string, *tes3.MorrowindIni, error) {
	path, err := resolveIniPath()
	if err != nil {
		return "", nil, err
	}
	printVerbose("Loading ini: %s\n", path)

	m := tes3.NewMorrowindIni()
	if err := m.LoadPath(path); err != nil {
		return "", nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	logger.Debug("ini loaded", "path", path, "archives", len(m.Archives), "game_files", len(m.GameFiles))
	return path, m, nil
}

// saveIni serializes m and replaces the file at path.
func saveIni(path string, m *tes3.MorrowindIni) error {
	data, err := m.Bytes()
	if err != nil {
		return fmt.Errorf("failed to serialize ini: %w", err)
	}
	w, err := newWriter()
	if err != nil {
		return err
	}
	backupPath, err := w.Replace(path, data, backup)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if backupPath != "" {
		printVerbose("Backup written: %s\n", backupPath)
	}
	logger.Info("ini saved", "path", path, "backup", backupPath, "bytes", len(data))
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printWarning prints a warning to stderr unless in quiet mode
func printWarning(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stderr, "Warning: "+format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printStructured writes v as JSON or YAML. It reports false for text
// output, leaving the caller to print.
func printStructured(v interface{}) (bool, error) {
	switch outputFormat {
	case outputJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return true, encoder.Encode(v)
	case outputYAML:
		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return true, err
		}
		return true, encoder.Close()
	case outputText, "":
		return false, nil
	default:
		return true, fmt.Errorf("unknown output format %q", outputFormat)
	}
}
