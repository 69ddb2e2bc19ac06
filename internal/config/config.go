// Package config manages numidium's own settings file.
//
// The file is JSON, but comments and trailing commas are accepted on read so
// it can be edited by hand. Saving moves the previous file to its backup name
// first. Environment variables can point at a different config directory or
// ini file without touching the file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/tidwall/jsonc"

	"github.com/morrowind-modding/numidium/internal/filestore"
	"github.com/morrowind-modding/numidium/internal/logger"
	"github.com/morrowind-modding/numidium/pkg/tes3"
)

const (
	// AppName names the per-user config directory.
	AppName = "numidium"

	// FileName is the config file inside the config directory.
	FileName = "config.json"
)

// ErrMalformed is returned when the config file is not valid JSON(C).
var ErrMalformed = errors.New("config: malformed file")

// Config holds the persisted application settings.
type Config struct {
	// ShowWelcome shows the welcome screen on startup.
	ShowWelcome bool `json:"show_welcome"`

	// ActiveExtensions lists enabled extensions in activation order.
	ActiveExtensions []string `json:"active_extensions"`

	// RecentWorkspaces maps workspace paths to the unix time they were last opened.
	RecentWorkspaces map[string]int64 `json:"recent_workspaces"`

	// IniPath is the Morrowind.ini edited by default.
	IniPath string `json:"ini_path,omitempty"`
}

// Env holds the environment overrides.
type Env struct {
	ConfigDir string `env:"NUMIDIUM_CONFIG_DIR"`
	IniPath   string `env:"NUMIDIUM_INI_PATH"`
	LogLevel  string `env:"NUMIDIUM_LOG_LEVEL" envDefault:"info"`
	LogDir    string `env:"NUMIDIUM_LOG_DIR"`
	TempDir   string `env:"NUMIDIUM_TEMP_DIR"`
}

// ParseEnv loads overrides from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}

// Path returns the config file location: NUMIDIUM_CONFIG_DIR if set,
// otherwise the user config directory.
func (e Env) Path() (string, error) {
	dir := e.ConfigDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("config: locate user config dir: %w", err)
		}
		dir = filepath.Join(base, AppName)
	}
	return filepath.Join(dir, FileName), nil
}

// Default returns a config with every field at its default.
func Default() *Config {
	c := &Config{}
	c.Reset()
	return c
}

// Reset restores every field to its default.
func (c *Config) Reset() {
	c.ShowWelcome = true
	c.ActiveExtensions = []string{}
	c.RecentWorkspaces = map[string]int64{}
	c.IniPath = ""
}

// Parse decodes a config. Fields missing from data keep their defaults.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := json.Unmarshal(jsonc.ToJSON(data), c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if c.ActiveExtensions == nil {
		c.ActiveExtensions = []string{}
	}
	if c.RecentWorkspaces == nil {
		c.RecentWorkspaces = map[string]int64{}
	}
	return c, nil
}

// Load reads the config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadOrCreate reads the config at path. A missing or malformed file is
// replaced by the defaults, which are written back to path.
func LoadOrCreate(path string) (*Config, error) {
	c, err := Load(path)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, ErrMalformed) {
		return nil, err
	}

	logger.Warn("using default config", "path", path, "reason", err)
	c = Default()
	if err := c.Save(path); err != nil {
		return nil, err
	}
	return c, nil
}

// Marshal encodes the config as indented JSON.
func (c *Config) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Save writes the config to path, keeping the previous file as a backup.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	backup, err := filestore.NewWriter().Replace(path, data, true)
	if err != nil {
		return fmt.Errorf("config: save %s: %w", path, err)
	}
	logger.Debug("config saved", "path", path, "backup", backup)
	return nil
}

// ResolveIniPath returns the ini to edit: the environment override if set,
// then the configured path, then Morrowind.ini in the active workspace. It
// returns "" when none of them is set.
func (c *Config) ResolveIniPath(e Env) string {
	if e.IniPath != "" {
		return e.IniPath
	}
	if c.IniPath != "" {
		return c.IniPath
	}
	if ws := c.ActiveWorkspace(); ws != "" {
		return filepath.Join(ws, tes3.IniFileName)
	}
	return ""
}

// ActiveWorkspace returns the most recently opened workspace, or "" if none.
func (c *Config) ActiveWorkspace() string {
	var (
		best   string
		bestTS int64
		found  bool
	)
	for ws, ts := range c.RecentWorkspaces {
		if !found || ts > bestTS || (ts == bestTS && ws < best) {
			best, bestTS, found = ws, ts, true
		}
	}
	return best
}

// SetActiveWorkspace records workspace as opened at now.
func (c *Config) SetActiveWorkspace(workspace string, now time.Time) {
	if c.RecentWorkspaces == nil {
		c.RecentWorkspaces = map[string]int64{}
	}
	c.RecentWorkspaces[workspace] = now.Unix()
}

// RecentWorkspaceList returns workspaces, most recent first.
func (c *Config) RecentWorkspaceList() []string {
	out := make([]string, 0, len(c.RecentWorkspaces))
	for ws := range c.RecentWorkspaces {
		out = append(out, ws)
	}
	slices.SortFunc(out, func(a, b string) int {
		ta, tb := c.RecentWorkspaces[a], c.RecentWorkspaces[b]
		switch {
		case ta > tb:
			return -1
		case ta < tb:
			return 1
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
	return out
}

// IsExtensionActive reports whether name is in ActiveExtensions.
func (c *Config) IsExtensionActive(name string) bool {
	return slices.Contains(c.ActiveExtensions, name)
}

// ActivateExtension appends name to ActiveExtensions if it is not there.
func (c *Config) ActivateExtension(name string) {
	if !c.IsExtensionActive(name) {
		c.ActiveExtensions = append(c.ActiveExtensions, name)
	}
}

// DeactivateExtension removes name from ActiveExtensions.
func (c *Config) DeactivateExtension(name string) {
	c.ActiveExtensions = slices.DeleteFunc(c.ActiveExtensions, func(s string) bool { return s == name })
}
