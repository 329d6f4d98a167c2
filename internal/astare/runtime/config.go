package runtime

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config captures every knob shared across the astare CLI, TUI, and
// inspector server entry points. Keeping it as a lightweight struct
// makes it trivial to reuse in tests or future headless workflows.
type Config struct {
	Workspace   string
	ConfigPath  string
	HistoryPath string
	LogPath     string
	ServerAddr  string
	NameDefs    bool
	Rainbow     bool
	Dark        bool
	RecentLimit int
}

// DefaultConfig infers sensible defaults based on the current working
// directory. Errors from os.Getwd are ignored so callers can override
// manually.
func DefaultConfig() Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return Config{
		Workspace:   cwd,
		ConfigPath:  filepath.Join(cwd, ".astare", "config.yaml"),
		HistoryPath: filepath.Join(cwd, ".astare", "history.db"),
		LogPath:     filepath.Join(cwd, ".astare", "astare.log"),
		ServerAddr:  ":7821",
		NameDefs:    true,
		Dark:        true,
		RecentLimit: 10,
	}
}

// Normalize ensures every filesystem path is absolute and fills
// missing defaults so runtime initialization never has to re-check the
// same invariants.
func (c *Config) Normalize() error {
	if c.Workspace == "" {
		return fmt.Errorf("workspace path required")
	}
	absWorkspace, err := filepath.Abs(c.Workspace)
	if err != nil {
		return fmt.Errorf("resolve workspace: %w", err)
	}
	c.Workspace = absWorkspace
	if c.ConfigPath == "" {
		c.ConfigPath = filepath.Join(c.Workspace, ".astare", "config.yaml")
	}
	if !filepath.IsAbs(c.ConfigPath) {
		c.ConfigPath = filepath.Join(c.Workspace, c.ConfigPath)
	}
	if c.HistoryPath == "" {
		c.HistoryPath = filepath.Join(c.Workspace, ".astare", "history.db")
	}
	if !filepath.IsAbs(c.HistoryPath) {
		c.HistoryPath = filepath.Join(c.Workspace, c.HistoryPath)
	}
	if c.LogPath == "" {
		c.LogPath = filepath.Join(c.Workspace, ".astare", "astare.log")
	}
	if !filepath.IsAbs(c.LogPath) {
		c.LogPath = filepath.Join(c.Workspace, c.LogPath)
	}
	if c.ServerAddr == "" {
		c.ServerAddr = ":7821"
	}
	if c.RecentLimit <= 0 {
		c.RecentLimit = 10
	}
	return nil
}

// WorkspaceConfig captures persisted display preferences for reuse
// across runs. Pointer fields distinguish "unset" from "false".
type WorkspaceConfig struct {
	Theme       string `yaml:"theme"`
	NameDefs    *bool  `yaml:"name_defs"`
	Rainbow     *bool  `yaml:"rainbow"`
	RecentLimit int    `yaml:"recent_limit"`
	ServerAddr  string `yaml:"server_addr"`
}

// LoadWorkspaceConfig loads display preferences from disk. Missing
// files are the caller's signal to fall back to defaults.
func LoadWorkspaceConfig(path string) (WorkspaceConfig, error) {
	if path == "" {
		return WorkspaceConfig{}, fmt.Errorf("config path required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return WorkspaceConfig{}, err
	}
	var cfg WorkspaceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WorkspaceConfig{}, err
	}
	return cfg, nil
}

// SaveWorkspaceConfig persists preferences for future sessions.
func SaveWorkspaceConfig(path string, cfg WorkspaceConfig) error {
	if path == "" {
		return fmt.Errorf("config path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// apply merges persisted preferences into the runtime config.
func (c *Config) apply(ws WorkspaceConfig) {
	switch ws.Theme {
	case "light":
		c.Dark = false
	case "dark":
		c.Dark = true
	}
	if ws.NameDefs != nil {
		c.NameDefs = *ws.NameDefs
	}
	if ws.Rainbow != nil {
		c.Rainbow = *ws.Rainbow
	}
	if ws.RecentLimit > 0 {
		c.RecentLimit = ws.RecentLimit
	}
	if ws.ServerAddr != "" {
		c.ServerAddr = ws.ServerAddr
	}
}
