package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"softmodal/internal/core"
)

const (
	BackendNative = "native"
	BackendFyne   = "fyne"
)

// Config holds persisted defaults for the message box front-end.
type Config struct {
	InstallDir string `json:"InstallDir"`
	// Language is a BCP 47 tag or a numeric LANGID used for stock labels.
	Language  string `json:"Language,omitempty"`
	CodePage  uint32 `json:"CodePage,omitempty"`
	TimeoutMs uint32 `json:"TimeoutMs,omitempty"`
	Backend   string `json:"Backend,omitempty"`
	Caption   string `json:"Caption,omitempty"`

	firstRun bool
	path     string
}

// Load reads the configuration, creating defaults if necessary.
func Load() (*Config, error) {
	return LoadFrom(DefaultInstallDir())
}

// LoadFrom reads config.json from dir.
func LoadFrom(dir string) (*Config, error) {
	cfg := &Config{}
	cfg.InstallDir = ExpandPath(dir)
	cfg.Backend = BackendNative
	cfg.path = filepath.Join(cfg.InstallDir, core.ConfigFileName)

	if err := EnsureDir(cfg.InstallDir); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cfg.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.firstRun = true
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if len(data) == 0 {
		cfg.firstRun = true
		return cfg, nil
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.InstallDir = ExpandPath(cfg.InstallDir)
	if cfg.InstallDir == "" {
		cfg.InstallDir = ExpandPath(dir)
	}
	cfg.Backend = NormalizeBackend(cfg.Backend)
	cfg.path = filepath.Join(cfg.InstallDir, core.ConfigFileName)
	if err := EnsureDir(cfg.InstallDir); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if strings.TrimSpace(c.InstallDir) == "" {
		return errors.New("install directory is required")
	}
	c.InstallDir = ExpandPath(c.InstallDir)
	if err := EnsureDir(c.InstallDir); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(struct {
		InstallDir string `json:"InstallDir"`
		Language   string `json:"Language,omitempty"`
		CodePage   uint32 `json:"CodePage,omitempty"`
		TimeoutMs  uint32 `json:"TimeoutMs,omitempty"`
		Backend    string `json:"Backend,omitempty"`
		Caption    string `json:"Caption,omitempty"`
	}{
		InstallDir: c.InstallDir,
		Language:   strings.TrimSpace(c.Language),
		CodePage:   c.CodePage,
		TimeoutMs:  c.TimeoutMs,
		Backend:    NormalizeBackend(c.Backend),
		Caption:    c.Caption,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	path := c.path
	if path == "" {
		path = filepath.Join(c.InstallDir, core.ConfigFileName)
		c.path = path
	}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	c.firstRun = false
	return nil
}

// FirstRun indicates whether this is the initial configuration load.
func (c *Config) FirstRun() bool {
	if c == nil {
		return true
	}
	return c.firstRun
}

// ConfigPath returns the full path to the settings file.
func (c *Config) ConfigPath() string {
	if c == nil {
		return ""
	}
	if c.path != "" {
		return c.path
	}
	return filepath.Join(c.InstallDir, core.ConfigFileName)
}

// NormalizeBackend maps an empty or unknown backend name to the native one.
func NormalizeBackend(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case BackendFyne:
		return BackendFyne
	default:
		return BackendNative
	}
}

// EnsureDir creates the provided directory if necessary.
func EnsureDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	return os.MkdirAll(path, 0o755)
}

// ExpandPath expands environment variables, ~ and returns an absolute path.
func ExpandPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	expanded := os.ExpandEnv(trimmed)
	if strings.HasPrefix(expanded, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			expanded = filepath.Join(home, strings.TrimPrefix(expanded, "~"))
		}
	}
	expanded = filepath.Clean(expanded)
	if filepath.IsAbs(expanded) {
		return expanded
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return expanded
	}
	return abs
}

// DefaultInstallDir returns the platform-specific default configuration root.
func DefaultInstallDir() string {
	base := os.Getenv("LOCALAPPDATA")
	if base == "" {
		if runtime.GOOS == "windows" {
			if home := os.Getenv("USERPROFILE"); home != "" {
				base = filepath.Join(home, "AppData", "Local")
			}
		}
	}
	if base == "" {
		if home, err := os.UserHomeDir(); err == nil {
			base = filepath.Join(home, ".local", "share")
		}
	}
	return ExpandPath(filepath.Join(base, core.InstallDirName))
}
