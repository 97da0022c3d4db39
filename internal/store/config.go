package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	BackendTea   = "tea"
	BackendTcell = "tcell"

	defaultFrameMillis = 16
)

// Config holds user preferences for the interactive UI.
type Config struct {
	// Backend selects the terminal driver ("tea" or "tcell").
	Backend string `json:"backend,omitempty"`
	// Theme is "light", "dark" or "auto".
	Theme string `json:"theme,omitempty"`
	// FrameMillis is the idle frame interval; input is polled at least this often.
	FrameMillis int  `json:"frameMillis,omitempty"`
	NoColor     bool `json:"noColor,omitempty"`
}

func DefaultConfig() Config {
	return Config{Backend: BackendTea, Theme: "auto", FrameMillis: defaultFrameMillis}
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching the user's config).
	if v := strings.TrimSpace(os.Getenv("TODO_CONFIG_DIR")); v != "" {
		return v, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "todo-cli"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfigFile reads only the config file. A missing file yields defaults.
func LoadConfigFile() (Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg.normalized(), nil
}

// LoadConfig reads the config file and applies TODO_BACKEND, TODO_THEME,
// TODO_FPS and NO_COLOR on top.
func LoadConfig() (Config, error) {
	cfg, err := LoadConfigFile()
	if err != nil {
		return cfg, err
	}

	if v := strings.TrimSpace(os.Getenv("TODO_BACKEND")); v != "" {
		cfg.Backend = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_THEME")); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_FPS")); v != "" {
		if fps, err := strconv.Atoi(v); err == nil && fps > 0 {
			cfg.FrameMillis = max(1000/fps, 1)
		}
	}
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		cfg.NoColor = true
	}
	return cfg.normalized(), nil
}

func (c Config) normalized() Config {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		c.Backend = BackendTea
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme == "" {
		c.Theme = "auto"
	}
	if c.FrameMillis <= 0 {
		c.FrameMillis = defaultFrameMillis
	}
	return c
}

// Validate reports unknown backend or theme names.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendTea, BackendTcell:
	default:
		return errors.New("unknown backend: " + strconv.Quote(c.Backend) + " (expected tea|tcell)")
	}
	switch c.Theme {
	case "auto", "light", "dark":
	default:
		return errors.New("unknown theme: " + strconv.Quote(c.Theme) + " (expected auto|light|dark)")
	}
	return nil
}

// Set updates one setting by its JSON name.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "backend":
		c.Backend = value
	case "theme":
		c.Theme = value
	case "frameMillis":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid frameMillis: %q (expected a positive integer)", value)
		}
		c.FrameMillis = n
	case "noColor":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid noColor: %q (expected true|false)", value)
		}
		c.NoColor = b
	default:
		return fmt.Errorf("unknown config key: %q (expected backend|theme|frameMillis|noColor)", key)
	}
	*c = c.normalized()
	return c.Validate()
}

func SaveConfig(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg.normalized(), "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}
