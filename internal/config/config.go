package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Config represents the ewgpal configuration.
type Config struct {
	Output   string   `json:"output"`
	FontSize float64  `json:"fontSize"`
	LogLevel string   `json:"logLevel"`
	View     bool     `json:"view"`
	Types    []string `json:"types,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Output:   "ewgpal.png",
		FontSize: 16,
		LogLevel: "info",
	}
}

// ConfigDir returns the platform-appropriate config directory for ewgpal.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ewgpal"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "ewgpal"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "ewgpal"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "ewgpal"), nil
	default:
		return filepath.Join(home, ".config", "ewgpal"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Output != "" {
		dst.Output = src.Output
	}
	if src.FontSize > 0 {
		dst.FontSize = src.FontSize
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if len(src.Types) > 0 {
		dst.Types = src.Types
	}
	// JSON's zero value for bool can't distinguish unset from false, so the
	// file can only switch View on.
	dst.View = dst.View || src.View
}

func mergeEnv(cfg *Config) error {
	if v := os.Getenv("EWGPAL_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("EWGPAL_FONT_SIZE"); v != "" {
		size, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("EWGPAL_FONT_SIZE must be a number: %w", err)
		}
		cfg.FontSize = size
	}
	if v := os.Getenv("EWGPAL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	if overrides == nil {
		return nil
	}
	if v, ok := overrides["output"]; ok && v != "" {
		cfg.Output = v
	}
	if v, ok := overrides["fontSize"]; ok && v != "" {
		size, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("fontSize must be a number: %w", err)
		}
		cfg.FontSize = size
	}
	if v, ok := overrides["logLevel"]; ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := overrides["types"]; ok && v != "" {
		cfg.Types = splitList(v)
	}
	if v, ok := overrides["view"]; ok && v != "" {
		view, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("view must be a boolean: %w", err)
		}
		cfg.View = view
	}
	return nil
}

// splitList splits a comma-separated value, trimming whitespace and dropping
// empty elements.
func splitList(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "output":
		cfg.Output = value
	case "fontSize":
		size, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("fontSize must be a number: %w", err)
		}
		cfg.FontSize = size
	case "logLevel":
		cfg.LogLevel = value
	case "view":
		view, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("view must be a boolean: %w", err)
		}
		cfg.View = view
	case "types":
		cfg.Types = splitList(value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
