// Package config loads the user-level settings in ~/.architect/config.yaml
// and the ~/.architect/.env overlay.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the in-memory representation of ~/.architect/config.yaml.
type Config struct {
	AgentDir       string   `yaml:"agent_dir"`
	PresetsDir     string   `yaml:"presets_dir"`
	DefaultLicense string   `yaml:"default_license"`
	Author         string   `yaml:"author,omitempty"`
	LogLevel       string   `yaml:"log_level,omitempty"`
	CriticalFiles  []string `yaml:"critical_files,omitempty"`
	// TemplateExcludes are glob patterns skipped when loading custom templates.
	TemplateExcludes []string `yaml:"template_excludes,omitempty"`
}

// HomeDir returns the absolute path to ~/.architect/, or $ARCHITECT_HOME
// when set.
func HomeDir() (string, error) {
	if v := os.Getenv("ARCHITECT_HOME"); v != "" {
		return ExpandPath(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".architect"), nil
}

// ConfigPath returns the absolute path to config.yaml.
func ConfigPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() (*Config, error) {
	dir, err := HomeDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		AgentDir:       ".agent",
		PresetsDir:     filepath.Join(dir, "presets"),
		DefaultLicense: "mit",
		LogLevel:       "info",
		CriticalFiles: []string{
			".env",
			".agent/rules/02_security.md",
			"SECURITY.md",
		},
		TemplateExcludes: []string{
			".DS_Store",
			"Thumbs.db",
			"*.tmp",
			"*.bak",
			"*~",
			"**/.git/**",
		},
	}, nil
}

// Load reads config.yaml over the defaults and applies the environment
// overlay. A missing file is not an error.
func Load() (*Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return nil, err
	}
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	cfg.PresetsDir, err = ExpandPath(cfg.PresetsDir)
	if err != nil {
		return nil, err
	}
	if cfg.AgentDir == "" {
		cfg.AgentDir = ".agent"
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	overrides := []struct {
		key string
		dst *string
	}{
		{"ARCHITECT_AUTHOR", &cfg.Author},
		{"ARCHITECT_LICENSE", &cfg.DefaultLicense},
		{"ARCHITECT_LOG_LEVEL", &cfg.LogLevel},
		{"ARCHITECT_AGENT_DIR", &cfg.AgentDir},
	}
	for _, o := range overrides {
		v, err := GetConfigValue(o.key)
		if err != nil {
			return err
		}
		if v != "" {
			*o.dst = v
		}
	}
	return nil
}

// Save marshals cfg and writes it to config.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(path), err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
