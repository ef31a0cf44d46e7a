// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/tarefa-app/tarefa/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	configDir string // Path to the config directory (e.g., ~/.config/tarefa)
}

// NewLoader creates a new Loader for the default config directory.
func NewLoader() *Loader {
	return &Loader{configDir: domain.DefaultConfigDir()}
}

// NewLoaderWithDir creates a new Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(configDir string) *Loader {
	return &Loader{configDir: configDir}
}

// Path returns the path of the config file the loader reads.
func (l *Loader) Path() string {
	return filepath.Join(l.configDir, domain.ConfigFileName)
}

// Load returns the configuration merged over defaults. A missing file is not
// an error; defaults are returned. Unknown keys are collected as warnings
// rather than rejected.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.configDir == "" {
		return base, nil
	}

	data, err := os.ReadFile(l.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	applyRaw(base, raw)
	return base, nil
}

// applyRaw merges the raw TOML map into cfg, collecting warnings for
// unknown sections and keys.
func applyRaw(cfg *domain.Config, raw map[string]any) {
	var warnings []string

	for section, value := range raw {
		switch section {
		case "store":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "path":
						if s, ok := v.(string); ok {
							cfg.Store.Path = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
					}
				}
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							cfg.Log.Level = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		case "ui":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "show_completed":
						if b, ok := v.(bool); ok {
							cfg.UI.ShowCompleted = b
						}
					case "accent":
						if s, ok := v.(string); ok {
							cfg.UI.Accent = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [ui]: %s", k))
					}
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	cfg.Warnings = warnings
}
