// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/kanban/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// knownSections lists the top-level keys understood by the loader.
var knownSections = map[string]bool{
	"form": true,
	"log":  true,
	"seed": true,
}

// Loader loads configuration from TOML files.
type Loader struct {
	path          string // Explicit config file (--config); empty = none
	globalConfDir string // Path to global config directory (e.g., ~/.config/kanban)
}

// NewLoader creates a new Loader. path is an optional explicit config file.
func NewLoader(path string) *Loader {
	return &Loader{
		path:          path,
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(path, globalConfDir string) *Loader {
	return &Loader{
		path:          path,
		globalConfDir: globalConfDir,
	}
}

// DefaultGlobalConfigDir returns the default global config directory.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalAppDir(configHome)
}

// GlobalDir returns the global config directory used by the loader.
func (l *Loader) GlobalDir() string {
	return l.globalConfDir
}

// Load returns the merged configuration (global + explicit file).
// The explicit file takes precedence over the global config. A missing
// global file is not an error; a missing explicit file is.
func (l *Loader) Load() (*domain.Config, error) {
	var global *layer
	if l.globalConfDir != "" {
		var err error
		global, err = l.loadLayer(filepath.Join(l.globalConfDir, domain.ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	var explicit *layer
	if l.path != "" {
		var err error
		explicit, err = l.loadLayer(l.path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, l.path)
			}
			return nil, err
		}
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if explicit != nil {
		base = mergeConfigs(base, explicit)
	}

	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	lay, err := l.loadLayer(filepath.Join(l.globalConfDir, domain.ConfigFileName))
	if err != nil {
		return nil, err
	}
	return lay.cfg, nil
}

// layer is one parsed config file together with its raw key tree.
type layer struct {
	cfg *domain.Config
	raw map[string]any
}

// has reports whether the file set key inside section.
func (l *layer) has(section, key string) bool {
	sec, ok := l.raw[section].(map[string]any)
	if !ok {
		return false
	}
	_, ok = sec[key]
	return ok
}

// loadLayer loads a configuration from a file.
func (l *Loader) loadLayer(path string) (*layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lay, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return lay, nil
}

// Parse decodes a TOML document. Unknown top-level keys are reported in
// Config.Warnings rather than failing the parse.
func Parse(data []byte) (*domain.Config, error) {
	lay, err := parse(data)
	if err != nil {
		return nil, err
	}
	return lay.cfg, nil
}

func parse(data []byte) (*layer, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	var unknown []string
	for key := range raw {
		if !knownSections[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key: %s", key))
	}
	return &layer{cfg: &cfg, raw: raw}, nil
}

// mergeConfigs overlays src on top of base. A key only overrides base
// when src actually sets it, so an explicit false still wins.
func mergeConfigs(base *domain.Config, src *layer) *domain.Config {
	out := *base
	if src.cfg.Log.Level != "" {
		out.Log.Level = src.cfg.Log.Level
	}
	if src.has("form", "reset_after_submit") {
		out.Form.ResetAfterSubmit = src.cfg.Form.ResetAfterSubmit
	}
	if len(src.cfg.Seed) > 0 {
		out.Seed = append([]domain.SeedTask(nil), src.cfg.Seed...)
	}
	out.Warnings = append(append([]string(nil), base.Warnings...), src.cfg.Warnings...)
	return &out
}

// Format encodes cfg as TOML.
func Format(cfg *domain.Config) ([]byte, error) {
	return toml.Marshal(cfg)
}
