package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"strconv"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Seed     []SeedTask `toml:"seed,omitempty"` // Replaces the default seed when non-empty
	Warnings []string   `toml:"-"`
	Log      LogConfig  `toml:"log"`
	Form     FormConfig `toml:"form"`
}

// FormConfig holds new-task form settings from [form] section.
type FormConfig struct {
	ResetAfterSubmit bool `toml:"reset_after_submit"` // Clear form buffers after a task is added
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// Default values.
const (
	DefaultLogLevel = "info"
)

// File and directory names.
const (
	AppDirName     = "kanban"
	ConfigFileName = "config.toml"
	LogsDirName    = "logs"
	LogFileName    = "kanban.log"
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// SeedTasks returns the configured seed, or the default seed when none is set.
func (c *Config) SeedTasks() []SeedTask {
	if c == nil || len(c.Seed) == 0 {
		return DefaultSeed()
	}
	return c.Seed
}

// Validate checks every seed entry.
func (c *Config) Validate() error {
	for i, st := range c.Seed {
		if _, err := st.Validate(); err != nil {
			return fmt.Errorf("seed[%d]: %w", i, err)
		}
	}
	return nil
}

// Reducer returns the reducer configured by the form settings.
func (c *Config) Reducer() Reducer {
	if c == nil {
		return Reducer{}
	}
	return Reducer{ResetFormOnSubmit: c.Form.ResetAfterSubmit}
}

// GlobalAppDir returns the global application directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalAppDir(configHome), ConfigFileName)
}

// LogPath returns the log file path under an application directory.
func LogPath(appDir string) string {
	return filepath.Join(appDir, LogsDirName, LogFileName)
}

// ConfigInfo holds information about a config file.
type ConfigInfo struct {
	Path    string // File path
	Content string // File content (empty if not exists)
	Exists  bool   // Whether the file exists
}

type configTemplateData struct {
	LogLevel         string
	Seed             []SeedTask
	ResetAfterSubmit bool
}

// RenderConfigTemplate renders a commented config file from cfg.
// The seed section lists the effective seed so it can be edited in place.
func RenderConfigTemplate(cfg *Config) string {
	level := DefaultLogLevel
	if cfg != nil && cfg.Log.Level != "" {
		level = cfg.Log.Level
	}
	seed := make([]SeedTask, 0, len(cfg.SeedTasks()))
	for _, st := range cfg.SeedTasks() {
		if st.Status == "" {
			st.Status = StatusTodo.String()
		}
		seed = append(seed, st)
	}

	data := configTemplateData{
		LogLevel:         level,
		Seed:             seed,
		ResetAfterSubmit: cfg != nil && cfg.Form.ResetAfterSubmit,
	}

	tmpl, err := template.New("config").
		Delims("<<", ">>").
		Funcs(template.FuncMap{"quote": strconv.Quote}).
		Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
