package domain

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- explicit file).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigManager manages the global configuration file.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitGlobalConfig writes a commented config file rendered from cfg.
	// It fails with ErrConfigExists unless overwrite is set.
	InitGlobalConfig(cfg *Config, overwrite bool) error
}

// Logger provides logging functionality.
type Logger interface {
	// Info logs an info message.
	Info(category, msg string)

	// Debug logs a debug message.
	Debug(category, msg string)

	// Warn logs a warning message.
	Warn(category, msg string)

	// Error logs an error message.
	Error(category, msg string)
}

// NopLogger discards every entry.
type NopLogger struct{}

func (NopLogger) Info(string, string)  {}
func (NopLogger) Debug(string, string) {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}
