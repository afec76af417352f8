// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"sync"

	"github.com/runoshun/kanban/internal/domain"
	"github.com/runoshun/kanban/internal/infra/script"
)

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config       *domain.Config
	GlobalConfig *domain.Config
	LoadErr      error
	GlobalErr    error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config or error.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	if m.GlobalConfig != nil {
		return m.GlobalConfig, nil
	}
	return m.Config, nil
}

// LogEntry is a single line recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that records every call.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) record(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

// Count returns how many entries were recorded at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockScriptLoader is a test double for loading replay scripts.
type MockScriptLoader struct {
	Script  *script.Script
	LoadErr error
	Path    string // Last requested path
}

// Load records path and returns the configured script or error.
func (m *MockScriptLoader) Load(path string) (*script.Script, error) {
	m.Path = path
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Script, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitGlobalErr    error
	InitConfig       *domain.Config // Config passed to the last init
	GlobalConfigInfo domain.ConfigInfo
	InitGlobalCalled bool
	Overwrite        bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitGlobalConfig records the call and returns the configured error.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config, overwrite bool) error {
	m.InitGlobalCalled = true
	m.InitConfig = cfg
	m.Overwrite = overwrite
	return m.InitGlobalErr
}
