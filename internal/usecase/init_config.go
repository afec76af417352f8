package usecase

import (
	"context"

	"github.com/runoshun/kanban/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Config *domain.Config // Values written into the template
	Force  bool           // Overwrite an existing file
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig generates the global configuration file.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{
		configManager: configManager,
	}
}

// Execute writes the global config file from the template.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	info := uc.configManager.GetGlobalConfigInfo()
	if err := uc.configManager.InitGlobalConfig(in.Config, in.Force); err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: info.Path}, nil
}
