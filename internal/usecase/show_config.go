// Package usecase contains the application use cases.
package usecase

import (
	"context"

	"github.com/runoshun/kanban/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	Config       *domain.Config    // Effective configuration after merging
	Warnings     []string          // Non-fatal problems found while loading
	GlobalConfig domain.ConfigInfo // Global config file info
}

// ShowConfig loads the effective configuration.
type ShowConfig struct {
	configManager domain.ConfigManager
	configLoader  domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, configLoader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		configLoader:  configLoader,
	}
}

// Execute loads and returns the merged configuration.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, err
	}
	return &ShowConfigOutput{
		Config:       cfg,
		Warnings:     cfg.Warnings,
		GlobalConfig: uc.configManager.GetGlobalConfigInfo(),
	}, nil
}
