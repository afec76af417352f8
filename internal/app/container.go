// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/runoshun/kanban/internal/domain"
	"github.com/runoshun/kanban/internal/infra/config"
	"github.com/runoshun/kanban/internal/infra/logging"
	"github.com/runoshun/kanban/internal/infra/script"
	"github.com/runoshun/kanban/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger
	Scripts       usecase.ScriptLoader

	// Configuration
	Config *domain.Config
	AppDir string // Global application directory; holds logs/
}

// New creates a new Container. configPath is an optional explicit config file.
func New(configPath string) (*Container, error) {
	loader := config.NewLoader(configPath)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	appDir := loader.GlobalDir()
	logger := logging.New(appDir, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		ConfigLoader:  loader,
		ConfigManager: config.NewManagerWithGlobalDir(appDir),
		Logger:        logger,
		Scripts:       script.NewParser(),
		Config:        cfg,
		AppDir:        appDir,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, loader domain.ConfigLoader, manager domain.ConfigManager, scripts usecase.ScriptLoader, logger domain.Logger) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		ConfigLoader:  loader,
		ConfigManager: manager,
		Logger:        logger,
		Scripts:       scripts,
		Config:        cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if l, ok := c.Logger.(*logging.Logger); ok {
		return l.Close()
	}
	return nil
}

// NewState returns a fresh board seeded from config.
func (c *Container) NewState() (*domain.State, error) {
	return domain.NewStateFromSeed(c.Config.SeedTasks())
}

// Reducer returns the reducer configured by the form settings.
func (c *Container) Reducer() domain.Reducer {
	return c.Config.Reducer()
}

// UseCase factory methods

// ShowBoardUseCase returns a new ShowBoard use case.
func (c *Container) ShowBoardUseCase() *usecase.ShowBoard {
	return usecase.NewShowBoard(c.Config)
}

// ReplayScriptUseCase returns a new ReplayScript use case.
func (c *Container) ReplayScriptUseCase() *usecase.ReplayScript {
	return usecase.NewReplayScript(c.Scripts, c.Config, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
