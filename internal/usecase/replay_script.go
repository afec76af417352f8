package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/kanban/internal/domain"
	"github.com/runoshun/kanban/internal/infra/script"
)

// ScriptLoader loads replay scripts from disk.
type ScriptLoader interface {
	Load(path string) (*script.Script, error)
}

// ReplayScriptInput contains the parameters for replaying a script.
type ReplayScriptInput struct {
	Path string // Path to the YAML script (required)
}

// ReplayScriptOutput contains the result of replaying a script.
type ReplayScriptOutput struct {
	State   *domain.State // Final board state
	Applied int           // Number of messages dispatched
}

// ReplayScript is the use case for applying a message script headlessly.
type ReplayScript struct {
	scripts ScriptLoader
	config  *domain.Config
	logger  domain.Logger
}

// NewReplayScript creates a new ReplayScript use case.
func NewReplayScript(scripts ScriptLoader, cfg *domain.Config, logger domain.Logger) *ReplayScript {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &ReplayScript{
		scripts: scripts,
		config:  cfg,
		logger:  logger,
	}
}

// Execute loads the script, seeds a state and applies every step in order.
// The seed comes from the script when present, otherwise from config.
func (uc *ReplayScript) Execute(ctx context.Context, in ReplayScriptInput) (*ReplayScriptOutput, error) {
	sc, err := uc.scripts.Load(in.Path)
	if err != nil {
		return nil, err
	}

	seed := uc.config.SeedTasks()
	if len(sc.Seed) > 0 {
		seed = sc.Seed
	}
	state, err := domain.NewStateFromSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}

	reducer := uc.config.Reducer()
	applied := 0
	for _, msg := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		reducer.Apply(state, msg)
		uc.logger.Debug("replay", domain.DescribeMsg(msg))
		applied++
	}
	uc.logger.Info("replay", fmt.Sprintf("applied %d steps from %s", applied, in.Path))

	return &ReplayScriptOutput{
		State:   state,
		Applied: applied,
	}, nil
}
