package usecase

import (
	"context"

	"github.com/runoshun/kanban/internal/domain"
	"github.com/runoshun/kanban/internal/view"
)

// ShowBoardInput contains the parameters for showing a board.
type ShowBoardInput struct {
	State *domain.State // Board to show; nil = the configured seed
}

// ShowBoardOutput contains the rendered board.
type ShowBoardOutput struct {
	State *domain.State
	Tree  view.Tree
}

// ShowBoard is the use case for rendering a board snapshot.
type ShowBoard struct {
	config *domain.Config
}

// NewShowBoard creates a new ShowBoard use case.
func NewShowBoard(cfg *domain.Config) *ShowBoard {
	return &ShowBoard{config: cfg}
}

// Execute renders the given state, or a freshly seeded one.
func (uc *ShowBoard) Execute(_ context.Context, in ShowBoardInput) (*ShowBoardOutput, error) {
	state := in.State
	if state == nil {
		s, err := domain.NewStateFromSeed(uc.config.SeedTasks())
		if err != nil {
			return nil, err
		}
		state = s
	}
	return &ShowBoardOutput{
		State: state,
		Tree:  view.Render(state),
	}, nil
}
