package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/kanban/internal/domain"
	"github.com/runoshun/kanban/internal/testutil"
	"github.com/runoshun/kanban/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Execute(t *testing.T) {
	t.Run("creates global config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.GlobalConfigInfo = domain.ConfigInfo{
			Path: "/home/test/.config/kanban/config.toml",
		}
		cfg := domain.NewDefaultConfig()

		uc := usecase.NewInitConfig(manager)
		out, err := uc.Execute(context.Background(), usecase.InitConfigInput{Config: cfg})

		require.NoError(t, err)
		assert.Equal(t, "/home/test/.config/kanban/config.toml", out.Path)
		assert.True(t, manager.InitGlobalCalled)
		assert.Same(t, cfg, manager.InitConfig)
		assert.False(t, manager.Overwrite)
	})

	t.Run("passes force through", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{Force: true})

		require.NoError(t, err)
		assert.True(t, manager.Overwrite)
	})

	t.Run("returns error when config already exists", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.InitGlobalErr = domain.ErrConfigExists

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
