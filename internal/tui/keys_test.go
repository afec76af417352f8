package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_CardActions(t *testing.T) {
	km := DefaultKeyMap()

	for _, r := range []string{">", "."} {
		assert.True(t, key.Matches(keyRunes(r), km.Advance), r)
	}
	for _, r := range []string{"<", ","} {
		assert.True(t, key.Matches(keyRunes(r), km.Retreat), r)
	}
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyTab}, km.NextField))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyShiftTab}, km.PrevField))
}

func TestKeyMap_HelpHasDescriptions(t *testing.T) {
	km := DefaultKeyMap()

	assert.NotEmpty(t, km.ShortHelp())
	for _, group := range km.FullHelp() {
		for _, b := range group {
			assert.NotEmpty(t, b.Help().Key)
			assert.NotEmpty(t, b.Help().Desc)
		}
	}
}
