package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
	return NewSessionModel(openStore(t), cfg, "alice", log.New(io.Discard))
}

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func TestSessionStartsGame(t *testing.T) {
	m := newTestSession(t)

	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, screenGame, m.screen)
	assert.NotNil(t, cmd, "game start schedules the first tick")
	assert.Equal(t, "battleship", m.gameModel.game.ID())
	assert.Equal(t, "alice", m.gameModel.player)
	assert.Contains(t, m.View(), "YOUR FLEET")
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := newTestSession(t)

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenScoreboard, m.screen)
	assert.Contains(t, m.View(), "HIGH SCORES")

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.screen)
	assert.False(t, m.quitting)
	assert.Contains(t, m.View(), "B A T T L E S H I P")
}

func TestSessionQuitFromGame(t *testing.T) {
	m := newTestSession(t)
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestSessionBackFromPausedGame(t *testing.T) {
	m := newTestSession(t)
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m, _ = sessionSend(t, m, TickMsg{})
	require.True(t, m.gameModel.gameState.Paused)

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.screen)
}

func TestSessionResize(t *testing.T) {
	m := newTestSession(t)

	m, _ = sessionSend(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 100, m.config.ScreenW)
	assert.Equal(t, 30, m.menu.Config().ScreenH)
}
