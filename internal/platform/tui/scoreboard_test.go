package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-battleship/internal/core"
	_ "github.com/vovakirdan/tui-battleship/internal/games/battleship"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

func seedResults(t *testing.T, store *storage.Store) {
	t.Helper()
	for _, r := range []storage.Result{
		{GameID: "battleship", Player: "alice", Winner: storage.WinnerPlayer, Shots: 60, Hits: 17, Score: 1400},
		{GameID: "battleship", Player: "bob", Winner: storage.WinnerOpponent, Shots: 70, Hits: 12, Score: 120},
		{GameID: "battleship", Player: "carol", Winner: storage.WinnerPlayer, Shots: 45, Hits: 17, Score: 1550},
	} {
		_, err := store.SaveResult(r)
		require.NoError(t, err)
	}
}

func updateScoreboard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	require.True(t, ok)
	return sb
}

func TestScoreboardLoadsTopResults(t *testing.T) {
	store := openStore(t)
	seedResults(t, store)

	m := NewScoreboardModel(store, 120, 40)

	require.Equal(t, "battleship", m.currentGameID())
	require.Len(t, m.results, 3)
	assert.Equal(t, 1550, m.results[0].Score)
	assert.Equal(t, 120, m.results[2].Score)
	assert.Equal(t, 3, m.stats.Played)
	assert.Equal(t, 2, m.stats.Wins)
	assert.Equal(t, 45, m.stats.BestShots)

	rows := m.table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1", "1550", "Win", "45", "38%", "carol"}, []string(rows[0][:6]))

	view := m.View()
	assert.Contains(t, view, "HIGH SCORES - Battleship")
	assert.Contains(t, view, "Played 3  Won 2  Lost 1")
}

func TestScoreboardToggleView(t *testing.T) {
	store := openStore(t)
	seedResults(t, store)
	m := NewScoreboardModel(store, 120, 40)

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})

	assert.Equal(t, ViewRecent, m.view)
	require.Len(t, m.results, 3)
	assert.Equal(t, "carol", m.results[0].Player, "newest first")
	assert.Contains(t, m.View(), "RECENT MATCHES")
}

func TestScoreboardCyclesModes(t *testing.T) {
	store := openStore(t)
	seedResults(t, store)
	m := NewScoreboardModel(store, 60, 30)

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "battleship_quick", m.currentGameID())
	assert.Empty(t, m.results)
	assert.Contains(t, m.View(), "No matches recorded yet.")

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "battleship", m.currentGameID())
	assert.Len(t, m.results, 3)
}

func TestScoreboardPrevModeWrapsAround(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 30)

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "battleship_quick", m.currentGameID())

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "battleship", m.currentGameID())
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	assert.Empty(t, m.results)
	assert.Contains(t, m.View(), "Results log unavailable.")
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	back := updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.IsGoingBack())
	assert.False(t, back.IsQuitting())

	quit := updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, quit.IsQuitting())
}

func TestMenuListsModes(t *testing.T) {
	store := openStore(t)
	seedResults(t, store)

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	require.Len(t, m.items, 2)
	assert.Equal(t, "battleship", m.items[0].GameID)
	assert.Equal(t, 1550, m.items[0].HighScore)
	assert.Equal(t, "battleship_quick", m.items[1].GameID)
	assert.Zero(t, m.items[1].HighScore)
	assert.True(t, strings.Contains(m.View(), "(best 1550)"))
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu := next.(MenuModel)

	assert.NotNil(t, cmd)
	require.NotNil(t, menu.Selected())
	assert.Equal(t, "battleship_quick", menu.Selected().GameID)
	assert.False(t, menu.IsQuitting())
}

func TestMenuCursorWrapsAround(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, len(m.items)-1, next.(MenuModel).cursor)

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Zero(t, next.(MenuModel).cursor)
}

func TestMenuScoreboard(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.True(t, next.(MenuModel).WantsScoreboard())
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 10))
	assert.Equal(t, "abcd.", truncateText("abcdefgh", 5))
	assert.Equal(t, "ab", truncateText("ab", 0))
}
