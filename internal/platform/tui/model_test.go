package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

// stubGame finishes after a fixed number of confirms and reports a win.
type stubGame struct {
	resets   int
	confirms int
	needed   int
	paused   bool
	width    int
	height   int
	last     core.InputFrame
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.confirms = 0
	g.width, g.height = cfg.ScreenW, cfg.ScreenH
}

func (g *stubGame) Resize(w, h int) {
	g.width, g.height = w, h
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.last = in.Clone()
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) && g.over() {
		g.confirms = 0
	}
	if in.Has(core.ActionConfirm) && !g.over() {
		g.confirms++
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub board")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: 10 * g.confirms, GameOver: g.over(), Paused: g.paused}
}

func (g *stubGame) Summary() core.Summary {
	return core.Summary{Winner: storage.WinnerPlayer, Shots: g.confirms, Hits: g.confirms, Score: 10 * g.confirms}
}

func (g *stubGame) over() bool { return g.confirms >= g.needed }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func confirm(t *testing.T, m Model) Model {
	t.Helper()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	return send(t, m, TickMsg{})
}

func TestModelRecordsResultOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{needed: 2}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}, Options{Player: "alice"})
	m.Init()

	m = confirm(t, m)
	m = confirm(t, m)
	require.True(t, m.gameState.GameOver)

	// Further ticks while the game is over must not record again.
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})

	results, err := store.RecentResults("stub", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "alice", results[0].Player)
	assert.Equal(t, storage.WinnerPlayer, results[0].Winner)
	assert.Equal(t, 20, results[0].Score)
	assert.NotEmpty(t, results[0].MatchID)

	// A restarted match is recorded again when it ends.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	m = send(t, m, TickMsg{})
	assert.False(t, m.gameState.GameOver)
	m = confirm(t, m)
	confirm(t, m)

	results, err = store.RecentResults("stub", 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestModelWithoutStore(t *testing.T) {
	game := &stubGame{needed: 1}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}, Options{})
	m.Init()

	m = confirm(t, m)
	assert.True(t, m.gameState.GameOver)
	assert.True(t, m.resultSaved)
}

func TestModelInputClearedEachTick(t *testing.T) {
	game := &stubGame{needed: 5}
	m := NewModel(game, nil, core.DefaultConfig(), Options{})
	m.Init()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = send(t, m, TickMsg{})
	assert.True(t, game.last.Has(core.ActionRotate))

	send(t, m, TickMsg{})
	assert.Empty(t, game.last.Actions)
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{needed: 5}
	m := NewModel(game, nil, core.DefaultConfig(), Options{})
	m.Init()
	require.Equal(t, 1, game.resets)

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 1, game.resets, "resize must not restart the match")
	assert.Equal(t, 120, game.width)
	assert.Equal(t, 40, game.height)
	assert.Equal(t, 120, m.screen.Width())
}

func TestModelBackToMenu(t *testing.T) {
	game := &stubGame{needed: 5}
	m := NewModel(game, nil, core.DefaultConfig(), Options{})
	m.Init()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu(), "back is ignored while playing")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = send(t, m, TickMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
	assert.False(t, m.IsQuitting())
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{needed: 1}, nil, core.DefaultConfig(), Options{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.NotNil(t, cmd)
	assert.True(t, next.(Model).IsQuitting())
	assert.Empty(t, next.(Model).View())
}

func TestModelView(t *testing.T) {
	m := NewModel(&stubGame{needed: 1}, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 2, TickRate: 30, Seed: 1}, Options{})
	m.Init()

	view := m.View()

	assert.True(t, strings.Contains(view, "stub board"))
}
