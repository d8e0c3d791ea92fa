// Package battleship implements Battleship against a random-shooting
// opponent on top of the engine package.
package battleship

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/engine"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // Player places ships by hand
	ModeQuick   Mode = "quick"   // Player fleet is placed at random and battle starts at once
)

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Match to the platform: it turns input frames into match
// operations, paces the opponent and keeps the cursor and status message.
type Game struct {
	*Match

	mode Mode
	cfg  config.BattleshipConfig
	tick uint64

	screenW  int
	screenH  int
	tooSmall bool
	paused   bool

	cursor     engine.Coord
	vertical   bool // Orientation of the next placement
	selected   int  // Index of the ship being placed
	thinkTicks int  // Ticks left before the opponent fires

	lastPlayerShot   *engine.Coord
	lastOpponentShot *engine.Coord

	message      string
	messageColor core.Color
}

// New creates a classic Battleship game with manual ship placement.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewQuick creates a Battleship game that skips setup.
func NewQuick() *Game {
	return &Game{mode: ModeQuick}
}

func init() {
	registry.Register("battleship", func() registry.Game {
		return New()
	})
	registry.Register("battleship_quick", func() registry.Game {
		return NewQuick()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeQuick {
		return "battleship_quick"
	}
	return "battleship"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeQuick {
		return "Battleship (Quick Start)"
	}
	return "Battleship"
}

// Reset loads the config and starts a new match.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	bcfg, err := config.LoadBattleship(configPath)
	if err != nil {
		bcfg = config.DefaultBattleshipConfig()
		g.setMessage(fmt.Sprintf("Config error, using defaults: %v", err), core.ColorOrange)
	} else {
		g.message = ""
	}
	g.cfg = bcfg
	rng := engine.NewRandom(cfg.Seed)

	match, err := NewMatch(rng, MatchConfig{
		Fleet:                bcfg.ShipSpecs(),
		MaxPlacementAttempts: bcfg.Opponent.MaxPlacementAttempts,
	})
	if err != nil {
		g.setMessage(fmt.Sprintf("Config error, using defaults: %v", err), core.ColorOrange)
		g.cfg = config.DefaultBattleshipConfig()
		match, err = NewMatch(rng, MatchConfig{
			Fleet:                g.cfg.ShipSpecs(),
			MaxPlacementAttempts: g.cfg.Opponent.MaxPlacementAttempts,
		})
		if err != nil {
			panic(fmt.Sprintf("battleship: cannot place the standard fleet: %v", err))
		}
	}
	g.Match = match
	g.startMatch()
}

// startMatch resets per-match UI state and, in quick mode, skips setup.
func (g *Game) startMatch() {
	g.cursor = engine.C(0, 0)
	g.vertical = false
	g.selected = 0
	g.thinkTicks = 0
	g.lastPlayerShot = nil
	g.lastOpponentShot = nil

	if g.mode == ModeQuick {
		if err := g.AutoPlacePlayer(); err != nil {
			g.setMessage(describeError(err), core.ColorRed)
			return
		}
		if err := g.StartBattle(); err != nil {
			g.setMessage(describeError(err), core.ColorRed)
			return
		}
		if g.message == "" {
			g.setMessage("Fleets deployed. Fire at the enemy grid!", core.ColorCyan)
		}
		return
	}
	if g.message == "" {
		g.setMessage("Place your fleet. enter: place  r: rotate  a: auto", core.ColorCyan)
	}
}

// Resize updates the screen dimensions without touching the match.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minWidth || h < minHeight
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.Match == nil {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	if input.Has(core.ActionRestart) && g.Phase() == engine.PhaseGameOver {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && g.Phase() != engine.PhaseGameOver {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.Phase() {
	case engine.PhaseSetup:
		g.stepSetup(input)
	case engine.PhasePlayerTurn:
		g.stepPlayerTurn(input)
	case engine.PhaseOpponentTurn:
		g.stepOpponentTurn()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) restart() {
	if err := g.Restart(); err != nil {
		g.setMessage(err.Error(), core.ColorRed)
		return
	}
	g.paused = false
	g.message = ""
	g.startMatch()
}

func (g *Game) moveCursor(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.cursor.Row--
	case input.Has(core.ActionDown):
		g.cursor.Row++
	case input.Has(core.ActionLeft):
		g.cursor.Col--
	case input.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, engine.Size-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, engine.Size-1)
}

func (g *Game) stepSetup(input core.InputFrame) {
	g.moveCursor(input)
	fleet := g.playerFleet

	switch {
	case input.Has(core.ActionRotate):
		g.vertical = !g.vertical

	case input.Has(core.ActionCycle):
		if next := fleet.NextUnplaced(g.selected + 1); next >= 0 {
			g.selected = next
		}

	case input.Has(core.ActionAutoPlace):
		if err := g.AutoPlacePlayer(); err != nil {
			g.setMessage(describeError(err), core.ColorRed)
			return
		}
		g.setMessage("Fleet ready. Press enter to start the battle.", core.ColorGreen)

	case input.Has(core.ActionClear):
		if err := g.ClearPlayerFleet(); err == nil {
			g.selected = 0
			g.setMessage("Fleet cleared.", core.ColorCyan)
		}

	case input.Has(core.ActionConfirm):
		if fleet.AllPlaced() {
			g.beginBattle()
			return
		}
		g.placeSelected()
	}
}

func (g *Game) placeSelected() {
	ship := g.playerFleet[g.selected]
	if err := g.PlacePlayerShip(ship.Name, g.cursor, g.vertical); err != nil {
		g.setMessage(describeError(err), core.ColorRed)
		return
	}

	if next := g.playerFleet.NextUnplaced(g.selected); next >= 0 {
		g.selected = next
		g.setMessage(fmt.Sprintf("%s placed. Next: %s", ship.Name, g.playerFleet[next].Name), core.ColorGreen)
		return
	}
	g.setMessage("Fleet ready. Press enter to start the battle.", core.ColorGreen)
}

func (g *Game) beginBattle() {
	if err := g.StartBattle(); err != nil {
		g.setMessage(describeError(err), core.ColorRed)
		return
	}
	g.cursor = engine.C(0, 0)
	g.setMessage("Battle stations! Fire at the enemy grid.", core.ColorCyan)
}

func (g *Game) stepPlayerTurn(input core.InputFrame) {
	g.moveCursor(input)
	if !input.Has(core.ActionConfirm) {
		return
	}

	out, err := g.FirePlayerShot(g.cursor)
	if err != nil {
		g.setMessage(describeError(err), core.ColorOrange)
		return
	}
	at := out.At
	g.lastPlayerShot = &at

	switch {
	case out.GameOver:
		g.setMessage(fmt.Sprintf("You sank the %s. Enemy fleet destroyed!", out.Sunk.Name), core.ColorBrightGreen)
	case out.Sunk != nil:
		g.setMessage(fmt.Sprintf("%s: you sank the %s! Fire again.", at, out.Sunk.Name), core.ColorBrightGreen)
	case out.Hit:
		g.setMessage(fmt.Sprintf("%s: hit! Fire again.", at), core.ColorGreen)
	default:
		g.setMessage(fmt.Sprintf("%s: miss. Enemy is aiming...", at), core.ColorGray)
		g.thinkTicks = g.cfg.Opponent.ThinkTicks
	}
}

func (g *Game) stepOpponentTurn() {
	if g.thinkTicks > 0 {
		g.thinkTicks--
		return
	}

	out, err := g.OpponentTurn()
	if err != nil {
		g.setMessage(describeError(err), core.ColorRed)
		return
	}
	at := out.At
	g.lastOpponentShot = &at

	switch {
	case out.GameOver:
		g.setMessage(fmt.Sprintf("Enemy sank your %s. Your fleet is lost.", out.Sunk.Name), core.ColorBrightRed)
	case out.Sunk != nil:
		g.setMessage(fmt.Sprintf("Enemy fires at %s and sinks your %s!", at, out.Sunk.Name), core.ColorRed)
		g.thinkTicks = g.cfg.Opponent.ThinkTicks
	case out.Hit:
		g.setMessage(fmt.Sprintf("Enemy fires at %s: hit!", at), core.ColorRed)
		g.thinkTicks = g.cfg.Opponent.ThinkTicks
	default:
		g.setMessage(fmt.Sprintf("Enemy fires at %s: miss. Your turn.", at), core.ColorCyan)
	}
}

func (g *Game) setMessage(msg string, c core.Color) {
	g.message = msg
	g.messageColor = c
}

// describeError turns a match error into a short status line.
func describeError(err error) string {
	switch {
	case errors.Is(err, engine.ErrTooClose):
		return "Ships cannot touch, not even diagonally."
	case errors.Is(err, engine.ErrOverlap):
		return "That spot is already taken."
	case errors.Is(err, engine.ErrOutOfBounds):
		return "That does not fit on the board."
	case errors.Is(err, ErrAlreadyFired):
		return "You already fired there."
	case errors.Is(err, ErrFleetIncomplete):
		return "Place every ship first."
	case errors.Is(err, engine.ErrPlacementImpossible):
		return "No room left. Press c to clear and try again."
	default:
		return err.Error()
	}
}

// CurrentScore returns the player's score for the match so far.
func (g *Game) CurrentScore() int {
	if g.Match == nil {
		return 0
	}
	return Score(g.Winner(), len(g.playerShots), g.PlayerHits())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	over := g.Match != nil && g.Phase() == engine.PhaseGameOver
	return core.GameState{
		Score:    g.CurrentScore(),
		GameOver: over,
		Paused:   g.paused,
	}
}

// Summary describes the match for the results log.
func (g *Game) Summary() core.Summary {
	if g.Match == nil {
		return core.Summary{}
	}
	return core.Summary{
		Winner: g.Winner().String(),
		Shots:  len(g.playerShots),
		Hits:   g.PlayerHits(),
		Score:  g.CurrentScore(),
	}
}
