package battleship

import "github.com/vovakirdan/tui-battleship/internal/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateSetup        GameStateType = "setup"
	StatePlayerTurn   GameStateType = "player_turn"
	StateOpponentTurn GameStateType = "opponent_turn"
	StateGameOver     GameStateType = "game_over"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
// Boards are stored in their text form so snapshots compare with ==.
type Snapshot struct {
	Tick           uint64
	Mode           string
	State          GameStateType
	Winner         string
	Score          int
	PlayerShots    int
	PlayerHits     int
	OpponentShots  int
	OpponentHits   int
	PlayerAfloat   int
	OpponentAfloat int
	CursorRow      int
	CursorCol      int
	Vertical       bool
	Selected       int
	ThinkTicks     int
	PlayerBoard    string
	OpponentBoard  string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.Match == nil {
		return Snapshot{Tick: g.tick, Mode: string(g.mode)}
	}

	state := StatePlayerTurn
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.Phase() == engine.PhaseSetup:
		state = StateSetup
	case g.Phase() == engine.PhaseOpponentTurn:
		state = StateOpponentTurn
	case g.Phase() == engine.PhaseGameOver:
		state = StateGameOver
	}

	return Snapshot{
		Tick:           g.tick,
		Mode:           string(g.mode),
		State:          state,
		Winner:         g.Winner().String(),
		Score:          g.CurrentScore(),
		PlayerShots:    len(g.playerShots),
		PlayerHits:     g.PlayerHits(),
		OpponentShots:  len(g.opponentShots),
		OpponentHits:   g.OpponentHits(),
		PlayerAfloat:   len(g.playerFleet) - g.playerFleet.SunkCount(),
		OpponentAfloat: len(g.opponentFleet) - g.opponentFleet.SunkCount(),
		CursorRow:      g.cursor.Row,
		CursorCol:      g.cursor.Col,
		Vertical:       g.vertical,
		Selected:       g.selected,
		ThinkTicks:     g.thinkTicks,
		PlayerBoard:    g.playerBoard.String(),
		OpponentBoard:  g.opponentBoard.String(),
	}
}
