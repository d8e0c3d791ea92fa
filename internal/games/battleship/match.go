package battleship

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/engine"
)

// Errors returned by match operations.
var (
	ErrWrongPhase        = errors.New("battleship: not allowed in this phase")
	ErrAlreadyFired      = errors.New("battleship: cell already fired at")
	ErrUnknownShip       = errors.New("battleship: no such ship in fleet")
	ErrShipAlreadyPlaced = errors.New("battleship: ship already placed")
	ErrFleetIncomplete   = errors.New("battleship: fleet not fully placed")
	ErrPlacementRejected = errors.New("battleship: placement rejected")
)

// Side identifies who fired a shot or won the match.
type Side uint8

const (
	SideNone Side = iota
	SidePlayer
	SideOpponent
)

// String returns the side name as stored in the results log.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return ""
	}
}

// Outcome describes one resolved shot.
type Outcome struct {
	Side     Side
	At       engine.Coord
	Hit      bool
	Sunk     *engine.Ship // Ship sunk by this shot, nil otherwise
	GameOver bool
}

// MatchConfig holds the rules a match is played with.
type MatchConfig struct {
	Fleet                []engine.ShipSpec
	MaxPlacementAttempts int
}

// Match sequences engine calls for one game: it owns both boards and fleets,
// the shot histories, the phase and the opponent.
type Match struct {
	rng   engine.Random
	rules MatchConfig

	phase  engine.Phase
	winner Side

	playerBoard   engine.Board
	playerFleet   engine.Fleet
	opponentBoard engine.Board
	opponentFleet engine.Fleet

	playerShots   []engine.Coord
	opponentShots []engine.Coord
	playerFired   map[engine.Coord]bool
	playerHits    int
	opponentHits  int

	opponent *engine.Opponent
}

// NewMatch creates a match in the setup phase with the opponent's fleet
// already placed at random.
func NewMatch(rng engine.Random, cfg MatchConfig) (*Match, error) {
	m := &Match{rng: rng, rules: cfg}
	if err := m.reset(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Match) reset() error {
	board, fleet, err := engine.PlaceFleet(m.rng, m.rules.Fleet, m.rules.MaxPlacementAttempts)
	if err != nil {
		return fmt.Errorf("battleship: place opponent fleet: %w", err)
	}

	m.phase = engine.PhaseSetup
	m.winner = SideNone
	m.playerBoard = engine.InitBoard()
	m.playerFleet = engine.NewFleet(m.rules.Fleet)
	m.opponentBoard = board
	m.opponentFleet = fleet
	m.playerShots = nil
	m.opponentShots = nil
	m.playerFired = make(map[engine.Coord]bool)
	m.playerHits = 0
	m.opponentHits = 0
	m.opponent = engine.NewOpponent(m.rng, engine.Size, nil)
	return nil
}

// Restart abandons the current match and starts a new one in setup.
func (m *Match) Restart() error {
	if _, err := engine.Transition(m.phase, engine.EventReset); err != nil {
		return err
	}
	return m.reset()
}

// PlacePlayerShip places the named ship on the player's board.
func (m *Match) PlacePlayerShip(name string, at engine.Coord, vertical bool) error {
	if m.phase != engine.PhaseSetup {
		return fmt.Errorf("%w: %s", ErrWrongPhase, m.phase)
	}

	ship, ok := m.playerFleet.Ship(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownShip, name)
	}
	if ship.Placed() {
		return fmt.Errorf("%w: %s", ErrShipAlreadyPlaced, name)
	}

	if err := engine.CheckPlacement(m.playerBoard, ship, at, vertical); err != nil {
		return fmt.Errorf("%w: %s at %s: %w", ErrPlacementRejected, name, at, err)
	}

	board, positions, _ := engine.PlaceShip(m.playerBoard, ship, at, vertical)
	m.playerBoard = board
	m.playerFleet = m.playerFleet.WithPlacement(name, positions, vertical)
	return nil
}

// AutoPlacePlayer places every ship the player has not placed yet. With
// nothing placed by hand it may start over like the opponent's placement;
// otherwise the ships already on the board stay where they are.
func (m *Match) AutoPlacePlayer() error {
	if m.phase != engine.PhaseSetup {
		return fmt.Errorf("%w: %s", ErrWrongPhase, m.phase)
	}

	var (
		board engine.Board
		fleet engine.Fleet
		err   error
	)
	if m.playerFleet.AnyPlaced() {
		board, fleet, err = engine.RandomPlacement(m.rng, m.playerBoard, m.playerFleet, m.rules.MaxPlacementAttempts)
	} else {
		board, fleet, err = engine.PlaceFleet(m.rng, m.rules.Fleet, m.rules.MaxPlacementAttempts)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPlacementRejected, err)
	}
	m.playerBoard = board
	m.playerFleet = fleet
	return nil
}

// ClearPlayerFleet removes every ship from the player's board.
func (m *Match) ClearPlayerFleet() error {
	if m.phase != engine.PhaseSetup {
		return fmt.Errorf("%w: %s", ErrWrongPhase, m.phase)
	}
	m.playerBoard = engine.InitBoard()
	m.playerFleet = engine.NewFleet(m.rules.Fleet)
	return nil
}

// StartBattle ends setup. The player shoots first.
func (m *Match) StartBattle() error {
	if m.phase != engine.PhaseSetup {
		return fmt.Errorf("%w: %s", ErrWrongPhase, m.phase)
	}
	if !m.playerFleet.AllPlaced() {
		return ErrFleetIncomplete
	}
	return m.advance(engine.EventSetupComplete)
}

// FirePlayerShot fires at the opponent's board.
// A hit keeps the turn; a miss passes it to the opponent.
func (m *Match) FirePlayerShot(at engine.Coord) (Outcome, error) {
	if m.phase != engine.PhasePlayerTurn {
		return Outcome{}, fmt.Errorf("%w: %s", ErrWrongPhase, m.phase)
	}
	if !at.InBounds() {
		return Outcome{}, fmt.Errorf("battleship: fire at %s: %w", at, engine.ErrOutOfBounds)
	}
	if m.playerFired[at] {
		return Outcome{}, fmt.Errorf("%w: %s", ErrAlreadyFired, at)
	}

	res := engine.ResolveShot(m.opponentBoard, m.opponentFleet, at)
	m.opponentBoard = res.Board
	m.opponentFleet = res.Fleet
	m.playerShots = append(m.playerShots, at)
	m.playerFired[at] = true
	if res.Hit {
		m.playerHits++
	}

	return m.finishShot(SidePlayer, at, res)
}

// OpponentTurn lets the opponent fire one shot at the player's board.
func (m *Match) OpponentTurn() (Outcome, error) {
	if m.phase != engine.PhaseOpponentTurn {
		return Outcome{}, fmt.Errorf("%w: %s", ErrWrongPhase, m.phase)
	}

	at := m.opponent.NextShot()
	res := engine.ResolveShot(m.playerBoard, m.playerFleet, at)
	m.playerBoard = res.Board
	m.playerFleet = res.Fleet
	m.opponentShots = append(m.opponentShots, at)
	if res.Hit {
		m.opponentHits++
	}

	return m.finishShot(SideOpponent, at, res)
}

func (m *Match) finishShot(side Side, at engine.Coord, res engine.ShotResult) (Outcome, error) {
	event := engine.ShotEvent(res)
	if err := m.advance(event); err != nil {
		return Outcome{}, err
	}
	if event == engine.EventFleetSunk {
		m.winner = side
	}

	return Outcome{
		Side:     side,
		At:       at,
		Hit:      res.Hit,
		Sunk:     res.Sunk,
		GameOver: m.phase == engine.PhaseGameOver,
	}, nil
}

func (m *Match) advance(e engine.Event) error {
	next, err := engine.Transition(m.phase, e)
	if err != nil {
		return err
	}
	m.phase = next
	return nil
}

// Phase returns the current phase.
func (m *Match) Phase() engine.Phase { return m.phase }

// Winner returns the side that sank the other's fleet, or SideNone.
func (m *Match) Winner() Side { return m.winner }

// PlayerBoard returns the player's board.
func (m *Match) PlayerBoard() engine.Board { return m.playerBoard }

// OpponentBoard returns the opponent's board, ships included.
func (m *Match) OpponentBoard() engine.Board { return m.opponentBoard }

// PlayerFleet returns a copy of the player's fleet.
func (m *Match) PlayerFleet() engine.Fleet { return m.playerFleet.Clone() }

// OpponentFleet returns a copy of the opponent's fleet.
func (m *Match) OpponentFleet() engine.Fleet { return m.opponentFleet.Clone() }

// PlayerShots returns the player's shot history in firing order.
func (m *Match) PlayerShots() []engine.Coord {
	return append([]engine.Coord(nil), m.playerShots...)
}

// OpponentShots returns the opponent's shot history in firing order.
func (m *Match) OpponentShots() []engine.Coord {
	return append([]engine.Coord(nil), m.opponentShots...)
}

// PlayerHits returns how many of the player's shots hit.
func (m *Match) PlayerHits() int { return m.playerHits }

// OpponentHits returns how many of the opponent's shots hit.
func (m *Match) OpponentHits() int { return m.opponentHits }

// HasFired returns true if the player already fired at c.
func (m *Match) HasFired(c engine.Coord) bool { return m.playerFired[c] }
