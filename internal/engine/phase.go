package engine

import (
	"errors"
	"fmt"
)

// Phase is the stage of a match.
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhasePlayerTurn
	PhaseOpponentTurn
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseOpponentTurn:
		return "opponent_turn"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event drives phase transitions.
type Event uint8

const (
	EventSetupComplete Event = iota
	EventHit
	EventMiss
	EventFleetSunk
	EventReset
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventSetupComplete:
		return "setup_complete"
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventFleetSunk:
		return "fleet_sunk"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned for an event the current phase does not accept.
var ErrInvalidTransition = errors.New("engine: invalid phase transition")

type transition struct {
	from Phase
	on   Event
}

// transitions is the whole state machine. A hit keeps the shooter in its
// phase (extra turn); Reset is accepted from every phase.
var transitions = map[transition]Phase{
	{PhaseSetup, EventSetupComplete}: PhasePlayerTurn,

	{PhasePlayerTurn, EventHit}:       PhasePlayerTurn,
	{PhasePlayerTurn, EventMiss}:      PhaseOpponentTurn,
	{PhasePlayerTurn, EventFleetSunk}: PhaseGameOver,

	{PhaseOpponentTurn, EventHit}:       PhaseOpponentTurn,
	{PhaseOpponentTurn, EventMiss}:      PhasePlayerTurn,
	{PhaseOpponentTurn, EventFleetSunk}: PhaseGameOver,

	{PhaseSetup, EventReset}:        PhaseSetup,
	{PhasePlayerTurn, EventReset}:   PhaseSetup,
	{PhaseOpponentTurn, EventReset}: PhaseSetup,
	{PhaseGameOver, EventReset}:     PhaseSetup,
}

// Transition returns the phase that follows p on event e.
func Transition(p Phase, e Event) (Phase, error) {
	next, ok := transitions[transition{from: p, on: e}]
	if !ok {
		return p, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e, p)
	}
	return next, nil
}

// ShotEvent classifies a resolved shot for Transition.
func ShotEvent(res ShotResult) Event {
	switch {
	case res.Hit && IsGameOver(res.Fleet):
		return EventFleetSunk
	case res.Hit:
		return EventHit
	default:
		return EventMiss
	}
}
