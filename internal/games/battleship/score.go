package battleship

import "github.com/vovakirdan/tui-battleship/internal/engine"

const (
	pointsPerHit = 10
	winBonus     = 1000
	// Each shot a win leaves unused out of the whole board is worth this much.
	pointsPerSpareShot = 10
)

// Score computes the player's score. Every hit is worth pointsPerHit while
// the match runs; a win replaces that with winBonus plus a bonus for every
// cell of the board left unfired.
func Score(winner Side, shots, hits int) int {
	if winner != SidePlayer {
		return hits * pointsPerHit
	}
	spare := max(engine.Size*engine.Size-shots, 0)
	return winBonus + spare*pointsPerSpareShot
}
