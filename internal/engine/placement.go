package engine

import (
	"errors"
	"fmt"
)

// Placement errors returned by CheckPlacement and RandomPlacement.
var (
	ErrInvalidShip         = errors.New("engine: ship length must be positive")
	ErrOutOfBounds         = errors.New("engine: ship extends past the board edge")
	ErrOverlap             = errors.New("engine: ship overlaps an occupied cell")
	ErrTooClose            = errors.New("engine: ship touches another ship")
	ErrPlacementImpossible = errors.New("engine: no valid placement left")
)

// fleetRetries bounds how many times PlaceFleet restarts from an empty board.
const fleetRetries = 50

// Placement is a candidate position for a ship.
type Placement struct {
	Start    Coord
	Vertical bool
}

// Footprint returns the cells a ship of the given length would cover,
// extending down from start if vertical, otherwise to the right.
func Footprint(start Coord, length int, vertical bool) []Coord {
	if length <= 0 {
		return nil
	}
	cells := make([]Coord, length)
	for i := range length {
		if vertical {
			cells[i] = Coord{Row: start.Row + i, Col: start.Col}
		} else {
			cells[i] = Coord{Row: start.Row, Col: start.Col + i}
		}
	}
	return cells
}

// CheckPlacement explains why ship cannot go at start, or returns nil.
// Cells around the footprint (including diagonals) must not belong to a
// different ship; cells carrying ship's own name are exempt.
func CheckPlacement(b Board, ship Ship, start Coord, vertical bool) error {
	if ship.Length <= 0 {
		return ErrInvalidShip
	}

	cells := Footprint(start, ship.Length, vertical)
	for _, c := range cells {
		if !c.InBounds() {
			return ErrOutOfBounds
		}
	}

	for _, c := range cells {
		if b[c.Row][c.Col].State != CellEmpty {
			return ErrOverlap
		}
	}

	for _, c := range cells {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				n := Coord{Row: c.Row + dr, Col: c.Col + dc}
				if !n.InBounds() {
					continue
				}
				id := b[n.Row][n.Col].ShipID
				if id != "" && id != ship.Name {
					return ErrTooClose
				}
			}
		}
	}

	return nil
}

// IsValidPlacement reports whether ship can be placed at start.
func IsValidPlacement(b Board, ship Ship, start Coord, vertical bool) bool {
	return CheckPlacement(b, ship, start, vertical) == nil
}

// PlaceShip places ship at start. On success it returns the new board and the
// ordered footprint. If the placement is invalid it returns the input board,
// nil positions and ok == false.
func PlaceShip(b Board, ship Ship, start Coord, vertical bool) (board Board, positions []Coord, ok bool) {
	if CheckPlacement(b, ship, start, vertical) != nil {
		return b, nil, false
	}

	positions = Footprint(start, ship.Length, vertical)
	for _, c := range positions {
		b[c.Row][c.Col] = Cell{State: CellShip, ShipID: ship.Name}
	}
	return b, positions, true
}

// ValidPlacements enumerates every legal placement of ship in row-major
// order, horizontal before vertical.
func ValidPlacements(b Board, ship Ship) []Placement {
	var out []Placement
	for r := range Size {
		for c := range Size {
			start := Coord{Row: r, Col: c}
			if IsValidPlacement(b, ship, start, false) {
				out = append(out, Placement{Start: start})
			}
			// A single cell has the same footprint either way.
			if ship.Length > 1 && IsValidPlacement(b, ship, start, true) {
				out = append(out, Placement{Start: start, Vertical: true})
			}
		}
	}
	return out
}

// RandomPlacement places every unplaced ship of f at random.
// Each ship gets up to maxAttempts random tries (orientation, row, col); if
// all are rejected, one of the remaining legal placements is chosen uniformly.
// Returns ErrPlacementImpossible, with the inputs unchanged, when a ship has
// nowhere left to go.
func RandomPlacement(rng Random, b Board, f Fleet, maxAttempts int) (Board, Fleet, error) {
	board := b
	fleet := f.Clone()

	for i := range fleet {
		ship := &fleet[i]
		if ship.Placed() {
			continue
		}

		placed := false
		for range maxAttempts {
			vertical := rng.Intn(2) == 0
			start := Coord{Row: rng.Intn(Size), Col: rng.Intn(Size)}
			if next, positions, ok := PlaceShip(board, *ship, start, vertical); ok {
				board = next
				ship.Positions = positions
				ship.Vertical = vertical
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		options := ValidPlacements(board, *ship)
		if len(options) == 0 {
			return b, f, fmt.Errorf("%w: %s", ErrPlacementImpossible, ship.Name)
		}
		p := options[rng.Intn(len(options))]
		board, ship.Positions, _ = PlaceShip(board, *ship, p.Start, p.Vertical)
		ship.Vertical = p.Vertical
	}

	return board, fleet, nil
}

// PlaceFleet places a whole fleet on a fresh board, starting over when an
// earlier choice leaves a later ship without room.
func PlaceFleet(rng Random, specs []ShipSpec, maxAttempts int) (Board, Fleet, error) {
	var lastErr error
	for range fleetRetries {
		board, fleet, err := RandomPlacement(rng, InitBoard(), NewFleet(specs), maxAttempts)
		if err == nil {
			return board, fleet, nil
		}
		lastErr = err
	}
	return InitBoard(), NewFleet(specs), lastErr
}
