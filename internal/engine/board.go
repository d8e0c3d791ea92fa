// Package engine implements the Battleship rules: boards, fleets, ship
// placement, shot resolution and the opponent's shooting policy.
// This package is UI-agnostic and deterministic. Functions never modify their
// inputs; every operation returns new Board and Fleet values.
package engine

import (
	"fmt"
	"strings"
)

// Size is the board dimension (Size x Size cells).
const Size = 10

// Coord identifies a board cell. Row grows downward, Col grows to the right.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns the coordinate in board notation, e.g. "A1" for (0,0).
func (c Coord) String() string {
	if c.Col >= 0 && c.Col < 26 {
		return fmt.Sprintf("%c%d", 'A'+c.Col, c.Row+1)
	}
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// InBounds returns true if the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Chebyshev returns the king-move distance to another coordinate.
func (c Coord) Chebyshev(other Coord) int {
	dr := abs(c.Row - other.Row)
	dc := abs(c.Col - other.Col)
	if dr > dc {
		return dr
	}
	return dc
}

// CellState is the visible state of a board cell.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellShip
	CellHit
	CellMiss
	CellSunk
)

// String returns the state name.
func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellShip:
		return "ship"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	case CellSunk:
		return "sunk"
	default:
		return "unknown"
	}
}

// Fired reports whether a shot has already landed on a cell in this state.
func (s CellState) Fired() bool {
	return s == CellHit || s == CellMiss || s == CellSunk
}

// Cell is one board position. ShipID names the occupying ship and is kept
// after the cell is hit or sunk. An empty ShipID means no ship.
type Cell struct {
	State  CellState
	ShipID string
}

// HasShip returns true if a ship occupies this cell.
func (c Cell) HasShip() bool {
	return c.ShipID != ""
}

// Board is a Size x Size grid of cells, indexed [row][col].
// It is a value type: assigning or passing a Board copies it.
type Board [Size][Size]Cell

// InitBoard returns a board with every cell empty.
func InitBoard() Board {
	var b Board
	for r := range Size {
		for c := range Size {
			b[r][c] = Cell{State: CellEmpty}
		}
	}
	return b
}

// At returns the cell at c, or an empty cell if c is off the board.
func (b Board) At(c Coord) Cell {
	if !c.InBounds() {
		return Cell{}
	}
	return b[c.Row][c.Col]
}

// Count returns the number of cells in the given state.
func (b Board) Count(state CellState) int {
	n := 0
	for r := range Size {
		for c := range Size {
			if b[r][c].State == state {
				n++
			}
		}
	}
	return n
}

// String renders the board as text, one row per line:
// '.' empty, '#' ship, 'X' hit, 'o' miss, '*' sunk.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Size*Size + Size)
	for r := range Size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Size {
			sb.WriteRune(stateGlyph(b[r][c].State))
		}
	}
	return sb.String()
}

func stateGlyph(s CellState) rune {
	switch s {
	case CellShip:
		return '#'
	case CellHit:
		return 'X'
	case CellMiss:
		return 'o'
	case CellSunk:
		return '*'
	default:
		return '.'
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
