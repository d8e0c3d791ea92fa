package engine

import "math/rand"

// Random is the source of every random decision the engine makes.
// Tests substitute a scripted implementation.
type Random interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
}

// NewRandom returns a seeded pseudo-random source.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}

// UnshotCells returns every coordinate of a size x size board that does not
// appear in history, in row-major order. Each coordinate appears once.
func UnshotCells(size int, history []Coord) []Coord {
	fired := make(map[Coord]struct{}, len(history))
	for _, c := range history {
		fired[c] = struct{}{}
	}

	cells := make([]Coord, 0, size*size)
	for r := range size {
		for c := range size {
			coord := Coord{Row: r, Col: c}
			if _, ok := fired[coord]; !ok {
				cells = append(cells, coord)
			}
		}
	}
	return cells
}

// PickOpponentShot chooses a coordinate uniformly from candidates.
// An empty candidate set means shot bookkeeping is broken, so it panics.
func PickOpponentShot(rng Random, candidates []Coord) Coord {
	return candidates[pickIndex(rng, candidates)]
}

func pickIndex(rng Random, candidates []Coord) int {
	if len(candidates) == 0 {
		panic("engine: opponent has no unshot cells left")
	}
	return rng.Intn(len(candidates))
}

// Opponent is the automated shooter. It keeps the set of cells it has not
// fired at and picks uniformly among them, with no targeting memory.
type Opponent struct {
	rng        Random
	candidates []Coord
}

// NewOpponent creates a shooter for a size x size board that has already
// fired at the cells in history.
func NewOpponent(rng Random, size int, history []Coord) *Opponent {
	return &Opponent{
		rng:        rng,
		candidates: UnshotCells(size, history),
	}
}

// NextShot picks the next coordinate and removes it from the candidate set.
// The remaining candidates keep their row-major order, so NextShot matches
// PickOpponentShot over UnshotCells of the same history.
func (o *Opponent) NextShot() Coord {
	i := pickIndex(o.rng, o.candidates)
	c := o.candidates[i]
	o.candidates = append(o.candidates[:i], o.candidates[i+1:]...)
	return c
}

// Remaining returns how many cells are still candidates.
func (o *Opponent) Remaining() int {
	return len(o.candidates)
}
