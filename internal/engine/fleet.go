package engine

// ShipSpec describes a ship before it is placed.
type ShipSpec struct {
	Name   string
	Length int
}

// StandardFleet returns the classic five-ship fleet (17 cells in total).
func StandardFleet() []ShipSpec {
	return []ShipSpec{
		{Name: "Carrier", Length: 5},
		{Name: "Battleship", Length: 4},
		{Name: "Destroyer", Length: 3},
		{Name: "Submarine", Length: 3},
		{Name: "Patrol Boat", Length: 2},
	}
}

// Ship is a single vessel with its placement and damage state.
// Positions is empty until the ship is placed.
type Ship struct {
	Name      string
	Length    int
	Positions []Coord
	Hits      int
	Sunk      bool
	Vertical  bool
}

// Placed returns true once the ship has a footprint on the board.
func (s Ship) Placed() bool {
	return len(s.Positions) > 0
}

// Occupies returns true if the ship covers coordinate c.
func (s Ship) Occupies(c Coord) bool {
	for _, p := range s.Positions {
		if p == c {
			return true
		}
	}
	return false
}

// clone returns a copy that shares no memory with s.
func (s Ship) clone() Ship {
	if s.Positions != nil {
		positions := make([]Coord, len(s.Positions))
		copy(positions, s.Positions)
		s.Positions = positions
	}
	return s
}

// Fleet is one side's ships. Membership is fixed when the fleet is created.
type Fleet []Ship

// NewFleet creates an unplaced, undamaged fleet from specs.
func NewFleet(specs []ShipSpec) Fleet {
	fleet := make(Fleet, len(specs))
	for i, spec := range specs {
		fleet[i] = Ship{Name: spec.Name, Length: spec.Length}
	}
	return fleet
}

// Clone returns a deep copy of the fleet.
func (f Fleet) Clone() Fleet {
	if f == nil {
		return nil
	}
	out := make(Fleet, len(f))
	for i, s := range f {
		out[i] = s.clone()
	}
	return out
}

// Index returns the position of the named ship, or -1.
func (f Fleet) Index(name string) int {
	for i := range f {
		if f[i].Name == name {
			return i
		}
	}
	return -1
}

// Ship returns a copy of the named ship.
func (f Fleet) Ship(name string) (Ship, bool) {
	i := f.Index(name)
	if i < 0 {
		return Ship{}, false
	}
	return f[i].clone(), true
}

// WithPlacement returns a new fleet in which the named ship occupies positions.
// An unknown name yields an unchanged copy.
func (f Fleet) WithPlacement(name string, positions []Coord, vertical bool) Fleet {
	out := f.Clone()
	i := out.Index(name)
	if i < 0 {
		return out
	}
	out[i].Positions = append([]Coord(nil), positions...)
	out[i].Vertical = vertical
	return out
}

// AllPlaced returns true when every ship has a footprint.
func (f Fleet) AllPlaced() bool {
	for _, s := range f {
		if !s.Placed() {
			return false
		}
	}
	return true
}

// AnyPlaced returns true when at least one ship has a footprint.
func (f Fleet) AnyPlaced() bool {
	for _, s := range f {
		if s.Placed() {
			return true
		}
	}
	return false
}

// NextUnplaced returns the index of the first ship at or after from (wrapping)
// that is not yet placed, or -1 if all are placed.
func (f Fleet) NextUnplaced(from int) int {
	n := len(f)
	for k := range n {
		i := ((from+k)%n + n) % n
		if !f[i].Placed() {
			return i
		}
	}
	return -1
}

// SunkCount returns the number of sunk ships.
func (f Fleet) SunkCount() int {
	n := 0
	for _, s := range f {
		if s.Sunk {
			n++
		}
	}
	return n
}

// Cells returns the total number of cells the fleet occupies once placed.
func (f Fleet) Cells() int {
	n := 0
	for _, s := range f {
		n += s.Length
	}
	return n
}

// RemainingCells returns the number of ship cells not yet hit.
func (f Fleet) RemainingCells() int {
	n := 0
	for _, s := range f {
		n += s.Length - s.Hits
	}
	return n
}

// IsGameOver returns true if every ship in the fleet is sunk.
func IsGameOver(f Fleet) bool {
	for _, s := range f {
		if !s.Sunk {
			return false
		}
	}
	return true
}
