package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-battleship/internal/engine"
)

func TestStandardFleet(t *testing.T) {
	fleet := engine.NewFleet(engine.StandardFleet())

	require.Len(t, fleet, 5)
	assert.Equal(t, 17, fleet.Cells())
	assert.Equal(t, 17, fleet.RemainingCells())
	assert.False(t, fleet.AllPlaced())
	for _, s := range fleet {
		assert.Zero(t, s.Hits)
		assert.False(t, s.Sunk)
		assert.Empty(t, s.Positions)
	}
}

func TestIsGameOver(t *testing.T) {
	sunk := engine.Ship{Name: "A", Length: 2, Hits: 2, Sunk: true}
	afloat := engine.Ship{Name: "B", Length: 3, Hits: 1}

	assert.True(t, engine.IsGameOver(engine.Fleet{sunk, sunk}))
	assert.False(t, engine.IsGameOver(engine.Fleet{sunk, afloat}))
	assert.True(t, engine.IsGameOver(engine.Fleet{}), "an empty fleet has nothing left afloat")
	assert.Equal(t, 2, engine.Fleet{sunk, afloat}.RemainingCells())
}

func TestFleetCloneIsDeep(t *testing.T) {
	fleet := engine.NewFleet(engine.StandardFleet()).
		WithPlacement("Patrol Boat", []engine.Coord{engine.C(0, 0), engine.C(0, 1)}, false)

	clone := fleet.Clone()
	clone[4].Positions[0] = engine.C(9, 9)
	clone[4].Hits = 2

	assert.Equal(t, engine.C(0, 0), fleet[4].Positions[0])
	assert.Zero(t, fleet[4].Hits)
	assert.Nil(t, engine.Fleet(nil).Clone())
}

func TestWithPlacement(t *testing.T) {
	fleet := engine.NewFleet(engine.StandardFleet())
	positions := []engine.Coord{engine.C(3, 3), engine.C(4, 3)}

	placed := fleet.WithPlacement("Patrol Boat", positions, true)
	positions[0] = engine.C(7, 7)

	boat, ok := placed.Ship("Patrol Boat")
	require.True(t, ok)
	assert.Equal(t, []engine.Coord{engine.C(3, 3), engine.C(4, 3)}, boat.Positions)
	assert.True(t, boat.Vertical)
	assert.True(t, boat.Occupies(engine.C(4, 3)))
	assert.False(t, fleet[4].Placed(), "source fleet is unchanged")

	same := fleet.WithPlacement("Kayak", positions, false)
	assert.Equal(t, fleet, same)
}

func TestFleetLookup(t *testing.T) {
	fleet := engine.NewFleet(engine.StandardFleet())

	assert.Equal(t, 1, fleet.Index("Battleship"))
	assert.Equal(t, -1, fleet.Index("Kayak"))

	_, ok := fleet.Ship("Kayak")
	assert.False(t, ok)
}

func TestNextUnplaced(t *testing.T) {
	fleet := engine.NewFleet(engine.StandardFleet())
	assert.Equal(t, 0, fleet.NextUnplaced(0))
	assert.Equal(t, 3, fleet.NextUnplaced(3))
	assert.False(t, fleet.AnyPlaced())

	fleet = fleet.WithPlacement("Submarine", []engine.Coord{engine.C(0, 0)}, false)
	assert.True(t, fleet.AnyPlaced())
	fleet = fleet.WithPlacement("Patrol Boat", []engine.Coord{engine.C(2, 0)}, false)
	assert.Equal(t, 0, fleet.NextUnplaced(3), "search wraps around")

	for _, s := range fleet {
		fleet = fleet.WithPlacement(s.Name, []engine.Coord{engine.C(0, 0)}, false)
	}
	assert.Equal(t, -1, fleet.NextUnplaced(0))
	assert.True(t, fleet.AllPlaced())
}
