package engine

// ShotResult is the outcome of firing at one cell.
type ShotResult struct {
	Board Board
	Fleet Fleet
	Hit   bool
	Sunk  *Ship // Ship sunk by this shot, nil otherwise
}

// ResolveShot fires at coordinate at on the defender's board.
//
// A ship cell becomes Hit and its ship's hit counter grows; when the counter
// reaches the ship's length every cell of that ship becomes Sunk and the ship
// is returned in Sunk. An empty cell becomes Miss. Cells already fired at and
// off-board coordinates leave everything unchanged with Hit == false.
// The input board and fleet are never modified.
func ResolveShot(b Board, f Fleet, at Coord) ShotResult {
	res := ShotResult{Board: b, Fleet: f.Clone()}
	if !at.InBounds() {
		return res
	}

	cell := b[at.Row][at.Col]
	switch cell.State {
	case CellEmpty:
		res.Board[at.Row][at.Col].State = CellMiss

	case CellShip:
		res.Hit = true
		res.Board[at.Row][at.Col].State = CellHit

		i := res.Fleet.Index(cell.ShipID)
		if i < 0 {
			return res
		}
		ship := &res.Fleet[i]
		if ship.Hits < ship.Length {
			ship.Hits++
		}
		if ship.Hits == ship.Length && !ship.Sunk {
			ship.Sunk = true
			for _, p := range ship.Positions {
				res.Board[p.Row][p.Col].State = CellSunk
			}
			sunk := ship.clone()
			res.Sunk = &sunk
		}
	}

	return res
}
