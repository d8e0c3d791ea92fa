package battleship

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/engine"
)

// Layout constants. A board is a 4-column row label followed by 2 columns per
// cell; the cursor brackets sit in the gaps between cells.
const (
	labelW    = 4
	cellW     = 2
	boardW    = labelW + engine.Size*cellW
	boardGap  = 8
	layoutW   = boardW*2 + boardGap
	layoutH   = 23
	minWidth  = layoutW + 2
	minHeight = layoutH
)

// Row offsets inside the layout.
const (
	rowTitle   = 0
	rowStatus  = 1
	rowCaption = 3
	rowHeader  = 4
	rowGrid    = 5
	rowFleet   = rowGrid + engine.Size + 1
	rowMessage = rowFleet + 3
	rowHelp    = rowMessage + 2
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.Match == nil {
		g.renderTooSmall(dst)
		return
	}

	ox := max((g.screenW-layoutW)/2, 0)
	oy := max((g.screenH-layoutH)/2, 0)
	leftX := ox
	rightX := ox + boardW + boardGap

	g.renderHUD(dst, oy)

	dst.DrawTextColored(leftX+labelW, oy+rowCaption, "YOUR FLEET", core.ColorBrightCyan)
	g.renderGrid(dst, leftX, oy+rowHeader, g.playerBoard, false)

	if g.Phase() == engine.PhaseSetup {
		g.renderPlacementPreview(dst, leftX, oy+rowGrid)
		g.renderRoster(dst, rightX, oy+rowCaption)
	} else {
		dst.DrawTextColored(rightX+labelW, oy+rowCaption, "ENEMY WATERS", core.ColorBrightRed)
		g.renderGrid(dst, rightX, oy+rowHeader, g.opponentBoard, true)
		g.renderFleetStatus(dst, leftX, oy+rowFleet, g.playerFleet, "Hits taken", g.OpponentHits())
		g.renderFleetStatus(dst, rightX, oy+rowFleet, g.opponentFleet, "Your hits", g.PlayerHits())
	}

	if g.Phase() == engine.PhaseSetup {
		g.renderCursor(dst, leftX, oy+rowGrid)
	} else if g.Phase() == engine.PhasePlayerTurn {
		g.renderCursor(dst, rightX, oy+rowGrid)
	}

	if g.message != "" {
		dst.DrawTextColored(ox, oy+rowMessage, truncate(g.message, layoutW), g.messageColor)
	}
	dst.DrawTextColored(ox, oy+rowHelp, truncate(g.helpText(), layoutW), core.ColorGray)

	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", minWidth, minHeight, g.screenW, g.screenH))
}

// renderHUD draws the title, turn indicator and score.
func (g *Game) renderHUD(dst *core.Screen, oy int) {
	dst.DrawTextCenteredColored(oy+rowTitle, strings.ToUpper(g.Title()), core.ColorBrightWhite)

	var turn string
	turnColor := core.ColorWhite
	switch g.Phase() {
	case engine.PhaseSetup:
		turn = "Setup"
		turnColor = core.ColorYellow
	case engine.PhasePlayerTurn:
		turn = "Your turn"
		turnColor = core.ColorBrightGreen
	case engine.PhaseOpponentTurn:
		turn = "Enemy turn"
		turnColor = core.ColorBrightRed
	case engine.PhaseGameOver:
		turn = "Game over"
	}
	status := fmt.Sprintf("%s   Shots: %d   Score: %d", turn, len(g.playerShots), g.CurrentScore())
	dst.DrawTextCenteredColored(oy+rowStatus, status, turnColor)
}

// renderGrid draws the column header, row labels and cells of one board.
func (g *Game) renderGrid(dst *core.Screen, x, y int, b engine.Board, enemy bool) {
	for c := range engine.Size {
		dst.DrawTextColored(x+labelW+c*cellW, y, string(rune('A'+c)), core.ColorGray)
	}

	reveal := enemy && g.Phase() == engine.PhaseGameOver && g.cfg.Display.RevealOnGameOver
	last := g.lastOpponentShot
	if enemy {
		last = g.lastPlayerShot
	}

	for r := range engine.Size {
		dst.DrawTextColored(x, y+1+r, fmt.Sprintf("%3d", r+1), core.ColorGray)
		for c := range engine.Size {
			ch, color := cellGlyph(b[r][c].State, enemy, reveal)
			if last != nil && *last == engine.C(r, c) {
				color = core.ColorBrightYellow
			}
			dst.SetColored(x+labelW+c*cellW, y+1+r, ch, color)
		}
	}
}

func cellGlyph(s engine.CellState, enemy, reveal bool) (rune, core.Color) {
	switch s {
	case engine.CellShip:
		switch {
		case !enemy:
			return '■', core.ColorWhite
		case reveal:
			return '■', core.ColorGray
		}
	case engine.CellHit:
		return 'X', core.ColorOrange
	case engine.CellMiss:
		return 'o', core.ColorBlue
	case engine.CellSunk:
		return '#', core.ColorRed
	}
	return '·', core.ColorGray
}

// renderCursor brackets the cursor cell of the board at (x, gridY).
func (g *Game) renderCursor(dst *core.Screen, x, gridY int) {
	cx := x + labelW + g.cursor.Col*cellW
	cy := gridY + g.cursor.Row
	dst.SetColored(cx-1, cy, '[', core.ColorBrightYellow)
	dst.SetColored(cx+1, cy, ']', core.ColorBrightYellow)
}

// renderPlacementPreview draws the selected ship at the cursor, green when it
// fits and red when it does not.
func (g *Game) renderPlacementPreview(dst *core.Screen, x, gridY int) {
	if g.playerFleet.AllPlaced() {
		return
	}
	ship := g.playerFleet[g.selected]
	color := core.ColorBrightGreen
	if !engine.IsValidPlacement(g.playerBoard, ship, g.cursor, g.vertical) {
		color = core.ColorBrightRed
	}
	for _, c := range engine.Footprint(g.cursor, ship.Length, g.vertical) {
		if c.InBounds() {
			dst.SetColored(x+labelW+c.Col*cellW, gridY+c.Row, '■', color)
		}
	}
}

// renderRoster lists the fleet during setup.
func (g *Game) renderRoster(dst *core.Screen, x, y int) {
	dst.DrawTextColored(x, y, "DEPLOY SHIPS", core.ColorBrightYellow)

	for i, s := range g.playerFleet {
		marker := "  "
		color := core.ColorWhite
		switch {
		case s.Placed():
			marker = "✓ "
			color = core.ColorGreen
		case i == g.selected:
			marker = "> "
			color = core.ColorBrightYellow
		}
		line := fmt.Sprintf("%s%-12s %s", marker, truncate(s.Name, 12), strings.Repeat("■", s.Length))
		dst.DrawTextColored(x, y+2+i, truncate(line, boardW+boardGap), color)
	}

	orientation := "horizontal"
	if g.vertical {
		orientation = "vertical"
	}
	info := y + 3 + len(g.playerFleet)
	dst.DrawTextColored(x, info, "Orientation: "+orientation, core.ColorCyan)
	if g.playerFleet.AllPlaced() {
		dst.DrawTextColored(x, info+2, "Press enter to start", core.ColorBrightGreen)
	}
}

// renderFleetStatus summarizes one side's fleet under its board.
func (g *Game) renderFleetStatus(dst *core.Screen, x, y int, fleet engine.Fleet, hitsLabel string, hits int) {
	afloat := len(fleet) - fleet.SunkCount()
	line := fmt.Sprintf("Afloat %d/%d  %s %d", afloat, len(fleet), hitsLabel, hits)
	dst.DrawTextColored(x, y, truncate(line, boardW), core.ColorWhite)

	var sunk []string
	for _, s := range fleet {
		if s.Sunk {
			sunk = append(sunk, s.Name)
		}
	}
	if len(sunk) > 0 {
		dst.DrawTextColored(x, y+1, truncate("Sunk: "+strings.Join(sunk, ", "), boardW), core.ColorRed)
	}
}

func (g *Game) helpText() string {
	switch g.Phase() {
	case engine.PhaseSetup:
		return "enter: place  r: rotate  tab: next  a: auto  c: clear"
	case engine.PhaseGameOver:
		return "n: new game  esc: menu  q: quit"
	default:
		return "arrows: aim  enter: fire  p: pause  esc: menu  q: quit"
	}
}

// renderOverlays draws pause and game over boxes over the boards.
func (g *Game) renderOverlays(dst *core.Screen) {
	switch {
	case g.paused:
		g.renderBox(dst, core.ColorYellow, []string{"PAUSED", "", "p: resume"})

	case g.Phase() == engine.PhaseGameOver:
		title, color := "DEFEAT", core.ColorBrightRed
		if g.Winner() == SidePlayer {
			title, color = "VICTORY", core.ColorBrightGreen
		}
		shots := len(g.playerShots)
		accuracy := 0
		if shots > 0 {
			accuracy = g.PlayerHits() * 100 / shots
		}
		g.renderBox(dst, color, []string{
			title,
			"",
			fmt.Sprintf("Score: %d", g.CurrentScore()),
			fmt.Sprintf("Shots: %d  Accuracy: %d%%", shots, accuracy),
			"",
			"n: new game  esc: menu",
		})
	}
}

func (g *Game) renderBox(dst *core.Screen, color core.Color, lines []string) {
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	w += 6
	h := len(lines) + 2

	box := core.NewRect((g.screenW-w)/2, (g.screenH-h)/2, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	for i, l := range lines {
		x := box.X + (w-utf8.RuneCountInString(l))/2
		dst.DrawTextColored(x, box.Y+1+i, l, color)
	}
}

func truncate(s string, w int) string {
	if utf8.RuneCountInString(s) <= w {
		return s
	}
	r := []rune(s)
	return string(r[:w])
}
