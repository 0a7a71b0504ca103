package spikes

import (
	"fmt"

	"github.com/vovakirdan/spikelane/internal/core"
	"github.com/vovakirdan/spikelane/internal/lane"
)

// Each grid cell is drawn as a CellW x CellH block of characters.
const (
	CellW = 6
	CellH = 2
)

// Sprites, drawn inside a cell with a one-character margin.
var (
	SpikeSprite  = []string{" /\\ ", "/__\\"}
	PlayerSprite = []string{" () ", "/||\\"}
	CrashSprite  = []string{"\\**/", "/**\\"}
)

const laneSeparator = '┊'

// BoardSize returns the size of the boxed board for a grid, border included.
func BoardSize(rows, cols int) (w, h int) {
	return cols*CellW + 2, rows*CellH + 2
}

// HUD returns the status line drawn above the board.
func HUD(title string, snap lane.Snapshot) string {
	return fmt.Sprintf("%s  Score: %d  Tick: %d  Dodged: %d", title, snap.Score, snap.Tick, snap.Dodged)
}

// DrawSnapshot draws the HUD and the boxed board centered on dst.
// Grid row 0, the player's row, is drawn at the bottom.
// It returns the rectangle of the board.
func DrawSnapshot(dst *core.Screen, title string, snap lane.Snapshot) core.Rect {
	w, h := BoardSize(snap.Rows(), snap.Columns())
	// One line of HUD above the board
	area := dst.Bounds().Centered(w, h+1)
	board := core.NewRect(area.X, area.Y+1, w, h)

	hud := HUD(title, snap)
	hudX := core.Clamp(board.X, 0, core.Max(dst.Width()-len([]rune(hud)), 0))
	dst.DrawTextColored(hudX, area.Y, hud, core.ColorBrightWhite)

	dst.DrawRect(board, ' ')
	dst.DrawBox(board, core.ColorGray)

	x0, y0 := board.X+1, board.Y+1
	rows := snap.Rows()

	for c := 1; c < snap.Columns(); c++ {
		for y := y0; y < y0+rows*CellH; y++ {
			dst.SetColored(x0+c*CellW, y, laneSeparator, core.ColorGray)
		}
	}

	for r := 0; r < rows; r++ {
		top := y0 + (rows-1-r)*CellH
		for c, count := range snap.Grid[r] {
			if count == 0 {
				continue
			}
			left := x0 + c*CellW + 1
			dst.DrawSprite(left, top, SpikeSprite, core.ColorRed)
			if count > 1 {
				dst.DrawTextColored(left+len(SpikeSprite[1]), top, fmt.Sprint(count), core.ColorBrightRed)
			}
		}
	}

	p := snap.Player
	left := x0 + p.Column*CellW + 1
	top := y0 + (rows-1-p.Row)*CellH
	if p.Alive {
		dst.DrawSprite(left, top, PlayerSprite, core.ColorBrightCyan)
	} else {
		dst.DrawRect(core.NewRect(left, top, len(CrashSprite[0]), CellH), ' ')
		dst.DrawSprite(left, top, CrashSprite, core.ColorBrightYellow)
	}

	return board
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	DrawSnapshot(dst, g.variant.Title, g.snap)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.snap.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len([]rune(subtitle))) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}
