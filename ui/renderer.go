package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snake-game/game"
	"snake-game/game/types"
)

const (
	snakeRune = '●'
	foodRune  = '●'

	// Each grid cell spans two terminal columns so the board keeps a
	// roughly square aspect ratio.
	cellWidth = 2
)

// Renderer paints full frames of the game onto a tcell screen. It never
// mutates game state; it only reads snapshots.
type Renderer struct {
	screen tcell.Screen

	defStyle    tcell.Style
	borderStyle tcell.Style
	headStyle   tcell.Style
	bodyStyle   tcell.Style
	foodStyle   tcell.Style
	hintStyle   tcell.Style
	overStyle   tcell.Style
	winStyle    tcell.Style
}

func NewRenderer(screen tcell.Screen) *Renderer {
	def := tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorDefault)
	return &Renderer{
		screen:      screen,
		defStyle:    def,
		borderStyle: def,
		headStyle:   def.Foreground(tcell.ColorGreen),
		bodyStyle:   def.Foreground(tcell.ColorLightGreen),
		foodStyle:   def.Foreground(tcell.ColorRed),
		hintStyle:   def.Foreground(tcell.ColorDarkGray),
		overStyle:   def.Foreground(tcell.ColorRed),
		winStyle:    def.Foreground(tcell.ColorYellow),
	}
}

// Draw renders one full frame for the given snapshot. highScore is the
// session best, shown on the end screen.
func (r *Renderer) Draw(snap game.Snapshot, highScore int) {
	r.screen.Clear()
	switch snap.Phase {
	case types.Playing:
		r.drawBoard(snap)
	case types.GameOver:
		r.drawEndScreen(snap, highScore)
	}
	r.screen.Show()
}

// drawBoard paints the bordered grid, the snake, the food and the
// controls hint, centered on the terminal.
func (r *Renderer) drawBoard(snap game.Snapshot) {
	boardW := snap.Grid.Width*cellWidth + 2
	boardH := snap.Grid.Height + 2
	left, top := r.centerOrigin(boardW, boardH)

	r.drawBox(left, top, boardW, boardH)

	title := fmt.Sprintf(" Snake - Score: %d ", snap.Score)
	r.drawText(left+(boardW-len(title))/2, top, title, r.borderStyle)

	for i, segment := range snap.Body {
		style := r.bodyStyle
		if i == 0 {
			style = r.headStyle
		}
		r.drawCell(left, top, segment, snakeRune, style)
	}
	r.drawCell(left, top, snap.Food, foodRune, r.foodStyle)

	hint := "WASD: Move | ESC: Quit"
	r.drawText(left+(boardW-len(hint))/2, top+boardH, hint, r.hintStyle)
}

// drawEndScreen paints the terminal run screen: victory when the snake
// filled the grid, game over otherwise.
func (r *Renderer) drawEndScreen(snap game.Snapshot, highScore int) {
	const boxW, boxH = 36, 9
	left, top := r.centerOrigin(boxW, boxH)

	r.drawBox(left, top, boxW, boxH)

	banner := "GAME OVER"
	bannerStyle := r.overStyle
	if snap.Won {
		banner = "YOU WIN"
		bannerStyle = r.winStyle
	}
	r.drawCentered(left, boxW, top+2, banner, bannerStyle)
	r.drawCentered(left, boxW, top+4, fmt.Sprintf("Session Best: %d", highScore), r.hintStyle)
	r.drawCentered(left, boxW, top+5, fmt.Sprintf("Your Score: %d", snap.Score), r.defStyle)
	r.drawCentered(left, boxW, top+7, "Press R to restart | ESC to quit", r.hintStyle)
}

// drawCell maps a grid position into the bordered board area.
func (r *Renderer) drawCell(left, top int, p types.Point, c rune, style tcell.Style) {
	r.screen.SetContent(left+1+p.X*cellWidth, top+1+p.Y, c, nil, style)
}

// drawBox draws a line-drawing border around a w x h area.
func (r *Renderer) drawBox(left, top, w, h int) {
	right := left + w - 1
	bottom := top + h - 1
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, r.borderStyle)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, r.borderStyle)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, r.borderStyle)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, r.borderStyle)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, r.borderStyle)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, r.borderStyle)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, r.borderStyle)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, r.borderStyle)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, c := range text {
		r.screen.SetContent(col, y, c, nil, style)
		col++
	}
}

func (r *Renderer) drawCentered(left, width, y int, text string, style tcell.Style) {
	r.drawText(left+(width-len(text))/2, y, text, style)
}

// centerOrigin returns the top-left corner that centers a w x h area on
// the terminal, clamped to the screen edge on small terminals.
func (r *Renderer) centerOrigin(w, h int) (left, top int) {
	screenW, screenH := r.screen.Size()
	left = (screenW - w) / 2
	top = (screenH - h) / 2
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	return left, top
}
