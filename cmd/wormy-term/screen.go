package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/mikenye/wormy/game"
)

// terminal columns per grid cell, so cells look roughly square
const cellColumns = 2

var (
	styleBG      = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleGrid    = styleBG.Foreground(tcell.NewRGBColor(40, 40, 40))
	styleSegment = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorGreen)
	styleFood    = tcell.StyleDefault.Background(tcell.ColorRed)
	styleTitle   = styleBG.Foreground(tcell.ColorGreen).Bold(true)
	stylePrompt  = styleBG.Foreground(tcell.ColorGray)
	styleBanner  = styleBG.Bold(true)
)

// termRenderer draws frames onto a tcell screen. The grid takes the top
// rows, the row below it is the status line.
type termRenderer struct {
	screen tcell.Screen
	grid   game.Grid

	// first free column of the status line after the score, 0 when no score
	// was drawn this frame
	scoreEnd int
}

func newTermRenderer(screen tcell.Screen, grid game.Grid) *termRenderer {
	screen.SetStyle(styleBG)
	return &termRenderer{screen: screen, grid: grid}
}

func (r *termRenderer) Clear() {
	r.screen.Clear()
	r.scoreEnd = 0
}

// a dot in the corner of every cell
func (r *termRenderer) DrawGrid(g game.Grid) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			r.screen.SetContent(x*cellColumns, y, '·', nil, styleGrid)
		}
	}
}

func (r *termRenderer) DrawSegment(c game.Cell) {
	r.screen.SetContent(c.X*cellColumns, c.Y, '[', nil, styleSegment)
	r.screen.SetContent(c.X*cellColumns+1, c.Y, ']', nil, styleSegment)
}

func (r *termRenderer) DrawFood(c game.Cell) {
	for i := 0; i < cellColumns; i++ {
		r.screen.SetContent(c.X*cellColumns+i, c.Y, ' ', nil, styleFood)
	}
}

// score on the left of the status line
func (r *termRenderer) DrawScore(score int) {
	text := fmt.Sprintf("Score: %d", score)
	r.print(0, r.grid.Height, text, styleBG)
	r.scoreEnd = len(text) + 1
}

func (r *termRenderer) DrawTitle(title string) {
	r.printCentred(r.grid.Height/2, title, styleTitle)
}

// prompt on the right of the status line, cut short rather than covering
// the score on narrow boards
func (r *termRenderer) DrawPrompt(text string) {
	x := max(r.width()-len(text), r.scoreEnd)
	if room := r.width() - x; room < len(text) {
		if room <= 0 {
			return
		}
		text = text[:room]
	}
	r.print(x, r.grid.Height, text, stylePrompt)
}

func (r *termRenderer) DrawGameOver() {
	r.printCentred(r.grid.Height/2-1, "Game", styleBanner)
	r.printCentred(r.grid.Height/2, "Over", styleBanner)
}

// width of the board in columns
func (r *termRenderer) width() int {
	return r.grid.Width * cellColumns
}

func (r *termRenderer) printCentred(y int, s string, style tcell.Style) {
	r.print((r.width()-len(s))/2, y, s, style)
}

func (r *termRenderer) print(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// fitConfig shrinks the grid of cfg to a cols x rows terminal
func fitConfig(cfg game.Config, cols, rows int) (game.Config, error) {
	if w := cols / cellColumns; w < cfg.Width {
		cfg.Width = w
	}

	// one row for the status line
	if h := rows - 1; h < cfg.Height {
		cfg.Height = h
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("terminal %dx%d too small: %w", cols, rows, err)
	}
	return cfg, nil
}
