package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mikenye/wormy/game"
)

// size of a debug font glyph
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// scale of the debug font for the big screens
const (
	titleScale    = 5
	gameOverScale = 3
)

// colours
var (
	colorWhite     = color.RGBA{255, 255, 255, 255}
	colorRed       = color.RGBA{255, 0, 0, 255}
	colorGreen     = color.RGBA{0, 255, 0, 255}
	colorDarkGreen = color.RGBA{0, 155, 0, 255}
	colorDarkGray  = color.RGBA{40, 40, 40, 255}
	colorBG        = color.RGBA{0, 0, 0, 255}
)

// screenRenderer draws frames onto an ebiten image
type screenRenderer struct {
	// image to draw on, set before each frame
	dst *ebiten.Image

	// size of a cell and of the whole screen, in pixels
	cell          int
	width, height int

	// pre-rendered text, keyed by string
	text map[string]*ebiten.Image
}

func newScreenRenderer(cfg game.Config) *screenRenderer {
	return &screenRenderer{
		cell:   cfg.CellSize,
		width:  cfg.Width * cfg.CellSize,
		height: cfg.Height * cfg.CellSize,
		text:   make(map[string]*ebiten.Image),
	}
}

func (r *screenRenderer) Clear() {
	r.dst.Fill(colorBG)
}

// draw vertical and horizontal lines on cell boundaries
func (r *screenRenderer) DrawGrid(g game.Grid) {
	pw, ph := g.Width*r.cell, g.Height*r.cell
	w, h := float32(pw), float32(ph)
	for x := 0; x < pw; x += r.cell {
		vector.StrokeLine(r.dst, float32(x), 0, float32(x), h, 1, colorDarkGray, false)
	}
	for y := 0; y < ph; y += r.cell {
		vector.StrokeLine(r.dst, 0, float32(y), w, float32(y), 1, colorDarkGray, false)
	}
}

// a segment is a dark outer square with a lighter inner square
func (r *screenRenderer) DrawSegment(c game.Cell) {
	x, y, size := float32(c.X*r.cell), float32(c.Y*r.cell), float32(r.cell)
	vector.DrawFilledRect(r.dst, x, y, size, size, colorDarkGreen, false)
	vector.DrawFilledRect(r.dst, x+4, y+4, size-8, size-8, colorGreen, false)
}

func (r *screenRenderer) DrawFood(c game.Cell) {
	size := float32(r.cell)
	vector.DrawFilledRect(r.dst, float32(c.X*r.cell), float32(c.Y*r.cell), size, size, colorRed, false)
}

func (r *screenRenderer) DrawScore(score int) {
	ebitenutil.DebugPrintAt(r.dst, fmt.Sprintf("Score: %d", score), r.width-120, 10)
}

// title centred on the screen
func (r *screenRenderer) DrawTitle(title string) {
	w, h := textSize(title, titleScale)
	r.drawText(title, (r.width-w)/2, (r.height-h)/2, titleScale, colorGreen)
}

// prompt in the bottom right corner
func (r *screenRenderer) DrawPrompt(text string) {
	r.drawText(text, r.width-200, r.height-30, 1, colorDarkGray)
}

// "Game" above the centre line, "Over" below it
func (r *screenRenderer) DrawGameOver() {
	gw, gh := textSize("Game", gameOverScale)
	ow, _ := textSize("Over", gameOverScale)
	r.drawText("Game", (r.width-gw)/2, r.height/2-gh-10, gameOverScale, colorWhite)
	r.drawText("Over", (r.width-ow)/2, r.height/2, gameOverScale, colorWhite)
}

// draw the debug font text s at x, y, scaled and tinted
func (r *screenRenderer) drawText(s string, x, y, scale int, clr color.Color) {
	img, ok := r.text[s]
	if !ok {
		w, h := textSize(s, 1)
		img = ebiten.NewImage(w, h)
		ebitenutil.DebugPrint(img, s)
		r.text[s] = img
	}

	op := ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	r.dst.DrawImage(img, &op)
}

// size in pixels of s in the debug font
func textSize(s string, scale int) (w, h int) {
	return len(s) * glyphWidth * scale, glyphHeight * scale
}
