package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/shadowdelve/internal/entity"
	"github.com/samdwyer/shadowdelve/internal/gamedata"
	"github.com/samdwyer/shadowdelve/internal/world"
)

// Canvas is the drawing surface the renderer needs. *Screen implements it.
type Canvas interface {
	Clear()
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

// Renderer draws the dungeon as the observer knows it: lit tiles in full
// colour, remembered tiles dimmed and unseen tiles blank.
type Renderer struct {
	canvas  Canvas
	palette *gamedata.Palette
	reveal  bool
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas, palette *gamedata.Palette) *Renderer {
	return &Renderer{canvas: canvas, palette: palette}
}

// SetReveal makes Render draw unseen tiles as if remembered.
func (r *Renderer) SetReveal(reveal bool) {
	r.reveal = reveal
}

// Render draws the dungeon, the observer and a one-line status at the
// bottom of the canvas. The map scrolls to keep the observer in view.
func (r *Renderer) Render(dungeon *world.Dungeon, observer *entity.Observer, status string) {
	r.canvas.Clear()

	w, h := r.canvas.Size()
	viewH := max(h-1, 0)
	grid := dungeon.Grid
	ox, oy := observer.Position()
	offX := viewportOffset(ox, w, grid.Width())
	offY := viewportOffset(oy, viewH, grid.Height())

	for sy := 0; sy < viewH; sy++ {
		for sx := 0; sx < w; sx++ {
			x, y := sx+offX, sy+offY
			if !grid.InBounds(x, y) {
				continue
			}
			tile := grid.At(x, y)
			if !tile.Seen && !r.reveal {
				continue
			}
			glyph, style := r.tileAppearance(tile)
			r.putGlyph(sx, sy, glyph, style)
		}
	}

	glyph, style := r.palette.Observer()
	if glyph == "" {
		glyph = string(observer.Symbol)
	}
	r.putGlyph(ox-offX, oy-offY, glyph, style)

	r.RenderMessage(status, h-1)
	r.canvas.Show()
}

// tileAppearance returns the glyph and style for a seen tile.
func (r *Renderer) tileAppearance(tile world.Tile) (string, tcell.Style) {
	ts, ok := r.palette.Tile(tile.Kind.String())
	if !ok {
		return string(tile.Kind.Rune()), tcell.StyleDefault
	}
	if tile.Visible {
		return ts.Glyph, ts.Lit
	}
	return ts.Glyph, ts.Remembered
}

// RenderMessage fills row y with msg in the status style, truncated to
// the canvas width.
func (r *Renderer) RenderMessage(msg string, y int) {
	w, _ := r.canvas.Size()
	style := r.palette.Status()

	col := 0
	for _, ch := range msg {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if col+cw > w {
			break
		}
		r.canvas.SetContent(col, y, ch, nil, style)
		col += cw
	}
	for ; col < w; col++ {
		r.canvas.SetContent(col, y, ' ', nil, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.canvas.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.canvas.SetContent(x+1, y, ' ', nil, style)
	}
}

// viewportOffset centres focus in a view of size view over a map of size
// total, clamped so the view never leaves the map.
func viewportOffset(focus, view, total int) int {
	if total <= view {
		return 0
	}
	off := focus - view/2
	return min(max(off, 0), total-view)
}
