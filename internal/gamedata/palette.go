package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TileStyleDef is one tile kind's entry in palette.json.
type TileStyleDef struct {
	Glyph      string `json:"glyph"`      // Display glyph, may be wider than one cell
	Lit        string `json:"lit"`        // Hex colour while visible
	Remembered string `json:"remembered"` // Hex colour once seen but out of sight
}

// ObserverDef describes how the observer is drawn.
type ObserverDef struct {
	Glyph string `json:"glyph"`
	Color string `json:"color"`
}

// StatusDef holds the status line colours.
type StatusDef struct {
	Foreground string `json:"fg"`
	Background string `json:"bg"`
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Tiles    map[string]TileStyleDef `json:"tiles"`
	Observer ObserverDef             `json:"observer"`
	Status   StatusDef               `json:"status"`
}

// TileStyle is a resolved tile entry.
type TileStyle struct {
	Glyph      string
	Lit        tcell.Style
	Remembered tcell.Style
}

// Palette maps tile kind names to styles. It is built once and never
// modified, so it can be shared freely.
type Palette struct {
	tiles         map[string]TileStyle
	observerGlyph string
	observerStyle tcell.Style
	status        tcell.Style
}

// NewPalette resolves every colour in f.
func NewPalette(f PaletteFile) (*Palette, error) {
	p := &Palette{tiles: make(map[string]TileStyle, len(f.Tiles))}

	for name, def := range f.Tiles {
		if def.Glyph == "" {
			return nil, fmt.Errorf("tile %q: empty glyph", name)
		}
		lit, err := ParseHexColor(def.Lit)
		if err != nil {
			return nil, fmt.Errorf("tile %q lit colour: %w", name, err)
		}
		remembered, err := ParseHexColor(def.Remembered)
		if err != nil {
			return nil, fmt.Errorf("tile %q remembered colour: %w", name, err)
		}
		p.tiles[name] = TileStyle{
			Glyph:      def.Glyph,
			Lit:        tcell.StyleDefault.Foreground(lit).Background(tcell.ColorBlack),
			Remembered: tcell.StyleDefault.Foreground(remembered).Background(tcell.ColorBlack),
		}
	}

	observer, err := ParseHexColor(f.Observer.Color)
	if err != nil {
		return nil, fmt.Errorf("observer colour: %w", err)
	}
	p.observerGlyph = f.Observer.Glyph
	p.observerStyle = tcell.StyleDefault.Foreground(observer).Background(tcell.ColorBlack).Bold(true)

	fg, err := ParseHexColor(f.Status.Foreground)
	if err != nil {
		return nil, fmt.Errorf("status foreground: %w", err)
	}
	bg, err := ParseHexColor(f.Status.Background)
	if err != nil {
		return nil, fmt.Errorf("status background: %w", err)
	}
	p.status = tcell.StyleDefault.Foreground(fg).Background(bg)

	return p, nil
}

// LoadPalette loads the embedded palette.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	return NewPalette(file)
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Tile returns the style for a tile kind name.
func (p *Palette) Tile(kind string) (TileStyle, bool) {
	s, ok := p.tiles[kind]
	return s, ok
}

// Observer returns the observer's glyph and style. The glyph is empty when
// the palette leaves it to the observer.
func (p *Palette) Observer() (string, tcell.Style) {
	return p.observerGlyph, p.observerStyle
}

// Status returns the status line style.
func (p *Palette) Status() tcell.Style {
	return p.status
}

// Len returns the number of tile kinds in the palette.
func (p *Palette) Len() int {
	return len(p.tiles)
}
