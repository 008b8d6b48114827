// Package icon describes icon-font glyphs and sized, colored instances of them.
package icon

import (
	"fmt"
	"sync"

	"github.com/agiangrant/togglepass/retained"
)

// MaterialFamily is the font family holding the Material Design icon set.
const MaterialFamily = "Material Icons"

// Glyph identifies an icon by name and its codepoint in an icon font.
type Glyph struct {
	Name      string
	Codepoint rune
	Family    string
}

var (
	// Visibility is the open eye shown while a password is revealed.
	Visibility = Glyph{Name: "visibility", Codepoint: '\ue8f4', Family: MaterialFamily}
	// VisibilityOff is the struck-through eye shown while a password is hidden.
	VisibilityOff = Glyph{Name: "visibility_off", Codepoint: '\ue8f5', Family: MaterialFamily}
)

var (
	registryMu sync.RWMutex
	registry   = map[string]Glyph{
		Visibility.Name:    Visibility,
		VisibilityOff.Name: VisibilityOff,
	}
)

// Register adds or replaces a glyph under its name.
func Register(g Glyph) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[g.Name] = g
}

// Lookup returns the glyph registered under name.
func Lookup(name string) (Glyph, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	g, ok := registry[name]
	return g, ok
}

// Icon is a glyph rendered in a size×size box with a single color.
type Icon struct {
	Glyph Glyph
	Size  int
	Color retained.Color
}

// Of creates an icon.
func Of(g Glyph, size int, color retained.Color) *Icon {
	return &Icon{Glyph: g, Size: size, Color: color}
}

// Width returns the icon's width in pixels.
func (i *Icon) Width() int { return i.Size }

// Height returns the icon's height in pixels.
func (i *Icon) Height() int { return i.Size }

// WithSize returns a new icon with the same glyph and color at another size.
func (i *Icon) WithSize(size int) *Icon {
	return Of(i.Glyph, size, i.Color)
}

// Paint draws the icon with its top-left corner at (x, y).
// Icons with no area draw nothing.
func (i *Icon) Paint(p retained.Painter, x, y int) {
	if i == nil || i.Size <= 0 {
		return
	}
	p.DrawGlyph(i.Glyph.Codepoint, i.Glyph.Family, x, y, i.Size, i.Color)
}

func (i *Icon) String() string {
	return fmt.Sprintf("%s@%dpx(%s)", i.Glyph.Name, i.Size, i.Color)
}
