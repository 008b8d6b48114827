package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsContains(t *testing.T) {
	b := Bounds{X: 180, Y: 2, Width: 16, Height: 16}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 180, 2, true},
		{"center", 188, 10, true},
		{"last pixel", 195, 17, true},
		{"right edge exclusive", 196, 10, false},
		{"bottom edge exclusive", 188, 18, false},
		{"left of box", 179, 10, false},
		{"above box", 188, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Contains(tt.x, tt.y))
		})
	}

	assert.False(t, Bounds{}.Contains(0, 0), "zero bounds contain nothing")
}

func TestBoundsInset(t *testing.T) {
	b := Bounds{Width: 200, Height: 20}.Inset(Insets{Top: 3, Left: 5, Bottom: 3, Right: 5})
	assert.Equal(t, Bounds{X: 5, Y: 3, Width: 190, Height: 14}, b)
	assert.False(t, b.Empty())
	assert.True(t, Bounds{Width: 4}.Empty())
}

func TestFontDerive(t *testing.T) {
	f := Font{Family: "Dialog", Style: FontBold | FontItalic, Size: 12}
	d := f.Derive(24)

	assert.Equal(t, Font{Family: "Dialog", Style: FontBold | FontItalic, Size: 24}, d)
	assert.Equal(t, 12, f.Size, "derive must not modify the receiver")
	assert.Equal(t, "Dialog/bold-italic/24", d.String())
}

func TestColorComponents(t *testing.T) {
	c := RGBA(0x11, 0x22, 0x33, 0x44)
	assert.Equal(t, Color(0x11223344), c)
	assert.Equal(t, uint8(0x11), c.R())
	assert.Equal(t, uint8(0x22), c.G())
	assert.Equal(t, uint8(0x33), c.B())
	assert.Equal(t, uint8(0x44), c.A())
	assert.Equal(t, "#000000ff", Black.String())
}

func TestParseCursor(t *testing.T) {
	assert.Equal(t, CursorPointer, ParseCursor("pointer"))
	assert.Equal(t, CursorText, ParseCursor("text"))
	assert.Equal(t, CursorDefault, ParseCursor("wait"))
	assert.Equal(t, "pointer", CursorPointer.String())
}
