package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/togglepass/retained"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		wantOK    bool
		codepoint rune
	}{
		{"visibility", true, 0xE8F4},
		{"visibility_off", true, 0xE8F5},
		{"lock", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := Lookup(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.codepoint, g.Codepoint)
		})
	}
}

func TestRegister(t *testing.T) {
	lock := Glyph{Name: "test_lock", Codepoint: 0xE897, Family: MaterialFamily}
	Register(lock)

	g, ok := Lookup("test_lock")
	require.True(t, ok)
	assert.Equal(t, lock, g)
}

func TestIconWithSize(t *testing.T) {
	base := Of(Visibility, 12, retained.RGB(1, 2, 3))
	sized := base.WithSize(16)

	assert.Equal(t, 16, sized.Width())
	assert.Equal(t, 16, sized.Height())
	assert.Equal(t, base.Color, sized.Color)
	assert.Equal(t, 12, base.Size, "original icon is unchanged")
	assert.Equal(t, "visibility@16px(#010203ff)", sized.String())
}

func TestIconPaint(t *testing.T) {
	c := retained.NewCanvas(0, 0)

	Of(VisibilityOff, 16, retained.Black).Paint(c, 180, 2)
	Of(VisibilityOff, 0, retained.Black).Paint(c, 180, 2)
	var missing *Icon
	missing.Paint(c, 0, 0)

	cmds := c.Commands()
	require.Len(t, cmds, 1)
	require.NotNil(t, cmds[0].DrawText)
	assert.Equal(t, "\ue8f5", cmds[0].DrawText.Text)
	assert.Equal(t, float32(180), cmds[0].DrawText.X)
	assert.Equal(t, float32(2), cmds[0].DrawText.Y)
	assert.Equal(t, float32(16), cmds[0].DrawText.Font.Size)
	assert.Equal(t, MaterialFamily, *cmds[0].DrawText.Font.Source.System)
}
