package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorderInsets(t *testing.T) {
	tests := []struct {
		name   string
		border Border
		want   Insets
	}{
		{"nil", nil, Insets{}},
		{"empty", NewEmptyBorder(1, 2, 3, 4), Insets{Top: 1, Left: 2, Bottom: 3, Right: 4}},
		{"line", NewLineBorder(Black, 2), Insets{Top: 2, Left: 2, Bottom: 2, Right: 2}},
		{
			name:   "compound sums per side",
			border: NewCompoundBorder(NewLineBorder(Black, 1), NewEmptyBorder(0, 0, 0, 20)),
			want:   Insets{Top: 1, Left: 1, Bottom: 1, Right: 21},
		},
		{"compound with nil outside", NewCompoundBorder(nil, NewEmptyBorder(0, 0, 0, 8)), Insets{Right: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BorderInsets(tt.border))
		})
	}
}

func TestCompoundBorderPaint(t *testing.T) {
	c := NewCanvas(0, 0)
	b := NewCompoundBorder(NewLineBorder(Black, 1), NewLineBorder(White, 1))
	b.Paint(c, Bounds{Width: 10, Height: 10})

	cmds := c.Commands()
	require.Len(t, cmds, 2)
	require.NotNil(t, cmds[1].DrawRect)
	assert.Equal(t, float32(1), cmds[1].DrawRect.X, "inner border is inset by the outer one")
	assert.Equal(t, float32(8), cmds[1].DrawRect.Width)
	assert.Equal(t, uint32(White), cmds[1].DrawRect.Border.Color)
}
