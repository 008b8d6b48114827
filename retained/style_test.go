package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyClasses(t *testing.T) {
	f := NewTextField()
	f.ApplyClasses("font-mono text-[16px] font-bold italic text-blue-500 bg-gray-50 px-2 py-1 border-2 border-red-500 cursor-pointer", false)

	font, ok := f.Font()
	require.True(t, ok)
	assert.Equal(t, Font{Family: "Monospaced", Style: FontBold | FontItalic, Size: 16}, font)

	fg, _ := f.Foreground()
	assert.Equal(t, Color(0x3B82F6FF), fg)
	assert.Equal(t, Color(0xF9FAFBFF), f.Background())

	m, ok := f.Margin()
	require.True(t, ok)
	assert.Equal(t, Insets{Top: 4, Left: 8, Bottom: 4, Right: 8}, m)

	compound, ok := f.Border().(*CompoundBorder)
	require.True(t, ok, "inner padding border is kept")
	line, ok := compound.Outside.(*LineBorder)
	require.True(t, ok)
	assert.Equal(t, 2, line.Thickness)
	assert.Equal(t, Color(0xEF4444FF), line.Color)

	assert.Equal(t, CursorPointer, f.Cursor())
}

func TestApplyClassesPartial(t *testing.T) {
	f := NewTextField()
	f.SetFont(Font{Family: "Serif", Style: FontBold, Size: 10})

	f.ApplyClasses("text-[14px] font-normal unknown-class", false)

	font, _ := f.Font()
	assert.Equal(t, Font{Family: "Serif", Style: FontPlain, Size: 14}, font)
	_, ok := f.Margin()
	assert.False(t, ok, "untouched properties stay unset")

	f.ApplyClasses("", false)
	font, _ = f.Font()
	assert.Equal(t, 14, font.Size)
}

func TestApplyClassesDark(t *testing.T) {
	f := NewTextField()
	f.ApplyClasses("text-gray-900 dark:text-gray-100 border-gray-300 dark:border-gray-700", true)

	fg, _ := f.Foreground()
	assert.Equal(t, Color(0xF3F4F6FF), fg)
	assert.Equal(t, Color(0x374151FF), outlineOf(f.Border()).Color)
	assert.Equal(t, 1, outlineOf(f.Border()).Thickness)
}

func TestResolveStylesCaches(t *testing.T) {
	a := resolveStyles("text-sm p-2")
	b := resolveStyles("text-sm p-2")
	assert.Same(t, a, b)
	assert.Nil(t, resolveStyles(""))
}
