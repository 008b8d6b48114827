package theme

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/agiangrant/togglepass/retained"
)

const sampleTheme = `
dark = false

[fonts]
brand = "Inter"

[defaults]
"PasswordField.font" = "font-[brand] text-[13px] font-bold"
"TextField.font" = "font-mono text-sm italic"
"TextField.foreground" = "text-gray-900 dark:text-gray-100"
"Label.padding" = "p-2"
`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(sampleTheme))
	require.NoError(t, err)
	d.SetLogger(zaptest.NewLogger(t))

	assert.False(t, d.IsDark())
	assert.Equal(t, []string{"Label.padding", PasswordFieldFont, TextFieldFont, TextFieldForeground}, d.Keys())
}

func TestFont(t *testing.T) {
	d, err := Parse([]byte(sampleTheme))
	require.NoError(t, err)
	d.SetLogger(zaptest.NewLogger(t))

	tests := []struct {
		key    string
		want   retained.Font
		wantOK bool
	}{
		{
			key:    PasswordFieldFont,
			want:   retained.Font{Family: "Inter", Style: retained.FontBold, Size: 13},
			wantOK: true,
		},
		{
			key:    TextFieldFont,
			want:   retained.Font{Family: "Monospaced", Style: retained.FontItalic, Size: 14},
			wantOK: true,
		},
		{key: "Label.padding", wantOK: false},
		{key: "Missing.font", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := d.Font(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFontFamilyResolution(t *testing.T) {
	d, err := Parse([]byte(sampleTheme))
	require.NoError(t, err)

	d.Set(PasswordFieldFont, "font-[Fira_Code] text-[13px]")
	f, ok := d.Font(PasswordFieldFont)
	require.True(t, ok)
	assert.Equal(t, "Fira Code", f.Family, "unknown families pass through")

	d.Set(PasswordFieldFont, "text-[13px]")
	f, ok = d.Font(PasswordFieldFont)
	require.True(t, ok)
	assert.Equal(t, "SansSerif", f.Family, "family defaults to sans")
}

func TestColorDarkMode(t *testing.T) {
	d, err := Parse([]byte(sampleTheme))
	require.NoError(t, err)

	c, ok := d.Color(TextFieldForeground)
	require.True(t, ok)
	assert.Equal(t, retained.Color(0x111827FF), c)

	d.SetDark(true)
	c, ok = d.Color(TextFieldForeground)
	require.True(t, ok)
	assert.Equal(t, retained.Color(0xF3F4F6FF), c)

	_, ok = d.Color(TextFieldFont)
	assert.False(t, ok, "a font value has no color")
}

func TestDefault(t *testing.T) {
	d := Default()

	f, ok := d.Font(PasswordFieldFont)
	require.True(t, ok)
	assert.Equal(t, retained.Font{Family: "Dialog", Size: 12}, f)

	c, ok := d.Color(TextFieldForeground)
	require.True(t, ok)
	assert.Equal(t, retained.Black, c)
}

func TestSetRemovesEmpty(t *testing.T) {
	d := Default()
	d.Set(PasswordFieldFont, "")
	_, ok := d.Get(PasswordFieldFont)
	assert.False(t, ok)

	var zero Defaults
	zero.Set("X.font", "text-sm")
	v, ok := zero.Get("X.font")
	assert.True(t, ok)
	assert.Equal(t, "text-sm", v)
}

func TestOverlay(t *testing.T) {
	file, err := Parse([]byte(sampleTheme))
	require.NoError(t, err)
	file.SetDark(true)

	merged := Default().Overlay(file)
	assert.True(t, merged.IsDark())

	v, _ := merged.Get(PasswordFieldForeground)
	assert.Equal(t, "text-gray-900 dark:text-gray-100", v, "built-in keys survive")
	v, _ = merged.Get(PasswordFieldFont)
	assert.Equal(t, "font-[brand] text-[13px] font-bold", v, "file keys win")
	assert.Equal(t, "Inter", merged.Fonts["brand"])
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTheme), 0o644))
	d, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, d.Keys(), 4)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[defaults\n"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse theme")
}

func TestMarshal(t *testing.T) {
	d := Default()
	data, err := d.Marshal()
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, d.Keys(), back.Keys())
	v, _ := back.Get(PasswordFieldFont)
	assert.Equal(t, "font-[Dialog] text-[12px]", v)
}

func TestCurrent(t *testing.T) {
	t.Cleanup(func() { SetCurrent(nil) })

	custom := New()
	SetCurrent(custom)
	assert.Same(t, custom, Current())

	SetCurrent(nil)
	_, ok := Current().Font(TextFieldFont)
	assert.True(t, ok, "nil restores the built-in table")
}
