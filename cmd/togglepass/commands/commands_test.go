package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/agiangrant/togglepass/icon"
	"github.com/agiangrant/togglepass/internal/ffi"
	"github.com/agiangrant/togglepass/theme"
)

func defaultParams() SimulateParams {
	return SimulateParams{Text: "secret", Width: 200, Height: 20}
}

func TestLoadTheme(t *testing.T) {
	logger := zaptest.NewLogger(t)
	dir := t.TempDir()

	t.Run("no file falls back to defaults", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { _ = os.Chdir(wd) })
		d, err := LoadTheme("", false, logger)
		require.NoError(t, err)
		assert.Equal(t, theme.Default().Keys(), d.Keys())
	})

	t.Run("explicit missing file fails", func(t *testing.T) {
		_, err := LoadTheme(filepath.Join(dir, "nope.toml"), false, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load theme")
	})

	t.Run("file overlays defaults", func(t *testing.T) {
		path := filepath.Join(dir, "custom.toml")
		data := []byte("[defaults]\n\"PasswordField.font\" = \"font-mono text-[15px]\"\n")
		require.NoError(t, os.WriteFile(path, data, 0o644))

		d, err := LoadTheme(path, true, logger)
		require.NoError(t, err)
		assert.True(t, d.IsDark())

		f, ok := d.Font(theme.PasswordFieldFont)
		require.True(t, ok)
		assert.Equal(t, "Monospaced", f.Family)
		assert.Equal(t, 15, f.Size)

		_, ok = d.Get(theme.TextFieldForeground)
		assert.True(t, ok, "built-in keys are kept")
	})
}

func TestPrintTheme(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTheme(&buf, theme.Default()))

	out := buf.String()
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, theme.PasswordFieldFont)
	assert.Contains(t, out, "Dialog/plain/12")
	assert.Contains(t, out, "#111827ff")
}

func TestSimulate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *SimulateParams)
		want   []string
	}{
		{
			name:   "initial state",
			modify: func(*SimulateParams) {},
			want: []string{
				"size:        200x20",
				"icon size:   16",
				"icon bounds: 180,2 16x16",
				"font:        Dialog/plain/14",
				"visible:     false",
				"display:     ••••••",
			},
		},
		{
			name:   "click on icon reveals",
			modify: func(p *SimulateParams) { p.Click = []string{"188,10"} },
			want:   []string{"visible:     true", "display:     secret"},
		},
		{
			name:   "second click hides again",
			modify: func(p *SimulateParams) { p.Click = []string{"188,10", "188, 10"} },
			want:   []string{"visible:     false", "display:     ••••••"},
		},
		{
			name:   "click on text does nothing",
			modify: func(p *SimulateParams) { p.Click = []string{"20,10"} },
			want:   []string{"visible:     false"},
		},
		{
			name: "resize with margins",
			modify: func(p *SimulateParams) {
				p.Margin = "2,0,2,0"
				p.Resize = "200x40"
			},
			want: []string{"font:        Dialog/plain/24", "icon size:   32", "icon bounds: 164,4 32x32"},
		},
		{
			name: "typing respects the length limit",
			modify: func(p *SimulateParams) {
				p.Text = ""
				p.Type = "secret123"
				p.MaxLength = 6
				p.Click = []string{"188,10"}
			},
			want: []string{"visible:     true", "display:     secret\n"},
		},
		{
			name: "host classes keep their family",
			modify: func(p *SimulateParams) {
				p.Classes = "font-serif italic py-1"
			},
			want: []string{"font:        Serif/italic/12"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := defaultParams()
			tt.modify(&p)

			s, err := p.Run(theme.Default(), zaptest.NewLogger(t))
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, s.WriteReport(&buf))
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestSimulateInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *SimulateParams)
		errMsg string
	}{
		{"click without comma", func(p *SimulateParams) { p.Click = []string{"188"} }, "invalid click"},
		{"click not a number", func(p *SimulateParams) { p.Click = []string{"a,10"} }, "invalid click"},
		{"resize separator", func(p *SimulateParams) { p.Resize = "200-40" }, "invalid resize"},
		{"margin arity", func(p *SimulateParams) { p.Margin = "1,2" }, "invalid margin"},
		{"margin not a number", func(p *SimulateParams) { p.Margin = "1,2,x,4" }, "invalid margin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := defaultParams()
			tt.modify(&p)

			_, err := p.Run(theme.Default(), zaptest.NewLogger(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestWriteFrame(t *testing.T) {
	p := defaultParams()
	s, err := p.Run(theme.Default(), zaptest.NewLogger(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WriteFrame(&buf))

	var frame []ffi.RenderCommand
	require.NoError(t, json.Unmarshal(buf.Bytes(), &frame))
	require.NotEmpty(t, frame)

	last := frame[len(frame)-1]
	require.NotNil(t, last.DrawText)
	assert.Equal(t, string(icon.VisibilityOff.Codepoint), last.DrawText.Text)
}
