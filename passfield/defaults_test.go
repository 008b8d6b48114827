package passfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/agiangrant/togglepass/retained"
	"github.com/agiangrant/togglepass/theme"
)

func TestDefaultFontChain(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]string
		hostFont *retained.Font
		want     retained.Font
	}{
		{
			name: "password field font wins",
			values: map[string]string{
				theme.PasswordFieldFont: "font-mono text-[13px]",
				theme.TextFieldFont:     "font-serif text-[15px]",
			},
			want: retained.Font{Family: "Monospaced", Size: 13},
		},
		{
			name:   "falls back to text field font",
			values: map[string]string{theme.TextFieldFont: "font-serif text-[15px] font-bold"},
			want:   retained.Font{Family: "Serif", Style: retained.FontBold, Size: 15},
		},
		{
			name:   "value without a size is skipped",
			values: map[string]string{theme.PasswordFieldFont: "font-mono", theme.TextFieldFont: "text-[11px]"},
			want:   retained.Font{Family: "SansSerif", Size: 11},
		},
		{
			name:     "falls back to host font",
			hostFont: &retained.Font{Family: "Dialog", Style: retained.FontItalic, Size: 10},
			want:     retained.Font{Family: "Dialog", Style: retained.FontItalic, Size: 10},
		},
		{
			name: "hard-coded fallback",
			want: retained.Font{Family: "SansSerif", Style: retained.FontPlain, Size: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := theme.New()
			for k, v := range tt.values {
				d.Set(k, v)
			}

			host := retained.NewTextField()
			if tt.hostFont != nil {
				host.SetFont(*tt.hostFont)
			} else {
				host.ResetFont()
			}

			f := New(host, "", WithTheme(d), WithLogger(zaptest.NewLogger(t)))
			assert.Equal(t, tt.want, f.DefaultFont())
		})
	}
}

func TestDefaultForegroundChain(t *testing.T) {
	hostColor := retained.RGB(10, 20, 30)

	tests := []struct {
		name      string
		values    map[string]string
		dark      bool
		hostColor *retained.Color
		want      retained.Color
	}{
		{
			name: "password field foreground wins",
			values: map[string]string{
				theme.PasswordFieldForeground: "text-blue-500",
				theme.TextFieldForeground:     "text-red-500",
			},
			want: retained.Color(0x3B82F6FF),
		},
		{
			name:   "falls back to text field foreground",
			values: map[string]string{theme.TextFieldForeground: "text-red-500"},
			want:   retained.Color(0xEF4444FF),
		},
		{
			name:   "dark variant applies in dark mode",
			values: map[string]string{theme.TextFieldForeground: "text-gray-900 dark:text-gray-100"},
			dark:   true,
			want:   retained.Color(0xF3F4F6FF),
		},
		{
			name:      "falls back to host foreground",
			hostColor: &hostColor,
			want:      hostColor,
		},
		{
			name: "hard-coded fallback",
			want: retained.Black,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := theme.New()
			d.SetDark(tt.dark)
			for k, v := range tt.values {
				d.Set(k, v)
			}

			host := retained.NewTextField()
			if tt.hostColor != nil {
				host.SetForeground(*tt.hostColor)
			} else {
				host.ResetForeground()
			}

			f := New(host, "", WithTheme(d), WithLogger(zaptest.NewLogger(t)))
			assert.Equal(t, tt.want, f.DefaultForeground())
		})
	}
}

func TestDefaultsUseCurrentTheme(t *testing.T) {
	t.Cleanup(func() { theme.SetCurrent(nil) })

	d := theme.New()
	d.Set(theme.TextFieldFont, "text-[17px]")
	theme.SetCurrent(d)

	f := New(retained.NewTextField(), "")
	assert.Equal(t, 17, f.DefaultFont().Size)
}

func TestDefaultsCapturedOnce(t *testing.T) {
	d := theme.New()
	d.Set(theme.PasswordFieldFont, "text-[12px]")

	host := retained.NewTextField()
	f := New(host, "", WithTheme(d))

	d.Set(theme.PasswordFieldFont, "text-[30px]")
	host.SetSize(200, 20)

	font, _ := host.Font()
	assert.Equal(t, 14, font.Size, "later theme changes do not move the floor")
	assert.Equal(t, 12, f.DefaultFont().Size)
}
