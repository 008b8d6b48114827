package passfield

import (
	"go.uber.org/zap"

	"github.com/agiangrant/togglepass/retained"
	"github.com/agiangrant/togglepass/theme"
)

// resolveDefaultFont walks theme password font, theme text font, host font,
// then SansSerif/Plain/12.
func (f *Field) resolveDefaultFont(d *theme.Defaults) retained.Font {
	for _, key := range []string{theme.PasswordFieldFont, theme.TextFieldFont} {
		if font, ok := d.Font(key); ok {
			f.logger.Debug("Default font from theme", zap.String("key", key), zap.Stringer("font", font))
			return font
		}
	}
	if font, ok := f.TextInputHost.Font(); ok {
		f.logger.Debug("Default font from host", zap.Stringer("font", font))
		return font
	}
	f.logger.Debug("Default font fallback", zap.Stringer("font", retained.DefaultFont))
	return retained.DefaultFont
}

// resolveDefaultForeground walks theme password foreground, theme text
// foreground, host foreground, then black.
func (f *Field) resolveDefaultForeground(d *theme.Defaults) retained.Color {
	for _, key := range []string{theme.PasswordFieldForeground, theme.TextFieldForeground} {
		if c, ok := d.Color(key); ok {
			f.logger.Debug("Default foreground from theme", zap.String("key", key), zap.Stringer("color", c))
			return c
		}
	}
	if c, ok := f.Foreground(); ok {
		f.logger.Debug("Default foreground from host", zap.Stringer("color", c))
		return c
	}
	f.logger.Debug("Default foreground fallback")
	return retained.Black
}
