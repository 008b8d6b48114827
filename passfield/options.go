package passfield

import (
	"go.uber.org/zap"

	"github.com/agiangrant/togglepass/icon"
	"github.com/agiangrant/togglepass/theme"
)

type options struct {
	theme        *theme.Defaults
	logger       *zap.Logger
	visibleGlyph string
	hiddenGlyph  string
}

// Option configures a Field at construction.
type Option func(*options)

// WithTheme resolves defaults from d instead of theme.Current().
func WithTheme(d *theme.Defaults) Option {
	return func(o *options) {
		o.theme = d
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithGlyphs selects the icon glyphs by registered name. A name that is not
// registered leaves that state without an icon.
func WithGlyphs(visible, hidden string) Option {
	return func(o *options) {
		o.visibleGlyph = visible
		o.hiddenGlyph = hidden
	}
}

func defaultOptions() options {
	return options{
		visibleGlyph: icon.Visibility.Name,
		hiddenGlyph:  icon.VisibilityOff.Name,
	}
}
