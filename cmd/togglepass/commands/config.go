package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"github.com/agiangrant/togglepass/theme"
)

// DefaultThemeFile is read when no --theme path is given, if it exists.
const DefaultThemeFile = "theme.toml"

// LoadTheme layers the theme file at path over the built-in defaults.
// An empty path tries DefaultThemeFile and silently skips it when absent.
func LoadTheme(path string, dark bool, logger *zap.Logger) (*theme.Defaults, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultThemeFile
	}

	d := theme.Default()

	file, err := theme.Load(path)
	switch {
	case err == nil:
		logger.Debug("Loaded theme", zap.String("path", path), zap.Int("keys", len(file.Keys())))
		d = d.Overlay(file)
	case !explicit && errors.Is(err, fs.ErrNotExist):
		logger.Debug("No theme file, using built-in defaults", zap.String("path", path))
	default:
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}

	if dark {
		d.SetDark(true)
	}
	d.SetLogger(logger.Named("theme"))

	return d, nil
}
