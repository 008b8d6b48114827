// Package theme holds the look-and-feel defaults table: named keys mapped to
// Tailwind-style class strings, resolved on demand into fonts and colors.
package theme

import (
	"fmt"
	"math"
	"os"
	"sort"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/agiangrant/togglepass/retained"
	"github.com/agiangrant/togglepass/tw"
)

// Well-known keys.
const (
	PasswordFieldFont       = "PasswordField.font"
	TextFieldFont           = "TextField.font"
	PasswordFieldForeground = "PasswordField.foreground"
	TextFieldForeground     = "TextField.foreground"
)

// Defaults is a key → class string table. The zero value is an empty table.
type Defaults struct {
	mu sync.RWMutex

	Dark   bool              `toml:"dark"`
	Fonts  map[string]string `toml:"fonts,omitempty"`
	Values map[string]string `toml:"defaults"`

	logger *zap.Logger
}

// New creates an empty table.
func New() *Defaults {
	return &Defaults{Values: map[string]string{}}
}

// Default returns the built-in look-and-feel.
func Default() *Defaults {
	d := New()
	d.Values[TextFieldFont] = "font-[Dialog] text-[12px]"
	d.Values[PasswordFieldFont] = "font-[Dialog] text-[12px]"
	d.Values[TextFieldForeground] = "text-black dark:text-white"
	d.Values[PasswordFieldForeground] = "text-gray-900 dark:text-gray-100"
	return d
}

// Parse decodes a theme.toml document.
func Parse(data []byte) (*Defaults, error) {
	d := New()
	if err := toml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	if d.Values == nil {
		d.Values = map[string]string{}
	}
	return d, nil
}

// Load reads and decodes a theme.toml file.
func Load(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Marshal encodes the table as TOML.
func (d *Defaults) Marshal() ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	data, err := toml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode theme: %w", err)
	}
	return data, nil
}

// SetLogger sets the logger used for resolution diagnostics.
func (d *Defaults) SetLogger(l *zap.Logger) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logger = l
}

func (d *Defaults) log() *zap.Logger {
	if d.logger == nil {
		return zap.NewNop()
	}
	return d.logger
}

// Get returns the raw class string for key.
func (d *Defaults) Get(key string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.Values[key]
	return v, ok
}

// Set stores a class string under key. An empty string removes the key.
func (d *Defaults) Set(key, classes string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Values == nil {
		d.Values = map[string]string{}
	}
	if classes == "" {
		delete(d.Values, key)
		return
	}
	d.Values[key] = classes
}

// Keys returns all keys in sorted order.
func (d *Defaults) Keys() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	keys := make([]string, 0, len(d.Values))
	for k := range d.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsDark reports whether dark: variants are resolved.
func (d *Defaults) IsDark() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.Dark
}

// SetDark switches resolution of dark: variants on or off.
func (d *Defaults) SetDark(dark bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Dark = dark
}

// Overlay returns a new table with o's values layered on top of d's.
// Dark mode is taken from o.
func (d *Defaults) Overlay(o *Defaults) *Defaults {
	d.mu.RLock()
	defer d.mu.RUnlock()
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := New()
	out.Dark = o.Dark
	out.logger = d.logger
	for k, v := range d.Values {
		out.Values[k] = v
	}
	for k, v := range o.Values {
		out.Values[k] = v
	}
	if len(d.Fonts)+len(o.Fonts) > 0 {
		out.Fonts = map[string]string{}
		for k, v := range d.Fonts {
			out.Fonts[k] = v
		}
		for k, v := range o.Fonts {
			out.Fonts[k] = v
		}
	}
	return out
}

// Font resolves key into a font. The class string must carry a font size;
// the family defaults to sans when omitted.
func (d *Defaults) Font(key string) (retained.Font, bool) {
	props, ok := d.resolve(key)
	if !ok {
		return retained.Font{}, false
	}
	if props.FontSize == nil {
		d.log().Debug("Theme value has no font size", zap.String("key", key))
		return retained.Font{}, false
	}

	family := "sans"
	if props.FontFamily != nil {
		family = *props.FontFamily
	}

	var style retained.FontStyle
	if props.FontWeight != nil && *props.FontWeight >= 600 {
		style |= retained.FontBold
	}
	if props.FontStyle != nil && *props.FontStyle == "italic" {
		style |= retained.FontItalic
	}

	return retained.Font{
		Family: d.fontName(family),
		Style:  style,
		Size:   int(math.Round(float64(*props.FontSize))),
	}, true
}

// Color resolves key into a text color.
func (d *Defaults) Color(key string) (retained.Color, bool) {
	props, ok := d.resolve(key)
	if !ok {
		return 0, false
	}
	if props.TextColor == nil {
		d.log().Debug("Theme value has no text color", zap.String("key", key))
		return 0, false
	}
	return retained.Color(*props.TextColor), true
}

func (d *Defaults) resolve(key string) (tw.StyleProperties, bool) {
	d.mu.RLock()
	classes, ok := d.Values[key]
	dark := d.Dark
	d.mu.RUnlock()
	if !ok {
		return tw.StyleProperties{}, false
	}
	styles := tw.ParseClasses(classes)
	return styles.ResolveWithDarkMode(dark), true
}

// fontName maps a family key through the table's own fonts first, then the
// registered tw fonts.
func (d *Defaults) fontName(family string) string {
	d.mu.RLock()
	name, ok := d.Fonts[family]
	d.mu.RUnlock()
	if ok {
		return name
	}
	return tw.FontName(family)
}

var (
	currentMu sync.RWMutex
	current   = Default()
)

// Current returns the process-wide table.
func Current() *Defaults {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the process-wide table. nil restores the built-in one.
func SetCurrent(d *Defaults) {
	if d == nil {
		d = Default()
	}
	currentMu.Lock()
	defer currentMu.Unlock()
	current = d
}
