package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/agiangrant/togglepass/internal/ffi"
	"github.com/agiangrant/togglepass/passfield"
	"github.com/agiangrant/togglepass/retained"
	"github.com/agiangrant/togglepass/theme"
)

// SimulateParams describes a scripted session against one field.
type SimulateParams struct {
	Text      string   `help:"Initial password." default:"secret"`
	Width     int      `help:"Field width in pixels." default:"200"`
	Height    int      `help:"Field height in pixels." default:"20"`
	Classes   string   `help:"Class string styling the host field before it is wrapped."`
	Margin    string   `help:"Margin as top,left,bottom,right." placeholder:"T,L,B,R"`
	MaxLength int      `help:"Limit typed input to N characters; 0 means no limit." placeholder:"N"`
	Type      string   `help:"Text typed into the field after the first paint."`
	Click     []string `help:"Click at x,y after typing; repeatable." placeholder:"X,Y"`
	Resize    string   `help:"Resize to WxH after the clicks." placeholder:"WxH"`
}

// Session is the state of a simulated field after all steps ran.
type Session struct {
	Field *passfield.Field
	Host  *retained.TextField
	Frame []ffi.RenderCommand
}

// Run builds the field, sizes, shows and paints it, then replays typing, clicks and the resize.
// Every step is followed by a paint, matching paint-before-input ordering.
func (p *SimulateParams) Run(d *theme.Defaults, logger *zap.Logger) (*Session, error) {
	host := retained.NewTextField()
	host.ApplyClasses(p.Classes, d.IsDark())
	host.SetMaxLength(p.MaxLength)

	if p.Margin != "" {
		m, err := parseInsets(p.Margin)
		if err != nil {
			return nil, err
		}
		host.SetMargin(m)
	}

	clicks := make([][2]int, 0, len(p.Click))
	for _, c := range p.Click {
		x, y, err := parsePair(c, ",")
		if err != nil {
			return nil, fmt.Errorf("invalid click %q: %w", c, err)
		}
		clicks = append(clicks, [2]int{x, y})
	}

	var resize *[2]int
	if p.Resize != "" {
		w, h, err := parsePair(p.Resize, "x")
		if err != nil {
			return nil, fmt.Errorf("invalid resize %q: %w", p.Resize, err)
		}
		resize = &[2]int{w, h}
	}

	f := passfield.New(host, p.Text, passfield.WithTheme(d), passfield.WithLogger(logger.Named("passfield")))
	host.SetSize(p.Width, p.Height)
	host.Show()
	frame := host.Render(0, 0)

	if p.Type != "" {
		host.SetFocused(true)
		host.TypeText(p.Type)
		logger.Debug("Typed", zap.Int("length", len([]rune(host.Text()))))
		frame = host.Render(0, 0)
	}

	for _, c := range clicks {
		host.Click(c[0], c[1])
		logger.Debug("Click",
			zap.Int("x", c[0]), zap.Int("y", c[1]),
			zap.Bool("visible", f.IsPasswordVisible()),
		)
		frame = host.Render(0, 0)
	}

	if resize != nil {
		host.SetSize(resize[0], resize[1])
		logger.Debug("Resize", zap.Int("width", resize[0]), zap.Int("height", resize[1]))
		frame = host.Render(0, 0)
	}

	return &Session{Field: f, Host: host, Frame: frame}, nil
}

// WriteReport prints the field's observable state.
func (s *Session) WriteReport(w io.Writer) error {
	size := s.Host.Size()
	b := s.Field.IconBounds()
	font, _ := s.Host.Font()

	_, err := fmt.Fprintf(w,
		"size:        %dx%d\nicon size:   %d\nicon bounds: %d,%d %dx%d\nfont:        %s\nvisible:     %t\ndisplay:     %s\n",
		size.Width, size.Height,
		s.Field.IconSize(),
		b.X, b.Y, b.Width, b.Height,
		font,
		s.Field.IsPasswordVisible(),
		s.Host.DisplayText(),
	)
	return err
}

// WriteFrame writes the last frame's render commands as indented JSON.
func (s *Session) WriteFrame(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.Frame); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	return nil
}

func parsePair(s, sep string) (int, int, error) {
	a, b, ok := strings.Cut(s, sep)
	if !ok {
		return 0, 0, fmt.Errorf("expected two numbers separated by %q", sep)
	}
	x, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func parseInsets(s string) (retained.Insets, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return retained.Insets{}, fmt.Errorf("invalid margin %q: expected top,left,bottom,right", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return retained.Insets{}, fmt.Errorf("invalid margin %q: %w", s, err)
		}
		v[i] = n
	}
	return retained.Insets{Top: v[0], Left: v[1], Bottom: v[2], Right: v[3]}, nil
}
