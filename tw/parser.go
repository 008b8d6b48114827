package tw

import (
	"fmt"
	"strings"
)

// State represents widget interaction state
type State int

const (
	StateDefault State = iota
	StateHover
	StateFocus
	StateDisabled
)

// StyleProperties represents concrete style values
type StyleProperties struct {
	// Colors
	TextColor       *uint32
	BackgroundColor *uint32
	BorderColor     *uint32

	// Typography
	FontFamily *string // "sans", "serif", "mono", or a custom name
	FontSize   *float32
	FontWeight *int
	FontStyle  *string // "normal", "italic"

	// Spacing
	PaddingTop    *float32
	PaddingRight  *float32
	PaddingBottom *float32
	PaddingLeft   *float32
	MarginTop     *float32
	MarginRight   *float32
	MarginBottom  *float32
	MarginLeft    *float32

	// Borders
	BorderWidth *float32

	// Interactivity
	Cursor *string // "pointer", "default", "text", "not-allowed"
}

// ComputedStyles represents styles organized by state
type ComputedStyles struct {
	// Base styles (always apply)
	Base StyleProperties

	// State variants
	Hover    StyleProperties
	Focus    StyleProperties
	Disabled StyleProperties

	// Dark mode variants
	Dark struct {
		Base     StyleProperties
		Hover    StyleProperties
		Focus    StyleProperties
		Disabled StyleProperties
	}
}

// ParsedClass represents a class with its variant modifiers
type ParsedClass struct {
	State          State
	DarkMode       bool
	BaseClass      string
	ArbitraryValue *ArbitraryValue // For arbitrary values like text-[#1da1f2]
}

// ArbitraryValue represents a runtime-parsed arbitrary value
type ArbitraryValue struct {
	Property string // e.g., "text", "bg", "font"
	Value    string // e.g., "#1da1f2", "13px", "Inter"
}

// ParseClasses parses a Tailwind class string and returns computed styles
// Example: "font-sans text-[13px] text-gray-900 dark:text-gray-100"
func ParseClasses(classStr string) ComputedStyles {
	var computed ComputedStyles

	for _, class := range strings.Fields(classStr) {
		parsed := parseClass(class)

		var partial PartialStyle

		if parsed.ArbitraryValue != nil {
			partial = parseArbitraryValue(parsed.ArbitraryValue)
		} else {
			var ok bool
			partial, ok = GetClassMap()[parsed.BaseClass]
			if !ok {
				// Unknown class, silently ignore (like Tailwind CSS)
				continue
			}
		}

		target := getTargetProperties(&computed, parsed)
		target.Merge(partial)
	}

	return computed
}

// parseClass splits a class into variant modifiers and base utility
// "hover:dark:text-gray-500" → ParsedClass{State: Hover, DarkMode: true, BaseClass: "text-gray-500"}
func parseClass(class string) ParsedClass {
	parts := strings.Split(class, ":")

	pc := ParsedClass{
		State:     StateDefault,
		BaseClass: parts[len(parts)-1], // Last part is always the base utility
	}

	for i := 0; i < len(parts)-1; i++ {
		switch parts[i] {
		case "hover":
			pc.State = StateHover
		case "focus":
			pc.State = StateFocus
		case "disabled":
			pc.State = StateDisabled
		case "dark":
			pc.DarkMode = true
		}
	}

	if strings.Contains(pc.BaseClass, "[") && strings.HasSuffix(pc.BaseClass, "]") {
		pc.ArbitraryValue = extractArbitraryValue(pc.BaseClass)
		pc.BaseClass = ""
	}

	return pc
}

// extractArbitraryValue parses arbitrary value syntax
// "text-[13px]" → ArbitraryValue{Property: "text", Value: "13px"}
func extractArbitraryValue(class string) *ArbitraryValue {
	bracketIdx := strings.Index(class, "[")
	if bracketIdx == -1 {
		return nil
	}

	return &ArbitraryValue{
		Property: strings.TrimSuffix(class[:bracketIdx], "-"),
		Value:    strings.TrimSuffix(class[bracketIdx+1:], "]"),
	}
}

// parseArbitraryValue converts arbitrary value to PartialStyle at runtime
func parseArbitraryValue(arb *ArbitraryValue) PartialStyle {
	var partial PartialStyle

	switch arb.Property {
	case "p":
		if val := parseDimension(arb.Value); val != nil {
			partial.PaddingTop = val
			partial.PaddingRight = val
			partial.PaddingBottom = val
			partial.PaddingLeft = val
		}
	case "px":
		if val := parseDimension(arb.Value); val != nil {
			partial.PaddingLeft = val
			partial.PaddingRight = val
		}
	case "py":
		if val := parseDimension(arb.Value); val != nil {
			partial.PaddingTop = val
			partial.PaddingBottom = val
		}
	case "pt":
		partial.PaddingTop = parseDimension(arb.Value)
	case "pr":
		partial.PaddingRight = parseDimension(arb.Value)
	case "pb":
		partial.PaddingBottom = parseDimension(arb.Value)
	case "pl":
		partial.PaddingLeft = parseDimension(arb.Value)

	case "m":
		if val := parseDimension(arb.Value); val != nil {
			partial.MarginTop = val
			partial.MarginRight = val
			partial.MarginBottom = val
			partial.MarginLeft = val
		}
	case "mx":
		if val := parseDimension(arb.Value); val != nil {
			partial.MarginLeft = val
			partial.MarginRight = val
		}
	case "my":
		if val := parseDimension(arb.Value); val != nil {
			partial.MarginTop = val
			partial.MarginBottom = val
		}

	case "bg":
		partial.BackgroundColor = parseColor(arb.Value)

	// text-[#hex] is a color, text-[13px] is a size
	case "text":
		if color := parseColor(arb.Value); color != nil {
			partial.TextColor = color
		} else {
			partial.FontSize = parseDimension(arb.Value)
		}

	// border-[#hex] is a color, border-[2px] is a width
	case "border":
		if color := parseColor(arb.Value); color != nil {
			partial.BorderColor = color
		} else {
			partial.BorderWidth = parseDimension(arb.Value)
		}

	// font-[Inter] names a family, font-[600] a weight
	case "font":
		if weight := parseInt(arb.Value); weight != nil {
			partial.FontWeight = weight
		} else {
			partial.FontFamily = strPtr(strings.ReplaceAll(arb.Value, "_", " "))
		}

	case "cursor":
		partial.Cursor = strPtr(arb.Value)
	}

	return partial
}

func parseInt(value string) *int {
	var result int
	var rest string
	if n, _ := fmt.Sscanf(value, "%d%s", &result, &rest); n == 1 {
		return &result
	}
	return nil
}

// parseDimension parses CSS dimension values (px, rem, em)
func parseDimension(value string) *float32 {
	value = strings.TrimSpace(value)

	numStr := value
	var multiplier float32 = 1.0

	switch {
	case strings.HasSuffix(value, "px"):
		numStr = strings.TrimSuffix(value, "px")
	case strings.HasSuffix(value, "rem"):
		numStr = strings.TrimSuffix(value, "rem")
		multiplier = 16.0 // 1rem = 16px
	case strings.HasSuffix(value, "em"):
		numStr = strings.TrimSuffix(value, "em")
		multiplier = 16.0 // approximate
	}

	var num float32
	var rest string
	if n, _ := fmt.Sscanf(numStr, "%f%s", &num, &rest); n == 1 {
		result := num * multiplier
		return &result
	}

	return nil
}

// parseColor parses #RRGGBB, #RGB and #RRGGBBAA into RGBA
func parseColor(value string) *uint32 {
	value = strings.TrimSpace(value)

	if !strings.HasPrefix(value, "#") {
		return nil
	}
	hex := value[1:]

	// Expand shorthand: #RGB → #RRGGBB
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	switch len(hex) {
	case 6:
		var r, g, b uint32
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err == nil {
			color := (r << 24) | (g << 16) | (b << 8) | 0xFF
			return &color
		}
	case 8:
		var r, g, b, a uint32
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err == nil {
			color := (r << 24) | (g << 16) | (b << 8) | a
			return &color
		}
	}

	return nil
}

// getTargetProperties returns the appropriate StyleProperties to apply to
func getTargetProperties(computed *ComputedStyles, parsed ParsedClass) *StyleProperties {
	if parsed.DarkMode {
		switch parsed.State {
		case StateHover:
			return &computed.Dark.Hover
		case StateFocus:
			return &computed.Dark.Focus
		case StateDisabled:
			return &computed.Dark.Disabled
		default:
			return &computed.Dark.Base
		}
	}

	switch parsed.State {
	case StateHover:
		return &computed.Hover
	case StateFocus:
		return &computed.Focus
	case StateDisabled:
		return &computed.Disabled
	default:
		return &computed.Base
	}
}

// Merge merges a PartialStyle into these StyleProperties
// Later values override earlier ones (last class wins)
func (s *StyleProperties) Merge(p PartialStyle) {
	mergeStyleProperties(s, &StyleProperties{
		TextColor:       p.TextColor,
		BackgroundColor: p.BackgroundColor,
		BorderColor:     p.BorderColor,
		FontFamily:      p.FontFamily,
		FontSize:        p.FontSize,
		FontWeight:      p.FontWeight,
		FontStyle:       p.FontStyle,
		PaddingTop:      p.PaddingTop,
		PaddingRight:    p.PaddingRight,
		PaddingBottom:   p.PaddingBottom,
		PaddingLeft:     p.PaddingLeft,
		MarginTop:       p.MarginTop,
		MarginRight:     p.MarginRight,
		MarginBottom:    p.MarginBottom,
		MarginLeft:      p.MarginLeft,
		BorderWidth:     p.BorderWidth,
		Cursor:          p.Cursor,
	})
}

func strPtr(s string) *string { return &s }
