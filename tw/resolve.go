package tw

// Resolve merges the style buckets that apply for the given mode and state.
// Order: base → state → dark:base → dark:state (if darkMode)
func (cs *ComputedStyles) Resolve(darkMode bool, state State) StyleProperties {
	result := cs.Base

	switch state {
	case StateHover:
		mergeStyleProperties(&result, &cs.Hover)
	case StateFocus:
		mergeStyleProperties(&result, &cs.Focus)
	case StateDisabled:
		mergeStyleProperties(&result, &cs.Disabled)
	}

	if darkMode {
		mergeStyleProperties(&result, &cs.Dark.Base)

		switch state {
		case StateHover:
			mergeStyleProperties(&result, &cs.Dark.Hover)
		case StateFocus:
			mergeStyleProperties(&result, &cs.Dark.Focus)
		case StateDisabled:
			mergeStyleProperties(&result, &cs.Dark.Disabled)
		}
	}

	return result
}

// ResolveWithDarkMode resolves base styles, applying dark: variants on top when darkMode is set.
func (cs *ComputedStyles) ResolveWithDarkMode(darkMode bool) StyleProperties {
	return cs.Resolve(darkMode, StateDefault)
}

// StateOverlay returns only what the state variants set for state, with
// dark: state variants on top when darkMode is set. It is empty for StateDefault.
func (cs *ComputedStyles) StateOverlay(darkMode bool, state State) StyleProperties {
	var result StyleProperties

	switch state {
	case StateHover:
		mergeStyleProperties(&result, &cs.Hover)
	case StateFocus:
		mergeStyleProperties(&result, &cs.Focus)
	case StateDisabled:
		mergeStyleProperties(&result, &cs.Disabled)
	}

	if darkMode {
		switch state {
		case StateHover:
			mergeStyleProperties(&result, &cs.Dark.Hover)
		case StateFocus:
			mergeStyleProperties(&result, &cs.Dark.Focus)
		case StateDisabled:
			mergeStyleProperties(&result, &cs.Dark.Disabled)
		}
	}

	return result
}

// mergeStyleProperties copies non-nil values from src to dst.
func mergeStyleProperties(dst, src *StyleProperties) {
	// Colors
	if src.TextColor != nil {
		dst.TextColor = src.TextColor
	}
	if src.BackgroundColor != nil {
		dst.BackgroundColor = src.BackgroundColor
	}
	if src.BorderColor != nil {
		dst.BorderColor = src.BorderColor
	}

	// Typography
	if src.FontFamily != nil {
		dst.FontFamily = src.FontFamily
	}
	if src.FontSize != nil {
		dst.FontSize = src.FontSize
	}
	if src.FontWeight != nil {
		dst.FontWeight = src.FontWeight
	}
	if src.FontStyle != nil {
		dst.FontStyle = src.FontStyle
	}

	// Spacing
	if src.PaddingTop != nil {
		dst.PaddingTop = src.PaddingTop
	}
	if src.PaddingRight != nil {
		dst.PaddingRight = src.PaddingRight
	}
	if src.PaddingBottom != nil {
		dst.PaddingBottom = src.PaddingBottom
	}
	if src.PaddingLeft != nil {
		dst.PaddingLeft = src.PaddingLeft
	}
	if src.MarginTop != nil {
		dst.MarginTop = src.MarginTop
	}
	if src.MarginRight != nil {
		dst.MarginRight = src.MarginRight
	}
	if src.MarginBottom != nil {
		dst.MarginBottom = src.MarginBottom
	}
	if src.MarginLeft != nil {
		dst.MarginLeft = src.MarginLeft
	}

	if src.BorderWidth != nil {
		dst.BorderWidth = src.BorderWidth
	}
	if src.Cursor != nil {
		dst.Cursor = src.Cursor
	}
}
