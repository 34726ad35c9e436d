package main

// Style mutators are pure: they take a style by value and return the
// transformed value, so elements never share style state.

func toggleBold(s Style) Style {
	s.Bold = !s.Bold
	return s
}

func toggleItalic(s Style) Style {
	s.Italic = !s.Italic
	return s
}

func toggleUnderline(s Style) Style {
	s.Underline = !s.Underline
	return s
}

// applyFontFamily switches the family if it is on the allowlist;
// unknown names leave the style unchanged.
func applyFontFamily(s Style, name string) Style {
	if validFontFamily(name) {
		s.FontFamily = name
	}
	return s
}

// applyFontSize adjusts the size by delta, clamped to the allowed range.
func applyFontSize(s Style, delta float64) Style {
	s.FontSize = clampFontSize(s.FontSize + delta)
	return s
}

func clampFontSize(size float64) float64 {
	if size < fontSizeMin {
		return fontSizeMin
	}
	if size > fontSizeMax {
		return fontSizeMax
	}
	return size
}
