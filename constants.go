package main

type Mode int

const (
	ModeStartup Mode = iota
	ModeNormal
	ModeEditing
	ModeMove
	ModeFileInput
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmNewCanvas
)

const (
	fontSizeMin  = 8.0
	fontSizeMax  = 100.0
	fontSizeStep = 2.0

	historyLimit = 50

	// hitPadding expands an element's measured extent when deciding
	// whether a tap lands on it.
	hitPadding = 8.0

	// Terminal cells map to world pixels at this scale.
	cellWidth  = 8.0
	cellHeight = 16.0

	defaultElementText = "Tap to Edit"
	defaultFontSize    = 16.0
	defaultElementX    = 64.0
	defaultElementY    = 64.0
)

const defaultFontFamily = "Go"

// fontFamilies is the ordered allowlist of families new elements may use.
var fontFamilies = []string{"Go", "Go Mono", "Go Medium", "Go Smallcaps"}

func nextFontFamily(name string) string {
	for i, f := range fontFamilies {
		if f == name {
			return fontFamilies[(i+1)%len(fontFamilies)]
		}
	}
	return fontFamilies[0]
}

func validFontFamily(name string) bool {
	for _, f := range fontFamilies {
		if f == name {
			return true
		}
	}
	return false
}
