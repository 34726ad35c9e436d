package main

import (
	"fmt"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/image/math/fixed"
)

// fontVariants maps each allowlisted family to its TTF data. A nil
// variant falls back to the family's regular face.
var fontVariants = map[string]struct {
	regular, bold, italic, boldItalic []byte
}{
	"Go":           {goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF},
	"Go Mono":      {gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF},
	"Go Medium":    {gomedium.TTF, nil, gomediumitalic.TTF, nil},
	"Go Smallcaps": {gosmallcaps.TTF, nil, gosmallcapsitalic.TTF, nil},
}

type faceKey struct {
	family string
	size   float64
	bold   bool
	italic bool
}

type variantKey struct {
	family string
	bold   bool
	italic bool
}

// fontMeasurer is the concrete measure collaborator: it parses the
// bundled Go fonts once and hands out cached faces per style.
type fontMeasurer struct {
	fonts map[variantKey]*truetype.Font
	faces map[faceKey]font.Face
}

func newFontMeasurer() (*fontMeasurer, error) {
	m := &fontMeasurer{
		fonts: make(map[variantKey]*truetype.Font),
		faces: make(map[faceKey]font.Face),
	}
	for family, v := range fontVariants {
		regular, err := truetype.Parse(v.regular)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %v", family, err)
		}
		m.fonts[variantKey{family, false, false}] = regular
		for _, item := range []struct {
			ttf          []byte
			bold, italic bool
		}{
			{v.bold, true, false},
			{v.italic, false, true},
			{v.boldItalic, true, true},
		} {
			f := regular
			if item.ttf != nil {
				if parsed, err := truetype.Parse(item.ttf); err == nil {
					f = parsed
				}
			}
			m.fonts[variantKey{family, item.bold, item.italic}] = f
		}
	}
	return m, nil
}

// face returns a cached face for the style. Unknown families resolve
// to the default family, so measurement never fails.
func (m *fontMeasurer) face(st Style) font.Face {
	size := clampFontSize(st.FontSize)
	family := st.FontFamily
	if _, ok := fontVariants[family]; !ok {
		family = defaultFontFamily
	}
	key := faceKey{family, size, st.Bold, st.Italic}
	if f, ok := m.faces[key]; ok {
		return f
	}
	f := truetype.NewFace(m.fonts[variantKey{family, st.Bold, st.Italic}], &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	m.faces[key] = f
	return f
}

// Measure reports the extent of a text block in pixels: widest line by
// line count times the face line height. Empty text still occupies one
// line of height.
func (m *fontMeasurer) Measure(text string, st Style) (float64, float64) {
	face := m.face(st)
	lineHeight := fixedToFloat(face.Metrics().Height)
	lines := strings.Split(text, "\n")
	var w float64
	for _, line := range lines {
		if lw := fixedToFloat(font.MeasureString(face, line)); lw > w {
			w = lw
		}
	}
	return w, lineHeight * float64(len(lines))
}

// lineMetrics reports ascent and line height for baseline placement
// when drawing.
func (m *fontMeasurer) lineMetrics(st Style) (ascent, lineHeight float64) {
	met := m.face(st).Metrics()
	return fixedToFloat(met.Ascent), fixedToFloat(met.Height)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
