package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
)

const exportPadding = 16.0

// exportPNG rasterizes the document to a PNG file. The image is sized
// to the content bounds plus padding; elements draw in insertion order
// so overlap matches the canvas paint order.
func exportPNG(ed *Editor, mr *fontMeasurer, filename string) error {
	elements := ed.canvas.Elements()
	if len(elements) == 0 {
		return fmt.Errorf("nothing to export")
	}

	minX, minY := elements[0].X, elements[0].Y
	maxX, maxY := minX, minY
	for _, el := range elements {
		w, h := mr.Measure(el.Text, el.Style)
		if el.X < minX {
			minX = el.X
		}
		if el.Y < minY {
			minY = el.Y
		}
		if el.X+w > maxX {
			maxX = el.X + w
		}
		if el.Y+h > maxY {
			maxY = el.Y + h
		}
	}

	imageWidth := int(maxX - minX + 2*exportPadding)
	imageHeight := int(maxY - minY + 2*exportPadding)
	if imageWidth < 1 {
		imageWidth = 1
	}
	if imageHeight < 1 {
		imageHeight = 1
	}

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	for _, el := range elements {
		dc.SetFontFace(mr.face(el.Style))
		ascent, lineHeight := mr.lineMetrics(el.Style)
		x := el.X - minX + exportPadding
		y := el.Y - minY + exportPadding
		for i, line := range strings.Split(el.Text, "\n") {
			baseline := y + float64(i)*lineHeight + ascent
			dc.DrawString(line, x, baseline)
			if el.Style.Underline && line != "" {
				w, _ := mr.Measure(line, el.Style)
				strokeWidth := el.Style.FontSize / 16
				if strokeWidth < 1 {
					strokeWidth = 1
				}
				dc.SetLineWidth(strokeWidth)
				dc.DrawLine(x, baseline+2, x+w, baseline+2)
				dc.Stroke()
			}
		}
	}

	return dc.SavePNG(filename)
}
