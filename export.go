// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package garden

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/fogleman/gg"
)

// WriteSVG serializes a vector-mode shape list as an SVG document: a
// pixelWidth-sized square whose viewBox is the viewport with the origin at
// its center, a white background, then the shapes in order. Shape Attrs are
// appended verbatim to their elements. Zero or negative geometry arguments
// fall back to the defaults.
func WriteSVG(w io.Writer, shapes []Shape, viewport, pixelWidth int) {
	if viewport <= 0 {
		viewport = DefaultViewport
	}
	if pixelWidth <= 0 {
		pixelWidth = DefaultPixelWidth
	}
	vp, px := float64(viewport), float64(pixelWidth)

	canvas := svg.New(w)
	canvas.Startview(px, px, -vp/2, -vp/2, vp, vp)
	canvas.Rect(-vp/2, -vp/2, vp, vp, `style="fill:white"`)
	for _, s := range shapes {
		switch s.Kind {
		case ShapeCircle:
			canvas.Circle(s.X, s.Y, s.R, svgStyle("fill", s.Color, s.Attrs)...)
		case ShapeEllipse:
			canvas.Ellipse(s.X, s.Y, s.RX, s.RY, svgStyle("fill", s.Color, s.Attrs)...)
		case ShapeLine:
			sw := s.Stroke
			if sw <= 0 {
				sw = 1
			}
			style := fmt.Sprintf(`style="stroke:%s;stroke-width:%g"`, colorOr(s.Color), sw)
			canvas.Line(s.X, s.Y, s.X2, s.Y2, append([]string{style}, s.Attrs...)...)
		case ShapeRect:
			canvas.Rect(s.X, s.Y, s.W, s.H, svgStyle("fill", s.Color, s.Attrs)...)
		}
	}
	canvas.End()
}

func colorOr(c string) string {
	if c == "" {
		return "black"
	}
	return c
}

func svgStyle(prop, c string, attrs []string) []string {
	style := fmt.Sprintf(`style="%s:%s"`, prop, colorOr(c))
	return append([]string{style}, attrs...)
}

// EncodePNG rasterizes a vector-mode shape list offscreen and writes it as a
// PNG, for sketches that run without a display. Same geometry contract as
// [WriteSVG].
func EncodePNG(w io.Writer, shapes []Shape, viewport, pixelWidth int) error {
	if viewport <= 0 {
		viewport = DefaultViewport
	}
	if pixelWidth <= 0 {
		pixelWidth = DefaultPixelWidth
	}
	dc := gg.NewContext(pixelWidth, pixelWidth)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	scale := float64(pixelWidth) / float64(viewport)
	dc.Translate(float64(pixelWidth)/2, float64(pixelWidth)/2)
	dc.Scale(scale, scale)

	for _, s := range shapes {
		dc.SetColor(parseColor(s.Color))
		switch s.Kind {
		case ShapeCircle:
			dc.DrawCircle(s.X, s.Y, s.R)
			dc.Fill()
		case ShapeEllipse:
			dc.DrawEllipse(s.X, s.Y, s.RX, s.RY)
			dc.Fill()
		case ShapeLine:
			sw := s.Stroke
			if sw <= 0 {
				sw = 1
			}
			dc.SetLineWidth(sw)
			dc.DrawLine(s.X, s.Y, s.X2, s.Y2)
			dc.Stroke()
		case ShapeRect:
			dc.DrawRectangle(s.X, s.Y, s.W, s.H)
			dc.Fill()
		}
	}
	return dc.EncodePNG(w)
}
