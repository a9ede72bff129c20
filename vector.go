// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package garden

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

// Default drawing-surface geometry for the vector mode: a 200x200 logical
// viewport with the origin at its center, scaled up to a 400px square.
const (
	DefaultViewport   = 200
	DefaultPixelWidth = 400
)

// ShapeKind discriminates the vector primitives a draw function can return.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeEllipse
	ShapeLine
	ShapeRect
)

// Shape is one vector primitive in viewport coordinates (origin at the
// viewport center, y growing downward). Color is an SVG color: a common name
// or a "#rrggbb" hex string. Attrs are raw SVG attribute strings appended
// verbatim to the element when serializing, for host customization; the
// on-screen renderer ignores them.
type Shape struct {
	Kind   ShapeKind
	X, Y   float64 // center (circle, ellipse), top-left (rect), first endpoint (line)
	X2, Y2 float64 // second endpoint (line)
	R      float64 // radius (circle)
	RX, RY float64 // radii (ellipse)
	W, H   float64 // size (rect)
	Stroke float64 // stroke width (line); <= 0 means 1
	Color  string
	Attrs  []string
}

// Circle returns a filled circle centered at (x, y).
func Circle(x, y, r float64, fill string, attrs ...string) Shape {
	return Shape{Kind: ShapeCircle, X: x, Y: y, R: r, Color: fill, Attrs: attrs}
}

// Ellipse returns a filled ellipse centered at (x, y) with radii rx and ry.
func Ellipse(x, y, rx, ry float64, fill string, attrs ...string) Shape {
	return Shape{Kind: ShapeEllipse, X: x, Y: y, RX: rx, RY: ry, Color: fill, Attrs: attrs}
}

// Line returns a stroked line from (x1, y1) to (x2, y2).
func Line(x1, y1, x2, y2, width float64, stroke string, attrs ...string) Shape {
	return Shape{Kind: ShapeLine, X: x1, Y: y1, X2: x2, Y2: y2, Stroke: width, Color: stroke, Attrs: attrs}
}

// Rect returns a filled axis-aligned rectangle with top-left corner (x, y).
func Rect(x, y, w, h float64, fill string, attrs ...string) Shape {
	return Shape{Kind: ShapeRect, X: x, Y: y, W: w, H: h, Color: fill, Attrs: attrs}
}

// namedColors covers the SVG color names sketches in the wild actually use;
// anything else goes through hex parsing.
var namedColors = map[string]string{
	"white":   "#ffffff",
	"black":   "#000000",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"brown":   "#a52a2a",
	"gray":    "#808080",
	"grey":    "#808080",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
}

// parseColor resolves a shape color to a concrete color. Unknown or
// malformed colors fall back to black rather than failing the frame.
func parseColor(s string) color.Color {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "none" || s == "transparent" {
		return color.Transparent
	}
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	if c, err := colorful.Hex(s); err == nil {
		return c
	}
	return color.Black
}

// VectorRenderer rasterizes Shape lists onto an ebiten image: the vector
// presentation mode. The viewport is mapped onto a Pixels-sized square with
// the origin moved to the middle.
type VectorRenderer struct {
	Viewport int // logical units per side; default DefaultViewport
	Pixels   int // surface size in pixels per side; default DefaultPixelWidth
}

// NewVectorRenderer returns a renderer with the default geometry.
func NewVectorRenderer() *VectorRenderer {
	return &VectorRenderer{Viewport: DefaultViewport, Pixels: DefaultPixelWidth}
}

func (r *VectorRenderer) geometry() (scale, center float32) {
	vp := r.Viewport
	if vp <= 0 {
		vp = DefaultViewport
	}
	px := r.Pixels
	if px <= 0 {
		px = DefaultPixelWidth
	}
	return float32(px) / float32(vp), float32(px) / 2
}

// Size returns the pixel size of the drawing surface.
func (r *VectorRenderer) Size() (int, int) {
	px := r.Pixels
	if px <= 0 {
		px = DefaultPixelWidth
	}
	return px, px
}

// Render draws the shapes over a white background.
func (r *VectorRenderer) Render(dst *ebiten.Image, shapes []Shape) {
	dst.Fill(color.White)
	scale, center := r.geometry()
	px := func(v float64) float32 { return center + float32(v)*scale }
	for _, s := range shapes {
		col := parseColor(s.Color)
		switch s.Kind {
		case ShapeCircle:
			vector.DrawFilledCircle(dst, px(s.X), px(s.Y), float32(s.R)*scale, col, true)
		case ShapeEllipse:
			fillEllipse(dst, px(s.X), px(s.Y), float32(s.RX)*scale, float32(s.RY)*scale, col)
		case ShapeLine:
			w := s.Stroke
			if w <= 0 {
				w = 1
			}
			vector.StrokeLine(dst, px(s.X), px(s.Y), px(s.X2), px(s.Y2), float32(w)*scale, col, true)
		case ShapeRect:
			vector.DrawFilledRect(dst, px(s.X), px(s.Y), float32(s.W)*scale, float32(s.H)*scale, col, true)
		}
	}
}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// fillEllipse draws a filled ellipse as a triangle fan; the vector package
// has no ellipse primitive.
func fillEllipse(dst *ebiten.Image, cx, cy, rx, ry float32, col color.Color) {
	const segments = 48
	cr, cg, cb, ca := col.RGBA()
	vs := make([]ebiten.Vertex, segments+1)
	for i := range vs {
		vs[i] = ebiten.Vertex{
			DstX:   cx,
			DstY:   cy,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(cr) / 0xffff,
			ColorG: float32(cg) / 0xffff,
			ColorB: float32(cb) / 0xffff,
			ColorA: float32(ca) / 0xffff,
		}
	}
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		vs[i+1].DstX = cx + rx*float32(math.Cos(a))
		vs[i+1].DstY = cy + ry*float32(math.Sin(a))
	}
	is := make([]uint16, 0, segments*3)
	for i := 0; i < segments; i++ {
		is = append(is, 0, uint16(i+1), uint16((i+1)%segments+1))
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}
