// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package garden

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RasterSize is the fixed side length, in pixels, of the raster-mode canvas.
const RasterSize = 200

// CanvasOp is one platform-native drawing operation for the raster mode.
// Unlike vector-mode shapes these are already in pixel coordinates (origin
// at the canvas top-left) and carry concrete colors.
type CanvasOp interface {
	drawOn(dst *ebiten.Image)
}

// FillCircle fills a circle centered at (X, Y).
type FillCircle struct {
	X, Y, R float32
	Color   color.Color
}

func (o FillCircle) drawOn(dst *ebiten.Image) {
	vector.DrawFilledCircle(dst, o.X, o.Y, o.R, o.Color, true)
}

// FillRect fills an axis-aligned rectangle with top-left corner (X, Y).
type FillRect struct {
	X, Y, W, H float32
	Color      color.Color
}

func (o FillRect) drawOn(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, o.X, o.Y, o.W, o.H, o.Color, true)
}

// StrokeLine strokes a line from (X1, Y1) to (X2, Y2).
type StrokeLine struct {
	X1, Y1, X2, Y2 float32
	Width          float32
	Color          color.Color
}

func (o StrokeLine) drawOn(dst *ebiten.Image) {
	w := o.Width
	if w <= 0 {
		w = 1
	}
	vector.StrokeLine(dst, o.X1, o.Y1, o.X2, o.Y2, w, o.Color, true)
}

// StrokeCircle strokes a circle outline centered at (X, Y).
type StrokeCircle struct {
	X, Y, R float32
	Width   float32
	Color   color.Color
}

func (o StrokeCircle) drawOn(dst *ebiten.Image) {
	w := o.Width
	if w <= 0 {
		w = 1
	}
	vector.StrokeCircle(dst, o.X, o.Y, o.R, w, o.Color, true)
}

// RasterRenderer is the raster presentation mode: a fixed 200x200 pixel
// canvas cleared to white, the draw function's ops painted over it, and a
// border stroked around the edge.
type RasterRenderer struct {
	Border      color.Color // border color; default a dark gray
	BorderWidth float32     // border stroke width; default 1
}

// NewRasterRenderer returns a renderer with the default border.
func NewRasterRenderer() *RasterRenderer {
	return &RasterRenderer{Border: color.RGBA{60, 60, 60, 255}, BorderWidth: 1}
}

// Size returns the fixed canvas size.
func (r *RasterRenderer) Size() (int, int) { return RasterSize, RasterSize }

// Render paints the background, the ops in order, then the border.
func (r *RasterRenderer) Render(dst *ebiten.Image, ops []CanvasOp) {
	dst.Fill(color.White)
	for _, op := range ops {
		op.drawOn(dst)
	}
	border := r.Border
	if border == nil {
		border = color.RGBA{60, 60, 60, 255}
	}
	bw := r.BorderWidth
	if bw <= 0 {
		bw = 1
	}
	vector.StrokeRect(dst, bw/2, bw/2, RasterSize-bw, RasterSize-bw, bw, border, false)
}
