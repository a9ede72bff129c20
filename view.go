// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package garden

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// DrawFunc produces a sketch's shapes for one frame. It is supplied by the
// host, must be pure in its inputs, and is invoked with the current settings
// snapshot and frame number on every tick and on every committed slider
// change. T is the renderer's shape type: Shape for the vector mode,
// CanvasOp for the raster mode.
type DrawFunc[T any] func(settings map[string]int, frame int) []T

// ShapeRenderer paints a shape list onto a drawing surface. The two
// presentation modes, [VectorRenderer] and [RasterRenderer], implement it
// for their respective shape types.
type ShapeRenderer[T any] interface {
	// Size returns the pixel size of the drawing surface.
	Size() (width, height int)
	// Render paints shapes onto dst, including the surface background.
	Render(dst *ebiten.Image, shapes []T)
}

// View composes a Garden, a host draw function and a renderer into an
// ebiten-embeddable unit: the drawing surface on top, one slider widget per
// bank entry below it. Call [View.Update] from the game's Update and
// [View.Draw] from its Draw.
type View[T any] struct {
	garden   *Garden
	draw     DrawFunc[T]
	renderer ShapeRenderer[T]
	widgets  []*widget
	surface  *ebiten.Image

	shapes []T
	fresh  bool

	width, height int
	surfaceX      int
}

const widgetGap = 8

// NewView wires a garden to a draw function and a presentation mode.
func NewView[T any](g *Garden, draw DrawFunc[T], renderer ShapeRenderer[T]) *View[T] {
	sw, sh := renderer.Size()
	width := sw
	if width < widgetWidth {
		width = widgetWidth
	}
	v := &View[T]{
		garden:   g,
		draw:     draw,
		renderer: renderer,
		surface:  ebiten.NewImage(sw, sh),
		width:    width,
		surfaceX: (width - sw) / 2,
	}
	y := sh + widgetGap
	wx := (width - widgetWidth) / 2
	for i := 0; i < g.Bank().Len(); i++ {
		v.widgets = append(v.widgets, newWidget(i, wx, y))
		y += widgetHeight
	}
	v.height = y + widgetGap
	return v
}

// Garden returns the underlying garden state.
func (v *View[T]) Garden() *Garden { return v.garden }

// Size returns the pixel size of the whole view, drawing surface plus
// slider widgets. Useful from the game's Layout.
func (v *View[T]) Size() (int, int) { return v.width, v.height }

// Update advances the frame clock and polls the slider widgets. The draw
// function is re-invoked only when something committed: a tick, a track
// click, or a finished drag. Live-drag previews move the thumb but reuse the
// cached shape list.
func (v *View[T]) Update() error {
	redraw := v.garden.Update()
	for _, w := range v.widgets {
		if w.update(v.garden) {
			redraw = true
		}
	}
	if redraw || !v.fresh {
		v.shapes = v.draw(v.garden.Settings(), v.garden.Frame())
		v.fresh = true
	}
	return nil
}

// Draw paints the drawing surface and the slider widgets onto screen at the
// view's origin.
func (v *View[T]) Draw(screen *ebiten.Image) {
	v.renderer.Render(v.surface, v.shapes)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(v.surfaceX), 0)
	screen.DrawImage(v.surface, op)
	for _, w := range v.widgets {
		w.draw(screen, v.garden)
	}
}
