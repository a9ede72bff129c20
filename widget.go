// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package garden

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget geometry. The label sits left of the track, the value display to
// its right.
const (
	widgetWidth  = 360
	widgetHeight = 36
	labelWidth   = 80
	valueWidth   = 48
	trackHeight  = 6
	thumbRadius  = 8
)

var (
	trackColor = color.RGBA{0xd5, 0xd5, 0xd5, 0xff}
	fillColor  = color.RGBA{0x4a, 0x8f, 0x5c, 0xff}
	thumbColor = color.RGBA{0x2f, 0x6b, 0x41, 0xff}
)

// widget is the ebiten-hosted control for one slider: it decodes polled
// mouse state into TrackClick/RangeChange events and paints the track,
// progress fill, thumb, label and value display.
type widget struct {
	index    int
	x, y     int
	dragging bool
}

func newWidget(index, x, y int) *widget {
	return &widget{index: index, x: x, y: y}
}

func (w *widget) trackBounds() (tx, ty, tw float64) {
	tx = float64(w.x + labelWidth)
	ty = float64(w.y + widgetHeight/2)
	tw = float64(widgetWidth - labelWidth - valueWidth)
	return tx, ty, tw
}

func (w *widget) inTrackZone(mx, my int) bool {
	tx, ty, tw := w.trackBounds()
	fx, fy := float64(mx), float64(my)
	return fx >= tx-thumbRadius && fx <= tx+tw+thumbRadius &&
		fy >= ty-thumbRadius-2 && fy <= ty+thumbRadius+2
}

// thumbPos returns the thumb center x for the current value.
func thumbPos(s *Slider, tx, tw float64) float64 {
	if s.Max() == s.Min() {
		return tx
	}
	frac := float64(s.Value()-s.Min()) / float64(s.Max()-s.Min())
	return tx + frac*tw
}

// dragValue decodes a cursor position during a drag into the raw value a
// native range control would report: the cursor fraction mapped over
// [min, max] and snapped to the nearest step.
func dragValue(s *Slider, mx, tx, tw float64) string {
	if tw <= 0 {
		return strconv.Itoa(s.Min())
	}
	frac := (mx - tx) / tw
	raw := float64(s.Min()) + frac*float64(s.Max()-s.Min())
	v := closestStep(int(math.Round(raw)), s.Step())
	return strconv.Itoa(clampInt(v, s.Min(), s.Max()))
}

// trackClickPayload decodes a press at cursor x mx into a TrackClick,
// deciding between the filled progress region and the rest of the track and
// translating the offset into that region's frame.
func trackClickPayload(s *Slider, mx, tx, tw float64) TrackClick {
	p := s.Progress()
	fillStart := tx + p.Left/100*tw
	fillEnd := tx + tw - p.Right/100*tw
	if mx >= fillStart && mx <= fillEnd && fillEnd > fillStart {
		return TrackClick{OffsetX: mx - fillStart, Width: fillEnd - fillStart, Inside: true}
	}
	return TrackClick{OffsetX: mx - tx, Width: tw, Inside: false}
}

// update polls the mouse and feeds any resulting events into the garden.
// Reports whether a committed change occurred.
func (w *widget) update(g *Garden) bool {
	s := g.Bank().At(w.index)
	if s == nil || s.Disabled() {
		return false
	}
	mx, my := ebiten.CursorPosition()
	tx, _, tw := w.trackBounds()

	if w.dragging {
		raw := dragValue(s, float64(mx), tx, tw)
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.Apply(SliderEvent{Index: w.index, Payload: RangeChange{Raw: raw}})
			return false
		}
		w.dragging = false
		return g.Apply(SliderEvent{Index: w.index, Payload: RangeChange{Raw: raw, Commit: true}})
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || !w.inTrackZone(mx, my) {
		return false
	}
	if math.Abs(float64(mx)-thumbPos(s, tx, tw)) <= thumbRadius {
		w.dragging = true
		return false
	}
	return g.Apply(SliderEvent{Index: w.index, Payload: trackClickPayload(s, float64(mx), tx, tw)})
}

// draw paints the widget. Progress insets are recomputed from the live value
// on every frame.
func (w *widget) draw(dst *ebiten.Image, g *Garden) {
	s := g.Bank().At(w.index)
	if s == nil {
		return
	}
	tx, ty, tw := w.trackBounds()
	p := s.Progress()
	fillStart := tx + p.Left/100*tw
	fillEnd := tx + tw - p.Right/100*tw

	vector.DrawFilledRect(dst, float32(tx), float32(ty)-trackHeight/2, float32(tw), trackHeight, trackColor, true)
	if fillEnd > fillStart {
		vector.DrawFilledRect(dst, float32(fillStart), float32(ty)-trackHeight/2, float32(fillEnd-fillStart), trackHeight, fillColor, true)
	}
	vector.DrawFilledCircle(dst, float32(thumbPos(s, tx, tw)), float32(ty), thumbRadius, thumbColor, true)

	textY := w.y + widgetHeight/2 - 8
	ebitenutil.DebugPrintAt(dst, s.Label(), w.x, textY)
	ebitenutil.DebugPrintAt(dst, g.format(s.Value(), s.Max()), int(tx+tw)+10, textY)
}
