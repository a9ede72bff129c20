// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package garden

import (
	"math"
	"strconv"
	"strings"
)

// ProgressDirection selects which side of a slider track fills as the value
// grows, and which way track clicks snap to a step boundary.
type ProgressDirection int

const (
	// ProgressLeft anchors the filled region at the track's left edge.
	// Track clicks snap down to the step boundary below the click point.
	ProgressLeft ProgressDirection = iota

	// ProgressRight anchors the filled region at the track's right edge.
	// Track clicks snap up to the step boundary above the click point.
	ProgressRight
)

// SliderSpec declares one tunable numeric parameter of a sketch. Label is the
// key under which the current value appears in the settings map passed to the
// draw function, so it must be unique within a bank.
type SliderSpec struct {
	Label string
	Min   int
	Max   int
	Step  int // step granularity for snapping; values <= 0 are treated as 1
	Value int // initial value, clamped into [Min, Max]
}

// Slider is the live state behind one slider control. Everything except the
// current value is fixed at creation.
type Slider struct {
	label    string
	min      int
	max      int
	step     int
	value    int
	dir      ProgressDirection
	disabled bool // reserved; no code path sets it yet
}

// SliderPayload is the inner payload of a SliderEvent: either a TrackClick or
// a RangeChange.
type SliderPayload interface {
	isSliderPayload()
}

// TrackClick reports a press on a slider track. OffsetX is the horizontal
// distance in pixels from the left edge of the clicked region, Width the
// region's full width. Inside is true when the press landed on the filled
// progress region, in which case OffsetX/Width are relative to that region
// and the click re-maps over the already-selected sub-range only, giving a
// finer-grained adjustment than a full-track jump. A track click always
// commits.
type TrackClick struct {
	OffsetX float64
	Width   float64
	Inside  bool
}

func (TrackClick) isSliderPayload() {}

// RangeChange carries a raw textual value from a range control. Commit
// distinguishes a final change from a transient live-drag preview; the value
// is applied either way, the flag only tells the host whether derived
// artifacts should be recomputed now.
type RangeChange struct {
	Raw    string
	Commit bool
}

func (RangeChange) isSliderPayload() {}

func newSlider(spec SliderSpec, dir ProgressDirection) *Slider {
	step := spec.Step
	if step <= 0 {
		step = 1
	}
	return &Slider{
		label: spec.Label,
		min:   spec.Min,
		max:   spec.Max,
		step:  step,
		value: clampInt(spec.Value, spec.Min, spec.Max),
		dir:   dir,
	}
}

// Label returns the slider's label, which is also its settings-map key.
func (s *Slider) Label() string { return s.label }

// Value returns the current value.
func (s *Slider) Value() int { return s.value }

// Min returns the lower bound.
func (s *Slider) Min() int { return s.min }

// Max returns the upper bound.
func (s *Slider) Max() int { return s.max }

// Step returns the snapping granularity, always >= 1.
func (s *Slider) Step() int { return s.step }

// Direction returns the progress fill direction fixed at creation.
func (s *Slider) Direction() ProgressDirection { return s.dir }

// Disabled reports whether the slider ignores input. Always false for now.
func (s *Slider) Disabled() bool { return s.disabled }

// apply updates the slider from a payload and reports whether the change is
// a committed one (vs a live-drag preview).
func (s *Slider) apply(p SliderPayload) bool {
	if s.disabled {
		return false
	}
	switch ev := p.(type) {
	case RangeChange:
		n, err := strconv.Atoi(strings.TrimSpace(ev.Raw))
		if err != nil {
			// Malformed input from the control layer is recovered, not
			// propagated. Zero is the documented fallback for this path.
			n = 0
		}
		s.value = clampInt(n, s.min, s.max)
		return ev.Commit
	case TrackClick:
		s.value = clampInt(s.clickValue(ev), s.min, s.max)
		return true
	}
	return false
}

// clickValue maps a track press to a value. Presses on the unfilled track map
// the full [min, max] range and snap directionally; presses inside the filled
// region map only the selected sub-range and snap to the nearest step.
func (s *Slider) clickValue(ev TrackClick) int {
	if ev.Width <= 0 || math.IsNaN(ev.OffsetX) || math.IsNaN(ev.Width) {
		// The click path falls back to min on unusable geometry.
		return s.min
	}
	frac := ev.OffsetX / ev.Width
	if !ev.Inside {
		raw := float64(s.min) + frac*float64(s.max-s.min)
		return snapValue(raw, s.step, s.dir)
	}
	lo, hi := s.min, s.value
	if s.dir == ProgressRight {
		lo, hi = s.value, s.max
	}
	raw := float64(lo) + frac*float64(hi-lo)
	return closestStep(int(math.Round(raw)), s.step)
}

// Progress is a pair of CSS-style percentage insets for the filled region of
// a track: the fill spans from Left% to (100-Right)% of the track width.
type Progress struct {
	Left  float64
	Right float64
}

// Progress returns the current fill insets. Recomputed from the live value on
// every call; never cached.
func (s *Slider) Progress() Progress {
	if s.max == s.min {
		return Progress{}
	}
	ratio := 100 / float64(s.max-s.min)
	if s.dir == ProgressRight {
		return Progress{Left: float64(s.value-s.min) * ratio}
	}
	return Progress{Right: float64(s.max-s.value) * ratio}
}

// FormatValue is the default value display: the number itself, except at max,
// which is shown as an empty string (the "at maximum / unset" affordance).
func FormatValue(value, max int) string {
	if value == max {
		return ""
	}
	return strconv.Itoa(value)
}

// closestStep rounds v to the nearest multiple of step, ties rounding up.
// step <= 0 is treated as 1.
func closestStep(v, step int) int {
	if step <= 0 {
		step = 1
	}
	rem := v % step
	if rem < 0 {
		rem += step
	}
	if rem > step/2 {
		return v - rem + step
	}
	return v - rem
}

// snapValue scales v down by step, floors or ceils according to the fill
// direction, and scales back: ProgressLeft floors, ProgressRight ceils.
func snapValue(v float64, step int, dir ProgressDirection) int {
	if step <= 0 {
		step = 1
	}
	s := float64(step)
	if dir == ProgressRight {
		return int(math.Ceil(v/s)) * step
	}
	return int(math.Floor(v/s)) * step
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
