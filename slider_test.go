// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package garden

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosestStep(t *testing.T) {
	tests := []struct {
		v, step, want int
	}{
		{17, 5, 15},
		{18, 5, 20},
		{20, 5, 20},
		{0, 5, 0},
		{2, 4, 0}, // remainder equals step/2, not greater: rounds down
		{3, 4, 4},
		{7, 0, 7}, // step <= 0 treated as 1
		{7, -3, 7},
		{-3, 5, -5},
		{1, 1, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, closestStep(tt.v, tt.step), "closestStep(%d, %d)", tt.v, tt.step)
	}
}

func TestClosestStepReturnsStepMultiple(t *testing.T) {
	for v := -50; v <= 50; v++ {
		for _, step := range []int{1, 2, 3, 5, 7, 10} {
			got := closestStep(v, step)
			assert.Zero(t, ((got%step)+step)%step, "closestStep(%d, %d) = %d not a multiple", v, step, got)
			diff := got - v
			if diff < 0 {
				diff = -diff
			}
			assert.LessOrEqual(t, diff, step/2+step%2, "closestStep(%d, %d) = %d too far", v, step, got)
		}
	}
}

func TestSnapValue(t *testing.T) {
	tests := []struct {
		v    float64
		step int
		dir  ProgressDirection
		want int
	}{
		{37, 10, ProgressLeft, 30},
		{37, 10, ProgressRight, 40},
		{40, 10, ProgressLeft, 40},
		{40, 10, ProgressRight, 40},
		{-37, 10, ProgressLeft, -40},
		{-37, 10, ProgressRight, -30},
		{3.2, 0, ProgressLeft, 3}, // step <= 0 treated as 1
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, snapValue(tt.v, tt.step, tt.dir), "snapValue(%v, %d, %v)", tt.v, tt.step, tt.dir)
	}
}

func TestProgress(t *testing.T) {
	left := newSlider(SliderSpec{Label: "a", Min: 0, Max: 10, Step: 1, Value: 4}, ProgressLeft)
	assert.Equal(t, Progress{Left: 0, Right: 60}, left.Progress())

	right := newSlider(SliderSpec{Label: "a", Min: 0, Max: 10, Step: 1, Value: 4}, ProgressRight)
	assert.Equal(t, Progress{Left: 40, Right: 0}, right.Progress())

	degenerate := newSlider(SliderSpec{Label: "a", Min: 5, Max: 5, Value: 5}, ProgressLeft)
	assert.Equal(t, Progress{}, degenerate.Progress())
}

func TestProgressStaysInRange(t *testing.T) {
	for _, dir := range []ProgressDirection{ProgressLeft, ProgressRight} {
		for v := -3; v <= 23; v++ {
			s := newSlider(SliderSpec{Label: "a", Min: 0, Max: 20, Step: 1, Value: v}, dir)
			p := s.Progress()
			assert.GreaterOrEqual(t, p.Left, 0.0)
			assert.LessOrEqual(t, p.Left, 100.0)
			assert.GreaterOrEqual(t, p.Right, 0.0)
			assert.LessOrEqual(t, p.Right, 100.0)
		}
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "5", FormatValue(5, 10))
	assert.Equal(t, "-2", FormatValue(-2, 10))
	// At max the display is intentionally empty.
	assert.Equal(t, "", FormatValue(10, 10))
}

func TestRangeChange(t *testing.T) {
	s := newSlider(SliderSpec{Label: "a", Min: 0, Max: 10, Step: 1, Value: 5}, ProgressLeft)

	assert.True(t, s.apply(RangeChange{Raw: "8", Commit: true}))
	assert.Equal(t, 8, s.Value())

	// Preview updates the value but does not commit.
	assert.False(t, s.apply(RangeChange{Raw: "3"}))
	assert.Equal(t, 3, s.Value())

	// Out-of-range input clamps.
	s.apply(RangeChange{Raw: " 42 ", Commit: true})
	assert.Equal(t, 10, s.Value())
	s.apply(RangeChange{Raw: "-7", Commit: true})
	assert.Equal(t, 0, s.Value())
}

func TestRangeChangeParseFallback(t *testing.T) {
	s := newSlider(SliderSpec{Label: "a", Min: 2, Max: 10, Step: 1, Value: 5}, ProgressLeft)
	assert.True(t, s.apply(RangeChange{Raw: "not a number", Commit: true}))
	// Falls back to 0, which then clamps to min.
	assert.Equal(t, 2, s.Value())
}

func TestTrackClickOutside(t *testing.T) {
	s := newSlider(SliderSpec{Label: "a", Min: 0, Max: 100, Step: 10, Value: 0}, ProgressLeft)
	assert.True(t, s.apply(TrackClick{OffsetX: 37, Width: 100}))
	assert.Equal(t, 30, s.Value()) // ProgressLeft floors to the step below

	r := newSlider(SliderSpec{Label: "a", Min: 0, Max: 100, Step: 10, Value: 100}, ProgressRight)
	r.apply(TrackClick{OffsetX: 37, Width: 100})
	assert.Equal(t, 40, r.Value()) // ProgressRight ceils
}

func TestTrackClickInside(t *testing.T) {
	// Inside the filled region the click maps over the selected sub-range
	// only: [min, value] for ProgressLeft.
	s := newSlider(SliderSpec{Label: "a", Min: 0, Max: 100, Step: 1, Value: 50}, ProgressLeft)
	s.apply(TrackClick{OffsetX: 25, Width: 50, Inside: true})
	assert.Equal(t, 25, s.Value())

	// [value, max] for ProgressRight.
	r := newSlider(SliderSpec{Label: "a", Min: 0, Max: 100, Step: 1, Value: 50}, ProgressRight)
	r.apply(TrackClick{OffsetX: 25, Width: 50, Inside: true})
	assert.Equal(t, 75, r.Value())
}

func TestTrackClickBadGeometry(t *testing.T) {
	s := newSlider(SliderSpec{Label: "a", Min: 3, Max: 10, Step: 1, Value: 7}, ProgressLeft)
	assert.True(t, s.apply(TrackClick{OffsetX: 12, Width: 0}))
	assert.Equal(t, 3, s.Value()) // unusable geometry falls back to min
}

func TestInitialValueClamped(t *testing.T) {
	s := newSlider(SliderSpec{Label: "a", Min: 0, Max: 10, Step: 1, Value: 99}, ProgressLeft)
	assert.Equal(t, 10, s.Value())
}
