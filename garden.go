// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package garden

import (
	"fmt"
	"log"
	"time"
)

// Options for creating a Garden. All fields are optional.
type Options struct {
	// Capacity caps the number of sliders. Defaults to DefaultCapacity (10).
	Capacity int

	// Direction is the progress fill direction applied to every slider.
	// Defaults to ProgressLeft.
	Direction ProgressDirection

	// FormatValue renders a slider's current value for display.
	// Defaults to [FormatValue] (empty string at max).
	FormatValue func(value, max int) string

	// Debug enables diagnostic logging (spec truncation and the like) to the
	// standard logger. Default false.
	Debug bool
}

// Garden is the mutable state behind one sketch: the slider bank plus the
// frame clock. A host owns exactly one Garden per sketch and feeds it events
// from a single goroutine (ebiten's update loop already guarantees this), so
// no locking is needed. Discarding a stopped Garden is all the teardown
// there is; it holds no external resources.
type Garden struct {
	clock  *Clock
	bank   *Bank
	format func(value, max int) string
	debugf func(format string, args ...any)
}

// Event is an input to [Garden.Apply]: a Tick or a SliderEvent. Hosts that
// route events through their own plumbing can treat it as opaque.
type Event interface {
	isEvent()
}

// Tick is a frame-clock tick delivered by an external timer.
type Tick struct {
	At time.Time
}

func (Tick) isEvent() {}

// SliderEvent targets the slider at Index with a TrackClick or RangeChange
// payload.
type SliderEvent struct {
	Index   int
	Payload SliderPayload
}

func (SliderEvent) isEvent() {}

// New creates a Garden with the given frame period and slider declarations.
// A frameRateMs of zero or less disables the frame clock. More specs than
// the capacity allows are dropped; duplicate labels and min > max are
// configuration errors.
func New(frameRateMs int, specs []SliderSpec, opts *Options) (*Garden, error) {
	capacity := 0
	dir := ProgressLeft
	format := FormatValue
	debugf := func(string, ...any) {}
	if opts != nil {
		capacity = opts.Capacity
		dir = opts.Direction
		if opts.FormatValue != nil {
			format = opts.FormatValue
		}
		if opts.Debug {
			debugf = log.Printf
		}
	}
	bank, err := newBank(specs, capacity, dir, debugf)
	if err != nil {
		return nil, fmt.Errorf("garden: %w", err)
	}
	return &Garden{
		clock:  newClock(frameRateMs),
		bank:   bank,
		format: format,
		debugf: debugf,
	}, nil
}

// Apply feeds one event into the garden and reports whether it committed a
// change the host should redraw for: a delivered tick, a track click, or a
// final (non-preview) range change. Events for unknown slider indices and
// ticks on a disabled or stopped clock are ignored.
func (g *Garden) Apply(ev Event) bool {
	switch e := ev.(type) {
	case Tick:
		if !g.clock.Running() {
			return false
		}
		g.clock.tick(e.At)
		return true
	case SliderEvent:
		return g.bank.Apply(e.Index, e.Payload)
	}
	return false
}

// Update advances the frame clock against the wall clock. Call it once per
// host update; it reports whether a tick fired.
func (g *Garden) Update() bool {
	return g.clock.Advance(time.Now())
}

// Stop tears down the frame clock. Idempotent; no ticks are delivered
// afterwards, including via Apply.
func (g *Garden) Stop() { g.clock.Stop() }

// Frame returns the current frame number, starting at 0.
func (g *Garden) Frame() int { return g.clock.Frame() }

// Clock returns the garden's frame clock.
func (g *Garden) Clock() *Clock { return g.clock }

// Bank returns the garden's slider bank.
func (g *Garden) Bank() *Bank { return g.bank }

// Settings returns the label -> value snapshot the draw function consumes.
func (g *Garden) Settings() map[string]int { return g.bank.Settings() }

// RenderAll returns the ordered visual descriptors of all sliders, using the
// garden's configured value formatter. For hosts that lay out their own
// controls instead of using [View].
func (g *Garden) RenderAll() []SliderView { return g.bank.Views(g.format) }
