// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package garden

import "fmt"

// DefaultCapacity is the number of sliders a bank holds unless overridden
// via [Options.Capacity].
const DefaultCapacity = 10

// Bank is an ordered, index-addressed collection of sliders. Specs beyond the
// capacity are dropped at construction; the truncation is reported through
// the debug logger when one is configured.
type Bank struct {
	sliders []*Slider
}

func newBank(specs []SliderSpec, capacity int, dir ProgressDirection, debugf func(format string, args ...any)) (*Bank, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if len(specs) > capacity {
		if debugf != nil {
			debugf("garden: %d slider specs exceed capacity %d, dropping the rest", len(specs), capacity)
		}
		specs = specs[:capacity]
	}
	seen := make(map[string]int, len(specs))
	b := &Bank{sliders: make([]*Slider, 0, len(specs))}
	for i, spec := range specs {
		if spec.Min > spec.Max {
			return nil, fmt.Errorf("slider %q: min %d greater than max %d", spec.Label, spec.Min, spec.Max)
		}
		if prev, ok := seen[spec.Label]; ok {
			return nil, fmt.Errorf("slider %d: label %q already used by slider %d", i, spec.Label, prev)
		}
		seen[spec.Label] = i
		b.sliders = append(b.sliders, newSlider(spec, dir))
	}
	return b, nil
}

// Len returns the number of active sliders.
func (b *Bank) Len() int { return len(b.sliders) }

// At returns the slider at index i, or nil when i is out of range.
func (b *Bank) At(i int) *Slider {
	if i < 0 || i >= len(b.sliders) {
		return nil
	}
	return b.sliders[i]
}

// Apply routes a payload to the slider at index i and reports whether it was
// a committed change. Out-of-range indices are ignored.
func (b *Bank) Apply(i int, p SliderPayload) bool {
	s := b.At(i)
	if s == nil {
		return false
	}
	return s.apply(p)
}

// Settings projects the bank into a label -> current value map, rebuilt from
// the live slider states on every call.
func (b *Bank) Settings() map[string]int {
	m := make(map[string]int, len(b.sliders))
	for _, s := range b.sliders {
		m[s.label] = s.value
	}
	return m
}

// SliderView is one slider's visual state: everything a host needs to lay
// out its own control without reaching into the live state. Index is the
// slider's position in the bank and stays valid for its whole lifetime.
type SliderView struct {
	Index    int
	Label    string
	Value    int
	Min      int
	Max      int
	Step     int
	Display  string
	Progress Progress
	Disabled bool
}

// Views returns the ordered visual descriptors for every slider. format
// renders the value display; nil means [FormatValue].
func (b *Bank) Views(format func(value, max int) string) []SliderView {
	if format == nil {
		format = FormatValue
	}
	views := make([]SliderView, len(b.sliders))
	for i, s := range b.sliders {
		views[i] = SliderView{
			Index:    i,
			Label:    s.label,
			Value:    s.value,
			Min:      s.min,
			Max:      s.max,
			Step:     s.step,
			Display:  format(s.value, s.max),
			Progress: s.Progress(),
			Disabled: s.disabled,
		}
	}
	return views
}
