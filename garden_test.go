// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package garden

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGardenEndToEnd(t *testing.T) {
	g, err := New(0, []SliderSpec{{Label: "R", Min: 0, Max: 10, Step: 1, Value: 5}}, nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"R": 5}, g.Settings())

	committed := g.Apply(SliderEvent{Index: 0, Payload: RangeChange{Raw: "8", Commit: true}})
	assert.True(t, committed)
	assert.Equal(t, map[string]int{"R": 8}, g.Settings())
}

func TestGardenConfigErrors(t *testing.T) {
	_, err := New(0, []SliderSpec{{Label: "x", Min: 5, Max: 1}}, nil)
	assert.ErrorContains(t, err, "garden:")

	_, err = New(0, []SliderSpec{{Label: "x", Max: 1}, {Label: "x", Max: 2}}, nil)
	assert.Error(t, err)
}

func TestGardenTickEvents(t *testing.T) {
	g, err := New(16, nil, nil)
	require.NoError(t, err)

	assert.True(t, g.Apply(Tick{At: time.Now()}))
	assert.True(t, g.Apply(Tick{At: time.Now()}))
	assert.Equal(t, 2, g.Frame())

	g.Stop()
	g.Stop()
	assert.False(t, g.Apply(Tick{At: time.Now()}))
	assert.Equal(t, 2, g.Frame())
}

func TestGardenDisabledClockIgnoresTicks(t *testing.T) {
	g, err := New(0, nil, nil)
	require.NoError(t, err)
	assert.False(t, g.Apply(Tick{At: time.Now()}))
	assert.False(t, g.Update())
	assert.Equal(t, 0, g.Frame())
}

func TestGardenOptions(t *testing.T) {
	g, err := New(0, specN(12), &Options{
		Capacity:  3,
		Direction: ProgressRight,
		FormatValue: func(value, max int) string {
			return "v"
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Bank().Len())
	assert.Equal(t, ProgressRight, g.Bank().At(0).Direction())
	assert.Equal(t, "v", g.format(1, 2))
}

func TestGardenUnknownSliderIgnored(t *testing.T) {
	g, err := New(0, specN(1), nil)
	require.NoError(t, err)
	assert.False(t, g.Apply(SliderEvent{Index: 7, Payload: RangeChange{Raw: "1", Commit: true}}))
}
