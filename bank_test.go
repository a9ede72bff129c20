// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package garden

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specN(n int) []SliderSpec {
	specs := make([]SliderSpec, n)
	for i := range specs {
		specs[i] = SliderSpec{Label: fmt.Sprintf("p%d", i), Min: 0, Max: 100, Step: 1, Value: i}
	}
	return specs
}

func TestBankCapacityTruncation(t *testing.T) {
	b, err := newBank(specN(12), 0, ProgressLeft, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, b.Len())
	assert.Len(t, b.Settings(), 10)
	assert.Nil(t, b.At(10))
}

func TestBankCustomCapacity(t *testing.T) {
	b, err := newBank(specN(12), 12, ProgressLeft, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, b.Len())
}

func TestBankDuplicateLabel(t *testing.T) {
	specs := []SliderSpec{
		{Label: "size", Min: 0, Max: 10},
		{Label: "size", Min: 0, Max: 20},
	}
	_, err := newBank(specs, 0, ProgressLeft, nil)
	assert.ErrorContains(t, err, `label "size"`)
}

func TestBankMinAboveMax(t *testing.T) {
	_, err := newBank([]SliderSpec{{Label: "a", Min: 9, Max: 3}}, 0, ProgressLeft, nil)
	assert.ErrorContains(t, err, "min 9 greater than max 3")
}

func TestBankSettingsRoundTrip(t *testing.T) {
	b, err := newBank([]SliderSpec{
		{Label: "a", Min: 0, Max: 100, Step: 1, Value: 10},
		{Label: "b", Min: 0, Max: 100, Step: 1, Value: 20},
	}, 0, ProgressLeft, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 10, "b": 20}, b.Settings())

	assert.True(t, b.Apply(1, RangeChange{Raw: "55", Commit: true}))
	assert.False(t, b.Apply(0, RangeChange{Raw: "33"})) // preview
	assert.Equal(t, map[string]int{"a": 33, "b": 55}, b.Settings())
}

func TestBankIgnoresUnknownIndex(t *testing.T) {
	b, err := newBank(specN(2), 0, ProgressLeft, nil)
	require.NoError(t, err)
	assert.False(t, b.Apply(-1, RangeChange{Raw: "5", Commit: true}))
	assert.False(t, b.Apply(2, RangeChange{Raw: "5", Commit: true}))
	assert.Equal(t, map[string]int{"p0": 0, "p1": 1}, b.Settings())
}

func TestBankViews(t *testing.T) {
	b, err := newBank([]SliderSpec{
		{Label: "a", Min: 0, Max: 10, Step: 2, Value: 4},
		{Label: "b", Min: 0, Max: 10, Step: 1, Value: 10},
	}, 0, ProgressLeft, nil)
	require.NoError(t, err)

	views := b.Views(nil)
	require.Len(t, views, 2)
	assert.Equal(t, SliderView{
		Index: 0, Label: "a", Value: 4, Min: 0, Max: 10, Step: 2,
		Display: "4", Progress: Progress{Right: 60},
	}, views[0])
	assert.Equal(t, 1, views[1].Index)
	assert.Equal(t, "", views[1].Display) // at max, display is empty
}

func TestBankTruncationLogs(t *testing.T) {
	var logged string
	debugf := func(format string, args ...any) { logged = fmt.Sprintf(format, args...) }
	_, err := newBank(specN(12), 0, ProgressLeft, debugf)
	require.NoError(t, err)
	assert.Contains(t, logged, "12 slider specs exceed capacity 10")
}
