// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package garden builds small generative-art sketches for Ebitengine from a
// draw function and a list of tunable parameters.
//
// The host declares up to ten numeric parameters and supplies a function
// from (settings, frame) to a shape list; garden renders the shapes and
// auto-generates a slider control per parameter, re-invoking the draw
// function on every frame-clock tick and every committed slider change.
//
// Basic usage:
//
//	import garden "github.com/YindSoft/garden-ebitengine"
//
//	g, err := garden.New(33, []garden.SliderSpec{
//	    {Label: "Count", Min: 1, Max: 30, Step: 1, Value: 12},
//	    {Label: "Radius", Min: 5, Max: 90, Step: 5, Value: 60},
//	}, nil)
//	if err != nil { ... }
//
//	draw := func(settings map[string]int, frame int) []garden.Shape {
//	    var shapes []garden.Shape
//	    for i := 0; i < settings["Count"]; i++ {
//	        a := float64(frame+i*12) / 40
//	        r := float64(settings["Radius"])
//	        shapes = append(shapes, garden.Circle(r*math.Cos(a), r*math.Sin(a), 6, "#4a8f5c"))
//	    }
//	    return shapes
//	}
//
//	view := garden.NewView(g, draw, garden.NewVectorRenderer())
//
//	// In Ebiten Update():
//	view.Update()
//
//	// In Ebiten Draw():
//	view.Draw(screen)
//
// Two presentation modes share the same draw-function contract:
// [VectorRenderer] takes [Shape] primitives in a 200x200 logical viewport
// with the origin at its center, and [RasterRenderer] takes platform-native
// [CanvasOp] values on a fixed 200x200 pixel canvas. Vector sketches can
// also run without a display via [WriteSVG] and [EncodePNG].
//
// A frame rate of 0 disables the clock; the sketch then redraws only when a
// slider commits. Hosts with their own event plumbing can bypass the ebiten
// widgets entirely and feed [Tick] and [SliderEvent] values through
// [Garden.Apply].
//
// All of a Garden's methods must be called from one goroutine; ebiten's
// game loop already guarantees this.
package garden
