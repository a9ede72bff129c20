// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// A display-less sketch: renders one frame of a seeded composition to .svg
// and .png files. The frame clock is disabled; the frame number is just a
// command-line parameter.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	garden "github.com/YindSoft/garden-ebitengine"
)

var (
	seedFlag  = flag.Int64("seed", 7, "seed for the random scatter")
	frameFlag = flag.Int("frame", 0, "animation frame to render")
	outFlag   = flag.String("out", "sketch", "output file basename")
)

func draw(settings map[string]int, frame int) []garden.Shape {
	rings := settings["Rings"]
	spread := float64(settings["Spread"])

	shapes := []garden.Shape{
		garden.Rect(-100, -100, 200, 200, "#fbf7ef"),
	}
	pts := garden.ListOfRandomInts(rings*3, 360, *seedFlag)
	for i := 0; i < rings; i++ {
		r := spread * float64(i+1) / float64(rings)
		a := float64(pts[i*3]) * math.Pi / 180
		drift := float64(frame) / 25
		shapes = append(shapes,
			garden.Ellipse(0, 0, r, r*0.8, "none", `stroke="#9aa78f"`, `stroke-width="0.6"`),
			garden.Circle(r*math.Cos(a+drift), r*0.8*math.Sin(a+drift), 2.5, "#6b4f3a"),
		)
	}
	return shapes
}

func main() {
	flag.Parse()

	g, err := garden.New(0, []garden.SliderSpec{
		{Label: "Rings", Min: 1, Max: 12, Step: 1, Value: 8},
		{Label: "Spread", Min: 20, Max: 95, Step: 5, Value: 80},
	}, nil)
	if err != nil {
		log.Fatal(err)
	}

	shapes := draw(g.Settings(), *frameFlag)

	svgFile, err := os.Create(*outFlag + ".svg")
	if err != nil {
		log.Fatal(err)
	}
	garden.WriteSVG(svgFile, shapes, 0, 0)
	if err := svgFile.Close(); err != nil {
		log.Fatal(err)
	}

	pngFile, err := os.Create(*outFlag + ".png")
	if err != nil {
		log.Fatal(err)
	}
	if err := garden.EncodePNG(pngFile, shapes, 0, 0); err != nil {
		log.Fatal(err)
	}
	if err := pngFile.Close(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("wrote %s.svg and %s.png (%d shapes)\n", *outFlag, *outFlag, len(shapes))
}
