// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// An interactive sketch: a ring of orbiting blobs over a seeded scatter
// field. Drag the sliders to retune it while it runs.
package main

import (
	"fmt"
	"log"
	"math"

	garden "github.com/YindSoft/garden-ebitengine"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const seed = 42

type Game struct {
	view *garden.View[garden.Shape]
}

func newGame() (*Game, error) {
	g, err := garden.New(33, []garden.SliderSpec{
		{Label: "Count", Min: 1, Max: 24, Step: 1, Value: 10},
		{Label: "Radius", Min: 10, Max: 90, Step: 5, Value: 60},
		{Label: "Speed", Min: 0, Max: 20, Step: 1, Value: 6},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("garden: %w", err)
	}
	return &Game{view: garden.NewView(g, drawSketch, garden.NewVectorRenderer())}, nil
}

func drawSketch(settings map[string]int, frame int) []garden.Shape {
	count := settings["Count"]
	radius := float64(settings["Radius"])
	speed := float64(settings["Speed"])

	shapes := make([]garden.Shape, 0, count+20)

	// Static scatter field behind the ring, same every run.
	xs := garden.ListOfRandomInts(20, 180, seed)
	ys := garden.ListOfRandomInts(20, 180, seed+1)
	for i := range xs {
		shapes = append(shapes, garden.Circle(float64(xs[i]-90), float64(ys[i]-90), 1.5, "#c8c8c8"))
	}

	for i := 0; i < count; i++ {
		a := 2*math.Pi*float64(i)/float64(count) + speed*float64(frame)/600
		c := colorful.Hsv(float64(i)*360/float64(count), 0.6, 0.75)
		shapes = append(shapes,
			garden.Line(0, 0, radius*math.Cos(a), radius*math.Sin(a), 0.5, "#e0e0e0"),
			garden.Circle(radius*math.Cos(a), radius*math.Sin(a), 5, c.Hex()),
		)
	}
	return shapes
}

func (g *Game) Update() error {
	return g.view.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.Size()
}

func main() {
	game, err := newGame()
	if err != nil {
		log.Fatal(err)
	}
	w, h := game.view.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("garden example")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
