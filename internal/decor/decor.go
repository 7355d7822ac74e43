// Package decor draws the animated backdrops behind the board: rising
// fireworks or a scrolling night skyline. Nothing here touches the game.
package decor

import (
	"image/color"

	"github.com/pkg/errors"
)

// Canvas is the drawing surface decorations paint onto
type Canvas interface {
	Size() (width, height int)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
}

// Rand is the random source decorations draw from
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Decoration is one animated element
type Decoration interface {
	Update()
	Draw(c Canvas)
	Done() bool
}

// Backdrop is a complete decorative layer. Background paints the frame's
// base, Update and Draw advance and render the decorations, Spawn is driven
// by its own timer.
type Backdrop interface {
	Background(c Canvas)
	Update()
	Draw(c Canvas)
	Spawn() bool
	Resize(width, height int)
}

// names accepted by New
const (
	NameFireworks = "fireworks"
	NameSkyline   = "skyline"
)

// New builds the backdrop called name for a width x height viewport
func New(name string, width, height int, spawnChance float64, rng Rand) (Backdrop, error) {
	switch name {
	case NameFireworks:
		return NewFireworks(width, height, spawnChance, rng), nil
	case NameSkyline:
		return NewSkyline(width, height, rng), nil
	}
	return nil, errors.Errorf("unknown backdrop %q", name)
}

// withAlpha returns c with its alpha replaced, a in [0,1]
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(clamp01(a) * 255)
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var (
	_ Decoration = (*Firework)(nil)
	_ Decoration = (*Skyline)(nil)
	_ Backdrop   = (*Fireworks)(nil)
	_ Backdrop   = (*Skyline)(nil)
)
