// Package render implements the game's drawing surface on top of an ebiten
// image, using vector fills for shapes and text/v2 with the Go Mono face
// for text.
package render

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/gomono"
)

// LoadFace parses the embedded Go Mono font
func LoadFace() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, errors.Wrap(err, "load go mono")
	}
	return src, nil
}

// Canvas draws onto whichever image it currently targets
type Canvas struct {
	dst  *ebiten.Image
	font *text.GoTextFaceSource

	// faces by pixel size
	faces map[float64]*text.GoTextFace
}

// NewCanvas creates a canvas drawing text with font
func NewCanvas(font *text.GoTextFaceSource) *Canvas {
	return &Canvas{
		font:  font,
		faces: make(map[float64]*text.GoTextFace),
	}
}

// Target points the canvas at dst
func (c *Canvas) Target(dst *ebiten.Image) *Canvas {
	c.dst = dst
	return c
}

// Size returns the target's size in pixels
func (c *Canvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

// FillRect fills an axis aligned rectangle
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col, false)
}

// FillCircle fills a disc
func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), col, true)
}

// Text draws s with its line box's top-left corner at (x, y)
func (c *Canvas) Text(s string, x, y, size float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.dst, s, c.face(size), op)
}

// MeasureText returns the size s would occupy
func (c *Canvas) MeasureText(s string, size float64) (float64, float64) {
	return text.Measure(s, c.face(size), 0)
}

func (c *Canvas) face(size float64) *text.GoTextFace {
	f, ok := c.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: c.font, Size: size}
		c.faces[size] = f
	}
	return f
}
