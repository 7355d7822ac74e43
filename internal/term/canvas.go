// Package term renders the game into a terminal with tcell. Pixel
// coordinates are mapped onto character cells twice as tall as they are
// wide, so a square board tile covers two cells side by side.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// pixel size of one character cell
const (
	CellWidth  = 10
	CellHeight = 20
)

// Screen is the part of tcell.Screen the canvas flushes to
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

type cell struct {
	bg, fg color.NRGBA
	r      rune
}

var black = color.NRGBA{A: 255}

// Canvas keeps an RGB shadow of the terminal so translucent fills can be
// blended the way a pixel canvas would blend them
type Canvas struct {
	cols, rows int
	cells      []cell
}

// NewCanvas creates a black canvas of cols x rows cells
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize discards the contents and starts again in black
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.cells = make([]cell, c.cols*c.rows)
	for i := range c.cells {
		c.cells[i] = cell{bg: black, fg: black, r: ' '}
	}
}

// Size returns the canvas size in pixels
func (c *Canvas) Size() (int, int) {
	return c.cols * CellWidth, c.rows * CellHeight
}

// cell span whose centres fall in [from, to)
func span(from, to float64, size, limit int) (int, int) {
	lo := int(math.Ceil(from/float64(size) - 0.5))
	hi := int(math.Ceil(to/float64(size)-0.5)) - 1
	return max(lo, 0), min(hi, limit-1)
}

func (c *Canvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

// FillRect blends col into every cell whose centre lies inside the rect
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	c0, c1 := span(x, x+w, CellWidth, c.cols)
	r0, r1 := span(y, y+h, CellHeight, c.rows)
	for row := r0; row <= r1; row++ {
		for cc := c0; cc <= c1; cc++ {
			c.cover(c.at(cc, row), n)
		}
	}
}

// FillCircle draws small discs as a glyph in the cell under the centre and
// larger ones as blended cells
func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	if r < CellWidth/2 {
		ce := c.at(int(math.Floor(cx/CellWidth)), int(math.Floor(cy/CellHeight)))
		if ce == nil {
			return
		}
		ce.r = '·'
		if r >= 2 {
			ce.r = '•'
		}
		ce.fg = blend(ce.bg, n)
		return
	}
	c0, c1 := span(cx-r, cx+r, CellWidth, c.cols)
	r0, r1 := span(cy-r, cy+r, CellHeight, c.rows)
	for row := r0; row <= r1; row++ {
		for cc := c0; cc <= c1; cc++ {
			dx := (float64(cc)+0.5)*CellWidth - cx
			dy := (float64(row)+0.5)*CellHeight - cy
			if dx*dx+dy*dy <= r*r {
				c.cover(c.at(cc, row), n)
			}
		}
	}
}

// paint n over a cell; mostly opaque paint also wipes its glyph
func (c *Canvas) cover(ce *cell, n color.NRGBA) {
	if ce == nil {
		return
	}
	ce.bg = blend(ce.bg, n)
	ce.fg = blend(ce.fg, n)
	if n.A >= 128 {
		ce.r = ' '
	}
}

// Text writes s starting at the cell nearest (x, y); size is ignored
func (c *Canvas) Text(s string, x, y, size float64, col color.Color) {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	cc := int(math.Round(x / CellWidth))
	row := int(math.Round(y / CellHeight))
	for _, r := range s {
		if ce := c.at(cc, row); ce != nil {
			ce.r = r
			ce.fg = blend(ce.bg, n)
		}
		cc++
	}
}

// MeasureText returns one cell per rune, one row high
func (c *Canvas) MeasureText(s string, size float64) (float64, float64) {
	return float64(len([]rune(s)) * CellWidth), CellHeight
}

// Flush copies the shadow buffer to the terminal
func (c *Canvas) Flush(scr Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			ce := c.cells[row*c.cols+col]
			style := tcell.StyleDefault.Background(tcolor(ce.bg)).Foreground(tcolor(ce.fg))
			scr.SetContent(col, row, ce.r, nil, style)
		}
	}
	scr.Show()
}

func tcolor(n color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

// blend composites src over the opaque dst
func blend(dst, src color.NRGBA) color.NRGBA {
	if src.A == 0 {
		return dst
	}
	if src.A == 255 {
		return color.NRGBA{R: src.R, G: src.G, B: src.B, A: 255}
	}
	d := colorful.Color{R: float64(dst.R) / 255, G: float64(dst.G) / 255, B: float64(dst.B) / 255}
	s := colorful.Color{R: float64(src.R) / 255, G: float64(src.G) / 255, B: float64(src.B) / 255}
	r, g, b := d.BlendRgb(s, float64(src.A)/255).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
