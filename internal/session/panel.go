package session

import "github.com/mikenye/skysnake/internal/input"

// panel geometry, in pixels
const (
	panelMargin = 20
	buttonSize  = 48
	buttonGap   = 6
)

// Panel is the layout of the on-screen arrow pad: up on top, left, down
// and right on the row below
type Panel struct {
	X, Y float64
	Size float64
	Gap  float64
}

// Panel lays the pad out in the bottom left corner of the viewport
func (s *Session) Panel() Panel {
	p := Panel{Size: buttonSize, Gap: buttonGap}
	_, _, _, ph := p.Bounds()
	p.X = panelMargin
	p.Y = float64(s.height) - panelMargin - ph + p.Gap
	return p
}

// Bounds returns the pad's background rectangle
func (p Panel) Bounds() (x, y, w, h float64) {
	step := p.Size + p.Gap
	return p.X - p.Gap, p.Y - p.Gap, 3*step + p.Gap, 2*step + p.Gap
}

// Button returns the top-left corner and edge length of d's button
func (p Panel) Button(d input.Direction) (x, y, size float64) {
	step := p.Size + p.Gap
	switch d {
	case input.Up:
		return p.X + step, p.Y, p.Size
	case input.Left:
		return p.X, p.Y + step, p.Size
	case input.Down:
		return p.X + step, p.Y + step, p.Size
	case input.Right:
		return p.X + 2*step, p.Y + step, p.Size
	}
	return 0, 0, 0
}

// Hit returns the button under the pointer, if any
func (p Panel) Hit(px, py float64) (input.Direction, bool) {
	for _, d := range input.Directions {
		x, y, size := p.Button(d)
		if px >= x && px < x+size && py >= y && py < y+size {
			return d, true
		}
	}
	return input.None, false
}
