package decor

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Skyline tuning, in pixels and ticks
const (
	BuildingWidth  = 50
	BuildingGap    = 10
	BuildingCell   = BuildingWidth + BuildingGap
	ScrollStep     = 2.0
	HighRiseChance = 0.3
	WindowLitProb  = 0.6

	lowRiseMin  = 60
	lowRiseMax  = 140
	highRiseMin = 160
	highRiseMax = 300

	windowW      = 8
	windowH      = 10
	windowPitchX = 16
	windowPitchY = 20
	windowInset  = 5
)

var (
	skyTop       = color.NRGBA{R: 8, G: 10, B: 32, A: 255}
	skyBottom    = color.NRGBA{R: 58, G: 24, B: 72, A: 255}
	buildingBody = color.NRGBA{R: 22, G: 22, B: 34, A: 255}
	windowLit    = color.NRGBA{R: 255, G: 214, B: 110, A: 255}
	windowDark   = color.NRGBA{R: 40, G: 40, B: 56, A: 255}
)

// number of bands the sky gradient is painted with
const skyBands = 32

// Building is one block of the skyline
type Building struct {
	Height   float64
	HighRise bool
}

// NewBuilding picks a low- or high-rise of random height
func NewBuilding(rng Rand) Building {
	if rng.Float64() < HighRiseChance {
		return Building{Height: float64(highRiseMin + rng.Intn(highRiseMax-highRiseMin)), HighRise: true}
	}
	return Building{Height: float64(lowRiseMin + rng.Intn(lowRiseMax-lowRiseMin))}
}

// Draw paints the building with its left edge at x, standing on ground.
// Window lights are re-rolled on every draw so the city twinkles.
func (b Building) Draw(c Canvas, x, ground float64, rng Rand) {
	top := ground - b.Height
	c.FillRect(x, top, BuildingWidth, b.Height, buildingBody)

	for wy := top + windowInset; wy+windowH <= ground-windowInset; wy += windowPitchY {
		for wx := x + windowInset; wx+windowW <= x+BuildingWidth; wx += windowPitchX {
			col := windowDark
			if rng.Float64() < WindowLitProb {
				col = windowLit
			}
			c.FillRect(wx, wy, windowW, windowH, col)
		}
	}
}

// Skyline scrolls a row of buildings leftwards forever. The buildings
// live in a ring: when the offset has moved a full cell, the leftmost
// building becomes the rightmost and the offset snaps back.
type Skyline struct {
	width, height int

	buildings []Building

	// index of the leftmost building in the ring
	first int

	// horizontal scroll, always in (-BuildingCell, 0]
	offset float64

	rng Rand
}

// NewSkyline builds enough buildings to cover the viewport plus one
// extra screen width
func NewSkyline(width, height int, rng Rand) *Skyline {
	s := &Skyline{rng: rng}
	s.Resize(width, height)
	return s
}

// Resize adds buildings when the viewport widens; existing ones stay put
func (s *Skyline) Resize(width, height int) {
	s.width, s.height = width, height
	need := int(math.Ceil(float64(2*width)/BuildingCell)) + 1
	if need <= len(s.buildings) {
		return
	}
	// unroll the ring so appended buildings land at the right end
	ordered := make([]Building, 0, need)
	for i := range s.buildings {
		ordered = append(ordered, s.at(i))
	}
	for len(ordered) < need {
		ordered = append(ordered, NewBuilding(s.rng))
	}
	s.buildings = ordered
	s.first = 0
}

// i-th building counting from the left
func (s *Skyline) at(i int) Building {
	return s.buildings[(s.first+i)%len(s.buildings)]
}

// Background paints a vertical night gradient
func (s *Skyline) Background(c Canvas) {
	w, h := c.Size()
	band := float64(h) / skyBands
	for i := 0; i < skyBands; i++ {
		col := mix(skyTop, skyBottom, float64(i)/(skyBands-1))
		c.FillRect(0, float64(i)*band, float64(w), band+1, col)
	}
}

// opaque colour t of the way from a to b
func mix(a, b color.NRGBA, t float64) color.NRGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: 255}
}

// Update scrolls one step and recycles the leftmost building when it has
// slid a whole cell off screen
func (s *Skyline) Update() {
	s.offset -= ScrollStep
	if s.offset <= -BuildingCell {
		s.offset += BuildingCell
		s.first = (s.first + 1) % len(s.buildings)
	}
}

// Draw paints every building along the bottom edge
func (s *Skyline) Draw(c Canvas) {
	_, h := c.Size()
	ground := float64(h)
	for i := range s.buildings {
		x := s.offset + float64(i*BuildingCell)
		if x > float64(s.width) {
			break
		}
		s.at(i).Draw(c, x, ground, s.rng)
	}
}

// Done is always false, the city never ends
func (s *Skyline) Done() bool {
	return false
}

// Spawn does nothing, the skyline has no timer driven elements
func (s *Skyline) Spawn() bool {
	return false
}

// Len returns the number of buildings in the ring
func (s *Skyline) Len() int {
	return len(s.buildings)
}

// Offset returns the current scroll offset
func (s *Skyline) Offset() float64 {
	return s.offset
}

// Leftmost returns the building currently at the left edge
func (s *Skyline) Leftmost() Building {
	return s.at(0)
}
