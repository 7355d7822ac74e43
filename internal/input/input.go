// Package input turns direction key presses into the snake's pending
// direction and tracks which keys are held for the control panel.
package input

import (
	"strings"

	"github.com/mikenye/skysnake/internal/grid"
)

// the direction a key points the snake
type Direction uint8

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the four usable directions in panel order
var Directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Valid reports whether d is one of the four directions
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Vector returns the unit step for d
func (d Direction) Vector() grid.Point {
	switch d {
	case Up:
		return grid.Point{Y: -1}
	case Down:
		return grid.Point{Y: 1}
	case Left:
		return grid.Point{X: -1}
	case Right:
		return grid.Point{X: 1}
	}
	return grid.Point{}
}

// symbolic key names, as browsers and the terminal front end report them
var keyNames = map[string]Direction{
	"arrowup":    Up,
	"arrowdown":  Down,
	"arrowleft":  Left,
	"arrowright": Right,
	"up":         Up,
	"down":       Down,
	"left":       Left,
	"right":      Right,
	"w":          Up,
	"s":          Down,
	"a":          Left,
	"d":          Right,
}

// ParseKey maps a symbolic key name such as "ArrowUp" to a direction
func ParseKey(name string) (Direction, bool) {
	d, ok := keyNames[strings.ToLower(name)]
	return d, ok
}

// Mapper holds the pending direction between ticks.
//
// Presses overwrite each other until the next Commit (last valid press
// wins). A press that points straight back along the pending direction or
// along the direction the snake last moved is ignored, so the head can
// never turn into its own neck.
type Mapper struct {
	pending grid.Point

	// direction handed to the snake on the last Commit
	heading grid.Point

	held [5]bool
}

// NewMapper returns a mapper with no direction set
func NewMapper() *Mapper {
	return &Mapper{}
}

// Press handles a key going down. It reports whether the pending
// direction changed to d.
func (m *Mapper) Press(d Direction) bool {
	if !d.Valid() {
		return false
	}
	m.held[d] = true

	v := d.Vector()
	if reverses(v, m.pending) || reverses(v, m.heading) {
		return false
	}
	m.pending = v
	return true
}

func reverses(v, cur grid.Point) bool {
	return !cur.IsZero() && v == cur.Neg()
}

// Release handles a key coming up. Only the highlight is affected.
func (m *Mapper) Release(d Direction) {
	if !d.Valid() {
		return
	}
	m.held[d] = false
}

// ReleaseAll clears every highlight
func (m *Mapper) ReleaseAll() {
	m.held = [5]bool{}
}

// Held reports whether d is currently held down
func (m *Mapper) Held(d Direction) bool {
	return d.Valid() && m.held[d]
}

// Pending returns the direction the next tick will use
func (m *Mapper) Pending() grid.Point {
	return m.pending
}

// Commit is called once per tick; it returns the pending direction and
// records it as the heading the snake is now moving in.
func (m *Mapper) Commit() grid.Point {
	m.heading = m.pending
	return m.pending
}

// Reset clears the direction after a game over. Held keys stay held.
func (m *Mapper) Reset() {
	m.pending = grid.Point{}
	m.heading = grid.Point{}
}
