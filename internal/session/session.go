// Package session runs one game tick at a time in a fixed order: paint the
// background, advance and draw the decorations, advance the snake, then draw
// the board, score and control panel on top.
package session

import (
	"image/color"
	"log"

	"github.com/mikenye/skysnake/internal/decor"
	"github.com/mikenye/skysnake/internal/grid"
	"github.com/mikenye/skysnake/internal/input"
	"github.com/mikenye/skysnake/internal/snake"
)

// Surface is a canvas that can also draw text. Text is positioned by the
// top-left corner of its line box.
type Surface interface {
	decor.Canvas
	Text(s string, x, y, size float64, c color.Color)
	MeasureText(s string, size float64) (w, h float64)
}

// Options configures a session
type Options struct {
	// size of a board tile in pixels
	TileEdge int

	// points per food
	ScoreStep int

	// watermark drawn behind everything
	Title string

	// initial viewport
	Width, Height int
}

// Session owns the game, the input mapper and the backdrop. All methods
// must be called from the same goroutine.
type Session struct {
	opts Options

	width, height int

	game     *snake.Game
	input    *input.Mapper
	backdrop decor.Backdrop

	ticks uint64
}

// New sizes the board to the initial viewport and places a fresh snake in
// the middle of it
func New(opts Options, backdrop decor.Backdrop, rng grid.Source) *Session {
	if opts.TileEdge <= 0 {
		opts.TileEdge = grid.TileEdge
	}
	board := grid.Compute(opts.Width, opts.Height, opts.TileEdge)
	s := &Session{
		opts:     opts,
		width:    opts.Width,
		height:   opts.Height,
		game:     snake.New(board, rng, snake.WithScoreStep(opts.ScoreStep)),
		input:    input.NewMapper(),
		backdrop: backdrop,
	}
	backdrop.Resize(opts.Width, opts.Height)
	return s
}

// Tick runs one frame onto sf. While a game over waits for the player it
// does nothing and returns false.
func (s *Session) Tick(sf Surface) bool {
	if s.game.State() == snake.StateGameOver {
		return false
	}

	s.backdrop.Background(sf)
	s.drawTitle(sf)

	s.backdrop.Update()
	s.backdrop.Draw(sf)

	if s.game.Tick(s.input.Commit()) == snake.Collided {
		snap := s.game.Snapshot()
		log.Printf("game over after %d ticks: score %d, length %d", s.ticks, snap.FinalScore, len(snap.Body))
	}

	s.drawBoard(sf)
	s.drawScore(sf)
	s.drawPanel(sf)

	s.ticks++
	return true
}

// Spawn is driven by the decoration timer. Suspended during a game over.
func (s *Session) Spawn() bool {
	if s.game.State() == snake.StateGameOver {
		return false
	}
	return s.backdrop.Spawn()
}

// Resize recomputes the board and the backdrop layout for a new viewport.
// The snake stays where it is unless it has not moved yet this round.
func (s *Session) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	board := grid.Compute(width, height, s.opts.TileEdge)
	s.game.Resize(board)
	s.backdrop.Resize(width, height)
	log.Printf("viewport %dx%d, board %dx%d tiles", width, height, board.Width, board.Height)
}

// Press forwards a direction key press
func (s *Session) Press(d input.Direction) bool {
	return s.input.Press(d)
}

// Release forwards a direction key release
func (s *Session) Release(d input.Direction) {
	s.input.Release(d)
}

// ReleaseAll clears every held key, for front ends without key-up events
func (s *Session) ReleaseAll() {
	s.input.ReleaseAll()
}

// Held reports whether a direction key is held
func (s *Session) Held(d input.Direction) bool {
	return s.input.Held(d)
}

// Over reports whether the round has ended, and with what score
func (s *Session) Over() (score int, over bool) {
	snap := s.game.Snapshot()
	return snap.FinalScore, snap.State == snake.StateGameOver
}

// Acknowledge dismisses the game over and starts a new round
func (s *Session) Acknowledge() {
	if s.game.State() != snake.StateGameOver {
		return
	}
	final := s.game.Acknowledge()
	s.input.Reset()
	log.Printf("new round (last score %d)", final)
}

// Snapshot copies the game state
func (s *Session) Snapshot() snake.Snapshot {
	return s.game.Snapshot()
}

// Ticks returns the number of frames run so far
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Size returns the viewport size
func (s *Session) Size() (width, height int) {
	return s.width, s.height
}
