// Package snake holds the snake's state machine: body, food, score and the
// per-tick move/eat/collide transition.
package snake

import "github.com/mikenye/skysnake/internal/grid"

// DefaultScoreStep is what one piece of food is worth
const DefaultScoreStep = 10

// the state of the round
type State uint8

const (
	// snake is moving and eating
	StateAlive State = iota + 1

	// snake bit itself, waiting for the player to acknowledge the score
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateAlive:
		return "alive"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// Outcome describes what a single tick did
type Outcome uint8

const (
	// nothing moved (no direction yet)
	Idle Outcome = iota

	// head advanced, tail followed
	Moved

	// head landed on food, snake grew by one
	Ate

	// head landed on the body, round is over
	Collided

	// tick ignored while the game over is unacknowledged
	Suspended
)

// Snapshot is a copy of the game for renderers and tests
type Snapshot struct {
	Grid       grid.Grid
	Body       []grid.Point
	Food       grid.Point
	Direction  grid.Point
	Score      int
	FinalScore int
	State      State
}

// Head returns the first body segment
func (s Snapshot) Head() grid.Point {
	return s.Body[0]
}

// Game owns one snake on one board
type Game struct {
	grid grid.Grid

	// head first, tail last
	body []grid.Point

	food grid.Point

	// direction applied on the last tick that moved
	dir grid.Point

	score      int
	scoreStep  int
	finalScore int

	state State

	rng grid.Source
}

// Option tweaks a new Game
type Option func(*Game)

// WithScoreStep sets the points awarded per food
func WithScoreStep(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.scoreStep = n
		}
	}
}

// New creates a game on board b with a fresh snake in the middle
func New(b grid.Grid, rng grid.Source, opts ...Option) *Game {
	g := &Game{
		grid:      b,
		scoreStep: DefaultScoreStep,
		rng:       rng,
	}
	for _, o := range opts {
		o(g)
	}
	g.Reset()
	return g
}

// Reset starts a new round: one segment centred, no direction, no score
func (g *Game) Reset() {
	g.body = append(g.body[:0], g.grid.Center())
	g.dir = grid.Point{}
	g.score = 0
	g.food = g.grid.SpawnFood(g.rng)
	g.state = StateAlive
}

// Tick advances the snake one tile in direction d.
//
// The new head is wrapped onto the board and prepended. Landing on food
// scores and keeps the extra segment, otherwise the tail is dropped. Only
// after that is the head compared with the rest of the body.
func (g *Game) Tick(d grid.Point) Outcome {
	if g.state != StateAlive {
		return Suspended
	}

	// game not started yet
	if d.IsZero() {
		return Idle
	}
	g.dir = d

	head := g.grid.Wrap(g.body[0].Add(d))
	g.body = append(g.body, grid.Point{})
	copy(g.body[1:], g.body[:len(g.body)-1])
	g.body[0] = head

	out := Moved
	if head == g.food {
		g.score += g.scoreStep
		g.food = g.grid.SpawnFood(g.rng)
		out = Ate
	} else {
		g.body = g.body[:len(g.body)-1]
	}

	if g.bitten() {
		g.finalScore = g.score
		g.state = StateGameOver
		return Collided
	}
	return out
}

// check whether any segment after the head shares the head's tile
func (g *Game) bitten() bool {
	head := g.body[0]
	for _, seg := range g.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Acknowledge dismisses the game over and starts a new round. It returns
// the score the finished round ended with.
func (g *Game) Acknowledge() int {
	if g.state != StateGameOver {
		return g.score
	}
	final := g.finalScore
	g.Reset()
	return final
}

// Resize moves the game onto a new board. A snake that has not moved yet
// this round is centred on the new board. Otherwise it keeps its position
// and segments that fall outside the new board are wrapped back on. Food
// that ends up off the board is respawned.
func (g *Game) Resize(b grid.Grid) {
	g.grid = b
	if g.fresh() {
		g.body[0] = b.Center()
	}
	for i, seg := range g.body {
		g.body[i] = b.Wrap(seg)
	}
	if !b.Contains(g.food) {
		g.food = b.SpawnFood(g.rng)
	}
}

// still the single segment Reset placed, with no move made
func (g *Game) fresh() bool {
	return g.state == StateAlive && len(g.body) == 1 && g.dir.IsZero()
}

// State returns the state of the round
func (g *Game) State() State {
	return g.state
}

// Score returns the running score
func (g *Game) Score() int {
	return g.score
}

// Len returns the number of body segments
func (g *Game) Len() int {
	return len(g.body)
}

// Grid returns the board the game is played on
func (g *Game) Grid() grid.Grid {
	return g.grid
}

// Snapshot copies the current state
func (g *Game) Snapshot() Snapshot {
	body := make([]grid.Point, len(g.body))
	copy(body, g.body)
	return Snapshot{
		Grid:       g.grid,
		Body:       body,
		Food:       g.food,
		Direction:  g.dir,
		Score:      g.score,
		FinalScore: g.finalScore,
		State:      g.state,
	}
}
