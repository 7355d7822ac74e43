package snake

import (
	"testing"

	"github.com/mikenye/skysnake/internal/grid"
)

// scripted returns the queued numbers in order (modulo n), then zeros
type scripted struct {
	next []int
}

func (s *scripted) Intn(n int) int {
	if len(s.next) == 0 {
		return 0
	}
	v := s.next[0]
	s.next = s.next[1:]
	return v % n
}

func pts(xy ...int) []grid.Point {
	out := make([]grid.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, grid.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

// newGame builds a 10x10 game with the given body and food
func newGame(t *testing.T, body []grid.Point, food grid.Point, rng *scripted) *Game {
	t.Helper()
	g := New(grid.Grid{Width: 10, Height: 10}, &scripted{})
	if rng != nil {
		g.rng = rng
	}
	g.body = body
	g.food = food
	return g
}

var right = grid.Point{X: 1}

func TestNewStartsCentred(t *testing.T) {
	g := New(grid.Grid{Width: 11, Height: 8}, &scripted{next: []int{3, 2}})
	s := g.Snapshot()
	if len(s.Body) != 1 || s.Head() != (grid.Point{X: 5, Y: 4}) {
		t.Fatalf("body = %v, want single segment at (5,4)", s.Body)
	}
	if s.Food != (grid.Point{X: 3, Y: 2}) {
		t.Errorf("food = %v, want (3,2)", s.Food)
	}
	if s.State != StateAlive || s.Score != 0 || !s.Direction.IsZero() {
		t.Errorf("unexpected fresh snapshot %+v", s)
	}
}

func TestTickMovesWithoutGrowing(t *testing.T) {
	g := newGame(t, pts(5, 5, 4, 5, 3, 5), grid.Point{X: 0, Y: 0}, nil)
	if out := g.Tick(right); out != Moved {
		t.Fatalf("Tick = %v, want Moved", out)
	}
	s := g.Snapshot()
	want := pts(6, 5, 5, 5, 4, 5)
	if len(s.Body) != len(want) {
		t.Fatalf("body = %v, want %v", s.Body, want)
	}
	for i := range want {
		if s.Body[i] != want[i] {
			t.Fatalf("body = %v, want %v", s.Body, want)
		}
	}
	if s.Direction != right {
		t.Errorf("direction = %v", s.Direction)
	}
}

func TestTickWrapsEveryEdge(t *testing.T) {
	tests := []struct {
		name      string
		head, dir grid.Point
		want      grid.Point
	}{
		{"right edge", grid.Point{X: 9, Y: 4}, grid.Point{X: 1}, grid.Point{X: 0, Y: 4}},
		{"left edge", grid.Point{X: 0, Y: 4}, grid.Point{X: -1}, grid.Point{X: 9, Y: 4}},
		{"bottom edge", grid.Point{X: 3, Y: 9}, grid.Point{Y: 1}, grid.Point{X: 3, Y: 0}},
		{"top edge", grid.Point{X: 3, Y: 0}, grid.Point{Y: -1}, grid.Point{X: 3, Y: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t, []grid.Point{tt.head}, grid.Point{X: 7, Y: 7}, nil)
			g.Tick(tt.dir)
			if got := g.Snapshot().Head(); got != tt.want {
				t.Errorf("head = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTickEatsFood(t *testing.T) {
	rng := &scripted{next: []int{2, 8}}
	g := newGame(t, pts(5, 5), grid.Point{X: 6, Y: 5}, rng)

	if out := g.Tick(right); out != Ate {
		t.Fatalf("Tick = %v, want Ate", out)
	}
	s := g.Snapshot()
	if s.Score != 10 {
		t.Errorf("score = %d, want 10", s.Score)
	}
	if len(s.Body) != 2 || s.Head() != (grid.Point{X: 6, Y: 5}) || s.Body[1] != (grid.Point{X: 5, Y: 5}) {
		t.Errorf("body = %v, want [(6,5) (5,5)]", s.Body)
	}
	if s.Food != (grid.Point{X: 2, Y: 8}) {
		t.Errorf("food = %v, want fresh (2,8)", s.Food)
	}
	if !s.Grid.Contains(s.Food) {
		t.Errorf("food %v off the board", s.Food)
	}
}

func TestScoreStepOption(t *testing.T) {
	g := New(grid.Grid{Width: 10, Height: 10}, &scripted{}, WithScoreStep(25))
	g.body = pts(5, 5)
	g.food = grid.Point{X: 6, Y: 5}
	g.Tick(right)
	if g.Score() != 25 {
		t.Errorf("score = %d, want 25", g.Score())
	}
}

func TestFoodUnderBodyIsEdible(t *testing.T) {
	// food sits under the tail; the head reaches it like any other tile
	g := newGame(t, pts(5, 5, 4, 5, 3, 5), grid.Point{X: 3, Y: 5}, nil)
	g.Tick(grid.Point{Y: 1})  // (5,6)
	g.Tick(grid.Point{X: -1}) // (4,6)
	g.Tick(grid.Point{X: -1}) // (3,6)
	if out := g.Tick(grid.Point{Y: -1}); out != Ate {
		t.Fatalf("Tick = %v, want Ate", out)
	}
	if g.Len() != 4 || g.Score() != 10 {
		t.Errorf("len %d score %d, want 4 and 10", g.Len(), g.Score())
	}
}

func TestSelfCollisionEndsRound(t *testing.T) {
	g := newGame(t, pts(5, 5, 5, 6, 4, 6, 4, 5, 3, 5), grid.Point{X: 0, Y: 0}, &scripted{next: []int{1, 1}})
	g.score = 30

	if out := g.Tick(grid.Point{X: -1}); out != Collided {
		t.Fatalf("Tick = %v, want Collided", out)
	}
	if g.State() != StateGameOver {
		t.Fatalf("state = %v, want game over", g.State())
	}
	if out := g.Tick(right); out != Suspended {
		t.Errorf("Tick while over = %v, want Suspended", out)
	}

	if final := g.Acknowledge(); final != 30 {
		t.Errorf("Acknowledge() = %d, want 30", final)
	}
	s := g.Snapshot()
	if s.State != StateAlive || s.Score != 0 || len(s.Body) != 1 || !s.Direction.IsZero() {
		t.Errorf("after reset: %+v", s)
	}
	if s.Head() != (grid.Point{X: 5, Y: 5}) {
		t.Errorf("reset head = %v, want centre", s.Head())
	}
}

func TestChasingOwnTailIsSafe(t *testing.T) {
	// the head moves into the tile the tail leaves on the same tick
	g := newGame(t, pts(5, 5, 5, 6, 4, 6, 4, 5), grid.Point{X: 0, Y: 0}, nil)
	if out := g.Tick(grid.Point{X: -1}); out != Moved {
		t.Fatalf("Tick = %v, want Moved", out)
	}
}

func TestDuplicateSegmentUnderHead(t *testing.T) {
	g := newGame(t, pts(5, 5, 5, 5), grid.Point{X: 0, Y: 0}, nil)
	if out := g.Tick(right); out != Moved {
		t.Fatalf("Tick = %v, want Moved", out)
	}
	if g.State() != StateAlive || g.Len() != 2 {
		t.Errorf("state %v len %d", g.State(), g.Len())
	}
}

func TestZeroDirectionIsNoop(t *testing.T) {
	// food right under the idle head must not be eaten
	g := newGame(t, pts(5, 5), grid.Point{X: 5, Y: 5}, nil)
	for i := 0; i < 5; i++ {
		if out := g.Tick(grid.Point{}); out != Idle {
			t.Fatalf("Tick = %v, want Idle", out)
		}
	}
	if g.Len() != 1 || g.Score() != 0 || g.State() != StateAlive {
		t.Errorf("idle ticks changed the game: %+v", g.Snapshot())
	}
}

func TestResizeKeepsSnake(t *testing.T) {
	g := newGame(t, pts(5, 5, 4, 5), grid.Point{X: 9, Y: 9}, &scripted{next: []int{1, 2}})
	g.Resize(grid.Grid{Width: 20, Height: 20})
	s := g.Snapshot()
	if s.Head() != (grid.Point{X: 5, Y: 5}) || s.Food != (grid.Point{X: 9, Y: 9}) {
		t.Errorf("grow: head %v food %v", s.Head(), s.Food)
	}

	g.Resize(grid.Grid{Width: 5, Height: 8})
	s = g.Snapshot()
	if s.Head() != (grid.Point{X: 0, Y: 5}) || s.Body[1] != (grid.Point{X: 4, Y: 5}) {
		t.Errorf("shrink: body %v", s.Body)
	}
	if s.Food != (grid.Point{X: 1, Y: 2}) {
		t.Errorf("shrink: food %v, want respawned (1,2)", s.Food)
	}
}

func TestResizeCentresUnmovedSnake(t *testing.T) {
	g := New(grid.Grid{Width: 40, Height: 30}, &scripted{next: []int{3, 3}})
	g.Resize(grid.Grid{Width: 64, Height: 36})
	if h := g.Snapshot().Head(); h != (grid.Point{X: 32, Y: 18}) {
		t.Fatalf("head %v, want centre (32,18)", h)
	}

	// once it has moved the snake stays put
	g.Tick(right)
	g.Resize(grid.Grid{Width: 80, Height: 40})
	if h := g.Snapshot().Head(); h != (grid.Point{X: 33, Y: 18}) {
		t.Errorf("head %v after moving, want (33,18)", h)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newGame(t, pts(5, 5), grid.Point{X: 0, Y: 0}, nil)
	s := g.Snapshot()
	s.Body[0] = grid.Point{X: 1, Y: 1}
	if g.Snapshot().Head() != (grid.Point{X: 5, Y: 5}) {
		t.Error("snapshot shares the body slice")
	}
}
