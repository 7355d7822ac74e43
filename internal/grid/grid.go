// Package grid maps viewport pixels onto the tile board the snake lives on.
package grid

// TileEdge is the default tile size in pixels
const TileEdge = 20

// Point is a tile coordinate (or a direction vector)
type Point struct {
	X, Y int
}

// Add returns p moved by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Neg returns the reverse of p
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsZero reports whether p is the zero vector
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Grid is the size of the board in tiles
type Grid struct {
	Width, Height int
}

// Source is the slice of a random generator the spawner needs
type Source interface {
	Intn(n int) int
}

// Compute works out how many whole tiles of size edge fit in the viewport.
// Both axes are clamped to at least one tile so the wrap and spawn maths
// never divide by zero on a degenerate viewport.
func Compute(viewWidth, viewHeight, edge int) Grid {
	if edge <= 0 {
		edge = TileEdge
	}
	return Grid{
		Width:  max(viewWidth/edge, 1),
		Height: max(viewHeight/edge, 1),
	}
}

// Wrap folds p back onto the board so leaving one edge re-enters at the
// opposite one. Works for any integer, including large negatives.
func (g Grid) Wrap(p Point) Point {
	return Point{X: wrap(p.X, g.Width), Y: wrap(p.Y, g.Height)}
}

func wrap(c, n int) int {
	if n <= 0 {
		return 0
	}
	return ((c % n) + n) % n
}

// Contains reports whether p lies on the board
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center is where a fresh snake starts
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// SpawnFood picks a uniformly random tile. Tiles under the snake are not
// excluded; food may land on the body.
func (g Grid) SpawnFood(r Source) Point {
	return Point{
		X: r.Intn(max(g.Width, 1)),
		Y: r.Intn(max(g.Height, 1)),
	}
}
