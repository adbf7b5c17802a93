package types

// Point is a grid cell or, when used as a heading, one of the four unit vectors.
type Point struct {
	X, Y int
}

// Unit headings. Y grows downwards, as on screen.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Directions is the neighbour expansion order used by the pathfinder.
var Directions = [4]Point{Right, Left, Down, Up}

func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) Reverse() Point {
	return Point{X: -p.X, Y: -p.Y}
}

func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// PointSet is an unordered set of cells.
type PointSet map[Point]struct{}

func NewPointSet(points ...Point) PointSet {
	s := make(PointSet, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

func (s PointSet) Add(points ...Point) {
	for _, p := range points {
		s[p] = struct{}{}
	}
}

func (s PointSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

// Grid represents the game grid dimensions and its edge topology.
// With Wrap set the grid is a torus; otherwise stepping off an edge is
// left to the caller to reject.
type Grid struct {
	Width  int
	Height int
	Wrap   bool
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Step applies dir to p. On a wrapping grid the result is folded back
// onto the grid; otherwise it may lie outside and must be bounds-checked.
func (g Grid) Step(p, dir Point) Point {
	next := p.Add(dir)
	if g.Wrap {
		return g.Normalize(next)
	}
	return next
}

// Normalize reduces both coordinates modulo the grid size.
func (g Grid) Normalize(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// ClampPoint pulls an out-of-bounds point back onto the nearest edge cell.
func (g Grid) ClampPoint(p Point) Point {
	return Point{X: Clamp(p.X, 0, g.Width-1), Y: Clamp(p.Y, 0, g.Height-1)}
}

// Index flattens an in-bounds point to y*width + x.
func (g Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// PointAt is the inverse of Index.
func (g Grid) PointAt(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// EmptyCells lists every cell not in occupied, column by column.
// The result is empty when the grid is full.
func (g Grid) EmptyCells(occupied PointSet) []Point {
	free := make([]Point, 0, max(0, g.Cells()-len(occupied)))
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			p := Point{X: x, Y: y}
			if !occupied.Has(p) {
				free = append(free, p)
			}
		}
	}
	return free
}

// Distance is the fewest unit steps between a and b, ignoring obstacles.
// On a wrapping grid each axis may go the short way round.
func (g Grid) Distance(a, b Point) int {
	if g.Wrap {
		return manhattanDistance(a, b, g.Width, g.Height)
	}
	return ManhattanDistance(a, b)
}

func mod(v, n int) int {
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}
