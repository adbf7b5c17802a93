package types

import "golang.org/x/exp/constraints"

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits v to the closed range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ManhattanDistance is |dx| + |dy|.
func ManhattanDistance(a, b Point) int {
	return Abs(b.X-a.X) + Abs(b.Y-a.Y)
}

// manhattanDistance measures the distance between two points taking grid wrapping into account
func manhattanDistance(p1, p2 Point, width, height int) int {
	dx := Abs(p2.X - p1.X)
	dy := Abs(p2.Y - p1.Y)

	if dx > width/2 {
		dx = width - dx
	}
	if dy > height/2 {
		dy = height - dy
	}

	return dx + dy
}
