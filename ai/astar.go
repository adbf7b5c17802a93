package ai

import (
	"snake-duel/game/types"

	"github.com/kamstrup/intmap"
)

// --- Open list for A* ---

type openEntry struct {
	cell   types.Point
	g      int // steps from start
	f      int // g + heuristic
	seq    int // insertion order, breaks ties on f
	parent int // flat index of the predecessor, -1 for start
}

type openList []openEntry

func (e openEntry) less(o openEntry) bool {
	if e.f != o.f {
		return e.f < o.f
	}
	return e.seq < o.seq
}

func (h *openList) push(e openEntry) {
	*h = append(*h, e)
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !(*h)[i].less((*h)[parent]) {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *openList) pop() openEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].less((*h)[left]) {
			smallest = right
		}
		if !(*h)[smallest].less((*h)[i]) {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}

// FindPath returns the shortest 4-connected path from start to goal,
// start first and goal last. Cells in blocked are impassable except the
// goal itself. The second return value is false when goal cannot be
// reached.
//
// The heuristic is grid.Distance, which on a wrapping grid measures the
// short way round each axis so it never overestimates.
func FindPath(start, goal types.Point, grid types.Grid, blocked types.PointSet) ([]types.Point, bool) {
	if !grid.InBounds(start) || !grid.InBounds(goal) {
		return nil, false
	}

	size := grid.Cells()
	gScore := intmap.New[int, int](size)
	// closed maps a finalized cell to its predecessor.
	closed := intmap.New[int, int](size)

	open := make(openList, 0, size/4+1)
	seq := 0
	open.push(openEntry{cell: start, g: 0, f: grid.Distance(start, goal), seq: seq, parent: -1})
	gScore.Put(grid.Index(start), 0)

	for len(open) > 0 {
		cur := open.pop()
		idx := grid.Index(cur.cell)
		if _, done := closed.Get(idx); done {
			continue
		}
		closed.Put(idx, cur.parent)

		if cur.cell == goal {
			return rebuildPath(grid, closed, idx), true
		}

		for _, dir := range types.Directions {
			next := cur.cell.Add(dir)
			if grid.Wrap {
				next = grid.Normalize(next)
			} else if !grid.InBounds(next) {
				continue
			}
			if next != goal && blocked.Has(next) {
				continue
			}

			nIdx := grid.Index(next)
			if _, done := closed.Get(nIdx); done {
				continue
			}
			tentative := cur.g + 1
			if best, seen := gScore.Get(nIdx); seen && tentative >= best {
				continue
			}
			gScore.Put(nIdx, tentative)
			seq++
			open.push(openEntry{
				cell:   next,
				g:      tentative,
				f:      tentative + grid.Distance(next, goal),
				seq:    seq,
				parent: idx,
			})
		}
	}

	return nil, false
}

func rebuildPath(grid types.Grid, closed *intmap.Map[int, int], goalIdx int) []types.Point {
	var path []types.Point
	for idx := goalIdx; idx >= 0; {
		path = append(path, grid.PointAt(idx))
		parent, _ := closed.Get(idx)
		idx = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
