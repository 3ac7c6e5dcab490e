package terrain

import (
	"strings"

	"roversim/internal/rover"
)

// Route runs a BFS over free cells and returns the shortest path from one
// cell to another, both endpoints included. The second result is false when
// no path exists or either endpoint is blocked.
func (t *Terrain) Route(fromX, fromY, toX, toY int) ([][2]int, bool) {
	if !t.Free(fromX, fromY) || !t.Free(toX, toY) {
		return nil, false
	}

	type node struct {
		x, y int
		path [][2]int
	}
	moves := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	visited := make(map[[2]int]bool)
	q := []node{{x: fromX, y: fromY, path: [][2]int{{fromX, fromY}}}}
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		if cur.x == toX && cur.y == toY {
			return cur.path, true
		}
		key := [2]int{cur.x, cur.y}
		if visited[key] {
			continue
		}
		visited[key] = true
		for _, mv := range moves {
			nx := cur.x + mv[0]
			ny := cur.y + mv[1]
			if t.Free(nx, ny) && !visited[[2]int{nx, ny}] {
				np := append(append([][2]int{}, cur.path...), [2]int{nx, ny})
				q = append(q, node{nx, ny, np})
			}
		}
	}
	return nil, false
}

// Commands compiles a route into command tokens for the standard bindings
// (f forward, l left, r right), given the rover's heading at the first
// cell. A reversal is expressed as two right turns.
func Commands(path [][2]int, heading rover.Direction) string {
	var out strings.Builder
	for i := 1; i < len(path); i++ {
		want := rover.Direction{
			Dx: path[i][0] - path[i-1][0],
			Dy: path[i][1] - path[i-1][1],
		}
		switch want {
		case heading:
		case heading.Right():
			out.WriteString("r")
		case heading.Left():
			out.WriteString("l")
		default:
			out.WriteString("rr")
		}
		heading = want
		out.WriteString("f")
	}
	return out.String()
}
