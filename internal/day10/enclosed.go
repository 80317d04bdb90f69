package day10

import "strings"

// edge is an adjacency between two loop tiles, ordered so each pair
// has one canonical form.
type edge struct {
	a, b Coord
}

func newEdge(a, b Coord) edge {
	if b.Row < a.Row || (b.Row == a.Row && b.Col < a.Col) {
		a, b = b, a
	}
	return edge{a, b}
}

// Enclosed counts the tiles the loop walls in. It flood fills the
// dual grid of tile corners: a corner move squeezes between two
// adjacent tiles and is blocked only where the loop runs between
// them, so any tile whose corners are all unreachable from the
// outside is enclosed.
func (m Maze) Enclosed() int {
	onLoop := make(map[Coord]struct{}, len(m.loop))
	walls := make(map[edge]struct{}, len(m.loop))
	for i, c := range m.loop {
		onLoop[c] = struct{}{}
		walls[newEdge(c, m.loop[(i+1)%len(m.loop)])] = struct{}{}
	}

	nbRows, nbCols := len(m.rows), len(m.rows[0])
	// Corner (r, c) is the top-left point of tile (r, c); the grid of
	// corners has one extra row and column.
	reached := make([][]bool, nbRows+1)
	for r := range reached {
		reached[r] = make([]bool, nbCols+1)
	}
	queue := []Coord{{0, 0}}
	reached[0][0] = true
	for len(queue) > 0 {
		corner := queue[0]
		queue = queue[1:]
		for _, d := range []direction{up, down, left, right} {
			next := corner.move(d)
			if next.Row < 0 || next.Row > nbRows || next.Col < 0 || next.Col > nbCols {
				continue
			}
			if reached[next.Row][next.Col] || m.cornerMoveBlocked(walls, corner, d) {
				continue
			}
			reached[next.Row][next.Col] = true
			queue = append(queue, next)
		}
	}

	enclosed := 0
	for r := 0; r < nbRows; r++ {
		for c := 0; c < nbCols; c++ {
			tile := Coord{r, c}
			if _, ok := onLoop[tile]; ok {
				continue
			}
			if reached[r][c] || reached[r][c+1] || reached[r+1][c] || reached[r+1][c+1] {
				continue
			}
			enclosed++
		}
	}
	return enclosed
}

// cornerMoveBlocked reports whether moving a corner point towards d
// crosses a pipe. A vertical corner move passes between the tiles left
// and right of it, a horizontal one between the tiles above and below.
func (m Maze) cornerMoveBlocked(walls map[edge]struct{}, corner Coord, d direction) bool {
	var a, b Coord
	switch d {
	case up:
		a = Coord{corner.Row - 1, corner.Col - 1}
		b = Coord{corner.Row - 1, corner.Col}
	case down:
		a = Coord{corner.Row, corner.Col - 1}
		b = Coord{corner.Row, corner.Col}
	case left:
		a = Coord{corner.Row - 1, corner.Col - 1}
		b = Coord{corner.Row, corner.Col - 1}
	default:
		a = Coord{corner.Row - 1, corner.Col}
		b = Coord{corner.Row, corner.Col}
	}
	_, blocked := walls[newEdge(a, b)]
	return blocked
}

// String renders the maze with box-drawing pipes, the start as ♞ and
// ground as dots, for debugging and test output.
func (m Maze) String() string {
	var b strings.Builder
	for r, row := range m.rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case '|':
				b.WriteRune('│')
			case '-':
				b.WriteRune('─')
			case 'L':
				b.WriteRune('└')
			case 'J':
				b.WriteRune('┘')
			case '7':
				b.WriteRune('┐')
			case 'F':
				b.WriteRune('┌')
			case 'S':
				b.WriteRune('♞')
			default:
				b.WriteRune('.')
			}
		}
	}
	return b.String()
}
