package day17

import "container/heap"

type direction int

const (
	up direction = iota
	down
	left
	right
)

func (d direction) turns() [2]direction {
	if d == up || d == down {
		return [2]direction{left, right}
	}
	return [2]direction{up, down}
}

// crucible is a search state: where the crucible is, which way it
// faces, how many straight moves remain before it must turn, and how
// many before it may.
type crucible struct {
	row, col   int
	facing     direction
	mustTurnIn int
	canTurnIn  int
}

func (s crucible) forward() crucible {
	switch s.facing {
	case up:
		s.row--
	case down:
		s.row++
	case left:
		s.col--
	default:
		s.col++
	}
	return s
}

type queueItem struct {
	state crucible
	cost  int
}

type queue []queueItem

func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)        { *q = append(*q, x.(queueItem)) }
func (q *queue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// MinHeatLoss runs Dijkstra from the top-left block to the bottom-
// right one. A crucible may roll at most maxStraight blocks in a row
// and may neither turn nor stop before minStraight blocks of a run.
func (c City) MinHeatLoss(maxStraight, minStraight int) int {
	nbRows, nbCols := len(c.blocks), len(c.blocks[0])
	dist := make(map[crucible]int)
	q := &queue{}
	for _, d := range []direction{up, down, left, right} {
		start := crucible{facing: d, mustTurnIn: maxStraight, canTurnIn: minStraight}
		dist[start] = 0
		heap.Push(q, queueItem{state: start})
	}

	push := func(s crucible, cost int) {
		if s.row < 0 || s.row >= nbRows || s.col < 0 || s.col >= nbCols {
			return
		}
		cost += c.blocks[s.row][s.col]
		if best, ok := dist[s]; ok && best <= cost {
			return
		}
		dist[s] = cost
		heap.Push(q, queueItem{state: s, cost: cost})
	}

	for q.Len() > 0 {
		item := heap.Pop(q).(queueItem)
		s, cost := item.state, item.cost
		if dist[s] < cost {
			continue
		}
		if s.row == nbRows-1 && s.col == nbCols-1 && s.canTurnIn == 0 {
			return cost
		}
		if s.mustTurnIn > 0 {
			next := s.forward()
			next.mustTurnIn--
			if next.canTurnIn > 0 {
				next.canTurnIn--
			}
			push(next, cost)
		}
		if s.canTurnIn == 0 {
			for _, d := range s.facing.turns() {
				next := s
				next.facing = d
				next = next.forward()
				next.mustTurnIn = maxStraight - 1
				next.canTurnIn = max(minStraight-1, 0)
				push(next, cost)
			}
		}
	}
	return 0
}
