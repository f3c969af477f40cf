package game

import "golang.org/x/exp/slices"

// Ordering arranges a side's generated moves before the search explores them.
// It must return a permutation of moves.
type Ordering func(b *Board, side Side, moves []Move) []Move

// RowMajor keeps generation order: pieces row by row, directions left, right,
// up, down.
func RowMajor(_ *Board, _ Side, moves []Move) []Move {
	return moves
}

// ByEnemyDistance explores pieces closest to an enemy first. Ties keep
// generation order.
func ByEnemyDistance(b *Board, side Side, moves []Move) []Move {
	enemies := b.Pieces(side.Opponent())
	if len(enemies) == 0 {
		return moves
	}
	dist := make(map[Point]int)
	for _, m := range moves {
		if _, ok := dist[m.From]; !ok {
			dist[m.From] = nearest(m.From, enemies)
		}
	}
	slices.SortStableFunc(moves, func(a, b Move) int {
		return dist[a.From] - dist[b.From]
	})
	return moves
}

func nearest(p Point, others []Point) int {
	best := -1
	for _, o := range others {
		d := abs(p.X-o.X) + abs(p.Y-o.Y)
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
