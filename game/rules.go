package game

import "watchyourback/meta"

// IsOnBoard reports whether (row, col) lies inside the live region for the given
// shrink stage.
func IsOnBoard(row, col, stage int) bool {
	lo, hi := stage, size-1-stage
	return row >= lo && row <= hi && col >= lo && col <= hi
}

func inGrid(col, row int) bool {
	return col >= 0 && col < size && row >= 0 && row < size
}

// CanStep reports whether the piece at (row, col) may move one square in dir.
func CanStep(b *Board, row, col, stage int, dir Direction) bool {
	dx, dy := dir.Delta()
	r, c := row+dy, col+dx
	return IsOnBoard(r, c, stage) && b.At(c, r) == Empty
}

// CanJump reports whether the piece at (row, col) may move two squares in dir.
// The square jumped over may hold anything.
func CanJump(b *Board, row, col, stage int, dir Direction) bool {
	dx, dy := dir.Delta()
	r, c := row+2*dy, col+2*dx
	return IsOnBoard(r, c, stage) && b.At(c, r) == Empty
}

// PerformMove moves the piece at (row, col) in dir, stepping if possible and
// jumping otherwise. The board is left untouched when neither is legal.
func PerformMove(b *Board, row, col, stage int, dir Direction) (newRow, newCol int, ok bool) {
	dx, dy := dir.Delta()
	switch {
	case CanStep(b, row, col, stage, dir):
		newRow, newCol = row+dy, col+dx
	case CanJump(b, row, col, stage, dir):
		newRow, newCol = row+2*dy, col+2*dx
	default:
		return row, col, false
	}
	b.Set(newCol, newRow, b.At(col, row))
	b.Set(col, row, Empty)
	return newRow, newCol, true
}

// axes holds the neighbour offsets checked on each axis.
var axes = [2][2]Point{
	{{-1, 0}, {1, 0}},
	{{0, -1}, {0, 1}},
}

// IsSurrounded reports whether the piece at (row, col) is flanked by hostile
// squares on both sides of either axis.
func IsSurrounded(b *Board, row, col int) bool {
	side, ok := b.At(col, row).Side()
	if !ok {
		return false
	}
	for _, axis := range axes {
		ac, ar := col+axis[0].X, row+axis[0].Y
		bc, br := col+axis[1].X, row+axis[1].Y
		if !inGrid(ac, ar) || !inGrid(bc, br) {
			continue
		}
		if b.At(ac, ar).HostileTo(side) && b.At(bc, br).HostileTo(side) {
			return true
		}
	}
	return false
}

// Eliminate removes every surrounded piece of first, then every surrounded piece
// of second. The second pass sees the board as left by the first.
func Eliminate(b *Board, first, second Side) {
	for _, side := range [2]Side{first, second} {
		piece := side.Piece()
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				if b.At(col, row) == piece && IsSurrounded(b, row, col) {
					b.Set(col, row, Empty)
				}
			}
		}
	}
}

// CanBecomeSurrounded returns a vacant square where an enemy placement would
// capture the piece at (row, col). It only looks one placement ahead.
func CanBecomeSurrounded(b *Board, row, col int) (Point, bool) {
	side, ok := b.At(col, row).Side()
	if !ok || IsSurrounded(b, row, col) {
		return Point{}, false
	}
	for _, axis := range axes {
		for i := 0; i < 2; i++ {
			hc, hr := col+axis[i].X, row+axis[i].Y
			vc, vr := col+axis[1-i].X, row+axis[1-i].Y
			if !inGrid(hc, hr) || !inGrid(vc, vr) {
				continue
			}
			if b.At(hc, hr).HostileTo(side) && b.At(vc, vr) == Empty {
				return Point{X: vc, Y: vr}, true
			}
		}
	}
	return Point{}, false
}

// ApplyShrink contracts the board to the given stage: squares outside the live
// region become OutOfBounds, the corners move inwards (crushing any piece on
// them) and newly exposed pieces are eliminated, white before black.
func ApplyShrink(b *Board, stage int) {
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if !IsOnBoard(row, col, stage) {
				b.Set(col, row, OutOfBounds)
			}
		}
	}
	b.markCorners(stage)
	b.stage = stage
	Eliminate(b, White, Black)
}

// EnumerateMoves lists side's legal moves: for each piece in row-major order and
// each direction, a step when possible and otherwise a jump.
func EnumerateMoves(b *Board, side Side, stage int) []Move {
	var moves []Move
	for _, p := range b.Pieces(side) {
		for _, dir := range Directions {
			if CanStep(b, p.Y, p.X, stage, dir) {
				moves = append(moves, NewStep(p.X, p.Y, dir))
			} else if CanJump(b, p.Y, p.X, stage, dir) {
				moves = append(moves, NewJump(p.X, p.Y, dir))
			}
		}
	}
	return moves
}

// CountAvailableMoves returns how many moves side could make.
func CountAvailableMoves(b *Board, side Side, stage int) int {
	n := 0
	for _, p := range b.Pieces(side) {
		for _, dir := range Directions {
			if CanStep(b, p.Y, p.X, stage, dir) || CanJump(b, p.Y, p.X, stage, dir) {
				n++
			}
		}
	}
	return n
}

// PhaseFor returns the phase of a side that has placed the given number of pieces.
func PhaseFor(placed int) Phase {
	if placed < meta.PIECES_PER_SIDE {
		return Placing
	}
	return Moving
}

// PlacementRows returns the first and last row side may place in.
func PlacementRows(side Side) (first, last int) {
	if side == White {
		return 0, size - 3
	}
	return 2, size - 1
}

// CanPlace reports whether side may place a piece at (col, row).
func CanPlace(b *Board, side Side, col, row int) bool {
	first, last := PlacementRows(side)
	return row >= first && row <= last && IsOnBoard(row, col, b.stage) && b.At(col, row) == Empty
}

// PlacementMoves lists every square side may place on, in row-major order.
func PlacementMoves(b *Board, side Side) []Move {
	first, last := PlacementRows(side)
	var moves []Move
	for row := first; row <= last; row++ {
		for col := 0; col < size; col++ {
			if CanPlace(b, side, col, row) {
				moves = append(moves, NewPlace(col, row))
			}
		}
	}
	return moves
}

// IsLegal reports whether side may play m on b.
func IsLegal(b *Board, side Side, m Move) bool {
	if m.IsPlacement() {
		return CanPlace(b, side, m.To.X, m.To.Y)
	}
	from := m.From
	if b.At(from.X, from.Y) != side.Piece() {
		return false
	}
	stage := b.stage
	switch m.Kind {
	case Step:
		return m == NewStep(from.X, from.Y, m.Dir) && CanStep(b, from.Y, from.X, stage, m.Dir)
	case Jump:
		return m == NewJump(from.X, from.Y, m.Dir) &&
			!CanStep(b, from.Y, from.X, stage, m.Dir) && CanJump(b, from.Y, from.X, stage, m.Dir)
	default:
		return false
	}
}

// Apply plays m for side without checking legality, then resolves captures with
// the mover's opponent eliminated first.
func Apply(b *Board, side Side, m Move) {
	if m.IsPlacement() {
		b.Set(m.To.X, m.To.Y, side.Piece())
	} else {
		b.Set(m.From.X, m.From.Y, Empty)
		b.Set(m.To.X, m.To.Y, side.Piece())
	}
	Eliminate(b, side.Opponent(), side)
}
