package game

import "watchyourback/meta"

// Score is a heuristic value from one side's perspective; higher is better.
type Score int

const (
	WinScore  Score = 100000
	LossScore Score = -WinScore
	// DrawScore beats a loss but loses to any undecided position.
	DrawScore Score = LossScore / 2
)

// Heuristic weights.
const (
	PieceWeight  = 100
	MaxLead      = 4 // material lead beyond this earns nothing more
	CentreWeight = 2
	SafeBonus    = 10
	ThreatWeight = 6
	SafeLead     = 24 // turns before a shrink at which the next region counts as safe
)

// Evaluate scores the board for side, given side's phase and the phase-local
// turn number.
type Evaluate func(b *Board, side Side, phase Phase, turn int) Score

// Outcome reports whether the moving-phase game is decided and, if so, its score
// for side. Placing positions are never decided.
func Outcome(b *Board, side Side, phase Phase) (Score, bool) {
	if phase != Moving {
		return 0, false
	}
	own, enemy := b.Count(side), b.Count(side.Opponent())
	switch {
	case own < 2 && enemy < 2:
		return DrawScore, true
	case enemy < 2:
		return WinScore, true
	case own < 2:
		return LossScore, true
	default:
		return 0, false
	}
}

// AdjustForDepth prefers quick wins and slow losses: decided scores lose one
// point of magnitude per ply searched.
func AdjustForDepth(s Score, depth int) Score {
	switch {
	case s >= WinScore:
		return s - Score(depth)
	case s <= LossScore:
		return s + Score(depth)
	default:
		return s
	}
}

// EvaluatePosition combines clamped material difference with per-piece
// centrality, safe-zone membership and capture threats.
func EvaluatePosition(b *Board, side Side, phase Phase, turn int) Score {
	if s, ok := Outcome(b, side, phase); ok {
		return s
	}
	enemy := side.Opponent()
	own, theirs := b.Pieces(side), b.Pieces(enemy)
	score := Score(clamp(len(own)-len(theirs), -MaxLead, MaxLead) * PieceWeight)

	safe := SafeStage(phase, turn)
	for _, p := range own {
		score += pieceValue(b, p, side, phase, safe)
	}
	for _, p := range theirs {
		score -= pieceValue(b, p, enemy, phase, safe)
	}
	return score
}

// EvaluateMaterial only counts pieces. It is cheap enough for exhaustive tests.
func EvaluateMaterial(b *Board, side Side, phase Phase, _ int) Score {
	if s, ok := Outcome(b, side, phase); ok {
		return s
	}
	return Score((b.Count(side) - b.Count(side.Opponent())) * PieceWeight)
}

// SafeStage returns the stage whose live region a piece should sit in to survive
// the coming shrink.
func SafeStage(phase Phase, turn int) int {
	if phase == Placing {
		return 1
	}
	stage := meta.StageAt(turn)
	switch {
	case stage == 0 && turn >= meta.FIRST_SHRINK-SafeLead:
		return 1
	case stage == 1 && turn >= meta.SECOND_SHRINK-SafeLead:
		return 2
	default:
		return stage
	}
}

func pieceValue(b *Board, p Point, side Side, phase Phase, safe int) Score {
	v := CentreWeight * centrality(p)
	if IsOnBoard(p.Y, p.X, safe) && !isCorner(p, safe) {
		v += SafeBonus
	}
	v += ThreatWeight * threats(b, p, side, phase)
	return Score(v)
}

// centrality is 6 in the middle four squares and 0 in the corners.
func centrality(p Point) int {
	return (2*(size-1) - abs(2*p.X-(size-1)) - abs(2*p.Y-(size-1))) / 2
}

func isCorner(p Point, stage int) bool {
	for _, c := range Corners(stage) {
		if c == p {
			return true
		}
	}
	return false
}

// threats counts enemy pieces the piece at p could capture with its next
// action: a move onto a flanking square while moving, or, while placing, a
// placement opposite p.
func threats(b *Board, p Point, side Side, phase Phase) int {
	enemy := side.Opponent().Piece()
	var hit []Point
	mark := func(e Point) {
		for _, h := range hit {
			if h == e {
				return
			}
		}
		hit = append(hit, e)
	}

	if phase == Placing {
		for _, dir := range Directions {
			dx, dy := dir.Delta()
			e := Point{p.X + dx, p.Y + dy}
			if b.At(e.X, e.Y) == enemy && CanPlace(b, side, e.X+dx, e.Y+dy) {
				mark(e)
			}
		}
		return len(hit)
	}

	stage := b.Stage()
	for _, dir := range Directions {
		dx, dy := dir.Delta()
		var to Point
		switch {
		case CanStep(b, p.Y, p.X, stage, dir):
			to = Point{p.X + dx, p.Y + dy}
		case CanJump(b, p.Y, p.X, stage, dir):
			to = Point{p.X + 2*dx, p.Y + 2*dy}
		default:
			continue
		}
		for _, d := range Directions {
			ex, ey := d.Delta()
			e := Point{to.X + ex, to.Y + ey}
			if b.At(e.X, e.Y) != enemy {
				continue
			}
			beyond := Point{e.X + ex, e.Y + ey}
			if beyond == p || !inGrid(beyond.X, beyond.Y) {
				continue
			}
			if b.At(beyond.X, beyond.Y).HostileTo(side.Opponent()) {
				mark(e)
			}
		}
	}
	return len(hit)
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
