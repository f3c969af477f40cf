package searcher

import (
	"time"

	"watchyourback/game"
	"watchyourback/meta"
	"watchyourback/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// AlphaBeta is a depth-limited minimax searcher with alpha-beta pruning. It
// keeps every root move tying for the best score and picks one at random.
type AlphaBeta struct {
	minDepth       int
	maxDepth       int
	placementDepth int
	evaluate       game.Evaluate
	order          game.Ordering
	rng            *rand.Rand
	clock          *Clock
	metrics        metrics.Collector
	last           metrics.SearchMetric
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	s := defaults()
	for _, option := range options {
		option(s)
	}
	if s.minDepth > s.maxDepth {
		panic("minimum search depth exceeds maximum")
	}
	return s
}

// Clock exposes the time tracker driving depth selection.
func (s *AlphaBeta) Clock() *Clock {
	return s.clock
}

// LastMetric returns the metrics of the most recent search, if collected.
func (s *AlphaBeta) LastMetric() metrics.SearchMetric {
	return s.last
}

// FindMove searches a moving-phase position where side is to play at the given
// phase-local turn. It reports false when side has no legal move.
func (s *AlphaBeta) FindMove(b *game.Board, side game.Side, turn int) (Result, bool) {
	root := node{board: b.Clone(), toMove: side, turn: turn}
	root.syncStage()
	stage := root.board.Stage()
	own := game.CountAvailableMoves(root.board, side, stage)
	if own == 0 {
		return Result{}, false
	}
	opp := game.CountAvailableMoves(root.board, side.Opponent(), stage)
	depth := s.chooseDepth(own, opp)

	start := time.Now()
	res := s.run(root, side, game.Moving, depth)
	s.clock.Record(time.Since(start), searchCost(own, opp, depth))
	return res, true
}

// FindPlacement searches the placing phase. placed and opponentPlaced count the
// pieces each side has put down so far.
func (s *AlphaBeta) FindPlacement(b *game.Board, side game.Side, placed, opponentPlaced int) (Result, bool) {
	root := node{board: b.Clone(), toMove: side}
	root.placed[side] = placed
	root.placed[side.Opponent()] = opponentPlaced
	if placed >= meta.PIECES_PER_SIDE || len(game.PlacementMoves(root.board, side)) == 0 {
		return Result{}, false
	}
	return s.run(root, side, game.Placing, s.placementDepth), true
}

// chooseDepth deepens two plies at a time while the projected cost fits the
// clock's budget.
func (s *AlphaBeta) chooseDepth(own, opp int) int {
	budget := s.clock.Budget()
	depth := s.minDepth
	for depth < s.maxDepth {
		next := min(depth+2, s.maxDepth)
		if searchCost(own, opp, next) > budget {
			break
		}
		depth = next
	}
	return depth
}

func (s *AlphaBeta) run(root node, side game.Side, phase game.Phase, depth int) Result {
	s.metrics.Start(depth, phase == game.Placing)
	sr := &search{
		AlphaBeta:   s,
		perspective: side,
		phase:       phase,
		depthMax:    depth,
		bestScore:   -inf,
	}
	sr.minimax(root, 0, -inf, inf)

	move := sr.best[s.rng.Intn(len(sr.best))]
	s.last = s.metrics.Complete(len(sr.best), int(sr.bestScore))
	log.Debug().
		Str("side", side.String()).
		Str("phase", phase.String()).
		Int("depth", depth).
		Int("ties", len(sr.best)).
		Int("score", int(sr.bestScore)).
		Msgf("chose %s", move)

	return Result{Move: move, Score: sr.bestScore, Depth: depth, Ties: sr.best}
}

// node is one position in the search tree. Its board is owned exclusively by
// the node.
type node struct {
	board  *game.Board
	toMove game.Side
	turn   int    // Phase-local turn of the side to move
	placed [2]int // Pieces placed per side, placing phase only
}

// syncStage shrinks the board if the turn has crossed a shrink boundary.
func (n node) syncStage() {
	if stage := meta.StageAt(n.turn); stage > n.board.Stage() {
		game.ApplyShrink(n.board, stage)
	}
}

func (n node) play(m game.Move) node {
	child := node{board: n.board.Clone(), toMove: n.toMove.Opponent(), turn: n.turn + 1, placed: n.placed}
	game.Apply(child.board, n.toMove, m)
	if m.IsPlacement() {
		child.placed[n.toMove]++
	}
	return child
}

func (n node) pass() node {
	return node{board: n.board.Clone(), toMove: n.toMove.Opponent(), turn: n.turn + 1, placed: n.placed}
}

type search struct {
	*AlphaBeta
	perspective game.Side
	phase       game.Phase
	depthMax    int
	best        []game.Move
	bestScore   game.Score
}

func (s *search) leaf(n node) game.Score {
	return s.evaluate(n.board, s.perspective, s.phase, n.turn)
}

func (s *search) minimax(n node, depth int, alpha, beta game.Score) game.Score {
	s.metrics.AddNode()

	var moves []game.Move
	if s.phase == game.Moving {
		n.syncStage()
		if score, ok := game.Outcome(n.board, s.perspective, s.phase); ok && depth > 0 {
			return game.AdjustForDepth(score, depth)
		}
		if depth == s.depthMax {
			return s.leaf(n)
		}
		moves = game.EnumerateMoves(n.board, n.toMove, n.board.Stage())
		if len(moves) == 0 {
			if depth == 0 {
				return s.leaf(n)
			}
			return s.minimax(n.pass(), depth+1, alpha, beta)
		}
	} else {
		if depth == s.depthMax || n.placed[n.toMove] >= meta.PIECES_PER_SIDE {
			return s.leaf(n)
		}
		moves = game.PlacementMoves(n.board, n.toMove)
		if len(moves) == 0 {
			return s.leaf(n)
		}
	}
	moves = s.order(n.board, n.toMove, moves)

	if n.toMove == s.perspective {
		best := -inf
		for _, m := range moves {
			lo := alpha
			if depth == 0 {
				// One below the best so far: a child that ties returns its exact
				// value and a worse one returns less than the best.
				lo = alpha - 1
			}
			v := s.minimax(n.play(m), depth+1, lo, beta)
			if depth == 0 {
				s.recordRoot(m, v)
			}
			best = max(best, v)
			alpha = max(alpha, v)
			if beta <= alpha {
				s.metrics.AddCutoff()
				break
			}
		}
		return best
	}

	best := inf
	for _, m := range moves {
		v := s.minimax(n.play(m), depth+1, alpha, beta)
		best = min(best, v)
		beta = min(beta, v)
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return best
}

// recordRoot maintains the set of root moves sharing the best score.
func (s *search) recordRoot(m game.Move, v game.Score) {
	switch {
	case v > s.bestScore:
		s.best = append(s.best[:0], m)
		s.bestScore = v
	case v == s.bestScore:
		s.best = append(s.best, m)
	}
}
