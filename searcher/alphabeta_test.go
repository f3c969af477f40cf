package searcher

import (
	"fmt"
	"testing"
	"time"

	"watchyourback/game"
	"watchyourback/meta"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// exhaustive is plain minimax over the same tree the searcher walks.
func exhaustive(b *game.Board, toMove, perspective game.Side, turn, depth, depthMax int, evaluate game.Evaluate) game.Score {
	b = b.Clone()
	if stage := meta.StageAt(turn); stage > b.Stage() {
		game.ApplyShrink(b, stage)
	}
	if score, ok := game.Outcome(b, perspective, game.Moving); ok && depth > 0 {
		return game.AdjustForDepth(score, depth)
	}
	if depth == depthMax {
		return evaluate(b, perspective, game.Moving, turn)
	}
	moves := game.EnumerateMoves(b, toMove, b.Stage())
	if len(moves) == 0 {
		if depth == 0 {
			return evaluate(b, perspective, game.Moving, turn)
		}
		return exhaustive(b, toMove.Opponent(), perspective, turn+1, depth+1, depthMax, evaluate)
	}

	maximise := toMove == perspective
	best := inf
	if maximise {
		best = -inf
	}
	for _, m := range moves {
		child := b.Clone()
		game.Apply(child, toMove, m)
		v := exhaustive(child, toMove.Opponent(), perspective, turn+1, depth+1, depthMax, evaluate)
		if maximise {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}
	return best
}

func randomBoard(rng *rand.Rand, turn, pieces int) *game.Board {
	stage := meta.StageAt(turn)
	b := game.NewBoardAt(stage)
	for _, side := range []game.Side{game.White, game.Black} {
		for n := 0; n < pieces; {
			col, row := rng.Intn(meta.BOARD_SIZE), rng.Intn(meta.BOARD_SIZE)
			if b.At(col, row) != game.Empty {
				continue
			}
			b.Set(col, row, side.Piece())
			n++
		}
	}
	game.Eliminate(b, game.White, game.Black)
	return b
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	evaluations := map[string]game.Evaluate{
		"material": game.EvaluateMaterial,
		"position": game.EvaluatePosition,
	}
	orderings := map[string]game.Ordering{
		"row major":      game.RowMajor,
		"enemy distance": game.ByEnemyDistance,
	}

	for i := 0; i < 12; i++ {
		turn := []int{0, 40, 125, 126, 127, 189}[i%6]
		b := randomBoard(rng, turn, 2+i%2)
		side := game.Side(i % 2)

		for depth := 1; depth <= 4; depth++ {
			for evalName, evaluate := range evaluations {
				for orderName, order := range orderings {
					name := fmt.Sprintf("board %d depth %d %s %s", i, depth, evalName, orderName)
					t.Run(name, func(t *testing.T) {
						s := NewAlphaBeta(
							WithFixedDepth(depth),
							WithEvaluationFn(evaluate),
							WithOrdering(order),
							WithSeed(uint64(i)),
						)
						res, ok := s.FindMove(b, side, turn)
						if !ok {
							require.Zero(t, game.CountAvailableMoves(b, side, b.Stage()))
							return
						}
						want := exhaustive(b, side, side, turn, 0, depth, evaluate)
						require.Equal(t, want, res.Score)
						require.Equal(t, depth, res.Depth)
						require.Contains(t, res.Ties, res.Move)
						requireTiesExact(t, b, side, turn, depth, evaluate, res)
					})
				}
			}
		}
	}
}

// requireTiesExact checks that the tie-set holds exactly the root moves whose
// minimax value equals the reported score.
func requireTiesExact(t *testing.T, b *game.Board, side game.Side, turn, depth int, evaluate game.Evaluate, res Result) {
	t.Helper()
	root := b.Clone()
	if stage := meta.StageAt(turn); stage > root.Stage() {
		game.ApplyShrink(root, stage)
	}
	for _, m := range game.EnumerateMoves(root, side, root.Stage()) {
		child := root.Clone()
		game.Apply(child, side, m)
		v := exhaustive(child, side.Opponent(), side, turn+1, 1, depth, evaluate)
		if slices.Contains(res.Ties, m) {
			require.Equal(t, res.Score, v, "tied move %s", m)
		} else {
			require.Less(t, v, res.Score, "untied move %s", m)
		}
	}
}

func TestTiesAchieveBestScore(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < 60; i++ {
		b := randomBoard(rng, 40, 3+i%3)
		side := game.Side(i % 2)
		for depth := 2; depth <= 3; depth++ {
			t.Run(fmt.Sprintf("board %d depth %d", i, depth), func(t *testing.T) {
				s := NewAlphaBeta(WithFixedDepth(depth), WithSeed(uint64(i)))
				res, ok := s.FindMove(b, side, 40)
				if !ok {
					return
				}
				requireTiesExact(t, b, side, 40, depth, game.EvaluatePosition, res)
			})
		}
	}
}

func TestFindMoveLeavesBoardUntouched(t *testing.T) {
	b := game.NewBoard()
	b.Set(0, 3, game.WhitePiece)
	b.Set(3, 3, game.WhitePiece)
	b.Set(5, 5, game.BlackPiece)
	b.Set(4, 4, game.BlackPiece)
	before := b.Clone()

	s := NewAlphaBeta(WithFixedDepth(3), WithSeed(1))
	_, ok := s.FindMove(b, game.White, meta.FIRST_SHRINK)
	require.True(t, ok)
	require.Equal(t, before, b, "shrinking and searching must happen on a copy")
}

func TestTieSet(t *testing.T) {
	t.Run("equal moves are all kept", func(t *testing.T) {
		b := game.NewBoard()
		b.Set(3, 3, game.WhitePiece)
		b.Set(4, 4, game.WhitePiece)
		b.Set(1, 6, game.BlackPiece)
		b.Set(6, 1, game.BlackPiece)

		newSearcher := func() *AlphaBeta {
			return NewAlphaBeta(WithFixedDepth(1), WithEvaluationFn(game.EvaluateMaterial), WithSeed(7))
		}
		res, ok := newSearcher().FindMove(b, game.White, 0)
		require.True(t, ok)
		require.Equal(t, game.Score(0), res.Score)
		require.Equal(t, game.EnumerateMoves(b, game.White, 0), res.Ties)

		again, _ := newSearcher().FindMove(b, game.White, 0)
		require.Equal(t, res.Move, again.Move, "same seed should pick the same move")
	})

	t.Run("a strictly better move resets the set", func(t *testing.T) {
		b := game.NewBoard()
		b.Set(3, 3, game.WhitePiece)
		b.Set(6, 3, game.WhitePiece)
		b.Set(5, 3, game.BlackPiece)
		b.Set(1, 6, game.BlackPiece)
		b.Set(6, 6, game.BlackPiece)

		s := NewAlphaBeta(WithFixedDepth(1), WithEvaluationFn(game.EvaluateMaterial), WithSeed(3))
		res, ok := s.FindMove(b, game.White, 0)
		require.True(t, ok)
		require.Equal(t, []game.Move{game.NewStep(3, 3, game.Right)}, res.Ties)
		require.Equal(t, game.NewStep(3, 3, game.Right), res.Move)
		require.Equal(t, game.Score(0), res.Score)
	})

	t.Run("picks are spread over the set", func(t *testing.T) {
		b := game.NewBoard()
		b.Set(3, 3, game.WhitePiece)
		b.Set(4, 4, game.WhitePiece)
		b.Set(1, 6, game.BlackPiece)
		b.Set(6, 1, game.BlackPiece)

		s := NewAlphaBeta(WithFixedDepth(1), WithEvaluationFn(game.EvaluateMaterial), WithSeed(11))
		seen := make(map[game.Move]bool)
		for i := 0; i < 200; i++ {
			res, _ := s.FindMove(b, game.White, 0)
			seen[res.Move] = true
		}
		require.Greater(t, len(seen), 1)
	})
}

func TestFindMoveWithoutMoves(t *testing.T) {
	b := game.NewBoard()
	b.Set(3, 3, game.BlackPiece)
	b.Set(4, 4, game.BlackPiece)

	_, ok := NewAlphaBeta(WithSeed(1)).FindMove(b, game.White, 0)
	require.False(t, ok)
}

func TestFindPlacement(t *testing.T) {
	t.Run("takes the capture", func(t *testing.T) {
		b := game.NewBoard()
		b.Set(3, 3, game.WhitePiece)
		b.Set(4, 3, game.BlackPiece)

		s := NewAlphaBeta(WithPlacementDepth(1), WithEvaluationFn(game.EvaluateMaterial), WithSeed(5))
		res, ok := s.FindPlacement(b, game.White, 1, 1)
		require.True(t, ok)
		require.Equal(t, []game.Move{game.NewPlace(5, 3)}, res.Ties)
		require.Equal(t, game.Score(2*game.PieceWeight), res.Score)
	})

	t.Run("answer stays in the side's rows", func(t *testing.T) {
		s := NewAlphaBeta(WithSeed(9))
		res, ok := s.FindPlacement(game.NewBoard(), game.Black, 0, 1)
		require.True(t, ok)
		require.True(t, game.CanPlace(game.NewBoard(), game.Black, res.Move.To.X, res.Move.To.Y))
	})

	t.Run("nothing left to place", func(t *testing.T) {
		_, ok := NewAlphaBeta(WithSeed(1)).FindPlacement(game.NewBoard(), game.White, meta.PIECES_PER_SIDE, 0)
		require.False(t, ok)
	})
}

func TestChooseDepth(t *testing.T) {
	t.Run("generous budget reaches the cap", func(t *testing.T) {
		s := NewAlphaBeta(WithCostRate(1e18), WithMoveTime(time.Second))
		require.Equal(t, meta.MAX_DEPTH, s.chooseDepth(10, 10))
	})

	t.Run("tiny budget stays at the minimum", func(t *testing.T) {
		s := NewAlphaBeta(WithCostRate(1), WithMoveTime(time.Millisecond))
		require.Equal(t, meta.MIN_DEPTH, s.chooseDepth(10, 10))
	})

	t.Run("odd cap is still reached", func(t *testing.T) {
		s := NewAlphaBeta(WithMinDepth(2), WithMaxDepth(5), WithCostRate(1e18), WithMoveTime(time.Second))
		require.Equal(t, 5, s.chooseDepth(10, 10))
	})

	t.Run("depth grows as branching falls", func(t *testing.T) {
		s := NewAlphaBeta(WithCostRate(1000), WithMoveTime(time.Second))
		require.LessOrEqual(t, s.chooseDepth(30, 30), s.chooseDepth(3, 3))
		require.Equal(t, 2, s.chooseDepth(30, 30))
		require.Equal(t, 6, s.chooseDepth(3, 3))
	})

	t.Run("min above max panics", func(t *testing.T) {
		require.Panics(t, func() { NewAlphaBeta(WithMinDepth(6), WithMaxDepth(2)) })
	})
}

func TestSearchMetrics(t *testing.T) {
	b := game.NewBoard()
	b.Set(3, 3, game.WhitePiece)
	b.Set(4, 4, game.WhitePiece)
	b.Set(1, 6, game.BlackPiece)
	b.Set(6, 1, game.BlackPiece)

	s := NewAlphaBeta(WithFixedDepth(2), WithMetrics(), WithSeed(2))
	res, ok := s.FindMove(b, game.White, 0)
	require.True(t, ok)

	metric := s.LastMetric()
	require.False(t, metric.Placing)
	require.Equal(t, 2, metric.Depth)
	require.Equal(t, len(res.Ties), metric.Ties)
	require.Equal(t, int(res.Score), metric.Score)
	require.Greater(t, metric.Nodes, 1)
	require.Equal(t, 1, s.Clock().moves)
}
