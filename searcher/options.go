package searcher

import (
	"time"

	"watchyourback/game"
	"watchyourback/meta"
	"watchyourback/metrics"

	"golang.org/x/exp/rand"
)

type Option func(s *AlphaBeta)

// WithMinDepth sets the moving-phase depth searched regardless of budget.
func WithMinDepth(depth int) Option {
	return func(s *AlphaBeta) {
		if depth > 0 {
			s.minDepth = depth
		}
	}
}

// WithMaxDepth caps the moving-phase depth.
func WithMaxDepth(depth int) Option {
	return func(s *AlphaBeta) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// WithFixedDepth disables adaptive depth selection.
func WithFixedDepth(depth int) Option {
	return func(s *AlphaBeta) {
		if depth > 0 {
			s.minDepth = depth
			s.maxDepth = depth
		}
	}
}

func WithPlacementDepth(depth int) Option {
	return func(s *AlphaBeta) {
		if depth > 0 {
			s.placementDepth = depth
		}
	}
}

// WithMoveTime sets the target wall-clock time per moving-phase search.
func WithMoveTime(d time.Duration) Option {
	return func(s *AlphaBeta) {
		if d > 0 {
			s.clock.moveTime = d
		}
	}
}

// WithTimeLimit sets the allowance for the whole game; the per-move target
// shrinks as it is used up.
func WithTimeLimit(d time.Duration) Option {
	return func(s *AlphaBeta) {
		if d > 0 {
			s.clock.limit = d
		}
	}
}

// WithCostRate seeds the estimate of search cost units explored per second.
func WithCostRate(rate float64) Option {
	return func(s *AlphaBeta) {
		if rate > 0 {
			s.clock.rate = rate
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *AlphaBeta) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *AlphaBeta) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithOrdering(order game.Ordering) Option {
	return func(s *AlphaBeta) {
		if order != nil {
			s.order = order
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *AlphaBeta) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *AlphaBeta) {
		s.metrics = metrics.NewCollector()
	}
}

func defaults() *AlphaBeta {
	return &AlphaBeta{
		minDepth:       meta.MIN_DEPTH,
		maxDepth:       meta.MAX_DEPTH,
		placementDepth: meta.PLACEMENT_DEPTH,
		evaluate:       game.EvaluatePosition,
		order:          game.RowMajor,
		rng:            rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		clock:          newClock(),
		metrics:        metrics.NewDummyCollector(),
	}
}
