package searcher

import (
	"watchyourback/game"
)

// inf bounds every score the evaluator can produce.
const inf game.Score = 1 << 30

// Result is the outcome of one root search.
type Result struct {
	Move  game.Move   // Chosen uniformly from Ties
	Score game.Score  // Best score found at the root
	Depth int         // Plies searched
	Ties  []game.Move // Root moves whose value equals Score
}

// Searcher picks a move for one side of a position.
type Searcher interface {
	FindMove(b *game.Board, side game.Side, turn int) (Result, bool)
	FindPlacement(b *game.Board, side game.Side, placed, opponentPlaced int) (Result, bool)
}
