package agent

import (
	"watchyourback/game"

	"golang.org/x/exp/rand"
)

// Random places and moves uniformly at random. It is a baseline opponent.
type Random struct {
	tracker
	rng *rand.Rand
}

func NewRandom(side game.Side, seed uint64) *Random {
	return &Random{
		tracker: newTracker(side),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) Act(turn int) (game.Move, bool) {
	return r.act(turn, r.place, r.move)
}

func (r *Random) place() (game.Move, bool) {
	return r.pick(game.PlacementMoves(r.board, r.side))
}

func (r *Random) move(int) (game.Move, bool) {
	return r.pick(game.EnumerateMoves(r.board, r.side, r.board.Stage()))
}

func (r *Random) pick(moves []game.Move) (game.Move, bool) {
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[r.rng.Intn(len(moves))], true
}
