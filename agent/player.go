package agent

import (
	"watchyourback/game"
	"watchyourback/meta"
)

// Player is the contract between a turn driver and one side.
type Player interface {
	// Act returns the player's move for the given phase-local turn, or false if
	// the player has no legal move.
	Act(turn int) (game.Move, bool)
	// ObserveOpponentMove applies the other side's last move; nil means the
	// opponent passed.
	ObserveOpponentMove(move *game.Move)
}

// tracker keeps a player's private copy of the game in step with the driver.
type tracker struct {
	side           game.Side
	board          *game.Board
	placed         int
	opponentPlaced int
}

func newTracker(side game.Side) tracker {
	return tracker{side: side, board: game.NewBoard()}
}

// Side returns the side this player controls.
func (t *tracker) Side() game.Side {
	return t.side
}

// Board returns a copy of the player's view of the board.
func (t *tracker) Board() *game.Board {
	return t.board.Clone()
}

// Phase returns the player's current phase.
func (t *tracker) Phase() game.Phase {
	return game.PhaseFor(t.placed)
}

func (t *tracker) ObserveOpponentMove(move *game.Move) {
	if move == nil {
		return
	}
	if move.IsPlacement() {
		t.opponentPlaced++
	}
	game.Apply(t.board, t.side.Opponent(), *move)
}

// act runs one turn: shrink if due, clear pieces the shrink exposed, choose and
// play a move, then shrink ahead of the opponent's turn if that is due.
func (t *tracker) act(turn int, place func() (game.Move, bool), move func(turn int) (game.Move, bool)) (game.Move, bool) {
	if t.Phase() == game.Placing {
		game.Eliminate(t.board, t.side, t.side.Opponent())
		m, ok := place()
		if !ok {
			return game.Move{}, false
		}
		game.Apply(t.board, t.side, m)
		t.placed++
		return m, true
	}

	t.syncStage(turn)
	game.Eliminate(t.board, t.side, t.side.Opponent())
	defer t.syncStage(turn + 1)

	if game.CountAvailableMoves(t.board, t.side, t.board.Stage()) == 0 {
		return game.Move{}, false
	}
	m, ok := move(turn)
	if !ok {
		return game.Move{}, false
	}
	game.Apply(t.board, t.side, m)
	return m, true
}

func (t *tracker) syncStage(turn int) {
	if stage := meta.StageAt(turn); stage > t.board.Stage() {
		game.ApplyShrink(t.board, stage)
	}
}
