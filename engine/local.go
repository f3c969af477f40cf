package engine

import (
	"errors"
	"fmt"
	"time"

	"watchyourback/agent"
	"watchyourback/game"
	"watchyourback/meta"
	"watchyourback/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrIllegalMove is returned when a player's move breaks the rules.
var ErrIllegalMove = errors.New("illegal move")

const Draw = "draw"

// metricsReporter is implemented by players that record search metrics.
type metricsReporter interface {
	LastMetric() metrics.SearchMetric
}

// Local referees a game between two in-process players, keeping the
// authoritative board and relaying each move to the other side.
type Local struct {
	board    *game.Board
	players  [2]agent.Player
	maxTurns int
	id       uuid.UUID
	moves    []metrics.MoveMetric
}

func NewLocal(white, black agent.Player) *Local {
	if white == nil || black == nil {
		panic("need two players")
	}
	return &Local{
		board:    game.NewBoard(),
		players:  [2]agent.Player{white, black},
		maxTurns: meta.MAX_MOVING_TURNS,
		id:       uuid.New(),
	}
}

// Board returns a copy of the authoritative board.
func (e *Local) Board() *game.Board {
	return e.board.Clone()
}

// ID identifies the game in metric records.
func (e *Local) ID() uuid.UUID {
	return e.id
}

func (e *Local) Run() (Result, error) {
	start := time.Now()
	log.Info().Str("game", e.id.String()).Msg("placing phase started")

	for turn := 0; turn < 2*meta.PIECES_PER_SIDE; turn++ {
		side := game.Side(turn % 2)
		m, ok := e.players[side].Act(turn)
		if !ok || !m.IsPlacement() || !game.IsLegal(e.board, side, m) {
			return Result{}, fmt.Errorf("%w: %s placement %s at turn %d", ErrIllegalMove, side, describe(m, ok), turn)
		}
		e.play(turn, side, m)
	}

	log.Info().Str("game", e.id.String()).Msg("moving phase started")
	turn := 0
	winner, decided := e.winner()
	for ; !decided && turn < e.maxTurns; turn++ {
		if stage := meta.StageAt(turn); stage > e.board.Stage() {
			game.ApplyShrink(e.board, stage)
			log.Info().Int("turn", turn).Int("stage", stage).Msg("board shrank")
			if winner, decided = e.winner(); decided {
				break
			}
		}

		side := game.Side(turn % 2)
		m, ok := e.players[side].Act(turn)
		if !ok {
			if game.CountAvailableMoves(e.board, side, e.board.Stage()) > 0 {
				return Result{}, fmt.Errorf("%w: %s passed with moves available at turn %d", ErrIllegalMove, side, turn)
			}
			log.Info().Int("turn", turn).Str("side", side.String()).Msg("no legal moves, passing")
			e.players[side.Opponent()].ObserveOpponentMove(nil)
			continue
		}
		if m.IsPlacement() || !game.IsLegal(e.board, side, m) {
			return Result{}, fmt.Errorf("%w: %s move %s at turn %d", ErrIllegalMove, side, m, turn)
		}
		e.play(turn, side, m)
		winner, decided = e.winner()
	}
	if !decided {
		winner = Draw
	}

	end := time.Now()
	log.Info().Str("game", e.id.String()).Int("turns", turn).Msgf("game over, winner: %s", winner)
	return Result{
		Winner: winner,
		Game: metrics.GameMetric{
			ID:          e.id,
			Winner:      winner,
			StartTime:   start,
			EndTime:     end,
			Duration:    end.Sub(start),
			MovingTurns: turn,
			WhiteLeft:   e.board.Count(game.White),
			BlackLeft:   e.board.Count(game.Black),
		},
		Moves: e.moves,
	}, nil
}

func (e *Local) play(turn int, side game.Side, m game.Move) {
	game.Apply(e.board, side, m)
	e.players[side.Opponent()].ObserveOpponentMove(&m)

	record := metrics.MoveMetric{Turn: turn, Player: side.String(), Move: m.String()}
	if r, ok := e.players[side].(metricsReporter); ok {
		record.SearchMetric = r.LastMetric()
	}
	e.moves = append(e.moves, record)
}

// winner reports the result once the moving phase game is decided.
func (e *Local) winner() (string, bool) {
	score, ok := game.Outcome(e.board, game.White, game.Moving)
	if !ok {
		return "", false
	}
	switch score {
	case game.WinScore:
		return game.White.String(), true
	case game.LossScore:
		return game.Black.String(), true
	default:
		return Draw, true
	}
}

func describe(m game.Move, ok bool) string {
	if !ok {
		return "none"
	}
	return m.String()
}
