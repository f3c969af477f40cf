package agent

import (
	"fmt"

	"watchyourback/game"
	"watchyourback/metrics"
	"watchyourback/searcher"
)

// Agent plays one side using alpha-beta search.
type Agent struct {
	tracker
	search *searcher.AlphaBeta
}

// New returns an agent for side with an empty board.
func New(side game.Side, options ...searcher.Option) (*Agent, error) {
	if !side.Valid() {
		return nil, fmt.Errorf("invalid side %d", int(side))
	}
	return &Agent{
		tracker: newTracker(side),
		search:  searcher.NewAlphaBeta(options...),
	}, nil
}

// NewFromColour returns an agent for "white" or "black".
func NewFromColour(colour string, options ...searcher.Option) (*Agent, error) {
	side, err := game.ParseSide(colour)
	if err != nil {
		return nil, err
	}
	return New(side, options...)
}

func (a *Agent) Act(turn int) (game.Move, bool) {
	return a.act(turn, a.place, a.move)
}

// LastMetric returns the metrics of the agent's latest search.
func (a *Agent) LastMetric() metrics.SearchMetric {
	return a.search.LastMetric()
}

func (a *Agent) place() (game.Move, bool) {
	res, ok := a.search.FindPlacement(a.board, a.side, a.placed, a.opponentPlaced)
	return res.Move, ok
}

func (a *Agent) move(turn int) (game.Move, bool) {
	res, ok := a.search.FindMove(a.board, a.side, turn)
	return res.Move, ok
}
