package engine

import "watchyourback/metrics"

// Engine drives a full game between two players.
type Engine interface {
	// Run plays until a side wins, both are reduced, or the turn limit is hit
	Run() (Result, error)
}

// Result summarises a finished game.
type Result struct {
	Winner string // "white", "black" or "draw"
	Game   metrics.GameMetric
	Moves  []metrics.MoveMetric
}
