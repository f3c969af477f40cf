// meta/meta.go
package meta

import "time"

// PIECES_PER_SIDE is the number of placements each side makes before moving.
const PIECES_PER_SIDE = 12

// BOARD_SIZE is the width and height of the unshrunk board.
const BOARD_SIZE = 8

// FIRST_SHRINK is the moving-phase turn at which the board shrinks to stage 1.
const FIRST_SHRINK = 128

// SECOND_SHRINK is the moving-phase turn at which the board shrinks to stage 2.
const SECOND_SHRINK = 192

// MAX_STAGE is the last shrink stage.
const MAX_STAGE = 2

// MAX_MOVING_TURNS ends the game as a draw if neither side has won.
const MAX_MOVING_TURNS = 256

// MIN_DEPTH is the shallowest moving-phase search.
const MIN_DEPTH = 2

// MAX_DEPTH caps the moving-phase search depth.
const MAX_DEPTH = 6

// PLACEMENT_DEPTH caps the placing-phase search depth; placements branch widely.
const PLACEMENT_DEPTH = 2

// GAME_TIME_LIMIT is the default search allowance per player for a whole game.
const GAME_TIME_LIMIT = 60 * time.Second

// StageAt returns the shrink stage in effect at the given moving-phase turn.
func StageAt(turn int) int {
	switch {
	case turn >= SECOND_SHRINK:
		return 2
	case turn >= FIRST_SHRINK:
		return 1
	default:
		return 0
	}
}
