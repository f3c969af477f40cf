package game

import "fmt"

// Side identifies one of the two players. White places and moves first.
type Side int

const (
	White Side = iota
	Black
)

// ParseSide converts a colour name into a Side.
func ParseSide(colour string) (Side, error) {
	switch colour {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	default:
		return White, fmt.Errorf("invalid colour %q: use 'white' or 'black'", colour)
	}
}

// Valid reports whether s names one of the two sides.
func (s Side) Valid() bool {
	return s == White || s == Black
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

// Piece returns the cell holding a piece of this side.
func (s Side) Piece() Cell {
	if s == White {
		return WhitePiece
	}
	return BlackPiece
}

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	WhitePiece
	BlackPiece
	Corner
	OutOfBounds
)

// Side returns the owner of the piece in the cell, if any.
func (c Cell) Side() (Side, bool) {
	switch c {
	case WhitePiece:
		return White, true
	case BlackPiece:
		return Black, true
	default:
		return White, false
	}
}

// HostileTo reports whether the cell counts as an attacker of side's pieces.
func (c Cell) HostileTo(side Side) bool {
	switch c {
	case Corner, OutOfBounds:
		return true
	case WhitePiece, BlackPiece:
		owner, _ := c.Side()
		return owner != side
	default:
		return false
	}
}

// Phase is the stage of the game a side is in.
type Phase int

const (
	Placing Phase = iota
	Moving
)

func (p Phase) String() string {
	if p == Placing {
		return "placing"
	}
	return "moving"
}
