package game

import "fmt"

// Direction is one of the four orthogonal directions a piece may travel.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists the directions in the order moves are generated.
var Directions = [4]Direction{Left, Right, Up, Down}

// Delta returns the column and row offsets of a single step.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	default:
		return 0, 1
	}
}

func (d Direction) String() string {
	return [...]string{"left", "right", "up", "down"}[d]
}

// Kind discriminates the variants of Move.
type Kind int

const (
	Place Kind = iota
	Step
	Jump
)

func (k Kind) String() string {
	return [...]string{"place", "step", "jump"}[k]
}

// Move is either a placement at To, or a step/jump of the piece at From in Dir
// landing on To.
type Move struct {
	Kind Kind
	From Point
	To   Point
	Dir  Direction
}

// NewPlace returns a placement at the given column and row.
func NewPlace(col, row int) Move {
	return Move{Kind: Place, To: Point{X: col, Y: row}}
}

// NewStep returns a one-square move from (col,row) in dir.
func NewStep(col, row int, dir Direction) Move {
	dx, dy := dir.Delta()
	return Move{Kind: Step, From: Point{col, row}, To: Point{col + dx, row + dy}, Dir: dir}
}

// NewJump returns a two-square move from (col,row) in dir.
func NewJump(col, row int, dir Direction) Move {
	dx, dy := dir.Delta()
	return Move{Kind: Jump, From: Point{col, row}, To: Point{col + 2*dx, row + 2*dy}, Dir: dir}
}

// IsPlacement reports whether the move adds a piece rather than moving one.
func (m Move) IsPlacement() bool {
	return m.Kind == Place
}

// String renders a placement as "(x, y)" and a movement as "((x, y), (x, y))".
func (m Move) String() string {
	if m.IsPlacement() {
		return m.To.String()
	}
	return fmt.Sprintf("(%s, %s)", m.From, m.To)
}

// NewMovement rebuilds a step or jump from its origin and destination, as
// relayed by drivers that only carry coordinates.
func NewMovement(from, to Point) (Move, bool) {
	for _, dir := range Directions {
		dx, dy := dir.Delta()
		switch to {
		case Point{from.X + dx, from.Y + dy}:
			return NewStep(from.X, from.Y, dir), true
		case Point{from.X + 2*dx, from.Y + 2*dy}:
			return NewJump(from.X, from.Y, dir), true
		}
	}
	return Move{}, false
}
