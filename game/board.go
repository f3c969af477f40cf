package game

import (
	"fmt"
	"strings"

	"watchyourback/meta"
)

const size = meta.BOARD_SIZE

// Point is a board coordinate: X is the column and Y is the row.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Board is the 8x8 grid plus the number of shrinks applied so far. It is a plain
// value: assigning or cloning it never shares cells.
type Board struct {
	cells [size][size]Cell // indexed [row][col]
	stage int
}

// NewBoard returns an empty, unshrunk board with its four corners marked.
func NewBoard() *Board {
	b := &Board{}
	b.markCorners(0)
	return b
}

// NewBoardAt returns an empty board already shrunk to the given stage.
func NewBoardAt(stage int) *Board {
	b := &Board{stage: stage}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if !IsOnBoard(row, col, stage) {
				b.cells[row][col] = OutOfBounds
			}
		}
	}
	b.markCorners(stage)
	return b
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Stage returns how many times the board has shrunk.
func (b *Board) Stage() int {
	return b.stage
}

// At returns the cell at the given column and row. Coordinates off the grid read
// as OutOfBounds.
func (b *Board) At(col, row int) Cell {
	if col < 0 || col >= size || row < 0 || row >= size {
		return OutOfBounds
	}
	return b.cells[row][col]
}

// Set overwrites the cell at the given column and row.
func (b *Board) Set(col, row int, c Cell) {
	b.cells[row][col] = c
}

// Pieces returns the positions of side's pieces in row-major order.
func (b *Board) Pieces(side Side) []Point {
	piece := side.Piece()
	var pts []Point
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if b.cells[row][col] == piece {
				pts = append(pts, Point{X: col, Y: row})
			}
		}
	}
	return pts
}

// Count returns the number of pieces side has on the board.
func (b *Board) Count(side Side) int {
	piece := side.Piece()
	n := 0
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if b.cells[row][col] == piece {
				n++
			}
		}
	}
	return n
}

// Corners returns the four corner squares for the given stage.
func Corners(stage int) [4]Point {
	lo, hi := stage, size-1-stage
	return [4]Point{{lo, lo}, {hi, lo}, {lo, hi}, {hi, hi}}
}

func (b *Board) markCorners(stage int) {
	for _, p := range Corners(stage) {
		b.cells[p.Y][p.X] = Corner
	}
}

var symbols = map[Cell]byte{
	Empty:       '-',
	WhitePiece:  'O',
	BlackPiece:  '@',
	Corner:      'X',
	OutOfBounds: '=',
}

// String renders the board one row per line using the classic symbols.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(symbols[b.cells[row][col]])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads a board in the format produced by String. Whitespace between
// symbols is optional. The stage is inferred from the out-of-bounds ring.
func ParseBoard(s string) (*Board, error) {
	b := &Board{}
	row := 0
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}
		if row >= size {
			return nil, fmt.Errorf("too many rows: expected %d", size)
		}
		if len(line) != size {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", row, size, len(line))
		}
		for col := 0; col < size; col++ {
			c, err := parseSymbol(line[col])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", row, col, err)
			}
			b.cells[row][col] = c
		}
		row++
	}
	if row != size {
		return nil, fmt.Errorf("expected %d rows, got %d", size, row)
	}
	for b.stage < meta.MAX_STAGE && b.cells[b.stage][size/2] == OutOfBounds {
		b.stage++
	}
	return b, nil
}

func parseSymbol(sym byte) (Cell, error) {
	for c, s := range symbols {
		if s == sym {
			return c, nil
		}
	}
	return Empty, fmt.Errorf("unknown symbol %q", sym)
}
