package models

import (
	"fmt"
	"math/rand/v2"
)

// Outcome reports what a reveal did to the game.
type Outcome int

const (
	Safe Outcome = iota
	MineHit
)

func (o Outcome) String() string {
	switch o {
	case Safe:
		return "SAFE"
	case MineHit:
		return "MINE_HIT"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Position addresses a cell by zero-based row and column.
type Position struct {
	Row int
	Col int
}

// neighborOffsets lists the eight surrounding squares.
var neighborOffsets = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is a rectangular minesweeper field. Cells are stored row-major in a
// single slice and never handed out by pointer.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

func newBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

// NewRandomBoard places numMines mines at distinct random cells. A nil rng
// falls back to a clock-seeded generator.
func NewRandomBoard(rows, cols, numMines int, rng *rand.Rand) (*Board, error) {
	b, err := newBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	if numMines < 0 || numMines > len(b.cells) {
		return nil, fmt.Errorf("%d mines on %dx%d: %w", numMines, rows, cols, ErrTooManyMines)
	}
	if rng == nil {
		rng = NewRNG(0)
	}

	b.placeMinesRandomly(numMines, rng)
	b.calculateAdjacents()
	return b, nil
}

// NewFixedBoard builds a board with mines at exactly the given positions.
// Repeated positions count once.
func NewFixedBoard(rows, cols int, mines []Position) (*Board, error) {
	b, err := newBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, p := range mines {
		if !b.InBounds(p.Row, p.Col) {
			return nil, fmt.Errorf("mine at (%d,%d): %w", p.Row, p.Col, ErrOutOfRange)
		}
		b.cells[b.index(p.Row, p.Col)].SetMine(true)
	}

	b.calculateAdjacents()
	return b, nil
}

// placeMinesRandomly runs a partial Fisher-Yates shuffle over the flattened
// cell indices and mines the first n of them.
func (b *Board) placeMinesRandomly(n int, rng *rand.Rand) {
	order := make([]int, len(b.cells))
	for i := range order {
		order[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(order)-i)
		order[i], order[j] = order[j], order[i]
		b.cells[order[i]].SetMine(true)
	}
}

// calculateAdjacents fills in the neighbor count of every safe cell. Mine
// cells keep the zero value.
func (b *Board) calculateAdjacents() {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			cell := &b.cells[b.index(row, col)]
			if cell.IsMine() {
				continue
			}
			count := 0
			b.forEachNeighbor(row, col, func(nr, nc int) {
				if b.cells[b.index(nr, nc)].IsMine() {
					count++
				}
			})
			cell.SetAdjacentMines(count)
		}
	}
}

// Reveal opens the cell at (row, col). Stepping on a mine reports MineHit
// and leaves the board untouched. A cell with no adjacent mines opens its
// whole zero region together with the numbered cells bordering it.
func (b *Board) Reveal(row, col int) (Outcome, error) {
	if !b.InBounds(row, col) {
		return Safe, fmt.Errorf("reveal (%d,%d): %w", row, col, ErrOutOfRange)
	}

	cell := &b.cells[b.index(row, col)]
	switch {
	case cell.IsMine():
		return MineHit, nil
	case cell.AdjacentMines() > 0:
		cell.SetRevealed(true)
	default:
		b.floodFill(row, col)
	}
	return Safe, nil
}

// floodFill reveals breadth-first from a zero cell. A neighbor is marked
// revealed before it is queued, so every cell enters the queue at most once.
// Numbered cells get revealed but do not spread further.
func (b *Board) floodFill(row, col int) {
	b.cells[b.index(row, col)].SetRevealed(true)
	queue := []Position{{row, col}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if b.cells[b.index(p.Row, p.Col)].AdjacentMines() != 0 {
			continue
		}
		b.forEachNeighbor(p.Row, p.Col, func(nr, nc int) {
			neighbor := &b.cells[b.index(nr, nc)]
			if neighbor.IsRevealed() || neighbor.IsMine() {
				return
			}
			neighbor.SetRevealed(true)
			queue = append(queue, Position{nr, nc})
		})
	}
}

// AllSafeRevealed reports whether every non-mine cell is open.
func (b *Board) AllSafeRevealed() bool {
	for _, cell := range b.cells {
		if !cell.IsMine() && !cell.IsRevealed() {
			return false
		}
	}
	return true
}

func (b *Board) Rows() int { return b.rows }

func (b *Board) Cols() int { return b.cols }

// InBounds reports whether (row, col) addresses a cell of the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Cell returns a copy of the cell at (row, col).
func (b *Board) Cell(row, col int) (Cell, error) {
	if !b.InBounds(row, col) {
		return Cell{}, fmt.Errorf("cell (%d,%d): %w", row, col, ErrOutOfRange)
	}
	return b.cells[b.index(row, col)], nil
}

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int {
	n := 0
	for _, cell := range b.cells {
		if cell.IsMine() {
			n++
		}
	}
	return n
}

// RevealedCount returns the number of open cells.
func (b *Board) RevealedCount() int {
	n := 0
	for _, cell := range b.cells {
		if cell.IsRevealed() {
			n++
		}
	}
	return n
}

// Mines lists mine positions in row-major order.
func (b *Board) Mines() []Position {
	var mines []Position
	for i, cell := range b.cells {
		if cell.IsMine() {
			mines = append(mines, Position{Row: i / b.cols, Col: i % b.cols})
		}
	}
	return mines
}

func (b *Board) index(row, col int) int { return row*b.cols + col }

func (b *Board) forEachNeighbor(row, col int, fn func(nr, nc int)) {
	for _, d := range neighborOffsets {
		nr, nc := row+d.Row, col+d.Col
		if b.InBounds(nr, nc) {
			fn(nr, nc)
		}
	}
}
