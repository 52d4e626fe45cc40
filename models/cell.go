package models

import "strconv"

// Symbols used when a cell is printed.
const (
	HiddenSymbol = "_"
	MineSymbol   = "*"
)

// Cell is a single square of the board. The zero value is a hidden,
// mine-free cell with no adjacent mines.
type Cell struct {
	isMine        bool
	isRevealed    bool
	adjacentMines int
}

func (c Cell) IsMine() bool { return c.isMine }

func (c *Cell) SetMine(mine bool) { c.isMine = mine }

func (c Cell) IsRevealed() bool { return c.isRevealed }

func (c *Cell) SetRevealed(revealed bool) { c.isRevealed = revealed }

// AdjacentMines is only meaningful for cells that are not mines.
func (c Cell) AdjacentMines() int { return c.adjacentMines }

func (c *Cell) SetAdjacentMines(count int) { c.adjacentMines = count }

// String returns "_" for a hidden cell, "*" for a revealed mine and the
// adjacency count for a revealed safe cell.
func (c Cell) String() string {
	if !c.isRevealed {
		return HiddenSymbol
	}
	if c.isMine {
		return MineSymbol
	}
	return strconv.Itoa(c.adjacentMines)
}
