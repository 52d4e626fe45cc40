package models

import (
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Render draws the board as text with column numbers across the top and row
// letters down the side. With revealAll every mine and every count is shown
// regardless of what the player has opened.
func (b *Board) Render(revealAll bool) string {
	var sb strings.Builder
	b.render(&sb, revealAll)
	return sb.String()
}

// RenderTo writes the same text as Render to w.
func (b *Board) RenderTo(w io.Writer, revealAll bool) error {
	_, err := io.WriteString(w, b.Render(revealAll))
	return err
}

func (b *Board) render(sb *strings.Builder, revealAll bool) {
	labelWidth := runewidth.StringWidth(RowLabel(b.rows - 1))
	cellWidth := runewidth.StringWidth(strconv.Itoa(b.cols))

	sb.WriteString(strings.Repeat(" ", labelWidth+2))
	for col := 1; col <= b.cols; col++ {
		sb.WriteString(runewidth.FillLeft(strconv.Itoa(col), cellWidth))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	for row := 0; row < b.rows; row++ {
		sb.WriteString(runewidth.FillRight(RowLabel(row), labelWidth))
		sb.WriteString("  ")
		for col := 0; col < b.cols; col++ {
			sb.WriteString(runewidth.FillLeft(b.symbol(row, col, revealAll), cellWidth))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
}

func (b *Board) symbol(row, col int, revealAll bool) string {
	cell := b.cells[b.index(row, col)]
	if !revealAll {
		return cell.String()
	}
	if cell.IsMine() {
		return MineSymbol
	}
	return strconv.Itoa(cell.AdjacentMines())
}
