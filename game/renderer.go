package game

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/dimaq12/sweeper/models"
)

// Symbols used by the full-screen table.
const (
	hiddenText = "."
	mineText   = "M"
)

var countColors = map[int]tcell.Color{
	1: tcell.ColorBlue,
	2: tcell.ColorGreen,
	3: tcell.ColorRed,
	4: tcell.ColorNavy,
	5: tcell.ColorMaroon,
	6: tcell.ColorTeal,
	7: tcell.ColorPurple,
	8: tcell.ColorGray,
}

// Renderer maps a board onto a tview table. Row 0 and column 0 of the table
// hold labels, so board cell (r, c) lives at table cell (r+1, c+1).
type Renderer struct {
	boardTable *tview.Table
	status     *tview.TextView
	layout     *tview.Flex
}

func NewRenderer() *Renderer {
	r := &Renderer{
		boardTable: tview.NewTable(),
		status:     tview.NewTextView(),
	}
	r.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(r.boardTable, 0, 1, true).
		AddItem(r.status, 1, 0, false)
	return r
}

// DrawBoard writes labels and every cell of the board into the table.
func (r *Renderer) DrawBoard(board *models.Board, revealAll bool) {
	r.boardTable.Clear()

	r.boardTable.SetCell(0, 0, labelCell(""))
	for col := 0; col < board.Cols(); col++ {
		r.boardTable.SetCell(0, col+1, labelCell(strconv.Itoa(col+1)))
	}
	for row := 0; row < board.Rows(); row++ {
		r.boardTable.SetCell(row+1, 0, labelCell(models.RowLabel(row)))
		for col := 0; col < board.Cols(); col++ {
			r.RenderCell(board, row, col, revealAll)
		}
	}

	r.boardTable.SetSelectable(true, true)
	r.boardTable.SetFixed(1, 1)
	r.boardTable.Select(1, 1)
}

// RenderCell refreshes a single board cell.
func (r *Renderer) RenderCell(board *models.Board, row, col int, revealAll bool) {
	cell, err := board.Cell(row, col)
	if err != nil {
		return
	}

	text := hiddenText
	color := tcell.ColorWhite
	if cell.IsRevealed() || revealAll {
		if cell.IsMine() {
			text = mineText
			color = tcell.ColorYellow
		} else {
			text = strconv.Itoa(cell.AdjacentMines())
			if c, ok := countColors[cell.AdjacentMines()]; ok {
				color = c
			} else {
				color = tcell.ColorDarkGray
			}
		}
	}

	r.boardTable.SetCell(row+1, col+1, tview.NewTableCell(text).
		SetAlign(tview.AlignCenter).
		SetTextColor(color))
}

// SetStatus replaces the line under the board.
func (r *Renderer) SetStatus(text string) {
	r.status.SetText(text)
}

// Selection returns the board coordinates under the cursor. ok is false when
// the cursor sits on a label.
func (r *Renderer) Selection() (row, col int, ok bool) {
	row, col = r.boardTable.GetSelection()
	if row < 1 || col < 1 {
		return 0, 0, false
	}
	return row - 1, col - 1, true
}

func labelCell(text string) *tview.TableCell {
	return tview.NewTableCell(text).
		SetAlign(tview.AlignCenter).
		SetTextColor(tcell.ColorDarkCyan).
		SetSelectable(false)
}
