package game

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/sweeper/models"
)

// Status lines shown under the board.
const (
	PlayingStatus = "Enter: reveal   r: redraw   q: quit"
	WonStatus     = "Congratulations! You won the game!"
	LostStatus    = "Game Over! You hit a mine."
)

type TaskType int

const (
	RenderTaskType TaskType = iota
	ShowTaskType
	RevealAllTaskType
)

// Task is one unit of work for the service. Row and Col address a cell for
// ShowTaskType only; the other task types cover the whole board.
type Task struct {
	Type TaskType
	Row  int
	Col  int
}

func NewTask(taskType TaskType, row, col int) *Task {
	return &Task{Type: taskType, Row: row, Col: col}
}

type GameService interface {
	InitGame(rows, cols, mines int) error
	Stop()
	Result() (over bool, result Result)
}

// MinesweeperService runs a game inside a tview application. Every task is
// handled on the tview event goroutine, one at a time. Stop may be called
// from any goroutine.
type MinesweeperService struct {
	board    *models.Board
	renderer *Renderer
	app      *tview.Application
	rng      *rand.Rand
	over     bool
	result   Result

	mu      sync.Mutex
	stopped bool
}

var _ GameService = (*MinesweeperService)(nil)

func NewMinesweeperService(rng *rand.Rand) *MinesweeperService {
	return &MinesweeperService{
		renderer: NewRenderer(),
		app:      tview.NewApplication(),
		rng:      rng,
	}
}

// NewBoard replaces the current game with a fresh random board and draws it.
func (s *MinesweeperService) NewBoard(rows, cols, mines int) error {
	board, err := models.NewRandomBoard(rows, cols, mines, s.rng)
	if err != nil {
		return err
	}
	s.SetBoard(board)

	log.WithFields(logrus.Fields{
		"rows":  rows,
		"cols":  cols,
		"mines": mines,
	}).Debug("board created")
	return nil
}

// SetBoard starts a game on an existing board.
func (s *MinesweeperService) SetBoard(board *models.Board) {
	s.board = board
	s.over = false
	s.result = Won
	s.renderer.DrawBoard(board, false)
	s.renderer.SetStatus(PlayingStatus)
}

// InitGame builds a board and blocks until the player quits. It returns
// without starting the UI if Stop was already called.
func (s *MinesweeperService) InitGame(rows, cols, mines int) error {
	if err := s.NewBoard(rows, cols, mines); err != nil {
		return err
	}

	s.app.SetRoot(s.renderer.layout, true)
	s.renderer.boardTable.SetInputCapture(s.handleInput)

	if s.isStopped() {
		log.Info("stopped before the game started")
		return nil
	}
	return s.app.Run()
}

// Stop ends the tview application. A Stop before InitGame keeps the game
// from starting.
func (s *MinesweeperService) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	s.app.Stop()
}

func (s *MinesweeperService) isStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// Result reports whether the game is over and how it ended.
func (s *MinesweeperService) Result() (bool, Result) {
	return s.over, s.result
}

func (s *MinesweeperService) dispatch(task *Task) {
	switch task.Type {
	case ShowTaskType:
		s.showCell(task.Row, task.Col)
	case RenderTaskType:
		s.renderer.DrawBoard(s.board, s.over)
	case RevealAllTaskType:
		s.renderer.DrawBoard(s.board, true)
	}
}

// showCell reveals a cell and settles the game when it ends. Reveals after
// the game is over are ignored.
func (s *MinesweeperService) showCell(row, col int) {
	if s.over {
		return
	}

	outcome, err := s.board.Reveal(row, col)
	if err != nil {
		log.WithError(err).Warn("reveal rejected")
		return
	}
	log.WithFields(logrus.Fields{
		"cell":    fmt.Sprintf("%s%d", models.RowLabel(row), col+1),
		"outcome": outcome,
	}).Debug("cell revealed")

	switch {
	case outcome == models.MineHit:
		s.finish(Lost, LostStatus)
	case s.board.AllSafeRevealed():
		s.finish(Won, WonStatus)
	default:
		s.redrawCells()
	}
}

func (s *MinesweeperService) finish(result Result, status string) {
	s.over = true
	s.result = result
	s.dispatch(&Task{Type: RevealAllTaskType})
	s.renderer.SetStatus(status + "   q: quit")

	log.WithField("result", result).Info("game finished")
}

// redrawCells refreshes every board cell while keeping the cursor where it
// is; a flood fill can open cells anywhere on the board.
func (s *MinesweeperService) redrawCells() {
	for row := 0; row < s.board.Rows(); row++ {
		for col := 0; col < s.board.Cols(); col++ {
			s.renderer.RenderCell(s.board, row, col, false)
		}
	}
}

func (s *MinesweeperService) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEnter:
		if row, col, ok := s.renderer.Selection(); ok {
			s.dispatch(NewTask(ShowTaskType, row, col))
		}
		return nil
	case tcell.KeyEscape:
		s.Stop()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q', 'Q':
			s.Stop()
			return nil
		case 'r', 'R':
			row, col, _ := s.renderer.Selection()
			s.dispatch(&Task{Type: RenderTaskType})
			s.renderer.boardTable.Select(row+1, col+1)
			return nil
		}
	}
	return event
}
