package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dimaq12/sweeper/models"
)

// Result is how a finished game ended.
type Result int

const (
	Won Result = iota
	Lost
)

func (r Result) String() string {
	if r == Won {
		return "won"
	}
	return "lost"
}

// Messages printed by the prompt driver.
const (
	WinMessage  = "***Congratulations*** You won! All safe cells revealed!"
	LossMessage = "Game over, stepped on mine"
)

// ErrInputClosed is returned when input ends before the game does.
var ErrInputClosed = errors.New("input closed before the game ended")

// PromptGame plays one game over a line-oriented reader and writer.
type PromptGame struct {
	in    *bufio.Scanner
	out   io.Writer
	board *models.Board
	rng   *rand.Rand
}

type PromptOption func(*PromptGame)

// WithBoard skips the size and mine prompts and plays on b.
func WithBoard(b *models.Board) PromptOption {
	return func(g *PromptGame) { g.board = b }
}

// WithRNG sets the generator used to place mines.
func WithRNG(rng *rand.Rand) PromptOption {
	return func(g *PromptGame) { g.rng = rng }
}

func NewPromptGame(in io.Reader, out io.Writer, opts ...PromptOption) *PromptGame {
	g := &PromptGame{
		in:  bufio.NewScanner(in),
		out: out,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Board returns the board being played, or nil before setup.
func (g *PromptGame) Board() *models.Board {
	return g.board
}

// Play asks for a board if none was given, runs turns until the game is won
// or lost, then prints the fully revealed board.
func (g *PromptGame) Play() (Result, error) {
	if g.board == nil {
		if err := g.setupBoard(); err != nil {
			return Lost, err
		}
	}

	result, err := g.runGameLoop()
	if err != nil {
		return result, err
	}

	log.WithFields(logrus.Fields{
		"result":   result,
		"revealed": g.board.RevealedCount(),
	}).Info("game finished")

	return result, g.board.RenderTo(g.out, true)
}

func (g *PromptGame) runGameLoop() (Result, error) {
	for {
		if err := g.board.RenderTo(g.out, false); err != nil {
			return Lost, err
		}

		if g.board.AllSafeRevealed() {
			fmt.Fprintln(g.out, WinMessage)
			return Won, nil
		}

		row, col, err := g.askCell()
		if err != nil {
			return Lost, err
		}

		outcome, err := g.board.Reveal(row, col)
		if err != nil {
			return Lost, err
		}
		log.WithFields(logrus.Fields{
			"cell":    models.RowLabel(row) + fmt.Sprint(col+1),
			"outcome": outcome,
		}).Debug("cell revealed")

		if outcome == models.MineHit {
			fmt.Fprintln(g.out, LossMessage)
			return Lost, nil
		}
	}
}

func (g *PromptGame) setupBoard() error {
	rows, cols, err := g.askBoardSize()
	if err != nil {
		return err
	}
	mines, err := g.askMines(rows, cols)
	if err != nil {
		return err
	}

	board, err := models.NewRandomBoard(rows, cols, mines, g.rng)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"rows":  rows,
		"cols":  cols,
		"mines": mines,
	}).Debug("board created")

	g.board = board
	return nil
}

func (g *PromptGame) askBoardSize() (int, int, error) {
	for {
		kind, err := g.ask("Square or rectangular board? (S/R): ")
		if err != nil {
			return 0, 0, err
		}

		switch strings.ToUpper(kind) {
		case "S":
			line, err := g.ask("Enter size for square board: ")
			if err != nil {
				return 0, 0, err
			}
			size, err := parsePositive(line)
			if err != nil {
				g.invalid(err)
				continue
			}
			return size, size, nil
		case "R":
			line, err := g.ask("Enter board size (rows,cols): ")
			if err != nil {
				return 0, 0, err
			}
			rows, cols, err := parseRectSize(line)
			if err != nil {
				g.invalid(err)
				continue
			}
			return rows, cols, nil
		default:
			fmt.Fprintln(g.out, "Invalid choice. Enter S or R.")
		}
	}
}

func (g *PromptGame) askMines(rows, cols int) (int, error) {
	maxMines := MaxMines(rows, cols)
	if maxMines == 0 {
		return 0, nil
	}

	prompt := fmt.Sprintf("Enter number of mines (max %d%% of board size i.e.%d): ", maxMinePercent, maxMines)
	for {
		line, err := g.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, err := parsePositive(line)
		if err != nil {
			g.invalid(err)
			continue
		}
		if n > maxMines {
			g.invalid(fmt.Errorf("Mines cannot exceed %d", maxMines))
			continue
		}
		return n, nil
	}
}

func (g *PromptGame) askCell() (int, int, error) {
	for {
		line, err := g.ask("Click a cell (e.g., A1): ")
		if err != nil {
			return 0, 0, err
		}
		row, col, err := ParseAddress(line, g.board.Rows(), g.board.Cols())
		if err != nil {
			g.invalid(err)
			continue
		}
		return row, col, nil
	}
}

func (g *PromptGame) ask(prompt string) (string, error) {
	fmt.Fprint(g.out, prompt)
	if !g.in.Scan() {
		if err := g.in.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(g.in.Text()), nil
}

func (g *PromptGame) invalid(err error) {
	fmt.Fprintln(g.out, "Invalid input:", err)
}
