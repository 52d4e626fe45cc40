package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dimaq12/sweeper/models"
)

var (
	errInputTooShort = errors.New("Input too short")
	errOutOfBoard    = errors.New("Cell out of board range")
)

// maxMinePercent caps prompted boards at 35% mines.
const maxMinePercent = 35

// MaxMines returns how many mines a rows x cols board may hold.
func MaxMines(rows, cols int) int {
	return rows * cols * maxMinePercent / 100
}

// ParseAddress turns a cell address such as "A1" or "ab12" into zero-based
// coordinates on a rows x cols board. Rows are letters, columns are 1-based
// numbers.
func ParseAddress(s string, rows, cols int) (int, int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return 0, 0, errInputTooShort
	}

	split := strings.IndexFunc(s, func(r rune) bool { return r < 'A' || r > 'Z' })
	switch {
	case split < 0:
		return 0, 0, fmt.Errorf("address %q has no column number", s)
	case split == 0:
		return 0, 0, fmt.Errorf("address %q must start with a row letter", s)
	}

	row, err := models.ParseRowLabel(s[:split])
	if err != nil {
		return 0, 0, err
	}
	col, err := strconv.Atoi(s[split:])
	if err != nil {
		return 0, 0, fmt.Errorf("column %q is not a number", s[split:])
	}
	col--

	if row < 0 || row >= rows || col < 0 || col >= cols {
		return 0, 0, errOutOfBoard
	}
	return row, col, nil
}

func parsePositive(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", strings.TrimSpace(s))
	}
	if v <= 0 {
		return 0, errors.New("Value must be positive.")
	}
	return v, nil
}

func parseRectSize(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, errors.New("Enter two numbers separated by comma.")
	}
	rows, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a number", strings.TrimSpace(parts[0]))
	}
	cols, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a number", strings.TrimSpace(parts[1]))
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, errors.New("Rows and columns must be positive.")
	}
	return rows, cols, nil
}
