package models

import (
	"fmt"
	"strings"
)

// Longer labels would overflow well before describing a real board.
const maxRowLabelLen = 6

// RowLabel converts a zero-based row index into letters the way spreadsheet
// columns are named: 0 is "A", 25 is "Z", 26 is "AA".
func RowLabel(row int) string {
	if row < 0 {
		return ""
	}
	var buf []byte
	for n := row + 1; n > 0; n = (n - 1) / 26 {
		buf = append(buf, byte('A'+(n-1)%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// ParseRowLabel is the inverse of RowLabel. Lowercase letters are accepted.
func ParseRowLabel(label string) (int, error) {
	if label == "" {
		return 0, fmt.Errorf("empty row label")
	}
	if len(label) > maxRowLabelLen {
		return 0, fmt.Errorf("row label %q too long", label)
	}
	n := 0
	for _, r := range strings.ToUpper(label) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid row label %q", label)
		}
		n = n*26 + int(r-'A') + 1
	}
	return n - 1, nil
}
