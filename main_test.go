package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimaq12/sweeper/game"
	"github.com/dimaq12/sweeper/models"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	require.NoError(t, fs.Parse([]string{
		"-mode", "prompt", "-rows", "4", "-cols", "6", "-mines", "3", "-seed", "9",
	}))
	assert.Equal(t, modePrompt, cfg.Mode)
	assert.Equal(t, 4, cfg.Rows)
	assert.Equal(t, 6, cfg.Cols)
	assert.Equal(t, 3, cfg.Mines)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"unknown mode", func(c *Config) { c.Mode = "gui" }},
		{"level too high", func(c *Config) { c.Level = 6 }},
		{"negative rows", func(c *Config) { c.Rows, c.Cols = -1, 3 }},
		{"rows without cols", func(c *Config) { c.Rows = 3 }},
		{"too many mines", func(c *Config) { c.Rows, c.Cols, c.Mines = 2, 2, 5 }},
		{"board full of mines", func(c *Config) { c.Rows, c.Cols, c.Mines = 2, 2, 4 }},
		{"mines without size", func(c *Config) { c.Level, c.Mines = 1, 50 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.edit(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigValidateLeavesOneSafeCell(t *testing.T) {
	cfg := NewConfig()
	cfg.Rows, cfg.Cols, cfg.Mines = 2, 2, 3
	assert.NoError(t, cfg.Validate())
}

func TestRunRejectsBoardFullOfMines(t *testing.T) {
	cfg := NewConfig()
	cfg.Mode = modePrompt
	cfg.Rows, cfg.Cols, cfg.Mines = 2, 2, 4

	var out bytes.Buffer
	err := run(cfg, strings.NewReader(""), &out, false)
	assert.Error(t, err)
	assert.NotContains(t, out.String(), game.WinMessage)
}

func TestOpenLogFile(t *testing.T) {
	cfg := NewConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "sweeper.log")

	w, closeLog, err := openLog(cfg, modeTUI)
	require.NoError(t, err)
	_, err = io.WriteString(w, "line\n")
	require.NoError(t, err)
	closeLog()
	// A second close fails and is only logged.
	closeLog()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))

	cfg.LogFile = ""
	w, _, err = openLog(cfg, modeTUI)
	require.NoError(t, err)
	assert.Equal(t, io.Discard, w)
}

func TestResolveMode(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, modeTUI, cfg.resolveMode(true))
	assert.Equal(t, modePrompt, cfg.resolveMode(false))

	cfg.Mode = modePrompt
	assert.Equal(t, modePrompt, cfg.resolveMode(true))
}

func TestCustomSize(t *testing.T) {
	cfg := NewConfig()
	_, _, _, ok := cfg.customSize()
	assert.False(t, ok)

	cfg.Rows, cfg.Cols = 8, 5
	rows, cols, mines, ok := cfg.customSize()
	require.True(t, ok)
	assert.Equal(t, []int{8, 5, 4}, []int{rows, cols, mines})

	cfg.Mines = 0
	_, _, mines, _ = cfg.customSize()
	assert.Equal(t, 0, mines)
}

func TestBoardDimensions(t *testing.T) {
	size, mines := boardDimensions(3)
	assert.Equal(t, 20, size)
	assert.Equal(t, 80, mines)

	size, mines = boardDimensions(42)
	assert.Equal(t, 10, size)
	assert.Equal(t, 10, mines)
}

func TestChooseLevel(t *testing.T) {
	var out bytes.Buffer
	level, quit := chooseLevel(strings.NewReader("abc\n9\n4\n"), &out)
	assert.False(t, quit)
	assert.Equal(t, 4, level)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid input."))

	_, quit = chooseLevel(strings.NewReader("Q\n"), &out)
	assert.True(t, quit)

	_, quit = chooseLevel(strings.NewReader(""), &out)
	assert.True(t, quit)
}

func TestRunPromptWithSeededBoard(t *testing.T) {
	cfg := NewConfig()
	cfg.Mode = modePrompt
	cfg.Rows, cfg.Cols, cfg.Mines = 3, 4, 2
	cfg.Seed = 17
	cfg.LogLevel = "error"

	expected, err := models.NewRandomBoard(3, 4, 2, models.NewRNG(17))
	require.NoError(t, err)

	var moves []string
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			cell, err := expected.Cell(row, col)
			require.NoError(t, err)
			if !cell.IsMine() {
				moves = append(moves, models.RowLabel(row)+strconv.Itoa(col+1))
			}
		}
	}

	var out bytes.Buffer
	err = run(cfg, strings.NewReader(strings.Join(moves, "\n")+"\n"), &out, false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), game.WinMessage)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Mode = "gui"
	err := run(cfg, strings.NewReader(""), &bytes.Buffer{}, false)
	assert.Error(t, err)
}

func TestRunPromptLevelLoss(t *testing.T) {
	cfg := NewConfig()
	cfg.Mode = modePrompt
	cfg.Level = 1
	cfg.Seed = 3
	cfg.LogLevel = "error"

	expected, err := models.NewRandomBoard(10, 10, 10, models.NewRNG(3))
	require.NoError(t, err)
	mine := expected.Mines()[0]
	move := models.RowLabel(mine.Row) + strconv.Itoa(mine.Col+1)

	var out bytes.Buffer
	err = run(cfg, strings.NewReader(move+"\n"), &out, false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), game.LossMessage)
}
