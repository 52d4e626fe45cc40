package main

import (
	"flag"
	"fmt"
)

const (
	modePrompt = "prompt"
	modeTUI    = "tui"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Mode     string
	Level    int
	Rows     int
	Cols     int
	Mines    int
	Seed     int64
	LogLevel string
	LogFile  string
}

// NewConfig returns a Config populated with defaults. Zero sizes and a
// negative mine count mean "not set".
func NewConfig() *Config {
	return &Config{Mines: -1, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Mode, "mode", c.Mode, "prompt or tui (default: tui on a terminal)")
	fs.IntVar(&c.Level, "level", c.Level, "board preset 1-5")
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.IntVar(&c.Mines, "mines", c.Mines, "number of mines")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "mine placement seed (0 picks one)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "append logs to this file")
}

func (c *Config) Validate() error {
	switch c.Mode {
	case "", modePrompt, modeTUI:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Level < 0 || c.Level > 5 {
		return fmt.Errorf("level %d out of range 1-5", c.Level)
	}
	if c.Rows < 0 || c.Cols < 0 {
		return fmt.Errorf("board size %dx%d must be positive", c.Rows, c.Cols)
	}
	if (c.Rows > 0) != (c.Cols > 0) {
		return fmt.Errorf("rows and cols must be set together")
	}
	if c.Rows == 0 && c.Mines >= 0 {
		return fmt.Errorf("-mines needs -rows and -cols")
	}
	// At least one safe cell, or the game is won before the first move.
	if c.Rows > 0 && c.Mines >= c.Rows*c.Cols {
		return fmt.Errorf("%d mines leave no safe cell on a %dx%d board", c.Mines, c.Rows, c.Cols)
	}
	return nil
}

// resolveMode picks the full-screen UI on a terminal unless a mode was given.
func (c *Config) resolveMode(interactive bool) string {
	if c.Mode != "" {
		return c.Mode
	}
	if interactive {
		return modeTUI
	}
	return modePrompt
}

// customSize reports the board requested through -rows/-cols/-mines. Without
// -mines one cell in ten gets a mine.
func (c *Config) customSize() (rows, cols, mines int, ok bool) {
	if c.Rows == 0 {
		return 0, 0, 0, false
	}
	mines = c.Mines
	if mines < 0 {
		mines = c.Rows * c.Cols / 10
	}
	return c.Rows, c.Cols, mines, true
}
