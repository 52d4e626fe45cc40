package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/dimaq12/sweeper/game"
	"github.com/dimaq12/sweeper/models"
)

func boardDimensions(level int) (boardSize, mineQuantity int) {
	switch level {
	case 1:
		return 10, 10 // 10x10 board with 10 mines
	case 2:
		return 15, 40 // 15x15 board with 40 mines
	case 3:
		return 20, 80 // 20x20 board with 80 mines
	case 4:
		return 25, 125 // 25x25 board with 125 mines
	case 5:
		return 30, 180 // 30x30 board with 180 mines
	default:
		return 10, 10 // Default to 10x10 board with 10 mines for invalid level input
	}
}

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if err := run(cfg, os.Stdin, os.Stdout, interactive); err != nil {
		logrus.Fatal(err)
	}
}

func run(cfg *Config, in io.Reader, out io.Writer, interactive bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	mode := cfg.resolveMode(interactive)

	logOut, closeLog, err := openLog(cfg, mode)
	if err != nil {
		return err
	}
	defer closeLog()
	if err := game.ConfigureLogging(cfg.LogLevel, logOut); err != nil {
		return err
	}

	rng := models.NewRNG(cfg.Seed)
	game.Logger().WithFields(logrus.Fields{
		"mode": mode,
		"seed": cfg.Seed,
	}).Debug("starting")

	if mode == modeTUI {
		return runTUI(cfg, in, out, rng)
	}
	return runPrompt(cfg, in, out, rng)
}

func runPrompt(cfg *Config, in io.Reader, out io.Writer, rng *rand.Rand) error {
	opts := []game.PromptOption{game.WithRNG(rng)}

	rows, cols, mines, ok := cfg.customSize()
	if !ok && cfg.Level > 0 {
		rows, mines = boardDimensions(cfg.Level)
		cols, ok = rows, true
	}
	if ok {
		board, err := models.NewRandomBoard(rows, cols, mines, rng)
		if err != nil {
			return err
		}
		opts = append(opts, game.WithBoard(board))
	}

	_, err := game.NewPromptGame(in, out, opts...).Play()
	return err
}

func runTUI(cfg *Config, in io.Reader, out io.Writer, rng *rand.Rand) error {
	rows, cols, mines, ok := cfg.customSize()
	if !ok {
		level := cfg.Level
		if level == 0 {
			var quit bool
			level, quit = chooseLevel(in, out)
			if quit {
				return nil
			}
		}
		fmt.Fprintln(out, "Level:", level)
		rows, mines = boardDimensions(level)
		cols = rows
	}

	controller := game.NewGameController(game.NewMinesweeperService(rng))

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		if _, ok := <-sigs; ok {
			controller.TerminateGame()
		}
	}()

	over, result, err := controller.StartGame(rows, cols, mines)
	if err != nil {
		return err
	}
	switch {
	case !over:
		fmt.Fprintln(out, "Quitting...")
	case result == game.Won:
		fmt.Fprintln(out, game.WonStatus)
	default:
		fmt.Fprintln(out, game.LostStatus)
	}
	return nil
}

// chooseLevel asks for a level until it gets one in 1-5 or the player quits.
func chooseLevel(in io.Reader, out io.Writer) (level int, quit bool) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter the level (1-5) or 'q' to quit: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "Quitting...")
			return 0, true
		}
		input := strings.TrimSpace(scanner.Text())

		if strings.ToLower(input) == "q" {
			fmt.Fprintln(out, "Quitting...")
			return 0, true
		}

		level, err := strconv.Atoi(input)
		if err == nil && level >= 1 && level <= 5 {
			return level, false
		}

		fmt.Fprintln(out, "Invalid input. Please enter a level between 1 and 5 or 'q' to quit.")
	}
}

func openLog(cfg *Config, mode string) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return f, func() {
			if err := f.Close(); err != nil {
				logrus.WithError(err).Warn("close log file")
			}
		}, nil
	}
	if mode == modeTUI {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}
