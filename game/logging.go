package game

import (
	"io"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// ConfigureLogging sets the level and destination of the game logger. The
// full-screen UI owns the terminal, so callers usually point out at a file or
// io.Discard in that mode.
func ConfigureLogging(level string, out io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return nil
}

// Logger exposes the game logger so the entry point shares its settings.
func Logger() *logrus.Logger {
	return log
}
