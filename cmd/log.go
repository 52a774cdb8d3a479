package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var logger = newLogger(os.Stderr)

// newLogger writes to the console when f is a terminal and JSON otherwise.
func newLogger(f *os.File) zerolog.Logger {
	if term.IsTerminal(int(f.Fd())) {
		return zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = f
			w.TimeFormat = "15:04:05.000"
		})).With().Timestamp().Logger()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}

func parseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(s) {
	case "verbose", "verb", "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "notice", "info", "":
		return zerolog.InfoLevel, nil
	case "warning", "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "quiet", "silent":
		return zerolog.Disabled, nil
	}
	return zerolog.NoLevel, fmt.Errorf("invalid --log-level: %s", s)
}

func logInit(level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	logger = logger.Level(lvl)
	return nil
}
