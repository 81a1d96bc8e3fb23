package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
)

const (
	FormatTerminal = "terminal"
	FormatJSON     = "json"
)

// Setup builds the application logger. The terminal format writes through a
// zerolog.ConsoleWriter and uses colour when output is a terminal or forceColor
// is set.
func Setup(output io.Writer, level zerolog.Level, format string, forceColor bool) zerolog.Logger {
	out := output
	if format == FormatTerminal {
		out = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
			NoColor:    !useColor(output, forceColor),
		}
	}

	context := zerolog.New(out).With().Timestamp()
	if level <= zerolog.DebugLevel {
		context = context.Caller()
	}
	return context.Logger().Level(level)
}

func useColor(output io.Writer, force bool) bool {
	if force {
		return true
	}
	file, ok := output.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// Output opens f for appending and wraps it in a non-blocking diode writer.
// Close flushes pending records and closes the file.
func Output(f string) (io.WriteCloser, error) {
	file, err := os.OpenFile(filepath.Clean(f), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", f, err)
	}
	return diode.NewWriter(file, 1000, 10*time.Millisecond, nil), nil
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level: %w", err)
	}
	return level, nil
}
