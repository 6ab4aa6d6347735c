// Package log creates [slog.Handler] instances from the level and format
// strings exposed on the command line.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

const (
	AutoFormat   = "auto"
	JSONFormat   = "json"
	LogfmtFormat = "logfmt"
	TextFormat   = "text"
)

var (
	ErrInvalidFormat = errors.New("invalid log format")
	ErrInvalidLevel  = errors.New("invalid log level")
)

// CreateHandler creates a [slog.Handler] writing to w. The auto format
// resolves to text when w is a terminal and logfmt otherwise.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := parseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(logFormat)
	if format == AutoFormat || format == "" {
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			format = TextFormat
		} else {
			format = LogfmtFormat
		}
	}

	switch format {
	case JSONFormat:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.Level(level)}), nil
	case LogfmtFormat:
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:     level,
			Formatter: charmlog.LogfmtFormatter,
		}), nil
	case TextFormat:
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:     level,
			Formatter: charmlog.TextFormatter,
		}), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, logFormat)
}

// SetDefault installs the default [slog.Logger], writing to stderr. It
// panics on invalid input, so it is only suitable for hardcoded defaults.
func SetDefault(logLevel, logFormat string) {
	h, err := CreateHandler(os.Stderr, logLevel, logFormat)
	if err != nil {
		panic(err)
	}

	slog.SetDefault(slog.New(h))
}

func parseLevel(logLevel string) (charmlog.Level, error) {
	if logLevel == "" {
		return charmlog.InfoLevel, nil
	}

	level, err := charmlog.ParseLevel(logLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, logLevel)
	}

	return level, nil
}
