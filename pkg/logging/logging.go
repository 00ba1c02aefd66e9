// Package logging builds the structured logger shared by the sim8086 commands.
//
// Log records are always written as text to the given console writer, and optionally
// also as JSON lines to a log file. Both handlers are combined with slog-multi.
package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/sim8086/pkg/utils"
	slogmulti "github.com/samber/slog-multi"
)

// Configures the logger
type Config struct {
	// Minimum level of logged records: debug, info, warn or error. Defaults to warn
	Level string
	// Path of a file where records are also written as JSON. Not used if empty
	File string
}

var ErrInvalidLogLevel = errors.New("invalid log level")

// Parses a log level name (case insensitive)
func ParseLevel(name string) (slog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return slog.LevelWarn, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, utils.MakeError(ErrInvalidLogLevel, "'%v' (valid levels: debug, info, warn, error)", name)
	}

	return level, nil
}

// Creates a logger writing to console and, if configured, to the log file.
// The returned closer releases the log file and must be called once the logger is no longer used.
func New(console io.Writer, config Config) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, nil, err
	}

	options := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{slog.NewTextHandler(console, options)}
	var closer io.Closer = nopCloser{}

	if config.File != "" {
		file, err := os.OpenFile(config.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}

		handlers = append(handlers, slog.NewJSONHandler(file, options))
		closer = file
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}
