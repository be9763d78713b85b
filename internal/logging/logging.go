// Package logging provides application-wide logging configuration.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var debugEnabled bool

// Init initializes the global logger writing to stderr.
func Init(debug bool) {
	InitWriter(debug, os.Stderr)
}

// InitWriter initializes the global logger writing to w.
// A nil writer discards output, for commands that own the terminal or stdio.
// Every call builds a fresh logger, so a silenced logger can be re-enabled.
func InitWriter(debug bool, w io.Writer) {
	debugEnabled = debug
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	if w == nil {
		log.Logger = zerolog.New(io.Discard)
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}

// DebugEnabled reports whether debug logging is enabled.
func DebugEnabled() bool {
	return debugEnabled
}
