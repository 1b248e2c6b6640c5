// Package logger holds the process-wide zerolog logger used by the programs.
// Library packages under pkg/ do not log.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	SetConsoleWriter(os.Stderr)
}

// Log returns the shared logger.
func Log() *zerolog.Logger {
	return &log
}

// SetConsoleWriter logs human-readable lines to w.
func SetConsoleWriter(w io.Writer) {
	log = zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.FormatLevel = formatLevel
		cw.TimeFormat = "15:04:05.000"
	})).With().Timestamp().Logger()
}

// SetJSONWriter logs one JSON object per line to w.
func SetJSONWriter(w io.Writer) {
	log = zerolog.New(w).With().Timestamp().Logger()
}

// SetLevel parses level ("debug", "info", "warn", ...) and applies it
// globally. Unknown levels leave the current level in place and return the
// parse error.
func SetLevel(level string) error {
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(l)
	return nil
}

func formatLevel(i interface{}) string {
	s, ok := i.(string)
	if !ok {
		return "???"
	}
	switch s {
	case "trace":
		return "TRC"
	case "debug":
		return "DBG"
	case "info":
		return "INF"
	case "warn":
		return "WRN"
	case "error":
		return "ERR"
	case "fatal":
		return "FTL"
	case "panic":
		return "PNC"
	}
	return strings.ToUpper(s)
}
