package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var zlog = zerolog.Nop()

// Init configures the process-wide logger. Development gets a human readable
// console writer, every other environment gets JSON lines on stdout.
func Init(env, level string) {
	var w io.Writer
	if env == "development" || env == "dev" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else {
		w = os.Stdout
	}
	New(w, level)
}

// New installs a logger writing to w. Tests use it to capture output.
func New(w io.Writer, level string) *zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zlog = zerolog.New(w).Level(lvl).With().
		Timestamp().
		Str("service", "teampulse-api").
		Logger()
	return &zlog
}

func Get() *zerolog.Logger {
	return &zlog
}

// WithMember returns a logger tagged with a team member id.
func WithMember(memberID string) zerolog.Logger {
	return zlog.With().Str("member_id", memberID).Logger()
}
