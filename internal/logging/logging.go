package logging

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New builds a console logger at the named level, tagged with a fresh session id.
// An unknown level falls back to info and is reported in the error.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err == nil && lvl == zerolog.NoLevel {
		err = errors.New("empty log level")
	}
	if err != nil {
		lvl = zerolog.InfoLevel
		err = fmt.Errorf("log level %q, using info: %w", level, err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()

	return logger, err
}
