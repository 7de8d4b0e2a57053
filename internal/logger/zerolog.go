package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Zerolog adapts a zerolog.Logger to the Logger interface, tagging
// every entry with its originating component.
type Zerolog struct {
	log zerolog.Logger
}

// NewZerolog writes structured JSON entries to writer at the given
// level name. Unknown names fall back to info.
func NewZerolog(writer io.Writer, levelName string) *Zerolog {
	return &Zerolog{
		log: zerolog.New(writer).
			Level(parseLevel(levelName)).
			With().
			Timestamp().
			Logger(),
	}
}

// NewConsole writes human-readable entries to stdout. Intended for the
// interactive tuner; services should prefer NewZerolog.
func NewConsole(levelName string) *Zerolog {
	return &Zerolog{
		log: zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
			Level(parseLevel(levelName)).
			With().
			Timestamp().
			Logger(),
	}
}

func parseLevel(name string) zerolog.Level {
	switch name {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (z *Zerolog) emit(event *zerolog.Event, component, message string, fields map[string]interface{}) {
	event = event.Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *Zerolog) Debug(component, message string, fields map[string]interface{}) {
	z.emit(z.log.Debug(), component, message, fields)
}

func (z *Zerolog) Info(component, message string, fields map[string]interface{}) {
	z.emit(z.log.Info(), component, message, fields)
}

func (z *Zerolog) Warning(component, message string, fields map[string]interface{}) {
	z.emit(z.log.Warn(), component, message, fields)
}

func (z *Zerolog) Error(component string, err error, fields map[string]interface{}) {
	z.emit(z.log.Error().Err(err), component, "operation failed", fields)
}
