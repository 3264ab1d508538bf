package zerologadapter

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/logprovider"
)

// DefaultCallerSkip points zerolog's caller at the line that logged:
// zerolog's own two frames, Receive and the provider's frames. Wrapping
// Receive (e.g. promadapter.Wrap) adds one frame per wrapper.
const DefaultCallerSkip = logprovider.CallerDepth + 3

// Config is an explicit, code-first configuration for zerolog + logprovider.
//
// With Console set, Logger sets the process-wide zerolog.TimestampFieldName
// to "ts" so the console's time column shows the entry timestamp. This
// affects every zerolog logger in the process, not just this one.
type Config struct {
	Writer            io.Writer // default: os.Stdout
	Console           bool      // pretty console output instead of JSON
	ConsoleTimeFormat string    // only used if Console; default time.RFC3339Nano
	Caller            bool
	CallerSkip        int // default DefaultCallerSkip
	Fields            []logprovider.Field
}

// Logger builds the zerolog.Logger described by cfg.
func (cfg Config) Logger() zerolog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.ConsoleTimeFormat}
		if cw.TimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		}
		// The console's leading column reads the adapter's "ts" field.
		zerolog.TimestampFieldName = "ts"
		if !cfg.Caller {
			cw.PartsExclude = append(cw.PartsExclude, zerolog.CallerFieldName)
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}
	zl = zl.Level(zerolog.TraceLevel)

	if cfg.Caller {
		skip := cfg.CallerSkip
		if skip <= 0 {
			skip = DefaultCallerSkip
		}
		zl = zl.With().CallerWithSkipFrameCount(skip).Logger()
	}
	return zl
}

// Use builds a zerolog-backed provider from cfg, sets it as the global
// provider and returns it.
func Use(cfg Config) *logprovider.Provider {
	return logprovider.UseReceiver(New(cfg.Logger()).Receive, cfg.Fields...)
}
