package zapadapter

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/logprovider"
)

// DefaultCallerSkip points zap's caller at the line that logged: Receive
// plus the provider's own frames. Wrapping Receive (e.g. promadapter.Wrap)
// adds one frame per wrapper.
const DefaultCallerSkip = logprovider.CallerDepth + 1

// Config is an explicit, code-first configuration for zap + logprovider.
type Config struct {
	Writer             io.Writer // default: os.Stdout
	Console            bool      // zapcore.NewConsoleEncoder instead of JSON
	EncoderConfig      zapcore.EncoderConfig
	Caller             bool // include caller
	CallerSkip         int  // default DefaultCallerSkip
	TimestampFieldName string
	Fields             []logprovider.Field // bound to the provider
}

// Logger builds the zap.Logger described by cfg. Every level is enabled;
// the provider never filters and neither does this backend.
func (cfg Config) Logger() *zap.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" && encCfg.EncodeTime == nil {
		encCfg = zapcore.EncoderConfig{
			LevelKey:       "level",
			MessageKey:     "message",
			CallerKey:      "caller",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}
	}
	// The entry carries its own timestamp.
	encCfg.TimeKey = ""

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)

	var opts []zap.Option
	if cfg.Caller {
		skip := cfg.CallerSkip
		if skip <= 0 {
			skip = DefaultCallerSkip
		}
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(skip))
	}
	return zap.New(core, opts...)
}

// Use builds a zap-backed provider from cfg, sets it as the global provider
// and returns it.
func Use(cfg Config) *logprovider.Provider {
	ad := NewWithTimestampKey(cfg.Logger(), cfg.TimestampFieldName)
	return logprovider.UseReceiver(ad.Receive, cfg.Fields...)
}
