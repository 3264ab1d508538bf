package slogadapter

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/logprovider"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for slog + logprovider.
type Config struct {
	Writer         io.Writer // default: os.Stdout
	Format         Format    // JSON (default) or Text
	HandlerOptions *slog.HandlerOptions
	Fields         []logprovider.Field
}

// Logger builds the slog.Logger described by cfg. The handler level is
// lowered to Debug unless HandlerOptions sets one explicitly.
func (cfg Config) Logger() *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	opts := slog.HandlerOptions{}
	if cfg.HandlerOptions != nil {
		opts = *cfg.HandlerOptions
	}
	if opts.Level == nil {
		opts.Level = slog.LevelDebug
	}

	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, &opts)
	} else {
		h = slog.NewJSONHandler(w, &opts)
	}
	return slog.New(h)
}

// Use builds a slog-backed provider from cfg, sets it as the global provider
// and returns it.
func Use(cfg Config) *logprovider.Provider {
	return logprovider.UseReceiver(New(cfg.Logger()).Receive, cfg.Fields...)
}
