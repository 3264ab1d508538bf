package textadapter

import (
	"io"

	"github.com/trickstertwo/logprovider"
)

// Config is an explicit, code-first configuration for the built-in text adapter.
type Config struct {
	// Writer receives every line when WriterFactory is nil. Defaults to os.Stdout.
	Writer io.Writer
	// WriterFactory routes lines by entry type and takes precedence over Writer.
	WriterFactory WriterFactory

	ErrorHandler ErrorHandler
	OmitFields   bool
	OmitStack    bool
	Metrics      MetricsCollector
	BoundFields  []logprovider.Field
}

// Adapter builds the adapter described by cfg.
func (cfg Config) Adapter() *Adapter {
	opts := Options{ErrorHandler: cfg.ErrorHandler, OmitFields: cfg.OmitFields, OmitStack: cfg.OmitStack}
	var ad *Adapter
	if cfg.WriterFactory != nil {
		ad = NewWithWriterFactory(cfg.WriterFactory, opts)
	} else {
		ad = New(cfg.Writer, opts)
	}
	if cfg.Metrics != nil {
		ad.SetMetricsCollector(cfg.Metrics)
	}
	return ad
}

// Use builds a text-backed provider from cfg, sets it as the global provider
// and returns it.
func Use(cfg Config) *logprovider.Provider {
	return logprovider.UseReceiver(cfg.Adapter().Receive, cfg.BoundFields...)
}
