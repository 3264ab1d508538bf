package logprovider

import "time"

// Clock supplies entry timestamps. xclock clocks (e.g. frozen.New from
// xclock/adapter/frozen) satisfy it.
type Clock interface {
	Now() time.Time
}

// Config for constructing a Provider.
type Config struct {
	Receiver *Receiver
	Clock    Clock   // optional; defaults to xclock.Now()
	Fields   []Field // bound to every entry
}

// Builder separates construction from representation.
type Builder struct {
	cfg Config
	fn  ReceiveFunc
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) WithReceiver(r *Receiver) *Builder {
	b.cfg.Receiver = r
	return b
}

// WithReceiveFunc binds fn through a fresh Receiver at Build time.
// It takes precedence over WithReceiver.
func (b *Builder) WithReceiveFunc(fn ReceiveFunc) *Builder {
	b.fn = fn
	return b
}

func (b *Builder) WithClock(c Clock) *Builder {
	b.cfg.Clock = c
	return b
}

func (b *Builder) WithFields(fs ...Field) *Builder {
	b.cfg.Fields = append(b.cfg.Fields, fs...)
	return b
}

// Build constructs the Provider. It fails with ErrInvalidArgument when
// neither a receiver nor a receive func was supplied.
func (b *Builder) Build() (*Provider, error) {
	cfg := b.cfg
	if b.fn != nil {
		r, err := NewReceiver(b.fn)
		if err != nil {
			return nil, err
		}
		cfg.Receiver = r
	}
	if cfg.Receiver == nil {
		return nil, invalidArgument("no receiver configured")
	}
	return newProvider(cfg), nil
}
