package logprovider

import (
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"
)

// Provider builds entries and hands each one to its Receiver before returning.
// It never filters, buffers or reorders.
type Provider struct {
	receiver   atomic.Pointer[Receiver]
	clock      Clock // nil means xclock.Now()
	baseFields []Field
}

// New binds fn through a fresh Receiver.
func New(fn ReceiveFunc) (*Provider, error) {
	r, err := NewReceiver(fn)
	if err != nil {
		return nil, err
	}
	return NewWithReceiver(r), nil
}

// NewWithReceiver wraps an existing receiver. The receiver may be shared.
func NewWithReceiver(r *Receiver) *Provider {
	return newProvider(Config{Receiver: r})
}

func newProvider(cfg Config) *Provider {
	p := &Provider{
		clock:      cfg.Clock,
		baseFields: cloneFields(nil, cfg.Fields),
	}
	p.receiver.Store(cfg.Receiver)
	return p
}

// Receiver returns the currently bound receiver (possibly nil).
func (p *Provider) Receiver() *Receiver { return p.receiver.Load() }

// SetReceiver swaps the receiver. A nil receiver turns dispatch into a no-op.
func (p *Provider) SetReceiver(r *Receiver) { p.receiver.Store(r) }

// With returns a child provider sharing the current receiver whose entries
// carry fs ahead of any per-call fields.
func (p *Provider) With(fs ...Field) *Provider {
	child := &Provider{
		clock:      p.clock,
		baseFields: cloneFields(cloneFields(nil, p.baseFields), fs),
	}
	child.receiver.Store(p.receiver.Load())
	return child
}

// CallerDepth is the number of logprovider frames between a logging call and
// the ReceiveFunc it reaches. It is the same for every entry point: provider
// methods, Event.Msg and the package-level facade. Backends that report the
// call site add it to their own skip.
const CallerDepth = 3

// LogEntry forwards e unchanged.
func (p *Provider) LogEntry(e Entry) { p.dispatch(e) }

// Log builds an entry of type t and forwards it.
func (p *Provider) Log(t EntryType, value string, opts ...Option) { p.log(t, value, opts) }

func (p *Provider) DebugEntry(e Entry) { p.dispatch(e) }
func (p *Provider) InfoEntry(e Entry)  { p.dispatch(e) }
func (p *Provider) WarnEntry(e Entry)  { p.dispatch(e) }
func (p *Provider) ErrorEntry(e Entry) { p.dispatch(e) }
func (p *Provider) FatalEntry(e Entry) { p.dispatch(e) }

func (p *Provider) Debug(value string, opts ...Option) { p.log(TypeDebug, value, opts) }
func (p *Provider) Info(value string, opts ...Option)  { p.log(TypeInfo, value, opts) }
func (p *Provider) Warn(value string, opts ...Option)  { p.log(TypeWarn, value, opts) }
func (p *Provider) Error(value string, opts ...Option) { p.log(TypeError, value, opts) }

// Fatal logs at TypeFatal. It does not exit the process.
func (p *Provider) Fatal(value string, opts ...Option) { p.log(TypeFatal, value, opts) }

// dispatch and log are the only frames between an entry point and
// SignalReceive; keep it that way or CallerDepth goes stale.
func (p *Provider) dispatch(e Entry) {
	p.receiver.Load().SignalReceive(e)
}

func (p *Provider) log(t EntryType, value string, opts []Option) {
	p.receiver.Load().SignalReceive(p.build(t, value, opts))
}

// StackTrace logs like Log and attaches the call stack starting at the caller.
//
//go:noinline
func (p *Provider) StackTrace(t EntryType, value string, opts ...Option) {
	p.logStack(1, t, value, opts)
}

// logStack skips itself plus skip frames above it when capturing.
func (p *Provider) logStack(skip int, t EntryType, value string, opts []Option) {
	e := p.build(t, value, opts)
	e.stack = callers(skip + 1)
	p.receiver.Load().SignalReceive(e)
}

// Event starts a fluent entry of type t; finish it with Msg.
func (p *Provider) Event(t EntryType) *Event { return getEvent(p, t) }

func (p *Provider) build(t EntryType, value string, opts []Option) Entry {
	return newEntry(p.now(), t, value, p.baseFields, opts)
}

func (p *Provider) now() time.Time {
	if p.clock != nil {
		return p.clock.Now()
	}
	return xclock.Now()
}
