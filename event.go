package logprovider

import (
	"sync"
	"time"
)

// Event is a fluent builder for a single entry:
//
//	p.Event(TypeWarn).Tag("db").Err(err).Int("attempt", 3).Msg("retrying")
//
// An Event must not be used after Msg.
type Event struct {
	p      *Provider
	t      EntryType
	tag    string
	err    error
	stack  Stack
	fields []Field
}

var eventPool = sync.Pool{
	New: func() any { return &Event{fields: make([]Field, 0, 8)} },
}

func getEvent(p *Provider, t EntryType) *Event {
	ev := eventPool.Get().(*Event)
	ev.p = p
	ev.t = t
	ev.fields = ev.fields[:0]
	return ev
}

func (e *Event) putBack() {
	// drop large backing arrays
	if cap(e.fields) > 128 {
		e.fields = make([]Field, 0, 8)
	}
	e.p = nil
	e.tag = ""
	e.err = nil
	e.stack = nil
	eventPool.Put(e)
}

func (e *Event) Tag(tag string) *Event {
	e.tag = tag
	return e
}

// Err attaches err; nil is ignored.
func (e *Event) Err(err error) *Event {
	if err != nil {
		e.err = err
	}
	return e
}

// Stack captures the call stack starting at the caller of Stack.
//
//go:noinline
func (e *Event) Stack() *Event {
	e.stack = callers(1)
	return e
}

func (e *Event) Str(k, v string) *Event {
	e.fields = append(e.fields, Str(k, v))
	return e
}

func (e *Event) Int(k string, v int) *Event { return e.Int64(k, int64(v)) }

func (e *Event) Int64(k string, v int64) *Event {
	e.fields = append(e.fields, Int64(k, v))
	return e
}

func (e *Event) Uint64(k string, v uint64) *Event {
	e.fields = append(e.fields, Uint64(k, v))
	return e
}

func (e *Event) Float64(k string, v float64) *Event {
	e.fields = append(e.fields, Float64(k, v))
	return e
}

func (e *Event) Bool(k string, v bool) *Event {
	e.fields = append(e.fields, Bool(k, v))
	return e
}

func (e *Event) Dur(k string, v time.Duration) *Event {
	e.fields = append(e.fields, Dur(k, v))
	return e
}

func (e *Event) Time(k string, v time.Time) *Event {
	e.fields = append(e.fields, Time(k, v))
	return e
}

func (e *Event) Any(k string, v any) *Event {
	e.fields = append(e.fields, Any(k, v))
	return e
}

// Msg builds the entry with value msg, dispatches it and recycles the Event.
func (e *Event) Msg(msg string) {
	entry := e.p.build(e.t, msg, []Option{WithTag(e.tag), WithError(e.err), WithFields(e.fields...)})
	entry.stack = e.stack
	p := e.p
	e.putBack()
	p.dispatch(entry)
}
