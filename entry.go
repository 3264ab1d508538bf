package logprovider

import (
	"fmt"
	"strings"
	"time"

	"github.com/trickstertwo/xclock"
)

// TimestampLayout renders Entry timestamps in String(), in local time.
const TimestampLayout = time.DateTime

// Entry is one logged event. It is immutable once built; the receiver gets
// its own copy and may retain it.
type Entry struct {
	entryType EntryType
	value     string
	timestamp time.Time
	tag       string
	hasTag    bool
	err       error
	stack     Stack
	fields    []Field
}

// Option sets an optional attribute while an Entry is being built.
type Option func(*Entry)

// WithTag classifies the entry. An empty tag leaves the entry untagged.
func WithTag(tag string) Option {
	return func(e *Entry) {
		if tag == "" {
			return
		}
		e.tag = tag
		e.hasTag = true
	}
}

// WithError attaches err. A nil err is ignored.
func WithError(err error) Option {
	return func(e *Entry) {
		if err != nil {
			e.err = err
		}
	}
}

// WithFields appends structured fields.
func WithFields(fs ...Field) Option {
	return func(e *Entry) {
		e.fields = cloneFields(e.fields, fs)
	}
}

// NewEntry builds an Entry stamped with xclock.Now().
func NewEntry(t EntryType, value string, opts ...Option) Entry {
	return newEntry(xclock.Now(), t, value, nil, opts)
}

func newEntry(at time.Time, t EntryType, value string, base []Field, opts []Option) Entry {
	e := Entry{
		entryType: t,
		value:     value,
		timestamp: at,
	}
	if len(base) > 0 {
		e.fields = cloneFields(make([]Field, 0, len(base)), base)
	}
	for _, o := range opts {
		o(&e)
	}
	return e
}

func (e Entry) EntryType() EntryType { return e.entryType }
func (e Entry) Value() string        { return e.value }
func (e Entry) Timestamp() time.Time { return e.timestamp }

// Tag returns the tag and whether one was set.
func (e Entry) Tag() (string, bool) { return e.tag, e.hasTag }
func (e Entry) HasTag() bool        { return e.hasTag }

// Err returns the attached error, or nil when absent.
func (e Entry) Err() error     { return e.err }
func (e Entry) HasError() bool { return e.err != nil }

// StackTrace returns the captured stack, or nil when none was captured.
func (e Entry) StackTrace() Stack   { return e.stack }
func (e Entry) HasStackTrace() bool { return e.stack != nil }

// Fields returns a copy of the structured fields.
func (e Entry) Fields() []Field {
	if len(e.fields) == 0 {
		return nil
	}
	return cloneFields(make([]Field, 0, len(e.fields)), e.fields)
}

// String renders "<ts> [TYPE] - value" or "<ts> [TYPE (tag)] - value".
// Entries with an empty value or TypeUnknown render as their type name.
func (e Entry) String() string {
	if e.value == "" || e.entryType == TypeUnknown {
		return fmt.Sprintf("%T", e)
	}
	var b strings.Builder
	b.Grow(len(TimestampLayout) + len(e.value) + len(e.tag) + 16)
	b.WriteString(e.timestamp.Format(TimestampLayout))
	b.WriteString(" [")
	b.WriteString(e.entryType.String())
	if e.hasTag {
		b.WriteString(" (")
		b.WriteString(e.tag)
		b.WriteByte(')')
	}
	b.WriteString("] - ")
	b.WriteString(e.value)
	return b.String()
}
