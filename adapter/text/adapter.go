package textadapter

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/trickstertwo/logprovider"
)

// ErrorHandler receives errors that occur while writing.
type ErrorHandler func(error)

// WriterFactory picks the destination per entry type.
type WriterFactory interface {
	GetWriter(t logprovider.EntryType) io.Writer
}

// DefaultWriterFactory sends every entry to the same writer.
type DefaultWriterFactory struct {
	Writer io.Writer
}

func (f *DefaultWriterFactory) GetWriter(logprovider.EntryType) io.Writer { return f.Writer }

// TypeWriterFactory routes selected entry types to dedicated writers,
// e.g. ERROR and FATAL to os.Stderr.
type TypeWriterFactory struct {
	Default    io.Writer
	TypeWriter map[logprovider.EntryType]io.Writer
}

func (f *TypeWriterFactory) GetWriter(t logprovider.EntryType) io.Writer {
	if w, ok := f.TypeWriter[t]; ok {
		return w
	}
	return f.Default
}

// MetricsCollector observes every write. Implementations must be concurrency-safe.
type MetricsCollector interface {
	Written(t logprovider.EntryType, dur time.Duration, size int, err error)
}

type noopMetrics struct{}

func (noopMetrics) Written(logprovider.EntryType, time.Duration, int, error) {}

// Options configures the adapter.
type Options struct {
	ErrorHandler ErrorHandler
	// OmitFields drops the key=value pairs normally written after the message.
	OmitFields bool
	// OmitStack drops captured stacks normally written below the line.
	OmitStack bool
}

// Adapter writes one line per entry: Entry.String(), then fields, then the
// error, then the stack when present. Writes are serialized.
type Adapter struct {
	writers WriterFactory
	mu      sync.Mutex
	opts    Options
	metrics MetricsCollector
	errs    atomic.Uint64
}

func defaultErrorHandler(err error) {
	fmt.Fprintf(os.Stderr, "logprovider: %v\n", err)
}

// New writes everything to w (os.Stdout when nil).
func New(w io.Writer, opts Options) *Adapter {
	if w == nil {
		w = os.Stdout
	}
	return NewWithWriterFactory(&DefaultWriterFactory{Writer: w}, opts)
}

func NewWithWriterFactory(factory WriterFactory, opts Options) *Adapter {
	if factory == nil {
		factory = &DefaultWriterFactory{Writer: os.Stdout}
	}
	if opts.ErrorHandler == nil {
		opts.ErrorHandler = defaultErrorHandler
	}
	return &Adapter{
		writers: factory,
		opts:    opts,
		metrics: noopMetrics{},
	}
}

// SetMetricsCollector installs c; nil restores the no-op collector.
func (a *Adapter) SetMetricsCollector(c MetricsCollector) {
	if c == nil {
		c = noopMetrics{}
	}
	a.metrics = c
}

// WriteErrors reports how many writes have failed.
func (a *Adapter) WriteErrors() uint64 { return a.errs.Load() }

// Receive is a logprovider.ReceiveFunc.
func (a *Adapter) Receive(e logprovider.Entry) {
	w := a.writers.GetWriter(e.EntryType())
	if w == nil {
		return
	}
	start := time.Now()
	buf := getBuf()
	defer putBuf(buf)

	a.format(buf, e)

	a.mu.Lock()
	n, err := w.Write(buf.b)
	a.mu.Unlock()

	if err != nil {
		a.errs.Add(1)
		err = errors.Wrapf(err, "write %s entry", e.EntryType())
		a.opts.ErrorHandler(err)
	}
	a.metrics.Written(e.EntryType(), time.Since(start), n, err)
}

func (a *Adapter) format(buf *buffer, e logprovider.Entry) {
	buf.writeString(e.String())
	if !a.opts.OmitFields {
		for _, f := range e.Fields() {
			buf.writeByte(' ')
			buf.writeString(f.Key)
			buf.writeByte('=')
			appendValue(buf, f)
		}
	}
	if e.HasError() {
		buf.writeString(" error=")
		buf.b = strconv.AppendQuote(buf.b, e.Err().Error())
	}
	buf.writeByte('\n')
	if !a.opts.OmitStack && e.HasStackTrace() {
		for _, f := range e.StackTrace() {
			buf.b = fmt.Appendf(buf.b, "\t%+v\n", f)
		}
	}
}

func appendValue(buf *buffer, f logprovider.Field) {
	switch f.Kind {
	case logprovider.KindString:
		buf.b = strconv.AppendQuote(buf.b, f.Str)
	case logprovider.KindInt64:
		buf.b = strconv.AppendInt(buf.b, f.Int, 10)
	case logprovider.KindUint64:
		buf.b = strconv.AppendUint(buf.b, f.Uint, 10)
	case logprovider.KindFloat64:
		buf.b = strconv.AppendFloat(buf.b, f.Float, 'g', -1, 64)
	case logprovider.KindBool:
		buf.b = strconv.AppendBool(buf.b, f.Bool)
	case logprovider.KindDuration:
		buf.writeString(f.Dur.String())
	case logprovider.KindTime:
		buf.b = f.Time.AppendFormat(buf.b, time.RFC3339Nano)
	case logprovider.KindError:
		if f.Err == nil {
			buf.writeString("null")
			return
		}
		buf.b = strconv.AppendQuote(buf.b, f.Err.Error())
	case logprovider.KindBytes:
		buf.writeString("len:")
		buf.b = strconv.AppendInt(buf.b, int64(len(f.Bytes)), 10)
	default:
		buf.b = fmt.Appendf(buf.b, "%v", f.Any)
	}
}

// buffer wraps a byte slice with cheap append helpers.
type buffer struct{ b []byte }

func (buf *buffer) writeString(s string) { buf.b = append(buf.b, s...) }
func (buf *buffer) writeByte(c byte)     { buf.b = append(buf.b, c) }

var bufPool = sync.Pool{
	New: func() any { return &buffer{b: make([]byte, 0, 512)} },
}

func getBuf() *buffer {
	buf := bufPool.Get().(*buffer)
	buf.b = buf.b[:0]
	return buf
}

func putBuf(buf *buffer) {
	// keep the pool bounded
	if cap(buf.b) <= 64*1024 {
		bufPool.Put(buf)
	}
}
