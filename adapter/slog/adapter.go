package slogadapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trickstertwo/logprovider"
)

// LevelFatal sits above slog.LevelError; slog has no fatal level of its own.
const LevelFatal = slog.Level(12)

// Adapter renders logprovider entries through log/slog using LogAttrs.
type Adapter struct {
	l     *slog.Logger
	tsKey string
}

// New wraps l; nil means slog.Default().
func New(l *slog.Logger) *Adapter {
	if l == nil {
		l = slog.Default()
	}
	return &Adapter{l: l, tsKey: "ts"}
}

// Receive is a logprovider.ReceiveFunc.
func (a *Adapter) Receive(e logprovider.Entry) {
	fields := e.Fields()
	attrs := make([]slog.Attr, 0, 5+len(fields))
	attrs = append(attrs,
		slog.Time(a.tsKey, e.Timestamp()),
		slog.String("type", e.EntryType().String()),
	)
	if tag, ok := e.Tag(); ok {
		attrs = append(attrs, slog.String("tag", tag))
	}
	if e.HasError() {
		attrs = append(attrs, slog.Any("error", e.Err()))
	}
	if e.HasStackTrace() {
		attrs = append(attrs, slog.String("stack", fmt.Sprintf("%+v", e.StackTrace())))
	}
	for i := range fields {
		attrs = append(attrs, toAttr(&fields[i]))
	}
	a.l.LogAttrs(context.Background(), toSlog(e.EntryType()), e.Value(), attrs...)
}

func toSlog(t logprovider.EntryType) slog.Level {
	switch t {
	case logprovider.TypeDebug:
		return slog.LevelDebug
	case logprovider.TypeWarn:
		return slog.LevelWarn
	case logprovider.TypeError:
		return slog.LevelError
	case logprovider.TypeFatal:
		return LevelFatal
	default:
		return slog.LevelInfo
	}
}

func toAttr(f *logprovider.Field) slog.Attr {
	switch f.Kind {
	case logprovider.KindString:
		return slog.String(f.Key, f.Str)
	case logprovider.KindInt64:
		return slog.Int64(f.Key, f.Int)
	case logprovider.KindUint64:
		return slog.Uint64(f.Key, f.Uint)
	case logprovider.KindFloat64:
		return slog.Float64(f.Key, f.Float)
	case logprovider.KindBool:
		return slog.Bool(f.Key, f.Bool)
	case logprovider.KindDuration:
		return slog.Duration(f.Key, f.Dur)
	case logprovider.KindTime:
		return slog.Time(f.Key, f.Time)
	default:
		return slog.Any(f.Key, f.Value())
	}
}
