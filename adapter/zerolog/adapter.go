package zerologadapter

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/logprovider"
)

// Adapter renders logprovider entries through rs/zerolog.
// TypeFatal maps to ErrorLevel; zerolog's Fatal would call os.Exit.
type Adapter struct {
	l     zerolog.Logger
	tsKey string
}

func New(l zerolog.Logger) *Adapter {
	return &Adapter{l: l, tsKey: "ts"}
}

// Receive is a logprovider.ReceiveFunc.
func (a *Adapter) Receive(e logprovider.Entry) {
	zlvl := mapType(e.EntryType())

	// Drop early if the backend was configured above this level (no Event allocation).
	if zlvl < a.l.GetLevel() {
		return
	}

	ev := a.l.WithLevel(zlvl)
	ev.Str(a.tsKey, e.Timestamp().UTC().Format(time.RFC3339Nano))
	ev.Stringer("type", e.EntryType())
	if tag, ok := e.Tag(); ok {
		ev.Str("tag", tag)
	}
	if e.HasError() {
		ev.Err(e.Err())
	}
	if e.HasStackTrace() {
		ev.Strs("stack", frames(e.StackTrace()))
	}
	for _, f := range e.Fields() {
		appendField(ev, &f)
	}
	ev.Msg(e.Value())
}

func mapType(t logprovider.EntryType) zerolog.Level {
	switch t {
	case logprovider.TypeDebug:
		return zerolog.DebugLevel
	case logprovider.TypeWarn:
		return zerolog.WarnLevel
	case logprovider.TypeError, logprovider.TypeFatal:
		return zerolog.ErrorLevel
	case logprovider.TypeInfo:
		return zerolog.InfoLevel
	default:
		return zerolog.NoLevel
	}
}

// frames renders one "func file:line" string per frame.
func frames(st logprovider.Stack) []string {
	out := make([]string, len(st))
	for i, f := range st {
		b, _ := f.MarshalText()
		out[i] = string(b)
	}
	return out
}

func appendField(e *zerolog.Event, f *logprovider.Field) {
	switch f.Kind {
	case logprovider.KindString:
		e.Str(f.Key, f.Str)
	case logprovider.KindInt64:
		e.Int64(f.Key, f.Int)
	case logprovider.KindUint64:
		e.Uint64(f.Key, f.Uint)
	case logprovider.KindFloat64:
		e.Float64(f.Key, f.Float)
	case logprovider.KindBool:
		e.Bool(f.Key, f.Bool)
	case logprovider.KindDuration:
		e.Dur(f.Key, f.Dur)
	case logprovider.KindTime:
		e.Time(f.Key, f.Time)
	case logprovider.KindError:
		if f.Err != nil {
			e.AnErr(f.Key, f.Err)
		}
	case logprovider.KindBytes:
		e.Bytes(f.Key, f.Bytes)
	default:
		e.Interface(f.Key, f.Any)
	}
}
