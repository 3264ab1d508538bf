package zapadapter

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/logprovider"
)

// Adapter renders logprovider entries through go.uber.org/zap.
//
//   - Uses Logger.Check(level, msg) so nothing is built for disabled levels.
//   - Writes the entry timestamp as an RFC3339Nano string under tsKey, so the
//     provider's clock stays authoritative.
//   - TypeFatal maps to zap's ErrorLevel; zap's Fatal would exit the process.
type Adapter struct {
	l     *zap.Logger
	tsKey string // default "ts"
}

// New creates an adapter for the provided zap logger; nil means zap.NewNop().
func New(l *zap.Logger) *Adapter {
	return NewWithTimestampKey(l, "ts")
}

// NewWithTimestampKey lets callers override the timestamp field key.
func NewWithTimestampKey(l *zap.Logger, tsKey string) *Adapter {
	if l == nil {
		l = zap.NewNop()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Adapter{l: l, tsKey: tsKey}
}

// Receive is a logprovider.ReceiveFunc.
func (a *Adapter) Receive(e logprovider.Entry) {
	ce := a.l.Check(toZapLevel(e.EntryType()), e.Value())
	if ce == nil {
		return
	}

	fields := e.Fields()
	zfs := make([]zap.Field, 0, 5+len(fields))
	zfs = append(zfs,
		zap.String(a.tsKey, e.Timestamp().UTC().Format(time.RFC3339Nano)),
		zap.Stringer("type", e.EntryType()),
	)
	if tag, ok := e.Tag(); ok {
		zfs = append(zfs, zap.String("tag", tag))
	}
	if e.HasError() {
		zfs = append(zfs, zap.Error(e.Err()))
	}
	if e.HasStackTrace() {
		zfs = append(zfs, zap.String("stack", fmt.Sprintf("%+v", e.StackTrace())))
	}
	for i := range fields {
		zfs = append(zfs, toZapField(&fields[i]))
	}

	ce.Write(zfs...)
}

func toZapLevel(t logprovider.EntryType) zapcore.Level {
	switch t {
	case logprovider.TypeDebug:
		return zapcore.DebugLevel
	case logprovider.TypeWarn:
		return zapcore.WarnLevel
	case logprovider.TypeError, logprovider.TypeFatal:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapField(f *logprovider.Field) zap.Field {
	switch f.Kind {
	case logprovider.KindString:
		return zap.String(f.Key, f.Str)
	case logprovider.KindInt64:
		return zap.Int64(f.Key, f.Int)
	case logprovider.KindUint64:
		return zap.Uint64(f.Key, f.Uint)
	case logprovider.KindFloat64:
		return zap.Float64(f.Key, f.Float)
	case logprovider.KindBool:
		return zap.Bool(f.Key, f.Bool)
	case logprovider.KindDuration:
		return zap.Duration(f.Key, f.Dur)
	case logprovider.KindTime:
		return zap.Time(f.Key, f.Time)
	case logprovider.KindError:
		if f.Err == nil {
			return zap.Skip()
		}
		return zap.NamedError(f.Key, f.Err)
	case logprovider.KindBytes:
		return zap.ByteString(f.Key, f.Bytes)
	case logprovider.KindAny:
		return zap.Any(f.Key, f.Any)
	default:
		return zap.Skip()
	}
}
