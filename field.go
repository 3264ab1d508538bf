package logprovider

import (
	"time"
)

// Kind identifies which value slot of a Field is populated.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInt64
	KindUint64
	KindFloat64
	KindBool
	KindDuration
	KindTime
	KindError
	KindBytes
	KindAny
)

// Field is a typed key/value pair carried alongside an Entry.
// Only the slot matching Kind is meaningful.
type Field struct {
	Key   string
	Kind  Kind
	Str   string
	Int   int64
	Uint  uint64
	Float float64
	Bool  bool
	Dur   time.Duration
	Time  time.Time
	Err   error
	Bytes []byte
	Any   any
}

// Value returns the populated slot boxed as any.
func (f Field) Value() any {
	switch f.Kind {
	case KindString:
		return f.Str
	case KindInt64:
		return f.Int
	case KindUint64:
		return f.Uint
	case KindFloat64:
		return f.Float
	case KindBool:
		return f.Bool
	case KindDuration:
		return f.Dur
	case KindTime:
		return f.Time
	case KindError:
		return f.Err
	case KindBytes:
		return f.Bytes
	default:
		return f.Any
	}
}

func Str(k, v string) Field               { return Field{Key: k, Kind: KindString, Str: v} }
func Int(k string, v int) Field           { return Int64(k, int64(v)) }
func Int64(k string, v int64) Field       { return Field{Key: k, Kind: KindInt64, Int: v} }
func Uint64(k string, v uint64) Field     { return Field{Key: k, Kind: KindUint64, Uint: v} }
func Float64(k string, v float64) Field   { return Field{Key: k, Kind: KindFloat64, Float: v} }
func Bool(k string, v bool) Field         { return Field{Key: k, Kind: KindBool, Bool: v} }
func Dur(k string, v time.Duration) Field { return Field{Key: k, Kind: KindDuration, Dur: v} }
func Time(k string, v time.Time) Field    { return Field{Key: k, Kind: KindTime, Time: v} }
func NamedErr(k string, e error) Field    { return Field{Key: k, Kind: KindError, Err: e} }
func Bytes(k string, b []byte) Field      { return Field{Key: k, Kind: KindBytes, Bytes: b} }
func Any(k string, v any) Field           { return Field{Key: k, Kind: KindAny, Any: v} }

func cloneFields(dst, src []Field) []Field {
	if len(src) == 0 {
		return dst
	}
	return append(dst, src...)
}
