package logprovider

import (
	"testing"
	"time"
)

// blackhole variables prevent the compiler from optimizing away code paths.
var (
	bhT   time.Time
	bhLen int
)

func nopReceive(e Entry) {
	bhT = e.timestamp
	bhLen = len(e.fields)
}

func newBenchProvider() *Provider {
	p, err := New(nopReceive)
	if err != nil {
		panic(err)
	}
	return p
}

func BenchmarkInfo_NoFields(b *testing.B) {
	p := newBenchProvider()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Info("ok")
	}
}

func BenchmarkInfo_TagAndError(b *testing.B) {
	p := newBenchProvider()
	err := errBench
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Info("ok", WithTag("bench"), WithError(err))
	}
}

func BenchmarkEvent_5Fields(b *testing.B) {
	p := newBenchProvider()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Event(TypeInfo).
			Str("a", "b").
			Int("c", 1).
			Bool("d", true).
			Dur("e", time.Millisecond).
			Float64("f", 1.5).
			Msg("ok")
	}
}

func BenchmarkStackTrace(b *testing.B) {
	p := newBenchProvider()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.StackTrace(TypeError, "ok")
	}
}

var errBench = benchErr("bench")

type benchErr string

func (e benchErr) Error() string { return string(e) }
