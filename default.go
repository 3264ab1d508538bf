package logprovider

import (
	"io"
	"os"
	"sync/atomic"
)

// defaultReceiverFactory is set by an adapter package (e.g. adapter/zerolog)
// in its init() to avoid import cycles. Default() uses it to build a provider.
var defaultReceiverFactory atomic.Pointer[func(io.Writer) ReceiveFunc]

// RegisterDefaultReceiverFactory registers the constructor used by Default.
// Adapters call this from init(); the last registration wins.
func RegisterDefaultReceiverFactory(f func(io.Writer) ReceiveFunc) {
	defaultReceiverFactory.Store(&f)
}

// Default builds a provider writing to os.Stdout through the registered
// receiver factory. Panics if no factory is registered.
func Default() *Provider {
	f := defaultReceiverFactory.Load()
	if f == nil || *f == nil {
		panic("logprovider: no default receiver registered. Import adapter/zerolog or call logprovider.RegisterDefaultReceiverFactory")
	}
	return NewWithReceiver(MustReceiver((*f)(os.Stdout)))
}

// Init builds a provider via Default, sets it as global and returns it.
func Init() *Provider {
	p := Default()
	SetGlobal(p)
	return p
}

// UseReceiver builds a provider around fn, sets it as global and returns it.
// Panics on a nil fn.
func UseReceiver(fn ReceiveFunc, fields ...Field) *Provider {
	p, err := NewBuilder().
		WithReceiveFunc(fn).
		WithFields(fields...).
		Build()
	if err != nil {
		panic(err)
	}
	SetGlobal(p)
	return p
}

var global atomic.Pointer[Provider]

// SetGlobal sets the process-wide Provider.
func SetGlobal(p *Provider) { global.Store(p) }

// L returns the global Provider; panics if unset to surface misconfiguration early.
func L() *Provider {
	p := global.Load()
	if p == nil {
		panic("logprovider: global provider not set. Build one and call logprovider.SetGlobal(...)")
	}
	return p
}
