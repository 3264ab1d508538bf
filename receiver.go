package logprovider

import "sync/atomic"

// ReceiveFunc consumes one Entry per call.
type ReceiveFunc func(Entry)

// Receiver holds the single callback a Provider forwards entries to.
// The callback can be swapped or cleared at any time; reads are lock-free.
type Receiver struct {
	fn atomic.Pointer[ReceiveFunc]
}

// NewReceiver binds fn. A nil fn is a programming error and yields ErrInvalidArgument.
func NewReceiver(fn ReceiveFunc) (*Receiver, error) {
	if fn == nil {
		return nil, invalidArgument("no receive func provided")
	}
	r := &Receiver{}
	r.fn.Store(&fn)
	return r, nil
}

// MustReceiver is NewReceiver that panics on misuse.
func MustReceiver(fn ReceiveFunc) *Receiver {
	r, err := NewReceiver(fn)
	if err != nil {
		panic(err)
	}
	return r
}

// Func returns the bound callback, or nil once cleared.
func (r *Receiver) Func() ReceiveFunc {
	if r == nil {
		return nil
	}
	p := r.fn.Load()
	if p == nil {
		return nil
	}
	return *p
}

// SetFunc rebinds the callback. Passing nil clears it, after which
// SignalReceive silently drops entries. On a nil Receiver it does nothing.
func (r *Receiver) SetFunc(fn ReceiveFunc) {
	if r == nil {
		return
	}
	if fn == nil {
		r.fn.Store(nil)
		return
	}
	r.fn.Store(&fn)
}

// SignalReceive invokes the callback synchronously on the calling goroutine.
// A panic raised by the callback propagates to the caller untouched.
func (r *Receiver) SignalReceive(e Entry) {
	if fn := r.Func(); fn != nil {
		fn(e)
	}
}
