package sigil

import "slices"

// Signal is an ordered, synchronous multi-subscriber event channel.
// Fire invokes every subscribed handler in subscription order on the
// calling goroutine. There is no buffering and no return values, a
// panicking handler propagates to the caller of Fire.
//
// The zero value is ready to use. A Signal must not be copied after
// first use.
type Signal[T any] struct {
	_ noCopy

	// handlers is copy on write. Subscribe and cancel always replace
	// the slice, they never mutate it in place.
	handlers []*handler[T]
}

type handler[T any] struct {
	fn func(T)
}

// Subscribe registers fn to be invoked on every Fire. The returned
// Subscription removes the handler again when cancelled.
func (s *Signal[T]) Subscribe(fn func(T)) Subscription {
	h := &handler[T]{fn: fn}

	handlers := make([]*handler[T], 0, len(s.handlers)+1)
	handlers = append(handlers, s.handlers...)
	s.handlers = append(handlers, h)

	return Subscription{cancel: func() { s.remove(h) }}
}

// Fire invokes all currently subscribed handlers with the given value.
// Handlers that subscribe or cancel during Fire do not affect the set
// of handlers invoked by this Fire call.
func (s *Signal[T]) Fire(value T) {
	// ranging over the field takes the slice header once. as the
	// subscriber list is copy on write, this is a stable snapshot.
	for _, h := range s.handlers {
		h.fn(value)
	}
}

func (s *Signal[T]) remove(h *handler[T]) {
	idx := slices.Index(s.handlers, h)
	if idx < 0 {
		return
	}

	s.handlers = slices.Delete(slices.Clone(s.handlers), idx, idx+1)
}

// Subscription is a handle to a handler registered with
// Signal.Subscribe. The zero value is a valid no-op subscription.
type Subscription struct {
	cancel func()
}

// Cancel unsubscribes the handler. Calling Cancel multiple times is
// fine, all calls after the first do nothing.
func (s Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
	}
}
