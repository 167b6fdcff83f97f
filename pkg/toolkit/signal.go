package toolkit

import (
	"sync"
	"sync/atomic"
)

// SignalHandlerID identifies a connected handler so it can be disconnected.
type SignalHandlerID uint64

var nextHandlerID atomic.Uint64

// signal is an ordered list of handlers for one widget event.
type signal[T any] struct {
	mu       sync.Mutex
	ids      []SignalHandlerID
	handlers map[SignalHandlerID]func(T)
}

func (s *signal[T]) connect(fn func(T)) SignalHandlerID {
	id := SignalHandlerID(nextHandlerID.Add(1))

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handlers == nil {
		s.handlers = make(map[SignalHandlerID]func(T))
	}
	s.ids = append(s.ids, id)
	s.handlers[id] = fn
	return id
}

func (s *signal[T]) disconnect(id SignalHandlerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.handlers[id]; !ok {
		return false
	}
	delete(s.handlers, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return true
}

// emit calls every handler in connection order. Handlers run without the
// signal lock held so they may connect or disconnect.
func (s *signal[T]) emit(v T) {
	s.mu.Lock()
	fns := make([]func(T), 0, len(s.ids))
	for _, id := range s.ids {
		fns = append(fns, s.handlers[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

func (s *signal[T]) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}
