// Package bus provides the per-widget message bus: an unbounded, ordered,
// many-producer single-consumer queue reached through clonable handles.
package bus

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ShayCichocki/relm/internal/logging"
)

// ErrClosed is returned by Emit after the bus has been closed.
var ErrClosed = errors.New("bus: closed")

// EventStream is a handle onto a shared message queue. Every handle obtained
// through Clone refers to the same queue, so a message emitted through any
// of them reaches the single consumer.
type EventStream[M any] struct {
	q       *queue[M]
	dropped atomic.Bool
}

type queue[M any] struct {
	id string

	mu     sync.Mutex
	items  []M
	closed bool

	// wake has capacity 1 and is signalled whenever items are appended or
	// the queue is closed.
	wake chan struct{}

	refs    atomic.Int64
	emitted atomic.Uint64
}

// New creates a bus and returns its first handle.
func New[M any]() *EventStream[M] {
	q := &queue[M]{
		id:   uuid.New().String()[:8],
		wake: make(chan struct{}, 1),
	}
	q.refs.Store(1)
	return &EventStream[M]{q: q}
}

// ID returns a short identifier for the underlying queue, used in logs.
func (s *EventStream[M]) ID() string {
	return s.q.id
}

// Clone returns another handle onto the same queue.
func (s *EventStream[M]) Clone() *EventStream[M] {
	s.q.refs.Add(1)
	return &EventStream[M]{q: s.q}
}

// Drop releases this handle. When the last handle is dropped the bus is
// closed. Dropping a handle twice has no further effect.
func (s *EventStream[M]) Drop() {
	if s.dropped.Swap(true) {
		return
	}
	if s.q.refs.Add(-1) == 0 {
		logging.Debugf("[bus %s] last handle dropped", s.q.id)
		s.Close()
	}
}

// Refs returns the number of live handles.
func (s *EventStream[M]) Refs() int64 {
	return s.q.refs.Load()
}

// Emit appends msg to the queue. It never blocks. Emit returns ErrClosed if
// the bus has been closed; the message is discarded in that case.
func (s *EventStream[M]) Emit(msg M) error {
	q := s.q
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.items = append(q.items, msg)
	q.mu.Unlock()

	q.emitted.Add(1)
	q.signal()
	return nil
}

// Next removes and returns the oldest message. It blocks until a message is
// available or ctx is done. Once the bus is closed and drained it returns
// io.EOF, which lets a bus be consumed as a stream.Source.
func (s *EventStream[M]) Next(ctx context.Context) (M, error) {
	q := s.q
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			msg := q.items[0]
			var zero M
			q.items[0] = zero
			q.items = q.items[1:]
			q.mu.Unlock()
			return msg, nil
		}
		closed := q.closed
		q.mu.Unlock()

		if closed {
			var zero M
			return zero, io.EOF
		}

		select {
		case <-q.wake:
		case <-ctx.Done():
			var zero M
			return zero, ctx.Err()
		}
	}
}

// Close closes the bus. Messages already queued are still delivered by
// Next; further Emit calls fail with ErrClosed.
func (s *EventStream[M]) Close() {
	q := s.q
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	logging.Debugf("[bus %s] closed after %d messages", q.id, q.emitted.Load())
	q.signal()
}

// Closed reports whether the bus has been closed.
func (s *EventStream[M]) Closed() bool {
	s.q.mu.Lock()
	defer s.q.mu.Unlock()
	return s.q.closed
}

// Len returns the number of queued messages.
func (s *EventStream[M]) Len() int {
	s.q.mu.Lock()
	defer s.q.mu.Unlock()
	return len(s.q.items)
}

func (q *queue[M]) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}
