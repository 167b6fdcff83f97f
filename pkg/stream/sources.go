package stream

import (
	"context"
	"io"
	"iter"
	"sync"
	"time"
)

// FromSlice returns a stream yielding items in order.
func FromSlice[T any](items ...T) Stream[T] {
	return Stream[T]{src: &sliceSource[T]{items: items}}
}

type sliceSource[T any] struct {
	items []T
	pos   int
}

func (s *sliceSource[T]) Next(ctx context.Context) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if s.pos >= len(s.items) {
		return zero, io.EOF
	}
	item := s.items[s.pos]
	s.pos++
	return item, nil
}

// FromChannel returns a stream yielding values received from ch. The stream
// ends when ch is closed.
func FromChannel[T any](ch <-chan T) Stream[T] {
	return SourceFunc[T](func(ctx context.Context) (T, error) {
		select {
		case item, ok := <-ch:
			if !ok {
				var zero T
				return zero, io.EOF
			}
			return item, nil
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}).ToStream()
}

// FromSeq returns a stream over a Go iterator of value/error pairs. A
// non-nil error ends the stream with that error.
func FromSeq[T any](seq iter.Seq2[T, error]) Stream[T] {
	return Stream[T]{src: &seqSource[T]{seq: seq}}
}

type seqSource[T any] struct {
	seq  iter.Seq2[T, error]
	next func() (T, error, bool)
	stop func()
	done bool
}

func (s *seqSource[T]) Next(ctx context.Context) (T, error) {
	var zero T
	if s.done {
		return zero, io.EOF
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if s.next == nil {
		s.next, s.stop = iter.Pull2(s.seq)
	}
	item, err, ok := s.next()
	if !ok {
		s.Close()
		return zero, io.EOF
	}
	if err != nil {
		s.Close()
		return zero, err
	}
	return item, nil
}

func (s *seqSource[T]) Close() error {
	s.done = true
	if s.stop != nil {
		s.stop()
	}
	return nil
}

// Interval returns a stream yielding the current time every d. The ticker
// starts on the first call to Next and is stopped by Close.
func Interval(d time.Duration) Stream[time.Time] {
	return Stream[time.Time]{src: &intervalSource{period: d}}
}

type intervalSource struct {
	period time.Duration
	mu     sync.Mutex
	ticker *time.Ticker
}

func (s *intervalSource) Next(ctx context.Context) (time.Time, error) {
	s.mu.Lock()
	if s.ticker == nil {
		s.ticker = time.NewTicker(s.period)
	}
	ticker := s.ticker
	s.mu.Unlock()

	select {
	case t := <-ticker.C:
		return t, nil
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	}
}

func (s *intervalSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker != nil {
		s.ticker.Stop()
	}
	return nil
}
