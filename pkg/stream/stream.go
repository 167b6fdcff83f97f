package stream

import (
	"context"
	"errors"
	"io"
)

// Source is a lazily polled sequence of items. Next blocks until the next
// item is available, the source ends (io.EOF), the source fails, or ctx is
// done.
type Source[T any] interface {
	Next(ctx context.Context) (T, error)
}

// Streamer is anything that can be presented as a Stream.
type Streamer[T any] interface {
	ToStream() Stream[T]
}

// Stream is the uniform wrapper returned by every adapter in this package.
// The zero Stream is empty.
type Stream[T any] struct {
	src Source[T]
}

// FromSource wraps a multi-value source as-is.
func FromSource[T any](src Source[T]) Stream[T] {
	if s, ok := src.(Stream[T]); ok {
		return s
	}
	return Stream[T]{src: src}
}

// Next returns the next item from the underlying source.
func (s Stream[T]) Next(ctx context.Context) (T, error) {
	if s.src == nil {
		var zero T
		return zero, io.EOF
	}
	return s.src.Next(ctx)
}

// ToStream implements Streamer.
func (s Stream[T]) ToStream() Stream[T] {
	return s
}

// Close releases resources held by the underlying source, if any.
func (s Stream[T]) Close() error {
	if c, ok := s.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// SourceFunc adapts a plain function to a multi-value Source.
type SourceFunc[T any] func(ctx context.Context) (T, error)

// Next calls f.
func (f SourceFunc[T]) Next(ctx context.Context) (T, error) {
	return f(ctx)
}

// ToStream implements Streamer.
func (f SourceFunc[T]) ToStream() Stream[T] {
	return Stream[T]{src: f}
}

// Future is a one-shot asynchronous computation.
type Future[T any] func(ctx context.Context) (T, error)

// ToStream presents the future as a stream yielding exactly one item, the
// computation's value or error, and then io.EOF. The computation runs on the
// first call to Next.
func (f Future[T]) ToStream() Stream[T] {
	return Stream[T]{src: &futureSource[T]{run: f}}
}

type futureSource[T any] struct {
	run  Future[T]
	done bool
}

func (fs *futureSource[T]) Next(ctx context.Context) (T, error) {
	var zero T
	if fs.done || fs.run == nil {
		return zero, io.EOF
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	fs.done = true
	return fs.run(ctx)
}

// ForEach reads s until it ends, calling fn for every item. It returns nil
// when the source ends, the first error from the source or from fn
// otherwise, and ctx.Err() if ctx is done first.
func ForEach[T any](ctx context.Context, s Streamer[T], fn func(T) error) error {
	st := s.ToStream()
	defer st.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		item, err := st.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(item); err != nil {
			return err
		}
	}
}

// Collect reads s to the end and returns every item seen. On error the items
// read before the failure are returned together with the error.
func Collect[T any](ctx context.Context, s Streamer[T]) ([]T, error) {
	var items []T
	err := ForEach(ctx, s, func(item T) error {
		items = append(items, item)
		return nil
	})
	return items, err
}

// Map returns a stream applying fn to every item of s.
func Map[T, U any](s Streamer[T], fn func(T) U) Stream[U] {
	return Stream[U]{src: &mapSource[T, U]{in: s.ToStream(), fn: fn}}
}

type mapSource[T, U any] struct {
	in Stream[T]
	fn func(T) U
}

func (m *mapSource[T, U]) Next(ctx context.Context) (U, error) {
	item, err := m.in.Next(ctx)
	if err != nil {
		var zero U
		return zero, err
	}
	return m.fn(item), nil
}

func (m *mapSource[T, U]) Close() error {
	return m.in.Close()
}
