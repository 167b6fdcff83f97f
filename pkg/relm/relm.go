package relm

import (
	"context"

	"github.com/ShayCichocki/relm/internal/logging"
	"github.com/ShayCichocki/relm/pkg/bus"
	"github.com/ShayCichocki/relm/pkg/executor"
	"github.com/ShayCichocki/relm/pkg/stream"
)

// Relm is the context handed to a widget at construction. It bundles the
// shared executor handle with the widget's private message bus.
type Relm[M any] struct {
	handle executor.Handle
	stream *bus.EventStream[M]
}

func newRelm[M any](h executor.Handle, s *bus.EventStream[M]) *Relm[M] {
	return &Relm[M]{handle: h, stream: s}
}

// Handle returns the executor handle.
func (r *Relm[M]) Handle() executor.Handle {
	return r.handle
}

// Stream returns the widget's message bus.
func (r *Relm[M]) Stream() *bus.EventStream[M] {
	return r.stream
}

// Emit sends msg to the widget's update loop. Toolkit signal handlers call
// this from ConnectEvents. Messages emitted after Close are dropped.
func (r *Relm[M]) Emit(msg M) {
	if err := r.stream.Emit(msg); err != nil {
		logging.Debugf("[relm %s] emit dropped: %v", r.stream.ID(), err)
	}
}

// Exec spawns task on the shared executor. It returns immediately.
func (r *Relm[M]) Exec(task executor.Task) {
	r.handle.Spawn(task)
}

// Close ends the widget's update loop once queued messages are processed.
func (r *Relm[M]) Close() {
	r.stream.Close()
}

// Quit stops the whole application.
func (r *Relm[M]) Quit() {
	r.handle.Quit()
}

// Connect returns a task that feeds every item of src, mapped through
// callback, into the widget's bus. The task runs until src ends, fails or
// the executor stops. A source error ends only this pipeline; it is logged
// and otherwise ignored.
//
// The task is not started; pass it to Exec or return it from Subscriptions.
func Connect[M, T any](r *Relm[M], src stream.Streamer[T], callback func(T) M) executor.Task {
	return connect(r, src, callback, nil)
}

// ConnectExec connects src and spawns the resulting task immediately.
func ConnectExec[M, T any](r *Relm[M], src stream.Streamer[T], callback func(T) M) {
	r.Exec(Connect(r, src, callback))
}

// ConnectWithError is Connect with errors surfaced: when src fails, the
// message built by onError is emitted before the pipeline ends.
func ConnectWithError[M, T any](r *Relm[M], src stream.Streamer[T], callback func(T) M, onError func(error) M) executor.Task {
	return connect(r, src, callback, onError)
}

func connect[M, T any](r *Relm[M], src stream.Streamer[T], callback func(T) M, onError func(error) M) executor.Task {
	return func(ctx context.Context) {
		events := r.stream.Clone()
		defer events.Drop()

		err := stream.ForEach(ctx, src, func(item T) error {
			return events.Emit(callback(item))
		})
		if err == nil || ctx.Err() != nil {
			return
		}

		logging.Debugf("[relm %s] connection ended: %v", events.ID(), err)
		if onError != nil {
			events.Emit(onError(err))
		}
	}
}
