package relm

import (
	"context"
	"errors"
	"io"

	"github.com/ShayCichocki/relm/internal/logging"
	"github.com/ShayCichocki/relm/pkg/bus"
	"github.com/ShayCichocki/relm/pkg/executor"
	"github.com/ShayCichocki/relm/pkg/toolkit"
)

// Widget is the capability set of a relm widget with message type M.
type Widget[M any] interface {
	// ConnectEvents binds toolkit signals to the widget's bus. It runs once,
	// after construction and before any subscription is spawned.
	ConnectEvents()
	// Subscriptions returns long-lived background tasks, spawned once.
	Subscriptions() []executor.Task
	// Update is the widget's state transition. The returned task, if not
	// nil, is spawned; the loop does not wait for it.
	Update(msg M) executor.Task
	// Container returns the toolkit widget to mount in a parent.
	Container() toolkit.Widget
}

// Constructor builds a widget from its Relm context.
type Constructor[M any, W Widget[M]] func(r *Relm[M]) W

// CreateWidget instantiates a widget, wires its events and subscriptions,
// starts its update loop on h and returns its container.
func CreateWidget[M any, W Widget[M]](h executor.Handle, ctor Constructor[M, W]) toolkit.Widget {
	container, _ := createWidget(h, ctor)
	return container
}

func createWidget[M any, W Widget[M]](h executor.Handle, ctor Constructor[M, W]) (toolkit.Widget, W) {
	events := bus.New[M]()
	r := newRelm(h, events)

	widget := ctor(r)
	widget.ConnectEvents()

	subscriptions := widget.Subscriptions()
	for _, subscription := range subscriptions {
		h.Spawn(subscription)
	}

	container := widget.Container()
	logging.Debugf("[relm %s] widget %T created with %d subscription(s)", events.ID(), widget, len(subscriptions))

	h.Spawn(func(ctx context.Context) {
		runUpdateLoop(ctx, h, events, widget)
	})

	return container, widget
}

// runUpdateLoop is the widget's only consumer: one Update at a time, in bus
// order, until the bus is closed and drained or the executor stops.
func runUpdateLoop[M any, W Widget[M]](ctx context.Context, h executor.Handle, events *bus.EventStream[M], widget W) {
	for {
		msg, err := events.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				logging.Debugf("[relm %s] bus closed, update loop done", events.ID())
			}
			return
		}
		if task := widget.Update(msg); task != nil {
			h.Spawn(task)
		}
	}
}

// AddWidget creates a child widget with the same orchestration as
// CreateWidget and mounts its container in parent.
func AddWidget[M any, W Widget[M]](parent toolkit.Container, h executor.Handle, ctor Constructor[M, W]) toolkit.Widget {
	child := CreateWidget(h, ctor)
	parent.Add(child)
	return child
}
