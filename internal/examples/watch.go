package examples

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/ShayCichocki/relm/pkg/executor"
	"github.com/ShayCichocki/relm/pkg/relm"
	"github.com/ShayCichocki/relm/pkg/stream"
	"github.com/ShayCichocki/relm/pkg/toolkit"
)

// maxWatchEvents is the number of events kept on screen.
const maxWatchEvents = 15

// WatchMsg is an event of the watch widget.
type WatchMsg interface {
	watchMsg()
}

type fileChanged struct{ event fsnotify.Event }
type watchFailed struct{ err error }
type watchCleared struct{}

func (fileChanged) watchMsg()  {}
func (watchFailed) watchMsg()  {}
func (watchCleared) watchMsg() {}

// Watch lists file system events under a directory.
type Watch struct {
	relm   *relm.Relm[WatchMsg]
	path   string
	events []string
	total  int

	box    *toolkit.Box
	list   *toolkit.Label
	status *toolkit.Label
	clear  *toolkit.Button
}

// NewWatch returns a constructor for a widget watching path.
func NewWatch(path string) relm.Constructor[WatchMsg, *Watch] {
	return func(r *relm.Relm[WatchMsg]) *Watch {
		w := &Watch{
			relm:   r,
			path:   path,
			box:    toolkit.NewFrame("Watching " + path),
			list:   toolkit.NewLabel("(no events yet)"),
			status: toolkit.NewLabel(""),
			clear:  toolkit.NewButton("Clear"),
		}
		w.box.Add(w.list)
		w.box.Add(w.status)
		w.box.Add(w.clear)
		return w
	}
}

func (w *Watch) ConnectEvents() {
	w.clear.ConnectClicked(func() { w.relm.Emit(watchCleared{}) })
}

func (w *Watch) Subscriptions() []executor.Task {
	return []executor.Task{w.watch}
}

// watch reports a failure to start the watcher; errors after that end the
// pipeline without a message.
func (w *Watch) watch(ctx context.Context) {
	events, err := stream.Watch(w.path)
	if err != nil {
		w.relm.Emit(watchFailed{err: err})
		return
	}
	relm.Connect(w.relm, events, func(ev fsnotify.Event) WatchMsg {
		return fileChanged{event: ev}
	})(ctx)
}

func (w *Watch) Update(msg WatchMsg) executor.Task {
	switch msg := msg.(type) {
	case fileChanged:
		w.total++
		w.events = append(w.events, describeEvent(w.path, msg.event))
		if len(w.events) > maxWatchEvents {
			w.events = w.events[len(w.events)-maxWatchEvents:]
		}
		w.list.SetText(strings.Join(w.events, "\n"))
		w.status.SetText(fmt.Sprintf("%d event(s)", w.total))
	case watchCleared:
		w.events = nil
		w.list.SetText("(no events yet)")
	case watchFailed:
		w.status.SetText("error: " + msg.err.Error())
	}
	return nil
}

func (w *Watch) Container() toolkit.Widget {
	return w.box
}

func describeEvent(root string, ev fsnotify.Event) string {
	name := ev.Name
	if rel, err := filepath.Rel(root, ev.Name); err == nil {
		name = rel
	}
	return fmt.Sprintf("%-6s %s", opName(ev.Op), name)
}

func opName(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "CREATE"
	case op.Has(fsnotify.Write):
		return "WRITE"
	case op.Has(fsnotify.Remove):
		return "REMOVE"
	case op.Has(fsnotify.Rename):
		return "RENAME"
	case op.Has(fsnotify.Chmod):
		return "CHMOD"
	default:
		return op.String()
	}
}
