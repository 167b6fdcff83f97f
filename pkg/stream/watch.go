package stream

import (
	"context"
	"fmt"
	"io"

	"github.com/fsnotify/fsnotify"

	"github.com/ShayCichocki/relm/internal/logging"
)

// Watch returns a stream of filesystem events for the given paths.
// A watcher error ends the stream with that error. Close stops the watcher.
func Watch(paths ...string) (Stream[fsnotify.Event], error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return Stream[fsnotify.Event]{}, fmt.Errorf("create watcher: %w", err)
	}

	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			watcher.Close()
			return Stream[fsnotify.Event]{}, fmt.Errorf("watch %s: %w", p, err)
		}
	}

	logging.Debugf("[stream] watching %v", paths)
	return Stream[fsnotify.Event]{src: &watchSource{watcher: watcher}}, nil
}

type watchSource struct {
	watcher *fsnotify.Watcher
}

func (w *watchSource) Next(ctx context.Context) (fsnotify.Event, error) {
	select {
	case event, ok := <-w.watcher.Events:
		if !ok {
			return fsnotify.Event{}, io.EOF
		}
		return event, nil
	case err, ok := <-w.watcher.Errors:
		if !ok {
			return fsnotify.Event{}, io.EOF
		}
		return fsnotify.Event{}, fmt.Errorf("watcher: %w", err)
	case <-ctx.Done():
		return fsnotify.Event{}, ctx.Err()
	}
}

func (w *watchSource) Close() error {
	return w.watcher.Close()
}
