package relm

import (
	"context"

	"github.com/ShayCichocki/relm/internal/logging"
	"github.com/ShayCichocki/relm/pkg/executor"
	"github.com/ShayCichocki/relm/pkg/toolkit"
)

// Option configures Run.
type Option func(*runOptions)

type runOptions struct {
	title           string
	toolkitOptions  []toolkit.Option
	executorOptions []executor.Option
}

// WithTitle sets the title of the window created around the root widget.
func WithTitle(title string) Option {
	return func(o *runOptions) { o.title = title }
}

// WithToolkitOptions passes options to toolkit.Init.
func WithToolkitOptions(opts ...toolkit.Option) Option {
	return func(o *runOptions) { o.toolkitOptions = append(o.toolkitOptions, opts...) }
}

// WithExecutorOptions passes options to executor.New.
func WithExecutorOptions(opts ...executor.Option) Option {
	return func(o *runOptions) { o.executorOptions = append(o.executorOptions, opts...) }
}

// Run initializes the toolkit and the executor, creates the root widget and
// blocks until the application quits. Initialization failures are returned
// as *Error before any widget is constructed; errors raised once the loop is
// running are not reported here.
func Run[M any, W Widget[M]](ctor Constructor[M, W], opts ...Option) error {
	o := runOptions{title: "relm"}
	for _, opt := range opts {
		opt(&o)
	}

	tk, err := toolkit.Init(o.toolkitOptions...)
	if err != nil {
		return &Error{Kind: ToolkitInitFailure, Err: err}
	}

	core, err := executor.New(o.executorOptions...)
	if err != nil {
		return &Error{Kind: ExecutorIoFailure, Err: err}
	}

	handle := core.Handle()
	root := CreateWidget(handle, ctor)

	win, ok := root.(*toolkit.Window)
	if !ok {
		win = toolkit.NewWindow(o.title)
		win.Add(root)
	}

	handle.Spawn(func(ctx context.Context) {
		if err := tk.Main(ctx, win); err != nil {
			logging.Debugf("[relm] toolkit main loop: %v", err)
		}
		handle.Quit()
	})

	return core.Run()
}
