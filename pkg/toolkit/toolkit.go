package toolkit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/ShayCichocki/relm/internal/logging"
)

// ErrNotTerminal is returned by Init when input or output is not a terminal.
var ErrNotTerminal = errors.New("toolkit: not a terminal")

// ErrRunning is returned by Main when the toolkit main loop is already running.
var ErrRunning = errors.New("toolkit: main loop already running")

// DefaultRefreshRate is how often the main loop redraws the window.
const DefaultRefreshRate = 100 * time.Millisecond

// Option configures the toolkit.
type Option func(*options)

type options struct {
	input       io.Reader
	output      io.Writer
	altScreen   bool
	refreshRate time.Duration
	headless    bool
}

// WithInput reads key events from r instead of stdin.
func WithInput(r io.Reader) Option {
	return func(o *options) { o.input = r }
}

// WithOutput draws to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithAltScreen draws on the terminal's alternate screen.
func WithAltScreen(enabled bool) Option {
	return func(o *options) { o.altScreen = enabled }
}

// WithRefreshRate sets how often the window is redrawn.
func WithRefreshRate(d time.Duration) Option {
	return func(o *options) { o.refreshRate = d }
}

// Headless runs without a terminal: no input, no rendering, no signal
// handling. Used by tests and batch runs.
func Headless() Option {
	return func(o *options) {
		o.headless = true
		o.input = nil
		o.output = io.Discard
	}
}

// Toolkit drives the terminal main loop.
type Toolkit struct {
	opts options

	mu      sync.Mutex
	program *tea.Program
}

// Init checks that the terminal is usable and returns a Toolkit.
func Init(opts ...Option) (*Toolkit, error) {
	o := options{
		input:       os.Stdin,
		output:      os.Stdout,
		refreshRate: DefaultRefreshRate,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.headless {
		if err := checkTerminal("input", o.input); err != nil {
			return nil, err
		}
		if err := checkTerminal("output", o.output); err != nil {
			return nil, err
		}
	}
	if o.refreshRate <= 0 {
		o.refreshRate = DefaultRefreshRate
	}

	logging.Debugf("[toolkit] initialized (headless=%t)", o.headless)
	return &Toolkit{opts: o}, nil
}

// checkTerminal rejects files that are not terminals. Readers and writers
// that are not files are accepted as custom streams.
func checkTerminal(name string, v interface{}) error {
	f, ok := v.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return nil
	}
	return fmt.Errorf("%w: %s %s", ErrNotTerminal, name, f.Name())
}

// Main runs the main loop showing win until the window closes, Quit is
// called or ctx is done.
func (t *Toolkit) Main(ctx context.Context, win *Window) error {
	progOpts := []tea.ProgramOption{tea.WithOutput(t.opts.output)}
	if t.opts.headless {
		progOpts = append(progOpts,
			tea.WithInput(nil),
			tea.WithoutRenderer(),
			tea.WithoutSignalHandler(),
		)
	} else if t.opts.input != os.Stdin {
		progOpts = append(progOpts, tea.WithInput(t.opts.input))
	}
	if t.opts.altScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(&program{win: win, refresh: t.opts.refreshRate}, progOpts...)

	t.mu.Lock()
	if t.program != nil {
		t.mu.Unlock()
		return ErrRunning
	}
	t.program = p
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-done:
		}
	}()

	logging.Debugf("[toolkit] main loop started for window %q", win.Title())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("toolkit main loop: %w", err)
	}
	logging.Debugf("[toolkit] main loop ended")
	return nil
}

// Quit asks a running main loop to stop.
func (t *Toolkit) Quit() {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()
	if p != nil {
		p.Quit()
	}
}

// redrawMsg triggers a periodic redraw so changes made by widget goroutines
// become visible.
type redrawMsg time.Time

// program adapts a Window to tea.Model.
type program struct {
	win     *Window
	refresh time.Duration
}

func (p *program) tick() tea.Cmd {
	return tea.Tick(p.refresh, func(t time.Time) tea.Msg {
		return redrawMsg(t)
	})
}

// Init implements tea.Model.
func (p *program) Init() tea.Cmd {
	return tea.Batch(p.win.FocusNext(), p.tick())
}

// Update implements tea.Model.
func (p *program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(redrawMsg); ok {
		return p, p.tick()
	}
	return p, p.win.HandleMsg(msg)
}

// View implements tea.Model.
func (p *program) View() string {
	return p.win.View()
}
