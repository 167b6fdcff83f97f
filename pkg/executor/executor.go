// Package executor provides the task executor shared by every widget of a
// relm application: a Core that owns the lifetime of spawned tasks and a
// cheap, copyable Handle used to spawn them.
package executor

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ShayCichocki/relm/internal/logging"
)

// ErrStopped is returned by Run when the Core has already run.
var ErrStopped = errors.New("executor: stopped")

// DefaultShutdownTimeout bounds how long Run waits for tasks after Quit.
const DefaultShutdownTimeout = 2 * time.Second

// Task is a unit of asynchronous work with no result. Long-lived tasks must
// return once ctx is done.
type Task func(ctx context.Context)

// Option configures a Core. Use With* functions to create Options.
type Option func(*coreOptions)

type coreOptions struct {
	logPath         string
	logger          *logging.DebugLogger
	shutdownTimeout time.Duration
	parent          context.Context
}

// WithLogPath sets the file the debug logger appends to. Failing to open it
// makes New return an error.
func WithLogPath(path string) Option {
	return func(o *coreOptions) { o.logPath = path }
}

// WithLogger sets an already opened debug logger. It takes precedence over
// WithLogPath.
func WithLogger(l *logging.DebugLogger) Option {
	return func(o *coreOptions) { o.logger = l }
}

// WithShutdownTimeout sets how long Run waits for tasks after Quit.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *coreOptions) { o.shutdownTimeout = d }
}

// WithContext sets a parent context; cancelling it stops the Core.
func WithContext(ctx context.Context) Option {
	return func(o *coreOptions) { o.parent = ctx }
}

// Core owns the lifetime of every spawned task.
type Core struct {
	ctx    context.Context
	cancel context.CancelFunc

	logger          *logging.DebugLogger
	ownsLogger      bool
	prevLogger      *logging.DebugLogger
	shutdownTimeout time.Duration

	wg      sync.WaitGroup
	spawned atomic.Uint64
	running atomic.Int64
	panics  atomic.Uint64

	mu       sync.Mutex
	stopped  bool
	stopOnce sync.Once
	ran      atomic.Bool
}

// New creates a Core. The only failure is an I/O error opening the debug log.
func New(opts ...Option) (*Core, error) {
	o := coreOptions{
		shutdownTimeout: DefaultShutdownTimeout,
		parent:          context.Background(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	owns := false
	if logger == nil {
		l, err := logging.New(o.logPath)
		if err != nil {
			return nil, fmt.Errorf("open executor log: %w", err)
		}
		logger = l
		owns = true
	}

	ctx, cancel := context.WithCancel(o.parent)
	c := &Core{
		ctx:             ctx,
		cancel:          cancel,
		logger:          logger,
		ownsLogger:      owns,
		shutdownTimeout: o.shutdownTimeout,
	}
	c.prevLogger = logging.SetDefault(logger)
	c.logger.Log("[executor] core created")

	return c, nil
}

// Handle returns a handle for spawning tasks on c.
func (c *Core) Handle() Handle {
	return Handle{core: c}
}

// Run blocks until the Core is stopped through Handle.Quit, Stop or the
// parent context, then waits for spawned tasks to return, at most the
// configured shutdown timeout.
func (c *Core) Run() error {
	if c.ran.Swap(true) {
		return ErrStopped
	}

	c.logger.Log("[executor] running")
	<-c.ctx.Done()
	c.Stop()
	c.logger.Log("[executor] stopping, %d task(s) still running", c.running.Load())

	err := c.wait()
	c.release()
	return err
}

// Stop cancels the context of every task.
func (c *Core) Stop() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		c.stopped = true
		c.mu.Unlock()
		c.cancel()
	})
}

// Stats reports task counters.
func (c *Core) Stats() Stats {
	return Stats{
		Spawned: c.spawned.Load(),
		Running: c.running.Load(),
		Panics:  c.panics.Load(),
	}
}

// Stats holds executor counters.
type Stats struct {
	Spawned uint64
	Running int64
	Panics  uint64
}

func (c *Core) wait() error {
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	timeout := c.shutdownTimeout
	if timeout <= 0 {
		<-done
		return nil
	}

	select {
	case <-done:
		c.logger.Log("[executor] all tasks finished")
		return nil
	case <-time.After(timeout):
		c.logger.Log("[executor] WARNING: %d task(s) still running after %s", c.running.Load(), timeout)
		return nil
	}
}

func (c *Core) release() {
	logging.SetDefault(c.prevLogger)
	if c.ownsLogger {
		c.logger.Close()
	}
}

func (c *Core) spawn(task Task) {
	if task == nil {
		return
	}
	c.mu.Lock()
	if c.stopped || c.ctx.Err() != nil {
		c.mu.Unlock()
		c.logger.Log("[executor] spawn after stop ignored")
		return
	}
	c.wg.Add(1)
	c.mu.Unlock()

	id := c.spawned.Add(1)
	c.running.Add(1)
	go func() {
		defer c.wg.Done()
		defer c.running.Add(-1)
		defer func() {
			if r := recover(); r != nil {
				c.panics.Add(1)
				c.logger.Log("[executor] task %d panicked: %v\n%s", id, r, debug.Stack())
			}
		}()
		task(c.ctx)
	}()
}

// Handle is a copyable reference to a Core.
type Handle struct {
	core *Core
}

// Spawn runs task in the background. It does not block and returns no
// handle; the task runs until it returns or the Core stops.
func (h Handle) Spawn(task Task) {
	h.core.spawn(task)
}

// Quit stops the Core; Run returns once tasks have wound down.
func (h Handle) Quit() {
	h.core.logger.Log("[executor] quit requested")
	h.core.Stop()
}

// Context returns the context passed to every task. It is done once the
// Core stops.
func (h Handle) Context() context.Context {
	return h.core.ctx
}

// Logger returns the Core's debug logger.
func (h Handle) Logger() *logging.DebugLogger {
	return h.core.logger
}

// Valid reports whether h refers to a Core.
func (h Handle) Valid() bool {
	return h.core != nil
}
