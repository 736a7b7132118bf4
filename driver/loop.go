package driver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/gatsp/ga"
)

// ErrRunning indicates an operation that needs the loop to be idle.
var ErrRunning = errors.New("driver: loop is running")

// Update is one progress report from a Loop.
type Update struct {
	Generation ga.Generation
	// Done marks the last update of a run: the engine stagnated, the budget
	// was spent, the context ended, Stop was called or Err is set.
	Done bool
	Err  error
}

// LoopConfig tunes a Loop.
type LoopConfig struct {
	MaxGenerations int           // generations per Start, 0 means unbounded
	Pause          time.Duration // delay between generations, 0 for none
	Logger         *slog.Logger  // nil discards
}

// Loop owns an engine and runs it in the background.
type Loop struct {
	cfg LoopConfig
	log *slog.Logger

	engMu sync.Mutex
	eng   *ga.Engine

	updates chan Update
	running atomic.Bool

	ctlMu sync.Mutex // guards stop and done
	stop  chan struct{}
	done  chan struct{}
}

// NewLoop wraps an initialized engine.
func NewLoop(eng *ga.Engine, cfg LoopConfig) *Loop {
	var log = cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loop{
		cfg:     cfg,
		log:     log,
		eng:     eng,
		updates: make(chan Update, 1),
	}
}

// Updates returns the progress channel. It buffers one Update; an unread
// Update is replaced by the next one. The channel is never closed.
func (l *Loop) Updates() <-chan Update { return l.updates }

// Running reports whether the background goroutine is active.
func (l *Loop) Running() bool { return l.running.Load() }

// Start launches the background goroutine. It returns ErrRunning if the loop
// is already running. The run ends on its own when the engine stagnates, the
// budget is spent or ctx is done. The budget counts from the engine's
// generation at Start, so earlier Step calls do not consume it.
func (l *Loop) Start(ctx context.Context) error {
	l.ctlMu.Lock()
	defer l.ctlMu.Unlock()

	if !l.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	l.engMu.Lock()
	base := l.eng.Generation()
	l.engMu.Unlock()

	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	go l.run(ctx, base, l.stop, l.done)
	return nil
}

// Stop asks the loop to finish after the current generation and waits for
// it. Stop on an idle loop is a no-op.
func (l *Loop) Stop() {
	l.ctlMu.Lock()
	if !l.running.Load() {
		l.ctlMu.Unlock()
		return
	}
	select {
	case <-l.stop:
	default:
		close(l.stop)
	}
	done := l.done
	l.ctlMu.Unlock()

	<-done
}

// Wait blocks until the current run ends. It returns immediately when idle.
func (l *Loop) Wait() {
	l.ctlMu.Lock()
	done := l.done
	l.ctlMu.Unlock()

	if done != nil {
		<-done
	}
}

// Step runs exactly one generation synchronously. It returns ErrRunning while
// the background goroutine is active.
func (l *Loop) Step() (ga.Generation, error) {
	l.ctlMu.Lock()
	defer l.ctlMu.Unlock()

	if l.running.Load() {
		return ga.Generation{}, ErrRunning
	}
	l.engMu.Lock()
	defer l.engMu.Unlock()

	g, err := l.eng.RunGeneration()
	if err == nil {
		l.publish(Update{Generation: g, Done: g.ShouldStop})
	}
	return g, err
}

// Snapshot returns the best route and distance found so far and the number
// of completed generations. Safe to call while running.
func (l *Loop) Snapshot() (ga.Route, float64, int) {
	l.engMu.Lock()
	defer l.engMu.Unlock()
	return l.eng.BestRoute(), l.eng.BestDistance(), l.eng.Generation()
}

// Reset restarts the engine from a fresh random population. It returns
// ErrRunning while the background goroutine is active.
func (l *Loop) Reset() error {
	l.ctlMu.Lock()
	defer l.ctlMu.Unlock()

	if l.running.Load() {
		return ErrRunning
	}
	l.engMu.Lock()
	defer l.engMu.Unlock()
	l.eng.CreateInitialPopulation()
	return nil
}

func (l *Loop) run(ctx context.Context, base int, stop <-chan struct{}, done chan<- struct{}) {
	defer func() {
		l.running.Store(false)
		close(done)
	}()

	var (
		timer *time.Timer
		last  ga.Generation
	)
	if l.cfg.Pause > 0 {
		timer = time.NewTimer(l.cfg.Pause)
		defer timer.Stop()
	}
	l.log.Info("loop started",
		slog.Int("max_generations", l.cfg.MaxGenerations),
		slog.Int("from_generation", base))

	for {
		select {
		case <-ctx.Done():
			l.finish(last, ctx.Err(), "context done")
			return
		case <-stop:
			l.finish(last, nil, "stopped")
			return
		default:
		}

		g, err := l.generation()
		if err != nil {
			l.finish(last, err, "generation failed")
			return
		}
		last = g

		if g.ShouldStop {
			l.finish(g, nil, "stagnated")
			return
		}
		if l.cfg.MaxGenerations > 0 && g.Number-base >= l.cfg.MaxGenerations {
			l.finish(g, nil, "budget spent")
			return
		}
		l.publish(Update{Generation: g})

		if timer != nil {
			timer.Reset(l.cfg.Pause)
			select {
			case <-ctx.Done():
			case <-stop:
			case <-timer.C:
			}
		}
	}
}

func (l *Loop) generation() (ga.Generation, error) {
	l.engMu.Lock()
	defer l.engMu.Unlock()
	return l.eng.RunGeneration()
}

// finish marks the engine stopped and publishes the final Update.
func (l *Loop) finish(last ga.Generation, err error, reason string) {
	l.engMu.Lock()
	l.eng.Stop()
	l.engMu.Unlock()

	attrs := []any{
		slog.String("reason", reason),
		slog.Int("generation", last.Number),
		slog.Float64("best_distance", last.BestDistance),
	}
	if err != nil {
		l.log.Warn("loop ended", append(attrs, slog.Any("error", err))...)
	} else {
		l.log.Info("loop ended", attrs...)
	}
	l.publish(Update{Generation: last, Done: true, Err: err})
}

// publish replaces any unread Update with u. Producers never overlap: Step
// refuses to run while the goroutine is active.
func (l *Loop) publish(u Update) {
	for {
		select {
		case l.updates <- u:
			return
		default:
		}
		select {
		case <-l.updates:
		default:
		}
	}
}
