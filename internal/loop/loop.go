// Package loop provides the fixed-period timers that drive the game: a
// frame divider for engines that already call us every frame, and a
// cancellable sleep loop for front ends that have to keep time themselves.
package loop

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Pacer turns a fast frame clock into slower fixed ticks, e.g. a 100ms
// game tick on top of a 60 TPS engine.
type Pacer struct {
	frames int
	every  int
}

// NewPacer creates a pacer firing once per period at the given frame rate
func NewPacer(frameRate int, period time.Duration) *Pacer {
	every := int(math.Round(period.Seconds() * float64(frameRate)))
	return &Pacer{every: max(every, 1)}
}

// Step counts one frame and reports whether a tick is due
func (p *Pacer) Step() bool {
	p.frames++
	if p.frames >= p.every {
		p.frames = 0
		return true
	}
	return false
}

// Reset starts counting from zero again
func (p *Pacer) Reset() {
	p.frames = 0
}

// Every returns how many frames make up one tick
func (p *Pacer) Every() int {
	return p.every
}

type timer struct {
	period time.Duration
	fn     func()
}

// Scheduler runs callbacks on fixed periods and posted events, all on the
// goroutine that called Run, so callbacks never race each other.
// Run may be called again after it returns.
type Scheduler struct {
	mu      sync.Mutex
	timers  []timer
	running bool
}

// NewScheduler creates a scheduler with no timers
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every registers fn to run once per period. Must be called before Run.
func (s *Scheduler) Every(period time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timers = append(s.timers, timer{period: period, fn: fn})
}

// ErrRunning is returned when Run is called on a scheduler that is already running
var ErrRunning = errors.New("scheduler already running")

// Run blocks, firing timers and executing functions received on events,
// until ctx is cancelled or events is closed. A nil events channel is
// never ready. Returns ctx.Err() on cancellation, nil when events closes.
func (s *Scheduler) Run(ctx context.Context, events <-chan func()) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrRunning
	}
	s.running = true
	timers := append([]timer(nil), s.timers...)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	ctx, cancel := context.WithCancel(ctx)

	// each ticker forwards its index; the loop below is the only caller of fn
	fire := make(chan int)
	var wg sync.WaitGroup
	for i, t := range timers {
		wg.Add(1)
		go func(i int, period time.Duration) {
			defer wg.Done()
			tk := time.NewTicker(period)
			defer tk.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-tk.C:
					select {
					case fire <- i:
					case <-ctx.Done():
						return
					}
				}
			}
		}(i, t.period)
	}

	// tickers only exit once ctx is done, so cancel before waiting
	defer func() {
		cancel()
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case i := <-fire:
			timers[i].fn()
		case fn, ok := <-events:
			if !ok {
				return nil
			}
			fn()
		}
	}
}
