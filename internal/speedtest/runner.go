// Package speedtest runs internet throughput measurements one at a time in the background.
package speedtest

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o speedtestfakes/fake_measurer.go . Measurer
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o speedtestfakes/fake_publisher.go . Publisher

// ErrRunning is returned by Start while a measurement is in flight.
var ErrRunning = errors.New("speed test already running")

// Measurement is the raw outcome of one measurement.
type Measurement struct {
	DownloadMbps float64
	UploadMbps   float64
	Ping         time.Duration
	Server       string
}

// Measurer performs one blocking measurement.
type Measurer interface {
	Measure(ctx context.Context) (Measurement, error)
}

// Result is the last completed run. Exactly one of the metrics or Error is meaningful.
type Result struct {
	ID        string     `json:"id"`
	Download  float64    `json:"download"`
	Upload    float64    `json:"upload"`
	Ping      float64    `json:"ping"`
	Server    string     `json:"server,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// Failed reports whether the run ended with an error.
func (r Result) Failed() bool {
	return r.Error != ""
}

// MarshalJSON writes a failed run as the error record only. A successful run
// always carries all three metrics, zero readings included.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(struct {
			ID    string `json:"id"`
			Error string `json:"error"`
		}{r.ID, r.Error})
	}
	type metrics Result
	return json.Marshal(metrics(r))
}

// Publisher receives the runner state so it can be exposed with the rest of the
// dashboard snapshot.
type Publisher interface {
	PublishSpeedTest(running bool, result *Result)
}

// Observer is notified about finished runs, e.g. for metrics.
type Observer interface {
	ObserveSpeedTest(result Result)
}

type Options struct {
	Measurer  Measurer
	Publisher Publisher
	Observer  Observer
	Logger    zerolog.Logger
	// Timeout bounds a single run; zero means no bound.
	Timeout time.Duration
	Now     func() time.Time
}

// Runner is a single-flight gate around a Measurer.
type Runner struct {
	opts    Options
	log     zerolog.Logger
	running atomic.Bool

	mu     sync.RWMutex
	result *Result
	done   chan struct{}
}

func NewRunner(opts Options) *Runner {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	done := make(chan struct{})
	close(done)
	return &Runner{opts: opts, log: opts.Logger, done: done}
}

// Start launches a measurement in the background and returns immediately. It returns
// ErrRunning without starting anything when a run is already in flight.
func (r *Runner) Start() (string, error) {
	if !r.running.CompareAndSwap(false, true) {
		return "", ErrRunning
	}

	id := uuid.NewString()
	done := make(chan struct{})
	r.mu.Lock()
	r.done = done
	prev := r.result
	r.mu.Unlock()
	r.publish(true, prev)

	go r.run(id, done)
	return id, nil
}

// Status returns whether a run is in flight and the last completed result.
func (r *Runner) Status() (bool, *Result) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.running.Load(), copyResult(r.result)
}

// Wait blocks until the current run, if any, has finished or ctx ends.
func (r *Runner) Wait(ctx context.Context) error {
	r.mu.RLock()
	done := r.done
	r.mu.RUnlock()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) run(id string, done chan struct{}) {
	defer close(done)

	ctx := context.Background()
	if r.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
	}

	r.log.Info().Str("id", id).Msg("Starting speed test")
	result := r.measure(ctx, id)
	if result.Failed() {
		r.log.Error().Str("id", id).Str("error", result.Error).Msg("Speed test failed")
	} else {
		r.log.Info().Str("id", id).
			Float64("download", result.Download).
			Float64("upload", result.Upload).
			Float64("ping", result.Ping).
			Msg("Speed test complete")
	}
	if r.opts.Observer != nil {
		r.opts.Observer.ObserveSpeedTest(result)
	}

	r.mu.Lock()
	r.result = &result
	r.mu.Unlock()
	r.publish(false, &result)
	// Cleared last so a poller that sees running=false also sees the result.
	r.running.Store(false)
}

func (r *Runner) measure(ctx context.Context, id string) (result Result) {
	result.ID = id
	defer func() {
		if p := recover(); p != nil {
			result = Result{ID: id, Error: "speed test panicked"}
			r.log.Error().Interface("panic", p).Msg("Recovered from speed test panic")
		}
	}()

	m, err := r.opts.Measurer.Measure(ctx)
	if err != nil {
		return Result{ID: id, Error: err.Error()}
	}
	ts := r.opts.Now()
	return Result{
		ID:        id,
		Download:  round2(m.DownloadMbps),
		Upload:    round2(m.UploadMbps),
		Ping:      round2(float64(m.Ping) / float64(time.Millisecond)),
		Server:    m.Server,
		Timestamp: &ts,
	}
}

func (r *Runner) publish(running bool, result *Result) {
	if r.opts.Publisher != nil {
		r.opts.Publisher.PublishSpeedTest(running, copyResult(result))
	}
}

func copyResult(r *Result) *Result {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
