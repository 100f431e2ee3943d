// Package countdown owns the wait/render/cancel loop.
//
// One Timer drives one run: idle on construction, running inside Run, and
// terminal when Run returns. There is no pause state and no support for
// concurrent countdowns; the tick loop is the only point of suspension and
// observes cancellation at every tick boundary, so an interrupt aborts
// within one period.
package countdown

import (
	"context"
	"time"

	"github.com/rgould/autonudge/internal/config"
	"github.com/rgould/autonudge/internal/detect"
	"github.com/rgould/autonudge/internal/dispatch"
	"github.com/rgould/autonudge/internal/logging"
)

// Outcome is the terminal classification of a run.
type Outcome int

const (
	Completed Outcome = iota
	Cancelled
	SkippedNoTarget
	InvalidConfig
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	case SkippedNoTarget:
		return "skipped: no target"
	case InvalidConfig:
		return "invalid config"
	default:
		return "unknown"
	}
}

// TickEvent describes one elapsed second of the countdown. It is a plain
// value recomputed each tick; Percent exists only for rendering.
type TickEvent struct {
	Remaining int
	Percent   float64
}

func tickEvent(remaining, total int) TickEvent {
	elapsed := total - remaining
	return TickEvent{
		Remaining: remaining,
		Percent:   float64(elapsed) / float64(total) * 100,
	}
}

// Renderer receives countdown display events. Rendering is observational
// only; implementations must not block the tick loop.
type Renderer interface {
	Tick(remaining int, percent float64)
	Finish(text string)
	Abort(text string)
}

// Timer drives a single countdown to completion or cancellation.
type Timer struct {
	cfg             config.RunConfig
	detector        detect.Detector
	dispatcher      dispatch.Dispatcher
	renderer        Renderer
	log             *logging.Logger
	period          time.Duration
	dispatchTimeout time.Duration
}

// New creates an idle timer with the production tick period of one second.
func New(cfg config.RunConfig, detector detect.Detector, dispatcher dispatch.Dispatcher, renderer Renderer, log *logging.Logger) *Timer {
	return &Timer{
		cfg:             cfg,
		detector:        detector,
		dispatcher:      dispatcher,
		renderer:        renderer,
		log:             log,
		period:          time.Second,
		dispatchTimeout: 5 * time.Second,
	}
}

// Run drives the countdown to a terminal outcome. For a duration of N
// seconds it performs exactly N ticks with strictly decreasing remaining
// values, unless cancelled first.
func (t *Timer) Run(ctx context.Context) Outcome {
	if err := t.cfg.Validate(); err != nil {
		return InvalidConfig
	}

	if t.cfg.AutoOnly {
		present := t.detector.TargetRunning(ctx)
		t.log.LogDetection(t.cfg.Target, present)
		if !present {
			return SkippedNoTarget
		}
	}

	remaining := t.cfg.SkipTime
	ticker := time.NewTicker(t.period)
	defer ticker.Stop()

	for remaining > 0 {
		select {
		case <-ctx.Done():
			t.renderer.Abort("Cancelled")
			return Cancelled
		case <-ticker.C:
			remaining--
			ev := tickEvent(remaining, t.cfg.SkipTime)
			t.renderer.Tick(ev.Remaining, ev.Percent)
		}
	}

	// A cancellation racing the final tick still wins.
	select {
	case <-ctx.Done():
		t.renderer.Abort("Cancelled")
		return Cancelled
	default:
	}

	t.renderer.Finish("Countdown complete")
	t.confirm(ctx)
	return Completed
}

// confirm sends the automated response if the target is present. The
// dispatch result never changes the run's terminal classification; the
// countdown itself completed as designed.
func (t *Timer) confirm(ctx context.Context) {
	present := t.detector.TargetRunning(ctx)
	t.log.LogDetection(t.cfg.Target, present)
	if !present {
		t.log.Info("target %q not running, nothing to confirm", t.cfg.Target)
		return
	}

	// The platform call has no timeout of its own; bound it here so a
	// wedged injection tool cannot hang the run.
	dctx, cancel := context.WithTimeout(ctx, t.dispatchTimeout)
	defer cancel()

	result, err := t.dispatcher.SendConfirmation(dctx)
	t.log.LogDispatch(result.String(), err)
}
