// Package animation runs face timelines on the fyne animation loop.
package animation

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	core "ksface/internal/core/animation"
)

// settleMargin is how long after its nominal end a timeline is forced to
// its final value if the animation loop never delivered progress 1.
const settleMargin = 250 * time.Millisecond

type runner interface {
	Stop()
}

// Engine is a core.Scheduler backed by fyne animations. Delays are slept
// on a background goroutine; every timeline step runs on the fyne thread.
type Engine struct {
	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	running []runner

	dispatch func(func())
	animate  func(time.Duration, func(float32)) runner
}

// New creates an engine bound to ctx. Cancelling ctx drops pending timelines.
func New(ctx context.Context) *Engine {
	runCtx, cancel := context.WithCancel(ctx)
	return &Engine{
		ctx:      runCtx,
		cancel:   cancel,
		dispatch: fyne.Do,
		animate:  startFyneAnimation,
	}
}

// Schedule implements core.Scheduler.
func (engine *Engine) Schedule(spec core.Spec) {
	timeline := core.NewTimeline(spec)
	go engine.run(spec, timeline)
}

// Stop cancels pending delays and halts running animations.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.cancel()
	for _, animation := range engine.running {
		animation.Stop()
	}
	engine.running = nil
}

func (engine *Engine) run(spec core.Spec, timeline *core.Timeline) {
	if !sleepWithContext(engine.ctx, spec.Delay) {
		return
	}

	engine.dispatch(func() {
		if engine.ctx.Err() != nil {
			return
		}
		timeline.Seek(spec.Delay)
		if timeline.Phase() == core.Stopped {
			return
		}
		animation := engine.animate(spec.Duration, func(progress float32) {
			timeline.Seek(spec.Delay + time.Duration(float64(progress)*float64(spec.Duration)))
		})
		engine.mu.Lock()
		engine.running = append(engine.running, animation)
		engine.mu.Unlock()
	})

	if !sleepWithContext(engine.ctx, spec.Duration+settleMargin) {
		return
	}
	engine.dispatch(func() {
		timeline.Seek(spec.Delay + spec.Duration)
	})
}

func startFyneAnimation(duration time.Duration, tick func(float32)) runner {
	animation := fyne.NewAnimation(duration, tick)
	animation.Curve = fyne.AnimationLinear
	animation.Start()
	return animation
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
