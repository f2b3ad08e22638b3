package animation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "ksface/internal/core/animation"
)

type stepAnimation struct {
	stopped bool
}

func (animation *stepAnimation) Stop() {
	animation.stopped = true
}

func newTestEngine(ctx context.Context, steps []float32) (*Engine, *sync.Mutex) {
	var uiThread sync.Mutex
	engine := New(ctx)
	engine.dispatch = func(fn func()) {
		uiThread.Lock()
		defer uiThread.Unlock()
		fn()
	}
	engine.animate = func(_ time.Duration, tick func(float32)) runner {
		for _, step := range steps {
			tick(step)
		}
		return &stepAnimation{}
	}
	return engine, &uiThread
}

func TestEngineRunsTimelineAfterDelay(t *testing.T) {
	engine, _ := newTestEngine(context.Background(), []float32{0, 0.5, 1})
	defer engine.Stop()

	var progress []float64
	stopped := make(chan struct{})
	scheduledAt := time.Now()
	engine.Schedule(core.Spec{
		Name:     "radius",
		Duration: 20 * time.Millisecond,
		Delay:    30 * time.Millisecond,
		Update:   func(p float64) { progress = append(progress, p) },
		Stopped:  func() { close(stopped) },
	})

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("timeline never stopped")
	}
	assert.GreaterOrEqual(t, time.Since(scheduledAt), 30*time.Millisecond)
	require.NotEmpty(t, progress)
	assert.Equal(t, 1.0, progress[len(progress)-1])
}

func TestEngineSettlesWithoutFinalTick(t *testing.T) {
	engine, _ := newTestEngine(context.Background(), []float32{0, 0.4})
	defer engine.Stop()

	stopped := make(chan struct{})
	var last float64
	engine.Schedule(core.Spec{
		Duration: 10 * time.Millisecond,
		Update:   func(p float64) { last = p },
		Stopped:  func() { close(stopped) },
	})

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("timeline was not settled")
	}
	assert.Equal(t, 1.0, last)
}

func TestEngineStopDropsPendingTimelines(t *testing.T) {
	engine, uiThread := newTestEngine(context.Background(), []float32{1})

	started := false
	engine.Schedule(core.Spec{
		Duration: time.Millisecond,
		Delay:    time.Hour,
		Started:  func() { started = true },
	})
	engine.Stop()

	time.Sleep(20 * time.Millisecond)
	uiThread.Lock()
	defer uiThread.Unlock()
	assert.False(t, started)
}
