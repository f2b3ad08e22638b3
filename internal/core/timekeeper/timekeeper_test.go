package timekeeper

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ksface/internal/core/clock"
	"ksface/internal/core/face"
	"ksface/internal/core/model"
)

type fakeBattery struct {
	mu     sync.Mutex
	status model.BatteryStatus
	err    error
	calls  int
}

func (battery *fakeBattery) Battery() (model.BatteryStatus, error) {
	battery.mu.Lock()
	defer battery.mu.Unlock()
	battery.calls++
	return battery.status, battery.err
}

func (battery *fakeBattery) set(status model.BatteryStatus) {
	battery.mu.Lock()
	battery.status = status
	battery.mu.Unlock()
}

var start = time.Date(2026, time.October, 18, 9, 15, 30, 0, time.UTC)

func newTestKeeper(mock *clock.Mock) *TimeKeeper {
	return New(Config{
		TickInterval:        time.Hour,
		BatteryPollInterval: 30 * time.Second,
		Clock:               mock,
	})
}

func drain(ch <-chan face.Event) []face.Event {
	var events []face.Event
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return events
			}
			events = append(events, ev)
		default:
			return events
		}
	}
}

func split(events []face.Event) (ticks []face.Tick, batteries []face.BatteryChanged) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case face.Tick:
			ticks = append(ticks, ev)
		case face.BatteryChanged:
			batteries = append(batteries, ev)
		}
	}
	return ticks, batteries
}

func seconds(ticks []face.Tick) []int {
	out := make([]int, 0, len(ticks))
	for _, tick := range ticks {
		out = append(out, tick.Second)
	}
	return out
}

func TestStartEmitsImmediateTick(t *testing.T) {
	mock := clock.NewMock(start)
	keeper := newTestKeeper(mock)
	events := keeper.Subscribe(4)
	keeper.Start()
	defer keeper.Stop()

	got := drain(events)
	require.Len(t, got, 1)
	assert.Equal(t, face.Tick{Hour: 9, Minute: 15, Second: 30, Day: 18}, got[0])
}

func TestBatteryPolledOnInterval(t *testing.T) {
	mock := clock.NewMock(start)
	battery := &fakeBattery{status: model.BatteryStatus{Percent: 80}}
	keeper := newTestKeeper(mock)
	keeper.SetBatteryChecker(battery)
	events := keeper.Subscribe(2 * MaxCatchUp)
	keeper.Start()
	defer keeper.Stop()

	got := drain(events)
	require.Len(t, got, 2)
	assert.Equal(t, face.BatteryChanged{Status: model.BatteryStatus{Percent: 80}}, got[1])

	battery.set(model.BatteryStatus{Percent: 70})
	mock.Advance(10 * time.Second)
	keeper.tick(mock.Now())
	ticks, batteries := split(drain(events))
	assert.Len(t, ticks, 10)
	assert.Empty(t, batteries, "poll interval has not elapsed")
	assert.Equal(t, 1, battery.calls)

	mock.Advance(20 * time.Second)
	keeper.tick(mock.Now())
	_, batteries = split(drain(events))
	require.Len(t, batteries, 1)
	assert.Equal(t, face.BatteryChanged{Status: model.BatteryStatus{Percent: 70}}, batteries[0])

	mock.Advance(30 * time.Second)
	keeper.tick(mock.Now())
	_, batteries = split(drain(events))
	assert.Empty(t, batteries, "unchanged status is not re-emitted")
}

func TestPeekSeedsBatterySnapshot(t *testing.T) {
	mock := clock.NewMock(start)
	battery := &fakeBattery{status: model.BatteryStatus{Percent: 45, Charging: true}}
	keeper := newTestKeeper(mock)
	keeper.SetBatteryChecker(battery)

	status, err := keeper.Peek()
	require.NoError(t, err)
	assert.Equal(t, model.BatteryStatus{Percent: 45, Charging: true}, status)

	events := keeper.Subscribe(4)
	keeper.Start()
	defer keeper.Stop()
	got := drain(events)
	require.Len(t, got, 1)
	assert.IsType(t, face.Tick{}, got[0])

	current, known := keeper.Battery()
	assert.True(t, known)
	assert.Equal(t, status, current)
}

func TestPeekWithoutChecker(t *testing.T) {
	keeper := newTestKeeper(clock.NewMock(start))
	_, err := keeper.Peek()
	assert.ErrorIs(t, err, ErrBatteryUnsupported)
}

func TestUnsupportedBatteryStopsPolling(t *testing.T) {
	mock := clock.NewMock(start)
	battery := &fakeBattery{err: ErrBatteryUnsupported}
	keeper := newTestKeeper(mock)
	keeper.SetBatteryChecker(battery)
	keeper.Start()
	defer keeper.Stop()

	for i := 0; i < 3; i++ {
		mock.Advance(time.Minute)
		keeper.tick(mock.Now())
	}
	assert.Equal(t, 1, battery.calls)
	assert.ErrorIs(t, keeper.Err(), ErrBatteryUnsupported)
}

func TestTransientBatteryErrorIsRetried(t *testing.T) {
	mock := clock.NewMock(start)
	battery := &fakeBattery{err: errors.New("read capacity: busy")}
	keeper := newTestKeeper(mock)
	keeper.SetBatteryChecker(battery)
	events := keeper.Subscribe(2 * MaxCatchUp)
	keeper.Start()
	defer keeper.Stop()
	require.Error(t, keeper.Err())

	battery.mu.Lock()
	battery.err = nil
	battery.status = model.BatteryStatus{Percent: 12}
	battery.mu.Unlock()
	mock.Advance(time.Minute)
	keeper.tick(mock.Now())

	assert.NoError(t, keeper.Err())
	got := drain(events)
	assert.Contains(t, got, face.Event(face.BatteryChanged{Status: model.BatteryStatus{Percent: 12}}))
}

func TestStopClosesSubscribers(t *testing.T) {
	keeper := newTestKeeper(clock.NewMock(start))
	events := keeper.Subscribe(4)
	keeper.Start()
	keeper.Start()
	keeper.Stop()
	keeper.Stop()

	drain(events)
	_, ok := <-events
	assert.False(t, ok)

	keeper.tick(start)
}

func TestTicksAreNotSkippedAcrossBoundaries(t *testing.T) {
	// Samples land a few milliseconds either side of each boundary, so the
	// raw second read from the clock repeats 31 and jumps from 31 to 33.
	base := time.Date(2026, time.October, 18, 9, 15, 30, 0, time.UTC)
	mock := clock.NewMock(base.Add(995 * time.Millisecond))
	keeper := newTestKeeper(mock)
	events := keeper.Subscribe(2 * MaxCatchUp)
	keeper.Start()
	defer keeper.Stop()

	for _, offset := range []time.Duration{
		1005 * time.Millisecond,
		1990 * time.Millisecond,
		3010 * time.Millisecond,
		3999 * time.Millisecond,
		4001 * time.Millisecond,
	} {
		mock.Set(base.Add(offset))
		keeper.tick(mock.Now())
	}

	ticks, _ := split(drain(events))
	assert.Equal(t, []int{30, 31, 32, 33, 34}, seconds(ticks))
}

func TestStalledLoopReplaysAtMostOneMinute(t *testing.T) {
	mock := clock.NewMock(start)
	keeper := newTestKeeper(mock)
	events := keeper.Subscribe(2 * MaxCatchUp)
	keeper.Start()
	defer keeper.Stop()
	drain(events)

	mock.Advance(5*time.Minute + 2*time.Second)
	keeper.tick(mock.Now())

	ticks, _ := split(drain(events))
	require.Len(t, ticks, MaxCatchUp)
	assert.Equal(t, face.Tick{Hour: 9, Minute: 19, Second: 33, Day: 18}, ticks[0])
	assert.Equal(t, face.Tick{Hour: 9, Minute: 20, Second: 32, Day: 18}, ticks[len(ticks)-1])
	for i := 1; i < len(ticks); i++ {
		assert.Equal(t, (ticks[i-1].Second+1)%60, ticks[i].Second)
	}
}

func TestClockSteppedBackResyncs(t *testing.T) {
	mock := clock.NewMock(start)
	keeper := newTestKeeper(mock)
	events := keeper.Subscribe(2 * MaxCatchUp)
	keeper.Start()
	defer keeper.Stop()
	drain(events)

	mock.Advance(-time.Second)
	keeper.tick(mock.Now())
	assert.Empty(t, drain(events), "a small step back waits for the next new second")

	mock.Advance(-time.Hour)
	keeper.tick(mock.Now())
	ticks, _ := split(drain(events))
	require.Len(t, ticks, 1)
	assert.Equal(t, face.Tick{Hour: 8, Minute: 15, Second: 29, Day: 18}, ticks[0])
}

func TestUntilNextTickAlignsToSecond(t *testing.T) {
	keeper := New(Config{})
	at := time.Date(2026, time.October, 18, 9, 15, 30, 0, time.UTC)

	assert.Equal(t, time.Second+tickMargin, keeper.untilNextTick(at))
	assert.Equal(t, 250*time.Millisecond+tickMargin, keeper.untilNextTick(at.Add(750*time.Millisecond)))
	assert.Equal(t, time.Millisecond+tickMargin, keeper.untilNextTick(at.Add(999*time.Millisecond)))
}
