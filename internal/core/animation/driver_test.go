package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ksface/internal/core/model"
)

func newTestDriver(target *model.Time, dirty *int, stopped *int) *Driver {
	options := DefaultDriverOptions()
	options.Target = func() model.Time { return *target }
	options.MarkDirty = func() { *dirty++ }
	options.HandsStopped = func() { *stopped++ }
	return NewDriver(options)
}

func TestDriverStartupSequence(t *testing.T) {
	target := model.Time{Hours: 3, Minutes: 40, Seconds: 12}
	dirty, stopped := 0, 0
	driver := newTestDriver(&target, &dirty, &stopped)
	clocked := NewClocked()
	driver.Schedule(clocked)

	clocked.Advance(model.AnimationDelay - time.Millisecond)
	assert.Equal(t, Snapshot{}, driver.Snapshot())
	assert.Equal(t, NotStarted, driver.RadiusPhase())
	assert.Equal(t, NotStarted, driver.HandsPhase())
	assert.Zero(t, dirty)

	clocked.Advance(model.AnimationDuration / 2)
	snapshot := driver.Snapshot()
	assert.True(t, snapshot.Animating)
	assert.Equal(t, Running, driver.RadiusPhase())
	assert.Equal(t, Running, driver.HandsPhase())
	assert.Greater(t, snapshot.Radius, 0)
	assert.Less(t, snapshot.Radius, model.FinalRadius)
	assert.Less(t, snapshot.Hands.Minutes, target.Minutes)
	assert.Zero(t, snapshot.Hands.Seconds)

	clocked.Advance(model.AnimationDuration)
	assert.Equal(t, Stopped, driver.RadiusPhase())
	assert.Equal(t, model.FinalRadius, driver.Snapshot().Radius)
	assert.True(t, driver.Snapshot().Animating, "hands run for twice the radius duration")

	clocked.Advance(model.AnimationDuration)
	snapshot = driver.Snapshot()
	assert.Equal(t, Stopped, driver.HandsPhase())
	assert.False(t, snapshot.Animating)
	assert.Equal(t, model.Time{Hours: 15, Minutes: 40}, snapshot.Hands)
	assert.Equal(t, 1, stopped)
	assert.False(t, clocked.Pending())
}

func TestDriverMarksDirtyOnEveryStep(t *testing.T) {
	target := model.Time{Hours: 10, Minutes: 8}
	dirty, stopped := 0, 0
	driver := newTestDriver(&target, &dirty, &stopped)
	clocked := NewClocked()
	driver.Schedule(clocked)

	updates := 0
	clocked.Schedule(Spec{}) // unrelated timeline must not count
	clocked.RunToEnd(50*time.Millisecond, func() { updates++ })
	require.Positive(t, updates)

	// Steps land on the delay boundary and on every 50ms after it: the radius
	// updates at 600..1100ms and the hands at 600..1600ms.
	assert.Equal(t, 11+21, dirty)
	assert.Equal(t, 1, stopped)
}

func TestDriverHandsFollowLatestTarget(t *testing.T) {
	target := model.Time{Hours: 6, Minutes: 0}
	dirty, stopped := 0, 0
	driver := newTestDriver(&target, &dirty, &stopped)
	clocked := NewClocked()
	driver.Schedule(clocked)

	clocked.Advance(model.AnimationDelay + model.AnimationDuration)
	target = model.Time{Hours: 9, Minutes: 30}
	clocked.Advance(model.AnimationDuration)

	assert.Equal(t, model.Time{Hours: 45, Minutes: 30}, driver.Snapshot().Hands)
}
