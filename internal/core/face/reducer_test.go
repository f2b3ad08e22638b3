package face

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ksface/internal/core/model"
	"ksface/internal/core/palette"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(3))
}

func TestExpirySecondWraps(t *testing.T) {
	for second := 0; second < 60; second++ {
		got := ExpirySecond(second)
		assert.Equal(t, (second-5+60)%60, got, "second %d", second)
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, 60)
	}
	assert.Equal(t, 55, ExpirySecond(0))
	assert.Equal(t, 59, ExpirySecond(4))
	assert.Equal(t, 0, ExpirySecond(5))
	assert.Equal(t, 0, ExpirySecond(65), "out of range seconds are folded")
	assert.Equal(t, 52, ExpirySecond(-3))
}

func TestTickStoresTwelveHourTimeAndLabel(t *testing.T) {
	tests := []struct {
		hour, want int
	}{
		{0, 0}, {1, 1}, {11, 11}, {12, 12}, {13, 1}, {23, 11},
	}
	for _, tt := range tests {
		state, _ := Reduce(State{}, Tick{Hour: tt.hour, Minute: 7, Second: 3, Day: 9}, newRand())
		assert.Equal(t, model.Time{Hours: tt.want, Minutes: 7, Seconds: 3}, state.Wall, "hour %d", tt.hour)
		assert.Equal(t, "9", state.DateLabel)
	}
}

func TestIdleTicksRedrawEveryTenSeconds(t *testing.T) {
	rng := newRand()
	state := State{Palette: palette.Palette{0x00, 0x55, 0xff}}
	redraws := 0
	for second := 0; second < 60; second++ {
		var redraw bool
		state, redraw = Reduce(state, Tick{Hour: 10, Minute: 8, Second: second, Day: 18}, rng)
		if redraw {
			redraws++
			assert.Zero(t, second%10, "unexpected redraw at second %d", second)
		}
	}
	assert.Equal(t, 6, redraws)
}

func TestPaletteDriftsOnlyOnQuietTicks(t *testing.T) {
	rng := newRand()
	state := State{Palette: palette.Palette{0x00, 0x00, 0x00}}
	for second := 0; second < 60; second++ {
		before := state.Palette
		state, _ = Reduce(state, Tick{Second: second}, rng)
		if second%10 == 0 {
			assert.NotEqual(t, before, state.Palette, "second %d", second)
		} else {
			assert.Equal(t, before, state.Palette, "second %d", second)
		}
		for _, level := range state.Palette {
			require.True(t, palette.OnLadder(level))
		}
	}
}

func TestTapOpensSecondsWindow(t *testing.T) {
	state, redraw := Reduce(State{}, Tap{Axis: AxisZ, Direction: -1, Second: 30}, newRand())
	assert.True(t, redraw)
	assert.Equal(t, SecondsWindow{Active: true, ExpirySecond: 25, Seen: 30}, state.Seconds)

	for _, axis := range []Axis{AxisX, AxisY} {
		other, _ := Reduce(State{}, Tap{Axis: axis, Direction: 1, Second: 30}, newRand())
		assert.Equal(t, state.Seconds, other.Seconds, "axis and direction are ignored")
	}

	state, redraw = Reduce(state, Tap{Second: 2}, newRand())
	assert.True(t, redraw)
	assert.Equal(t, SecondsWindow{Active: true, ExpirySecond: 57, Seen: 2}, state.Seconds, "a second tap restarts the window")
}

func TestSecondsWindowLifecycle(t *testing.T) {
	rng := newRand()
	state, _ := Reduce(State{}, Tap{Second: 12}, rng)

	second := 13
	for i := 0; i < 54; i++ {
		var redraw bool
		state, redraw = Reduce(state, Tick{Second: second}, rng)
		require.True(t, redraw, "second %d", second)
		require.True(t, state.Seconds.Active, "second %d", second)
		second = (second + 1) % 60
	}

	require.Equal(t, 7, second)
	state, redraw := Reduce(state, Tick{Second: second}, rng)
	assert.True(t, redraw, "the expiry tick draws the frame without the second hand")
	assert.False(t, state.Seconds.Active)

	_, redraw = Reduce(state, Tick{Second: 8}, rng)
	assert.False(t, redraw, "back to the quiet cadence")
}

func TestSkippedExpirySecondStillCloses(t *testing.T) {
	tests := []struct {
		name        string
		tap         int
		ticks       []int
		closedAfter int
	}{
		{"jump over expiry", 30, []int{31, 59, 0, 24, 26}, 26},
		{"jump over expiry across the minute", 3, []int{4, 57, 59}, 59},
		{"duplicate second keeps the window", 12, []int{13, 13, 14, 6, 8}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := newRand()
			state, _ := Reduce(State{}, Tap{Second: tt.tap}, rng)
			for _, second := range tt.ticks {
				var redraw bool
				state, redraw = Reduce(state, Tick{Second: second}, rng)
				assert.True(t, redraw, "second %d", second)
				if second == tt.closedAfter {
					assert.False(t, state.Seconds.Active, "window still open at second %d", second)
					return
				}
				require.True(t, state.Seconds.Active, "window closed early at second %d", second)
				assert.Equal(t, second, state.Seconds.Seen)
			}
		})
	}
}

func TestExpiryOnQuietTickStillDrifts(t *testing.T) {
	rng := newRand()
	state, _ := Reduce(State{Palette: palette.Palette{0xff, 0xff, 0xff}}, Tap{Second: 25}, rng)
	state, redraw := Reduce(state, Tick{Second: 20}, rng)
	assert.True(t, redraw)
	assert.False(t, state.Seconds.Active)
	assert.NotEqual(t, palette.Palette{0xff, 0xff, 0xff}, state.Palette)
}

func TestBatteryReplacesStatus(t *testing.T) {
	state := State{Battery: model.BatteryStatus{Percent: 90, Charging: true}}
	state, redraw := Reduce(state, BatteryChanged{Status: model.BatteryStatus{Percent: 40}}, newRand())
	assert.True(t, redraw)
	assert.Equal(t, model.BatteryStatus{Percent: 40}, state.Battery)
}

type unknownEvent struct{}

func (unknownEvent) eventMarker() {}

func TestUnknownEventIsIgnored(t *testing.T) {
	state := State{DateLabel: "4"}
	next, redraw := Reduce(state, unknownEvent{}, newRand())
	assert.False(t, redraw)
	assert.Equal(t, state, next)
}
