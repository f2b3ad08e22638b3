// Package face holds the watch face's time and event state.
//
// The state changes only through Reduce, a pure function of the previous
// state and one event that also reports whether the face needs a redraw.
// Face wraps Reduce together with the startup animation and the frame
// composer for hosts that deliver events one at a time on a single
// goroutine.
package face

import (
	"math/rand"

	"ksface/internal/core/model"
	"ksface/internal/core/palette"
)

// SecondsWindow tracks the temporary second hand shown after a tap. Seen is
// the last second the open window observed, from the tap or a tick.
type SecondsWindow struct {
	Active       bool
	ExpirySecond int
	Seen         int
}

// expiresBy reports whether the expiry second lies in (Seen, second]. A
// tick that lands past a missed expiry second still closes the window.
func (window SecondsWindow) expiresBy(second int) bool {
	if second == window.ExpirySecond {
		return true
	}
	elapsed := wrapSecond(second - window.Seen)
	return elapsed > 0 && wrapSecond(window.ExpirySecond-window.Seen) <= elapsed
}

// State is the face's event-driven state.
type State struct {
	Wall      model.Time
	DateLabel string
	Seconds   SecondsWindow
	Battery   model.BatteryStatus
	Palette   palette.Palette
}

// Reduce applies ev to state. The returned flag reports whether the face
// must be redrawn. rng feeds the palette drift.
func Reduce(state State, ev Event, rng *rand.Rand) (State, bool) {
	switch ev := ev.(type) {
	case Tick:
		return reduceTick(state, ev, rng)
	case Tap:
		state.Seconds = SecondsWindow{
			Active:       true,
			ExpirySecond: ExpirySecond(ev.Second),
			Seen:         wrapSecond(ev.Second),
		}
		return state, true
	case BatteryChanged:
		state.Battery = ev.Status
		return state, true
	}
	return state, false
}

func reduceTick(state State, tick Tick, rng *rand.Rand) (State, bool) {
	state.Wall = model.Time{
		Hours:   model.TwelveHour(tick.Hour),
		Minutes: tick.Minute,
		Seconds: tick.Second,
	}
	state.DateLabel = model.DateLabel(tick.Day)

	quiet := tick.Second%model.QuietPeriod == 0
	if quiet {
		state.Palette = state.Palette.Drift(rng)
	}

	// Expiry is checked before the throttle so the tick that hides the
	// second hand always redraws.
	if state.Seconds.Active && state.Seconds.expiresBy(tick.Second) {
		state.Seconds.Active = false
		return state, true
	}
	if state.Seconds.Active {
		state.Seconds.Seen = wrapSecond(tick.Second)
		return state, true
	}
	return state, quiet
}

// ExpirySecond returns the second at which a window opened at second
// closes, wrapped into 0-59.
func ExpirySecond(second int) int {
	return wrapSecond(second - model.SecondsWindowLead)
}

func wrapSecond(second int) int {
	return (second%60 + 60) % 60
}
