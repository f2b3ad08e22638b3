package face

import (
	"log/slog"
	"math/rand"
	"time"

	"ksface/internal/core/animation"
	"ksface/internal/core/clock"
	"ksface/internal/core/frame"
	"ksface/internal/core/geometry"
	"ksface/internal/core/model"
	"ksface/internal/core/palette"
)

// Options configures a Face.
type Options struct {
	// Bounds is the drawing surface. Defaults to the 144x168 display.
	Bounds geometry.Rect
	// Seed seeds the palette random walk. Zero picks a time-based seed.
	Seed int64
	// Clock samples the current second for taps. Defaults to the system clock.
	Clock clock.Clock
	// Logger receives debug records. Defaults to a discarding logger.
	Logger *slog.Logger
	// OnDirty is called whenever the face needs a redraw.
	OnDirty func()
}

// Face owns the state of one watch face. It is not safe for concurrent
// use: every method must be called from the host's event goroutine.
type Face struct {
	state      State
	rng        *rand.Rand
	clock      clock.Clock
	logger     *slog.Logger
	onDirty    func()
	bounds     geometry.Rect
	driver     *animation.Driver
	labelBound bool
	dirty      bool
}

// New creates a face with a random starting palette.
func New(options Options) *Face {
	if options.Bounds.Width == 0 || options.Bounds.Height == 0 {
		options.Bounds = geometry.Rect{Width: model.DisplayWidth, Height: model.DisplayHeight}
	}
	if options.Seed == 0 {
		options.Seed = time.Now().UnixNano()
	}
	if options.Clock == nil {
		options.Clock = clock.Real{}
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}

	face := &Face{
		rng:     rand.New(rand.NewSource(options.Seed)),
		clock:   options.Clock,
		logger:  options.Logger,
		onDirty: options.OnDirty,
		bounds:  options.Bounds,
	}
	face.state.Palette = palette.Random(face.rng)

	driverOptions := animation.DefaultDriverOptions()
	driverOptions.Target = func() model.Time { return face.state.Wall }
	driverOptions.MarkDirty = face.markDirty
	driverOptions.HandsStopped = face.handsStopped
	face.driver = animation.NewDriver(driverOptions)
	return face
}

// Start applies the startup battery snapshot and schedules the startup
// animation on scheduler.
func (face *Face) Start(scheduler animation.Scheduler, battery model.BatteryStatus) {
	face.HandleBattery(battery)
	face.driver.Schedule(scheduler)
}

// Dispatch applies ev and signals a redraw when one is needed. It reports
// whether the face became dirty.
func (face *Face) Dispatch(ev Event) bool {
	next, redraw := Reduce(face.state, ev, face.rng)
	if face.state.Seconds.Active && !next.Seconds.Active {
		face.logger.Debug("seconds window expired", "second", next.Wall.Seconds)
	}
	face.state = next
	if redraw {
		face.markDirty()
	}
	return redraw
}

// HandleTick applies a wall-clock sample.
func (face *Face) HandleTick(t time.Time) {
	face.Dispatch(TickAt(t))
}

// HandleTap opens the second-hand window from the current second.
func (face *Face) HandleTap(axis Axis, direction int) {
	second := face.clock.Now().Second()
	face.Dispatch(Tap{Axis: axis, Direction: direction, Second: second})
	face.logger.Debug("tap handled", "axis", axis, "direction", direction, "expiry", face.state.Seconds.ExpirySecond)
}

// HandleBattery replaces the battery status.
func (face *Face) HandleBattery(status model.BatteryStatus) {
	face.Dispatch(BatteryChanged{Status: status})
	face.logger.Debug("battery changed", "percent", status.Percent, "charging", status.Charging)
}

// State returns a copy of the event state.
func (face *Face) State() State {
	return face.state
}

// Animation returns the in-flight animation snapshot.
func (face *Face) Animation() animation.Snapshot {
	return face.driver.Snapshot()
}

// EffectiveTime returns the time the hands are drawn from and whether it
// is the animated time.
func (face *Face) EffectiveTime() (model.Time, bool) {
	snapshot := face.driver.Snapshot()
	if snapshot.Animating {
		return snapshot.Hands, true
	}
	return face.state.Wall, false
}

// Dirty reports whether a redraw has been requested since the last Render.
func (face *Face) Dirty() bool {
	return face.dirty
}

// Input assembles the frame composer input from the current state.
func (face *Face) Input() frame.Input {
	effective, animating := face.EffectiveTime()
	in := frame.Input{
		Bounds:      face.bounds,
		Time:        effective,
		Animating:   animating,
		Radius:      face.driver.Snapshot().Radius,
		Background:  face.state.Palette.Color(),
		Battery:     face.state.Battery,
		ShowSeconds: face.state.Seconds.Active,
	}
	if face.labelBound {
		in.DateLabel = face.state.DateLabel
	}
	return in
}

// Frame composes the current frame.
func (face *Face) Frame() frame.Frame {
	return frame.Compose(face.Input())
}

// Render composes the current frame, plays it back to surface and clears
// the dirty flag.
func (face *Face) Render(surface frame.Surface) {
	frame.Playback(face.Frame(), surface)
	face.dirty = false
}

func (face *Face) markDirty() {
	face.dirty = true
	if face.onDirty != nil {
		face.onDirty()
	}
}

func (face *Face) handsStopped() {
	face.labelBound = true
	face.logger.Debug("hands animation stopped", "label", face.state.DateLabel)
	face.markDirty()
}
