package animation

import (
	"time"

	"ksface/internal/core/model"
)

// Snapshot is the in-flight animation state the frame composer reads.
type Snapshot struct {
	Radius    int
	Hands     model.Time
	Animating bool
}

// DriverOptions configures a Driver.
type DriverOptions struct {
	Duration    time.Duration
	Delay       time.Duration
	FinalRadius int

	// Target returns the last observed wall time the hands sweep toward.
	Target func() model.Time
	// MarkDirty is called after every progress step.
	MarkDirty func()
	// HandsStopped is called once when the hands sweep completes.
	HandsStopped func()
}

// DefaultDriverOptions returns the face's compiled timing.
func DefaultDriverOptions() DriverOptions {
	return DriverOptions{
		Duration:    model.AnimationDuration,
		Delay:       model.AnimationDelay,
		FinalRadius: model.FinalRadius,
	}
}

// Driver owns the radius and hands timelines of the startup animation.
type Driver struct {
	options  DriverOptions
	radius   track
	hands    track
	snapshot Snapshot
}

type track struct {
	phase    Phase
	progress float64
}

func (state *track) step(progress float64) {
	if state.phase == NotStarted {
		state.phase = Running
	}
	state.progress = progress
}

// NewDriver creates a driver with nothing scheduled.
func NewDriver(options DriverOptions) *Driver {
	if options.Target == nil {
		options.Target = func() model.Time { return model.Time{} }
	}
	return &Driver{options: options}
}

// Schedule hands both timelines to scheduler. The radius grows over one
// duration, the hands sweep over two, and both wait out the same delay.
func (driver *Driver) Schedule(scheduler Scheduler) {
	scheduler.Schedule(Spec{
		Name:     "radius",
		Duration: driver.options.Duration,
		Delay:    driver.options.Delay,
		Curve:    EaseInOut,
		Update:   driver.radiusUpdate,
		Stopped: func() {
			driver.radius.phase = Stopped
		},
	})
	scheduler.Schedule(Spec{
		Name:     "hands",
		Duration: 2 * driver.options.Duration,
		Delay:    driver.options.Delay,
		Curve:    EaseInOut,
		Update:   driver.handsUpdate,
		Started:  driver.handsStarted,
		Stopped:  driver.handsStopped,
	})
}

// Snapshot returns the current animation state.
func (driver *Driver) Snapshot() Snapshot {
	return driver.snapshot
}

// RadiusPhase returns the phase of the radius timeline.
func (driver *Driver) RadiusPhase() Phase {
	return driver.radius.phase
}

// HandsPhase returns the phase of the hands timeline.
func (driver *Driver) HandsPhase() Phase {
	return driver.hands.phase
}

func (driver *Driver) radiusUpdate(progress float64) {
	driver.radius.step(progress)
	driver.snapshot.Radius = scale(progress, driver.options.FinalRadius)
	driver.markDirty()
}

func (driver *Driver) handsUpdate(progress float64) {
	driver.hands.step(progress)
	target := driver.options.Target()
	driver.snapshot.Hands = model.Time{
		Hours:   scale(progress, model.HoursToMinutes(target.Hours)),
		Minutes: scale(progress, target.Minutes),
	}
	driver.markDirty()
}

func (driver *Driver) handsStarted() {
	driver.hands.phase = Running
	driver.snapshot.Animating = true
}

func (driver *Driver) handsStopped() {
	driver.hands.phase = Stopped
	driver.snapshot.Animating = false
	if driver.options.HandsStopped != nil {
		driver.options.HandsStopped()
	}
}

func (driver *Driver) markDirty() {
	if driver.options.MarkDirty != nil {
		driver.options.MarkDirty()
	}
}

// scale truncates progress times max toward zero.
func scale(progress float64, max int) int {
	return int(float32(progress) * float32(max))
}
