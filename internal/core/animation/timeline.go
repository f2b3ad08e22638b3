// Package animation drives the face's startup sweep.
//
// A timeline is a one-shot eased progress curve: it waits out its delay,
// reports progress from 0 to 1 over its duration and then stops for good.
// There is no cancellation, pause or repeat. Timelines are handed to a
// Scheduler, which decides how wall-clock time reaches them.
package animation

import "time"

// Phase is the lifecycle position of a timeline.
type Phase int

const (
	NotStarted Phase = iota
	Running
	Stopped
)

var phaseNames = [...]string{
	NotStarted: "not-started",
	Running:    "running",
	Stopped:    "stopped",
}

func (phase Phase) String() string {
	if int(phase) < len(phaseNames) {
		return phaseNames[phase]
	}
	return "unknown"
}

// Curve maps linear progress in [0, 1] to eased progress in [0, 1].
type Curve func(float64) float64

// Linear leaves progress untouched.
func Linear(t float64) float64 {
	return t
}

// EaseInOut accelerates through the first half and decelerates through the
// second.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// Spec describes a timeline as handed to a Scheduler.
type Spec struct {
	Name     string
	Duration time.Duration
	Delay    time.Duration
	Curve    Curve

	// Update receives eased progress. The last call always carries 1.
	Update func(progress float64)

	// Started and Stopped are optional and fire once each.
	Started func()
	Stopped func()
}

// Scheduler runs timelines.
type Scheduler interface {
	Schedule(spec Spec)
}

// Timeline is the state machine behind a single Spec.
type Timeline struct {
	spec  Spec
	phase Phase
}

// NewTimeline wraps spec in a timeline that has not started yet.
func NewTimeline(spec Spec) *Timeline {
	if spec.Curve == nil {
		spec.Curve = Linear
	}
	return &Timeline{spec: spec}
}

// Phase returns the current phase.
func (timeline *Timeline) Phase() Phase {
	return timeline.phase
}

// Seek moves the timeline to the given time since it was scheduled, firing
// the callbacks for every transition on the way.
func (timeline *Timeline) Seek(elapsed time.Duration) {
	if timeline.phase == Stopped || elapsed < timeline.spec.Delay {
		return
	}
	if timeline.phase == NotStarted {
		timeline.phase = Running
		if timeline.spec.Started != nil {
			timeline.spec.Started()
		}
	}

	run := elapsed - timeline.spec.Delay
	if timeline.spec.Duration <= 0 || run >= timeline.spec.Duration {
		timeline.update(1)
		timeline.phase = Stopped
		if timeline.spec.Stopped != nil {
			timeline.spec.Stopped()
		}
		return
	}
	timeline.update(timeline.spec.Curve(float64(run) / float64(timeline.spec.Duration)))
}

func (timeline *Timeline) update(progress float64) {
	if timeline.spec.Update != nil {
		timeline.spec.Update(progress)
	}
}
