package animation

import "time"

// Clocked is a Scheduler that only moves when Advance is called. It makes
// animation runs reproducible for tests and offline rendering.
type Clocked struct {
	now     time.Duration
	entries []clockedEntry
}

type clockedEntry struct {
	scheduledAt time.Duration
	timeline    *Timeline
}

// NewClocked returns an empty scheduler at time zero.
func NewClocked() *Clocked {
	return &Clocked{}
}

// Schedule implements Scheduler. The timeline's delay counts from the
// scheduler's current time.
func (clocked *Clocked) Schedule(spec Spec) {
	clocked.entries = append(clocked.entries, clockedEntry{
		scheduledAt: clocked.now,
		timeline:    NewTimeline(spec),
	})
}

// Advance moves time forward by d and steps every pending timeline.
func (clocked *Clocked) Advance(d time.Duration) {
	clocked.now += d
	entries := append([]clockedEntry(nil), clocked.entries...)
	for _, entry := range entries {
		entry.timeline.Seek(clocked.now - entry.scheduledAt)
	}

	pending := clocked.entries[:0]
	for _, entry := range clocked.entries {
		if entry.timeline.Phase() != Stopped {
			pending = append(pending, entry)
		}
	}
	clocked.entries = pending
}

// Pending reports whether any timeline has yet to stop.
func (clocked *Clocked) Pending() bool {
	return len(clocked.entries) > 0
}

// Elapsed returns the scheduler's current time.
func (clocked *Clocked) Elapsed() time.Duration {
	return clocked.now
}

// RunToEnd advances in steps of step until nothing is pending, calling
// frame after every step. It returns the number of steps taken.
func (clocked *Clocked) RunToEnd(step time.Duration, frame func()) int {
	if step <= 0 {
		step = time.Millisecond
	}
	steps := 0
	for clocked.Pending() {
		clocked.Advance(step)
		steps++
		if frame != nil {
			frame()
		}
	}
	return steps
}
