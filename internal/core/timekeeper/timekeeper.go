package timekeeper

import (
	"errors"
	"sync"
	"time"

	"ksface/internal/core/clock"
	"ksface/internal/core/face"
	"ksface/internal/core/model"
)

// MaxCatchUp is the most ticks emitted at once after the loop falls behind.
// Every second of a minute is among them, so no window expiry or quiet
// second is lost. Subscribers that must not drop ticks buffer at least this
// many events.
const MaxCatchUp = 60

// tickMargin keeps a wake-up that lands just before a boundary from
// sampling the previous second again.
const tickMargin = 20 * time.Millisecond

// resyncStep is how far the wall clock may step back before the keeper
// forgets the last emitted second and starts over from now.
const resyncStep = 2 * time.Second

// Config contains runtime options for TimeKeeper. Ticks are aligned to
// TickInterval boundaries of the wall clock.
type Config struct {
	TickInterval        time.Duration
	BatteryPollInterval time.Duration
	Clock               clock.Clock
}

// TimeKeeper emits one tick per wall-clock second and polls the battery,
// fanning the results out to subscribers as face events. Seconds the loop
// slept through are replayed in order.
type TimeKeeper struct {
	mu               sync.Mutex
	options          Config
	batteryChecker   BatteryChecker
	battery          model.BatteryStatus
	batteryKnown     bool
	batteryDisabled  bool
	lastBatteryCheck time.Time
	lastErr          error
	lastTick         time.Time
	events           []chan face.Event
	stopCh           chan struct{}
	running          bool
}

// New creates a TimeKeeper with the provided options.
func New(options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.BatteryPollInterval <= 0 {
		options.BatteryPollInterval = 30 * time.Second
	}
	if options.Clock == nil {
		options.Clock = clock.Real{}
	}
	return &TimeKeeper{options: options}
}

// SetBatteryChecker injects a battery checker and forgets the last status.
func (keeper *TimeKeeper) SetBatteryChecker(checker BatteryChecker) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.batteryChecker = checker
	keeper.batteryKnown = false
	keeper.batteryDisabled = false
	keeper.lastBatteryCheck = time.Time{}
	keeper.lastErr = nil
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan face.Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan face.Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Peek probes the battery once and returns the snapshot. Later polls only
// emit when the status differs from it.
func (keeper *TimeKeeper) Peek() (model.BatteryStatus, error) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.batteryChecker == nil {
		return model.BatteryStatus{}, ErrBatteryUnsupported
	}
	status, err := keeper.batteryChecker.Battery()
	if err != nil {
		return model.BatteryStatus{}, err
	}
	keeper.battery = status
	keeper.batteryKnown = true
	keeper.lastBatteryCheck = keeper.options.Clock.Now()
	return status, nil
}

// Battery returns the last known battery status.
func (keeper *TimeKeeper) Battery() (model.BatteryStatus, bool) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.battery, keeper.batteryKnown
}

// Err returns the last battery probe failure, if any.
func (keeper *TimeKeeper) Err() error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.lastErr
}

// Start launches the ticking loop and emits an immediate tick.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	if keeper.running {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	keeper.lastTick = time.Time{}
	keeper.stopCh = make(chan struct{})
	stopCh := keeper.stopCh
	keeper.mu.Unlock()

	keeper.tick(keeper.options.Clock.Now())
	go keeper.run(stopCh)
}

// Stop terminates the ticking loop and closes observers.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}
	close(keeper.stopCh)
	keeper.running = false
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) run(stopCh <-chan struct{}) {
	timer := time.NewTimer(keeper.untilNextTick(keeper.options.Clock.Now()))
	defer timer.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-timer.C:
			keeper.tick(keeper.options.Clock.Now())
			timer.Reset(keeper.untilNextTick(keeper.options.Clock.Now()))
		}
	}
}

// untilNextTick returns how long to sleep so the next wake-up lands just
// past the following interval boundary.
func (keeper *TimeKeeper) untilNextTick(now time.Time) time.Duration {
	interval := keeper.options.TickInterval
	return now.Truncate(interval).Add(interval).Sub(now) + tickMargin
}

// tick emits a Tick for every second after the last emitted one up to now.
// A sample that lands in an already emitted second emits nothing.
func (keeper *TimeKeeper) tick(now time.Time) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running {
		return
	}

	second := now.Truncate(time.Second)
	if keeper.lastTick.Sub(second) > resyncStep {
		keeper.lastTick = time.Time{}
	}
	from := second
	if !keeper.lastTick.IsZero() {
		from = keeper.lastTick.Add(time.Second)
		if earliest := second.Add(-(MaxCatchUp - 1) * time.Second); from.Before(earliest) {
			from = earliest
		}
	}
	for at := from; !at.After(second); at = at.Add(time.Second) {
		keeper.emitLocked(face.TickAt(at))
	}
	if second.After(keeper.lastTick) {
		keeper.lastTick = second
	}
	keeper.pollBatteryLocked(now)
}

func (keeper *TimeKeeper) pollBatteryLocked(now time.Time) {
	if keeper.batteryChecker == nil || keeper.batteryDisabled {
		return
	}
	if !keeper.lastBatteryCheck.IsZero() && now.Sub(keeper.lastBatteryCheck) < keeper.options.BatteryPollInterval {
		return
	}
	keeper.lastBatteryCheck = now

	status, err := keeper.batteryChecker.Battery()
	if err != nil {
		keeper.lastErr = err
		if errors.Is(err, ErrBatteryUnsupported) {
			keeper.batteryDisabled = true
		}
		return
	}
	keeper.lastErr = nil
	if keeper.batteryKnown && status == keeper.battery {
		return
	}
	keeper.battery = status
	keeper.batteryKnown = true
	keeper.emitLocked(face.BatteryChanged{Status: status})
}

func (keeper *TimeKeeper) emitLocked(event face.Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
