package face

import (
	"time"

	"ksface/internal/core/model"
)

// Event is an input delivered to the face by its host.
type Event interface {
	eventMarker()
}

// Tick is the once-per-second wall-clock sample.
type Tick struct {
	Hour   int // 0-23
	Minute int
	Second int
	Day    int // day of month
}

func (Tick) eventMarker() {}

// TickAt samples t into a Tick.
func TickAt(t time.Time) Tick {
	return Tick{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Day: t.Day()}
}

// Axis is the accelerometer axis a tap was detected on.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Tap is an accelerometer tap. Axis and Direction are carried for the
// record only; every tap has the same effect. Second is the wall-clock
// second sampled by the host when the tap arrived.
type Tap struct {
	Axis      Axis
	Direction int
	Second    int
}

func (Tap) eventMarker() {}

// BatteryChanged carries a new battery snapshot.
type BatteryChanged struct {
	Status model.BatteryStatus
}

func (BatteryChanged) eventMarker() {}
