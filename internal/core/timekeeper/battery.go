package timekeeper

import (
	"errors"

	"ksface/internal/core/model"
)

// ErrBatteryUnsupported indicates the system exposes no battery.
var ErrBatteryUnsupported = errors.New("battery status unsupported")

// BatteryChecker reports the current battery status.
type BatteryChecker interface {
	Battery() (model.BatteryStatus, error)
}
