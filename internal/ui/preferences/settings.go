package preferences

import "ksface/internal/core/model"

// BatterySource selects where the face reads its battery status from.
type BatterySource string

const (
	BatterySystem    BatterySource = "system"
	BatterySimulated BatterySource = "simulated"
)

const (
	MinScale = 1.0
	MaxScale = 4.0
)

// Settings defines editable host preferences. The face itself is not
// configurable.
type Settings struct {
	Scale             float64
	BatterySource     BatterySource
	SimulatedPercent  int
	SimulatedCharging bool
}

// DefaultSettings returns default settings for the desktop face.
func DefaultSettings() Settings {
	return Settings{
		Scale:            2,
		BatterySource:    BatterySystem,
		SimulatedPercent: 80,
	}
}

// Normalized clamps every field into its valid range.
func (settings Settings) Normalized() Settings {
	if settings.Scale < MinScale {
		settings.Scale = MinScale
	}
	if settings.Scale > MaxScale {
		settings.Scale = MaxScale
	}
	if settings.BatterySource != BatterySimulated {
		settings.BatterySource = BatterySystem
	}
	if settings.SimulatedPercent < 0 {
		settings.SimulatedPercent = 0
	}
	if settings.SimulatedPercent > 100 {
		settings.SimulatedPercent = 100
	}
	return settings
}

// SimulatedStatus converts the simulated battery fields to a status.
func (settings Settings) SimulatedStatus() model.BatteryStatus {
	return model.BatteryStatus{
		Percent:  settings.SimulatedPercent,
		Charging: settings.SimulatedCharging,
	}
}
