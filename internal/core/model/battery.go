package model

// BatteryStatus is a battery charge snapshot.
type BatteryStatus struct {
	Percent  int
	Charging bool
}

// GaugeLevel is the highest indicator index lit by this charge.
func (status BatteryStatus) GaugeLevel() int {
	return status.Percent / 10
}
