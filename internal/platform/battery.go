package platform

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"ksface/internal/core/model"
	"ksface/internal/core/timekeeper"
)

// BatteryProvider reports the current battery status.
type BatteryProvider interface {
	Battery() (model.BatteryStatus, error)
}

// NewBatteryProvider returns a platform-specific battery provider.
func NewBatteryProvider() BatteryProvider {
	return newBatteryProvider()
}

// SimulatedBattery is a settable provider for machines without a battery.
type SimulatedBattery struct {
	mu     sync.Mutex
	status model.BatteryStatus
}

// NewSimulatedBattery returns a simulated battery reporting status.
func NewSimulatedBattery(status model.BatteryStatus) *SimulatedBattery {
	return &SimulatedBattery{status: clampStatus(status)}
}

// Battery implements BatteryProvider.
func (battery *SimulatedBattery) Battery() (model.BatteryStatus, error) {
	battery.mu.Lock()
	defer battery.mu.Unlock()
	return battery.status, nil
}

// Set replaces the reported status.
func (battery *SimulatedBattery) Set(status model.BatteryStatus) {
	battery.mu.Lock()
	battery.status = clampStatus(status)
	battery.mu.Unlock()
}

// Adjust moves the charge by delta percent.
func (battery *SimulatedBattery) Adjust(delta int) model.BatteryStatus {
	battery.mu.Lock()
	defer battery.mu.Unlock()
	battery.status.Percent += delta
	battery.status = clampStatus(battery.status)
	return battery.status
}

// ToggleCharging flips the charging flag.
func (battery *SimulatedBattery) ToggleCharging() model.BatteryStatus {
	battery.mu.Lock()
	defer battery.mu.Unlock()
	battery.status.Charging = !battery.status.Charging
	return battery.status
}

func clampStatus(status model.BatteryStatus) model.BatteryStatus {
	if status.Percent < 0 {
		status.Percent = 0
	}
	if status.Percent > 100 {
		status.Percent = 100
	}
	return status
}

// parseSysfsBattery reads the contents of a power_supply capacity and
// status file pair.
func parseSysfsBattery(capacity, status string) (model.BatteryStatus, error) {
	percent, err := strconv.Atoi(strings.TrimSpace(capacity))
	if err != nil {
		return model.BatteryStatus{}, fmt.Errorf("parse battery capacity: %w", err)
	}
	return clampStatus(model.BatteryStatus{
		Percent:  percent,
		Charging: strings.EqualFold(strings.TrimSpace(status), "Charging"),
	}), nil
}

// parsePmset reads the output of `pmset -g batt`.
func parsePmset(output string) (model.BatteryStatus, error) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "InternalBattery") {
			continue
		}
		tab := strings.IndexByte(line, '\t')
		if tab < 0 {
			return model.BatteryStatus{}, fmt.Errorf("parse pmset line %q", line)
		}
		fields := strings.Split(line[tab+1:], ";")
		percentField := strings.TrimSpace(fields[0])
		percent, err := strconv.Atoi(strings.TrimSuffix(percentField, "%"))
		if err != nil {
			return model.BatteryStatus{}, fmt.Errorf("parse pmset percent: %w", err)
		}
		charging := false
		if len(fields) > 1 {
			state := strings.TrimSpace(fields[1])
			charging = state == "charging" || state == "finishing charge"
		}
		return clampStatus(model.BatteryStatus{Percent: percent, Charging: charging}), nil
	}
	return model.BatteryStatus{}, timekeeper.ErrBatteryUnsupported
}
