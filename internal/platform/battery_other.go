//go:build !linux && !darwin && !windows

package platform

import (
	"path/filepath"

	"ksface/internal/core/model"
	"ksface/internal/core/timekeeper"
)

type unsupportedBattery struct{}

func newBatteryProvider() BatteryProvider {
	return unsupportedBattery{}
}

func (unsupportedBattery) Battery() (model.BatteryStatus, error) {
	return model.BatteryStatus{}, timekeeper.ErrBatteryUnsupported
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
