package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"ksface/internal/core/model"
	"ksface/internal/core/timekeeper"
)

type pmsetBattery struct {
	pmsetPath string
}

type unsupportedBattery struct{}

func newBatteryProvider() BatteryProvider {
	path, err := exec.LookPath("pmset")
	if err != nil {
		return unsupportedBattery{}
	}
	return &pmsetBattery{pmsetPath: path}
}

func (provider *pmsetBattery) Battery() (model.BatteryStatus, error) {
	output, err := exec.Command(provider.pmsetPath, "-g", "batt").Output()
	if err != nil {
		return model.BatteryStatus{}, fmt.Errorf("pmset: %w", err)
	}
	return parsePmset(string(output))
}

func (unsupportedBattery) Battery() (model.BatteryStatus, error) {
	return model.BatteryStatus{}, timekeeper.ErrBatteryUnsupported
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "Library", "Application Support")
}
