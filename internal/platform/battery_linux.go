package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ksface/internal/core/model"
	"ksface/internal/core/timekeeper"
)

const powerSupplyRoot = "/sys/class/power_supply"

type sysfsBattery struct {
	root string
}

func newBatteryProvider() BatteryProvider {
	return &sysfsBattery{root: powerSupplyRoot}
}

func (provider *sysfsBattery) Battery() (model.BatteryStatus, error) {
	dir, err := provider.findBattery()
	if err != nil {
		return model.BatteryStatus{}, err
	}
	capacity, err := os.ReadFile(filepath.Join(dir, "capacity"))
	if err != nil {
		return model.BatteryStatus{}, fmt.Errorf("read battery capacity: %w", err)
	}
	status, err := os.ReadFile(filepath.Join(dir, "status"))
	if err != nil {
		return model.BatteryStatus{}, fmt.Errorf("read battery status: %w", err)
	}
	return parseSysfsBattery(string(capacity), string(status))
}

func (provider *sysfsBattery) findBattery() (string, error) {
	entries, err := os.ReadDir(provider.root)
	if err != nil {
		return "", timekeeper.ErrBatteryUnsupported
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		dir := filepath.Join(provider.root, name)
		kind, err := os.ReadFile(filepath.Join(dir, "type"))
		if err != nil || strings.TrimSpace(string(kind)) != "Battery" {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, "capacity")); err != nil {
			continue
		}
		return dir, nil
	}
	return "", timekeeper.ErrBatteryUnsupported
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
