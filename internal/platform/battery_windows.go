package platform

import (
	"fmt"
	"path/filepath"
	"syscall"
	"unsafe"

	"ksface/internal/core/model"
	"ksface/internal/core/timekeeper"
)

const (
	batteryFlagCharging  = 8
	batteryFlagNoBattery = 128
	batteryFlagUnknown   = 255
	batteryPercentKnown  = 100
)

type powerStatusBattery struct{}

type systemPowerStatus struct {
	acLineStatus        byte
	batteryFlag         byte
	batteryLifePercent  byte
	systemStatusFlag    byte
	batteryLifeTime     uint32
	batteryFullLifeTime uint32
}

func newBatteryProvider() BatteryProvider {
	return &powerStatusBattery{}
}

func (provider *powerStatusBattery) Battery() (model.BatteryStatus, error) {
	var status systemPowerStatus

	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	getSystemPowerStatus := kernel32.NewProc("GetSystemPowerStatus")
	result, _, err := getSystemPowerStatus.Call(uintptr(unsafe.Pointer(&status)))
	if result == 0 {
		if err != nil {
			return model.BatteryStatus{}, fmt.Errorf("get system power status: %w", err)
		}
		return model.BatteryStatus{}, fmt.Errorf("get system power status: unknown error")
	}

	if status.batteryFlag == batteryFlagUnknown || status.batteryFlag&batteryFlagNoBattery != 0 {
		return model.BatteryStatus{}, timekeeper.ErrBatteryUnsupported
	}
	if status.batteryLifePercent > batteryPercentKnown {
		return model.BatteryStatus{}, fmt.Errorf("get system power status: unknown charge")
	}
	return model.BatteryStatus{
		Percent:  int(status.batteryLifePercent),
		Charging: status.batteryFlag&batteryFlagCharging != 0,
	}, nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}
