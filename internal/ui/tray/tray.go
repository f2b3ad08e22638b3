package tray

import (
	"fmt"

	"fyne.io/fyne/v2"

	"ksface/internal/core/model"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowFace    func()
	OnShowSeconds func()
	OnPreferences func()
	OnSnapshot    func()
	OnQuit        func()
}

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Manager handles system tray state.
type Manager struct {
	app        MenuHost
	statusItem *fyne.MenuItem
	callbacks  Callbacks
	battery    model.BatteryStatus
	known      bool
	simulated  bool
}

// New creates a tray manager with the provided callbacks.
func New(app MenuHost, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}
	manager.statusItem = fyne.NewMenuItem(manager.StatusLine(), nil)
	manager.statusItem.Disabled = true
	manager.refreshMenu()
	return manager
}

// SetBattery updates the battery shown in the status line.
func (manager *Manager) SetBattery(status model.BatteryStatus, simulated bool) {
	manager.battery = status
	manager.known = true
	manager.simulated = simulated
	manager.refreshStatus()
}

// SetBatteryUnavailable marks the battery as unknown.
func (manager *Manager) SetBatteryUnavailable() {
	manager.known = false
	manager.refreshStatus()
}

// StatusLine returns the text of the status item.
func (manager *Manager) StatusLine() string {
	if !manager.known {
		return "Battery: unavailable"
	}
	status := fmt.Sprintf("Battery: %d%%", manager.battery.Percent)
	if manager.battery.Charging {
		status += ", charging"
	}
	if manager.simulated {
		status += " (simulated)"
	}
	return status
}

func (manager *Manager) refreshStatus() {
	manager.statusItem.Label = manager.StatusLine()
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("ksface",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.item("Show face", manager.callbacks.OnShowFace),
		manager.item("Show seconds", manager.callbacks.OnShowSeconds),
		manager.item("Save snapshot", manager.callbacks.OnSnapshot),
		manager.item("Preferences", manager.callbacks.OnPreferences),
		fyne.NewMenuItemSeparator(),
		manager.item("Quit", manager.callbacks.OnQuit),
	))
}

func (manager *Manager) item(label string, action func()) *fyne.MenuItem {
	item := fyne.NewMenuItem(label, func() {
		if action != nil {
			action()
		}
	})
	if label == "Quit" {
		item.IsQuit = true
	}
	return item
}
