package preferences

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var batterySourceLabels = map[BatterySource]string{
	BatterySystem:    "System battery",
	BatterySimulated: "Simulated battery",
}

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)
	scale    *widget.Slider
	source   *widget.RadioGroup
	percent  *widget.Entry
	charging *widget.Check
	save     *widget.Button
	cancel   *widget.Button
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("ksface Settings")

	scale := widget.NewSlider(MinScale, MaxScale)
	scale.Step = 0.5

	source := widget.NewRadioGroup([]string{
		batterySourceLabels[BatterySystem],
		batterySourceLabels[BatterySimulated],
	}, nil)
	source.Required = true

	percent := widget.NewEntry()
	charging := widget.NewCheck("Charging", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Window", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Scale"),
		scale,
		widget.NewLabelWithStyle("Battery", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		source,
		container.NewHBox(widget.NewLabel("Simulated charge"), percent, widget.NewLabel("%")),
		charging,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 320))

	prefs := &Window{
		window:   window,
		onSave:   onSave,
		scale:    scale,
		source:   source,
		percent:  percent,
		charging: charging,
		save:     saveButton,
		cancel:   cancelButton,
	}
	prefs.UpdateSettings(settings)

	source.OnChanged = func(string) { prefs.syncSimulatedFields() }
	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	settings = settings.Normalized()
	prefs.settings = settings
	prefs.scale.Value = settings.Scale
	prefs.scale.Refresh()
	prefs.source.SetSelected(batterySourceLabels[settings.BatterySource])
	prefs.percent.SetText(fmt.Sprintf("%d", settings.SimulatedPercent))
	prefs.charging.SetChecked(settings.SimulatedCharging)
	prefs.syncSimulatedFields()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

func (prefs *Window) syncSimulatedFields() {
	if prefs.source.Selected == batterySourceLabels[BatterySimulated] {
		prefs.percent.Enable()
		prefs.charging.Enable()
		return
	}
	prefs.percent.Disable()
	prefs.charging.Disable()
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	settings.Scale = prefs.scale.Value
	settings.BatterySource = BatterySystem
	if prefs.source.Selected == batterySourceLabels[BatterySimulated] {
		settings.BatterySource = BatterySimulated
	}
	if percent, ok := parsePercent(prefs.percent.Text); ok {
		settings.SimulatedPercent = percent
	}
	settings.SimulatedCharging = prefs.charging.Checked

	prefs.settings = settings.Normalized()
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

func parsePercent(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 || parsed > 100 {
		return 0, false
	}
	return parsed, true
}
