package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ksface/internal/core/model"
	"ksface/internal/core/timekeeper"
)

func TestParseSysfsBattery(t *testing.T) {
	tests := []struct {
		name     string
		capacity string
		status   string
		want     model.BatteryStatus
	}{
		{"discharging", "57\n", "Discharging\n", model.BatteryStatus{Percent: 57}},
		{"charging", "12\n", "Charging\n", model.BatteryStatus{Percent: 12, Charging: true}},
		{"full on mains", "100\n", "Full\n", model.BatteryStatus{Percent: 100}},
		{"clamped", "104", "Not charging", model.BatteryStatus{Percent: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSysfsBattery(tt.capacity, tt.status)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseSysfsBattery("n/a", "Unknown")
	assert.Error(t, err)
}

func TestParsePmset(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   model.BatteryStatus
	}{
		{
			name: "discharging",
			output: "Now drawing from 'Battery Power'\n" +
				" -InternalBattery-0 (id=4653155)\t83%; discharging; 5:12 remaining present: true\n",
			want: model.BatteryStatus{Percent: 83},
		},
		{
			name: "charging",
			output: "Now drawing from 'AC Power'\n" +
				" -InternalBattery-0 (id=4653155)\t41%; charging; 1:02 remaining present: true\n",
			want: model.BatteryStatus{Percent: 41, Charging: true},
		},
		{
			name: "charged",
			output: "Now drawing from 'AC Power'\n" +
				" -InternalBattery-0 (id=4653155)\t100%; charged; 0:00 remaining present: true\n",
			want: model.BatteryStatus{Percent: 100},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePmset(tt.output)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parsePmset("Now drawing from 'AC Power'\n")
	assert.ErrorIs(t, err, timekeeper.ErrBatteryUnsupported)
}

func TestSimulatedBattery(t *testing.T) {
	battery := NewSimulatedBattery(model.BatteryStatus{Percent: 95})
	status, err := battery.Battery()
	require.NoError(t, err)
	assert.Equal(t, model.BatteryStatus{Percent: 95}, status)

	assert.Equal(t, model.BatteryStatus{Percent: 100}, battery.Adjust(10))
	assert.Equal(t, model.BatteryStatus{Percent: 100, Charging: true}, battery.ToggleCharging())
	assert.Equal(t, model.BatteryStatus{Percent: 0, Charging: true}, battery.Adjust(-250))

	battery.Set(model.BatteryStatus{Percent: 55})
	status, _ = battery.Battery()
	assert.Equal(t, model.BatteryStatus{Percent: 55}, status)
}

func TestSimulatedBatteryDrivesTimeKeeper(t *testing.T) {
	var provider BatteryProvider = NewSimulatedBattery(model.BatteryStatus{Percent: 30})
	keeper := timekeeper.New(timekeeper.Config{})
	keeper.SetBatteryChecker(provider)
	status, err := keeper.Peek()
	require.NoError(t, err)
	assert.Equal(t, 30, status.Percent)
}
