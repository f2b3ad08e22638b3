package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ksface/internal/platform"
	"ksface/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	Scale   float64     `yaml:"scale"`
	Battery yamlBattery `yaml:"battery"`
}

type yamlBattery struct {
	Source            string `yaml:"source"`
	SimulatedPercent  *int   `yaml:"simulated_percent,omitempty"`
	SimulatedCharging bool   `yaml:"simulated_charging"`
}

// LoadSettings reads host preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings.Normalized(), nil
}

// SaveSettings writes host preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	settings = settings.Normalized()
	percent := settings.SimulatedPercent
	fileData := yamlSettings{
		Scale: settings.Scale,
		Battery: yamlBattery{
			Source:            string(settings.BatterySource),
			SimulatedPercent:  &percent,
			SimulatedCharging: settings.SimulatedCharging,
		},
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns the settings file location for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.Scale > 0 {
		settings.Scale = fileData.Scale
	}
	if fileData.Battery.Source != "" {
		settings.BatterySource = preferences.BatterySource(fileData.Battery.Source)
	}
	if fileData.Battery.SimulatedPercent != nil {
		settings.SimulatedPercent = *fileData.Battery.SimulatedPercent
	}
	settings.SimulatedCharging = fileData.Battery.SimulatedCharging
}
