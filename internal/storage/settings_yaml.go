package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pomodoro/internal/platform"
	"pomodoro/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes   int   `yaml:"work_minutes"`
	BreakMinutes  int   `yaml:"break_minutes"`
	Notifications       *bool `yaml:"notifications,omitempty"`
	SystemNotifications bool  `yaml:"system_notifications,omitempty"`
	LaunchAtLogin       bool  `yaml:"launch_at_login,omitempty"`
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences for appName.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from a YAML file.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

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
	return settings, nil
}

// SaveSettings writes user preferences for appName.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes user preferences to a YAML file, creating its directory.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	notifications := settings.Notifications
	fileData := yamlSettings{
		WorkMinutes:   int(settings.WorkDuration / time.Minute),
		BreakMinutes:  int(settings.BreakDuration / time.Minute),
		Notifications:       &notifications,
		SystemNotifications: settings.SystemNotifications,
		LaunchAtLogin:       settings.LaunchAtLogin,
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

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.WorkMinutes > 0 {
		settings.WorkDuration = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if fileData.BreakMinutes > 0 {
		settings.BreakDuration = time.Duration(fileData.BreakMinutes) * time.Minute
	}
	if fileData.Notifications != nil {
		settings.Notifications = *fileData.Notifications
	}
	settings.SystemNotifications = fileData.SystemNotifications
	settings.LaunchAtLogin = fileData.LaunchAtLogin
}
