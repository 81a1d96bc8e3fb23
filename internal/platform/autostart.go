package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var errNoExecutable = errors.New("executable path is empty")

// ConfigDir returns the per-user configuration directory.
func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("config dir: %w", err)
		}
		return "", fmt.Errorf("config dir: %w", homeErr)
	}
	return fallbackConfigDir(homeDir), nil
}

// Autostart launches the application when the user logs in.
type Autostart struct {
	appName  string
	execPath string
}

// NewAutostart returns a login item for appName running execPath.
func NewAutostart(appName, execPath string) *Autostart {
	return &Autostart{appName: appName, execPath: execPath}
}

// Set registers or removes the login item. Removing a missing item succeeds.
func (item *Autostart) Set(enabled bool) error {
	if !enabled {
		if err := item.disable(); err != nil {
			return fmt.Errorf("disable autostart: %w", err)
		}
		return nil
	}

	if item.execPath == "" {
		return fmt.Errorf("enable autostart: %w", errNoExecutable)
	}
	if err := item.enable(); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

// slug lowercases appName and replaces spaces, for file names and labels.
func slug(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	if name == "" {
		name = "pomodoro"
	}
	return strings.ReplaceAll(name, " ", "-")
}
