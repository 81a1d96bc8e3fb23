//go:build linux

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (item *Autostart) enable() error {
	path, err := item.entryPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create autostart dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(desktopEntry(item.appName, item.execPath)), 0o644); err != nil {
		return fmt.Errorf("write desktop entry: %w", err)
	}
	return nil
}

func (item *Autostart) disable() error {
	path, err := item.entryPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove desktop entry: %w", err)
	}
	return nil
}

func (item *Autostart) entryPath() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart", slug(item.appName)+".desktop"), nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}

func desktopEntry(appName, execPath string) string {
	if strings.Contains(execPath, " ") && !strings.HasPrefix(execPath, `"`) {
		execPath = `"` + execPath + `"`
	}
	return fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Comment=Pomodoro work and break timer
Exec=%s
X-GNOME-Autostart-enabled=true
Terminal=false
`, appName, execPath)
}
