//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const runKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (item *Autostart) enable() error {
	quoted := `"` + strings.Trim(item.execPath, `"`) + `"`
	return runReg("add", runKey, "/v", item.appName, "/t", "REG_SZ", "/d", quoted, "/f")
}

func (item *Autostart) disable() error {
	if err := exec.Command("reg", "query", runKey, "/v", item.appName).Run(); err != nil {
		// Value is absent.
		return nil
	}
	return runReg("delete", runKey, "/v", item.appName, "/f")
}

func runReg(args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg %s: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}
