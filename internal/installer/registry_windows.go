//go:build windows

package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/windows/registry"
)

const (
	productName  = "Wasmer"
	envKeyPath   = `Environment`
	uninstallKey = `Software\Microsoft\Windows\CurrentVersion\Uninstall\` + productName
)

// writeToolchainEnv records the environment variables the toolchain itself
// reads, in the current user's persisted environment.
func writeToolchainEnv(installRoot, cacheDir string) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, envKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open HKCU\\%s: %w", envKeyPath, err)
	}
	defer key.Close()

	values := map[string]string{
		"WASMER_DIR":       installRoot,
		"WASMER_CACHE_DIR": cacheDir,
	}
	for name, value := range values {
		if err := key.SetStringValue(name, value); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	return nil
}

// removeToolchainEnv deletes the toolchain's environment variables. Values
// that are already gone are not an error.
func removeToolchainEnv() error {
	key, err := registry.OpenKey(registry.CURRENT_USER, envKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open HKCU\\%s: %w", envKeyPath, err)
	}
	defer key.Close()

	for _, name := range []string{"WASMER_DIR", "WASMER_CACHE_DIR"} {
		if err := key.DeleteValue(name); err != nil && err != registry.ErrNotExist {
			return fmt.Errorf("delete %s: %w", name, err)
		}
	}
	return nil
}

// registerUninstallEntry creates the Add/Remove Programs entry so the
// installation shows up in the apps list with a working uninstall command.
func registerUninstallEntry(installRoot, version string) error {
	key, _, err := registry.CreateKey(registry.CURRENT_USER, uninstallKey, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("create uninstall key: %w", err)
	}
	defer key.Close()

	uninstaller, err := os.Executable()
	if err != nil {
		uninstaller = filepath.Join(installRoot, "bin", "wasmer-installer.exe")
	}

	values := map[string]string{
		"DisplayName":     productName,
		"DisplayVersion":  version,
		"InstallLocation": installRoot,
		"UninstallString": fmt.Sprintf(`"%s" uninstall`, uninstaller),
		"InstallDate":     time.Now().Format("20060102"),
	}
	for name, value := range values {
		if err := key.SetStringValue(name, value); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}

	for name, value := range map[string]uint32{"NoModify": 1, "NoRepair": 1} {
		if err := key.SetDWordValue(name, value); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	return nil
}

// removeUninstallEntry deletes the Add/Remove Programs entry.
func removeUninstallEntry() error {
	err := registry.DeleteKey(registry.CURRENT_USER, uninstallKey)
	if err != nil && err != registry.ErrNotExist {
		return fmt.Errorf("delete uninstall key: %w", err)
	}
	return nil
}
