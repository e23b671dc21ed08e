//go:build !windows

package installer

import "fmt"

// Registry-backed provisioning only exists on Windows. On other platforms
// these steps report a single failure which the installer logs and skips.

func writeToolchainEnv(installRoot, cacheDir string) error {
	return fmt.Errorf("toolchain environment values are only written on windows")
}

func removeToolchainEnv() error {
	return fmt.Errorf("toolchain environment values are only written on windows")
}

func registerUninstallEntry(installRoot, version string) error {
	return fmt.Errorf("uninstall entries are only registered on windows")
}

func removeUninstallEntry() error {
	return fmt.Errorf("uninstall entries are only registered on windows")
}
