// Package paths resolves the directory layout of a per-user toolchain
// installation.
package paths

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
)

// InstallRootName is the directory under the user profile that holds the
// toolchain installation.
const InstallRootName = ".wasmer"

// UserHomeDirectory determines the current user's profile directory using
// multiple fallback strategies.
func UserHomeDirectory() (string, error) {
	// Strategy 1: HOME environment variable
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}

	// Strategy 2: os.UserHomeDir() (USERPROFILE on Windows)
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home, nil
	}

	// Strategy 3: user database lookup
	if currentUser, err := user.Current(); err == nil && currentUser.HomeDir != "" {
		return currentUser.HomeDir, nil
	}

	return "", fmt.Errorf("unable to determine home directory: all detection strategies failed")
}

// DefaultInstallRoot returns the default installation root inside the
// current user's profile, e.g. C:\Users\me\.wasmer.
func DefaultInstallRoot() (string, error) {
	home, err := UserHomeDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, InstallRootName), nil
}

// BinDirectory returns the directory holding the toolchain executables.
func BinDirectory(installRoot string) string {
	return filepath.Join(installRoot, "bin")
}

// CacheDirectory returns the toolchain's compilation cache directory.
func CacheDirectory(installRoot string) string {
	return filepath.Join(installRoot, "cache")
}

// GlobalBinDirectory returns the per-user package manager bin directory,
// where globally installed packages place their command wrappers.
func GlobalBinDirectory() (string, error) {
	home, err := UserHomeDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "globals", "wapm_packages", ".bin"), nil
}

// InstallerLogPath returns the full path to the installer log file.
func InstallerLogPath(installRoot string) string {
	return filepath.Join(installRoot, "installer.log")
}
