package paths

import (
	"path/filepath"
	"testing"
)

// TestUserHomeDirectoryFromEnv verifies that the HOME environment variable
// takes priority over the other detection strategies.
func TestUserHomeDirectoryFromEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := UserHomeDirectory()
	if err != nil {
		t.Fatalf("UserHomeDirectory() error = %v", err)
	}
	if got != home {
		t.Errorf("UserHomeDirectory() = %s; want %s", got, home)
	}
}

// TestDefaultInstallRoot verifies that the install root lives inside the
// user profile under the toolchain directory name.
func TestDefaultInstallRoot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := DefaultInstallRoot()
	if err != nil {
		t.Fatalf("DefaultInstallRoot() error = %v", err)
	}
	if want := filepath.Join(home, InstallRootName); got != want {
		t.Errorf("DefaultInstallRoot() = %s; want %s", got, want)
	}
}

// TestDerivedDirectories verifies the directories derived from the install
// root.
func TestDerivedDirectories(t *testing.T) {
	root := filepath.Join("C:", "Users", "me", InstallRootName)

	if got, want := BinDirectory(root), filepath.Join(root, "bin"); got != want {
		t.Errorf("BinDirectory() = %s; want %s", got, want)
	}
	if got, want := CacheDirectory(root), filepath.Join(root, "cache"); got != want {
		t.Errorf("CacheDirectory() = %s; want %s", got, want)
	}
	if got, want := InstallerLogPath(root), filepath.Join(root, "installer.log"); got != want {
		t.Errorf("InstallerLogPath() = %s; want %s", got, want)
	}
}

// TestGlobalBinDirectory verifies the per-user package manager bin
// directory resolves relative to the user profile, not the install root.
func TestGlobalBinDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := GlobalBinDirectory()
	if err != nil {
		t.Fatalf("GlobalBinDirectory() error = %v", err)
	}
	if want := filepath.Join(home, "globals", "wapm_packages", ".bin"); got != want {
		t.Errorf("GlobalBinDirectory() = %s; want %s", got, want)
	}
}
