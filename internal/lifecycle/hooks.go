// Package lifecycle holds the hooks the installer runtime fires at its two
// state transitions: after payload files are in place (post-install) and
// after they are removed (post-uninstall). Each hook runs synchronously and
// at most once per transition; the installer guarantees non-reentrancy.
package lifecycle

import (
	"github.com/rs/zerolog"

	"github.com/wasmerio/windows-installer/internal/envpath"
	"github.com/wasmerio/windows-installer/internal/paths"
)

// Hooks updates the persisted user PATH for one installation.
type Hooks struct {
	mgr          *envpath.Manager
	binDir       string
	globalBinDir string
	log          zerolog.Logger
}

// NewHooks returns hooks for the installation rooted at installRoot. The
// per-user package manager bin directory is resolved from the user profile;
// when that resolution fails the hooks skip it and only maintain the
// toolchain's own bin directory.
func NewHooks(mgr *envpath.Manager, installRoot string, log zerolog.Logger) *Hooks {
	globalBin, err := paths.GlobalBinDirectory()
	if err != nil {
		log.Warn().Err(err).Msg("could not resolve global package bin directory")
		globalBin = ""
	}
	return &Hooks{
		mgr:          mgr,
		binDir:       paths.BinDirectory(installRoot),
		globalBinDir: globalBin,
		log:          log,
	}
}

// PostInstall makes the toolchain and global package executables
// discoverable on the command line.
func (h *Hooks) PostInstall() {
	h.log.Debug().Str("bin", h.binDir).Str("globalBin", h.globalBinDir).Msg("running post-install PATH hook")
	h.mgr.AddPath(h.binDir)
	if h.globalBinDir != "" {
		h.mgr.AddPath(h.globalBinDir)
	}
}

// PostUninstall reverts the PATH change for the toolchain bin directory.
//
// The global package bin directory is passed through AddPath here, not
// RemovePath. That matches the shipped installer's uninstall handling,
// where the entry survives uninstallation (the add is a no-op while the
// entry is present). Preserved as-is until the intended uninstall behavior
// is confirmed; see the companion test.
func (h *Hooks) PostUninstall() {
	h.log.Debug().Str("bin", h.binDir).Msg("running post-uninstall PATH hook")
	h.mgr.RemovePath(h.binDir)
	if h.globalBinDir != "" {
		h.mgr.AddPath(h.globalBinDir)
	}
}
