// Package installer drives the install/uninstall lifecycle for a per-user
// toolchain installation: payload placement, the toolchain's own registry
// environment values, the Add/Remove Programs entry, and the PATH lifecycle
// hooks fired after each transition.
package installer

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/wasmerio/windows-installer/internal/envpath"
	"github.com/wasmerio/windows-installer/internal/lifecycle"
	"github.com/wasmerio/windows-installer/internal/paths"
)

// Options configures a single install or uninstall run.
type Options struct {
	// InstallRoot is the installation root directory. Empty selects the
	// default location in the user profile.
	InstallRoot string

	// PayloadDir is the directory holding the toolchain executables to
	// install. Required for install, unused for uninstall.
	PayloadDir string

	// Version is recorded in the Add/Remove Programs entry.
	Version string

	// DryRun plans the run and exercises the PATH cycle against an
	// in-memory copy of the persisted value, without touching the file
	// system or the registry.
	DryRun bool
}

// Installer performs install and uninstall runs. Registry-backed steps are
// best-effort: a failure there is logged and the run continues, because a
// missing PATH entry or uninstall entry is an inconvenience, not a reason
// to abort payload placement or removal.
type Installer struct {
	opts  Options
	store envpath.Store
	log   zerolog.Logger

	// Registry provisioning steps, swappable in tests.
	writeEnv      func(installRoot, cacheDir string) error
	removeEnv     func() error
	registerEntry func(installRoot, version string) error
	removeEntry   func() error
}

// New returns an Installer for opts, resolving the default install root
// when none is given.
func New(opts Options, log zerolog.Logger) (*Installer, error) {
	if opts.InstallRoot == "" {
		root, err := paths.DefaultInstallRoot()
		if err != nil {
			return nil, fmt.Errorf("resolve install root: %w", err)
		}
		opts.InstallRoot = root
	}

	var store envpath.Store = envpath.NewUserEnvironmentStore()
	if opts.DryRun {
		store = dryRunStore(store, log)
	}

	return NewWithStore(opts, store, log), nil
}

// NewWithStore returns an Installer using an explicit PATH store. The
// installer binaries use New; tests use this to observe the persisted
// value without a registry.
func NewWithStore(opts Options, store envpath.Store, log zerolog.Logger) *Installer {
	return &Installer{
		opts:          opts,
		store:         store,
		log:           log,
		writeEnv:      writeToolchainEnv,
		removeEnv:     removeToolchainEnv,
		registerEntry: registerUninstallEntry,
		removeEntry:   removeUninstallEntry,
	}
}

// dryRunStore seeds a MemoryStore from the real persisted value so the
// dry-run PATH cycle reports what a real run would do.
func dryRunStore(real envpath.Store, log zerolog.Logger) envpath.Store {
	value, ok, err := real.Read()
	if err != nil || !ok {
		if err != nil {
			log.Warn().Err(err).Msg("could not read current PATH value for dry run")
		}
		return envpath.NewMemoryStore()
	}
	return envpath.NewSeededMemoryStore(value)
}

// InstallRoot returns the resolved installation root.
func (i *Installer) InstallRoot() string {
	return i.opts.InstallRoot
}

// Install provisions the installation and fires the post-install PATH
// hook. File system failures abort the run; registry failures do not.
func (i *Installer) Install() error {
	root := i.opts.InstallRoot
	binDir := paths.BinDirectory(root)
	cacheDir := paths.CacheDirectory(root)

	i.log.Info().Str("root", root).Bool("dryRun", i.opts.DryRun).Msg("installing toolchain")

	if i.opts.PayloadDir == "" {
		return fmt.Errorf("no payload directory given")
	}
	payload, err := listPayload(i.opts.PayloadDir)
	if err != nil {
		return fmt.Errorf("inspect payload: %w", err)
	}
	if len(payload) == 0 {
		return fmt.Errorf("payload directory %s contains no files", i.opts.PayloadDir)
	}

	if !i.opts.DryRun {
		for _, dir := range []string{root, binDir, cacheDir} {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := copyPayload(payload, binDir); err != nil {
			return fmt.Errorf("copy payload: %w", err)
		}
		i.log.Info().Int("files", len(payload)).Str("bin", binDir).Msg("payload installed")

		if err := i.writeEnv(root, cacheDir); err != nil {
			i.log.Warn().Err(err).Msg("failed to write toolchain environment values")
		}
		if err := i.registerEntry(root, i.opts.Version); err != nil {
			i.log.Warn().Err(err).Msg("failed to register uninstall entry")
		}
	} else {
		for _, f := range payload {
			i.log.Info().Str("file", f).Str("bin", binDir).Msg("would install payload file")
		}
	}

	i.hooks().PostInstall()

	i.log.Info().Str("root", root).Msg("install complete")
	return nil
}

// Uninstall removes the installation and fires the post-uninstall PATH
// hook. A missing installation is not an error; uninstall is idempotent.
func (i *Installer) Uninstall() error {
	root := i.opts.InstallRoot
	binDir := paths.BinDirectory(root)
	cacheDir := paths.CacheDirectory(root)

	i.log.Info().Str("root", root).Bool("dryRun", i.opts.DryRun).Msg("uninstalling toolchain")

	if !i.opts.DryRun {
		for _, dir := range []string{binDir, cacheDir} {
			if err := os.RemoveAll(dir); err != nil {
				return fmt.Errorf("remove %s: %w", dir, err)
			}
		}
		// The root is only removed when nothing else lives in it.
		if err := os.Remove(root); err != nil && !os.IsNotExist(err) {
			i.log.Debug().Err(err).Str("root", root).Msg("leaving install root in place")
		}

		if err := i.removeEnv(); err != nil {
			i.log.Warn().Err(err).Msg("failed to remove toolchain environment values")
		}
		if err := i.removeEntry(); err != nil {
			i.log.Warn().Err(err).Msg("failed to remove uninstall entry")
		}
	}

	i.hooks().PostUninstall()

	i.log.Info().Str("root", root).Msg("uninstall complete")
	return nil
}

func (i *Installer) hooks() *lifecycle.Hooks {
	mgr := envpath.NewManager(i.store, i.log)
	return lifecycle.NewHooks(mgr, i.opts.InstallRoot, i.log)
}
