package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wasmerio/windows-installer/internal/installer"
	"github.com/wasmerio/windows-installer/internal/logging"
	"github.com/wasmerio/windows-installer/internal/paths"
)

var (
	// Version of the installer (can be overridden at build time with -ldflags)
	Version = "dev"
	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

var (
	flagRoot    string
	flagPayload string
	flagDryRun  bool
	flagVerbose int
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "wasmer-installer",
		Short:   "Install or uninstall the Wasmer toolchain for the current user",
		Version: Version + " (" + GitCommit + ")",
	}
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "installation root (default: .wasmer in the user profile)")
	rootCmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "plan the run without modifying the system")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "enable debug logging")

	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Install the toolchain and add its bin directories to the user PATH",
		RunE: func(cmd *cobra.Command, _ []string) error {
			inst, err := newInstaller(cmd)
			if err != nil {
				return err
			}
			return inst.Install()
		},
	}
	installCmd.Flags().StringVar(&flagPayload, "payload", "", "directory holding the toolchain executables to install")

	uninstallCmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the toolchain and revert its user PATH entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			inst, err := newInstaller(cmd)
			if err != nil {
				return err
			}
			return inst.Uninstall()
		},
	}

	rootCmd.AddCommand(installCmd, uninstallCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newInstaller(cmd *cobra.Command) (*installer.Installer, error) {
	opts := installer.Options{
		InstallRoot: flagRoot,
		PayloadDir:  flagPayload,
		Version:     Version,
		DryRun:      flagDryRun,
	}

	// The log file lives inside the install root; until the root exists
	// the console writer alone carries the diagnostics.
	logFile := ""
	root := flagRoot
	if root == "" {
		if defaultRoot, err := paths.DefaultInstallRoot(); err == nil {
			root = defaultRoot
		}
	}
	if root != "" && !flagDryRun {
		logFile = paths.InstallerLogPath(root)
	}
	logging.Setup(flagVerbose, logFile)

	cmd.SilenceUsage = true
	return installer.New(opts, logging.Component("installer"))
}
