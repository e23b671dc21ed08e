package main

import (
	"fmt"
	"runtime"

	"github.com/wasmerio/windows-installer/internal/paths"
)

func main() {
	fmt.Println("=== Wasmer Installer Path Verification ===")
	fmt.Printf("Operating System: %s\n\n", runtime.GOOS)

	root, err := paths.DefaultInstallRoot()
	if err != nil {
		fmt.Printf("Install Root: unresolved (%v)\n", err)
		return
	}

	fmt.Println("Install Root:")
	fmt.Printf("  %s\n\n", root)

	fmt.Println("Bin Directory:")
	fmt.Printf("  %s\n\n", paths.BinDirectory(root))

	fmt.Println("Cache Directory:")
	fmt.Printf("  %s\n\n", paths.CacheDirectory(root))

	globalBin, err := paths.GlobalBinDirectory()
	if err != nil {
		fmt.Printf("Global Package Bin Directory: unresolved (%v)\n", err)
	} else {
		fmt.Println("Global Package Bin Directory:")
		fmt.Printf("  %s\n\n", globalBin)
	}

	fmt.Println("Installer Log Path:")
	fmt.Printf("  %s\n", paths.InstallerLogPath(root))
}
