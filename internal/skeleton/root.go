package skeleton

import (
	"os"
	"path/filepath"
)

// IsPackageRoot reports whether the working directory is a package root,
// i.e. already contains the package marker directory.
func IsPackageRoot() bool {
	return IsPackageRootAt(".")
}

// IsPackageRootAt reports whether dir contains the package marker directory.
func IsPackageRootAt(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, markerDir))
	return err == nil && info.IsDir()
}
