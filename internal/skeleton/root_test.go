package skeleton

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsPackageRootAt(t *testing.T) {
	t.Run("directory with package marker", func(t *testing.T) {
		tmpDir := t.TempDir()
		if err := os.Mkdir(filepath.Join(tmpDir, "package"), 0755); err != nil {
			t.Fatalf("setup failed: %v", err)
		}
		if !IsPackageRootAt(tmpDir) {
			t.Error("expected package root to be detected")
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		if IsPackageRootAt(t.TempDir()) {
			t.Error("empty directory must not be a package root")
		}
	})

	t.Run("package as regular file", func(t *testing.T) {
		tmpDir := t.TempDir()
		if err := os.WriteFile(filepath.Join(tmpDir, "package"), []byte("x"), 0644); err != nil {
			t.Fatalf("setup failed: %v", err)
		}
		if IsPackageRootAt(tmpDir) {
			t.Error("a plain file named package must not mark a package root")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		if IsPackageRootAt(filepath.Join(t.TempDir(), "nope")) {
			t.Error("nonexistent directory must not be a package root")
		}
	})
}
