package skeleton

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkgsmith/pkgsmith/internal/language"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name string
		spec FileSpec
		want string
	}{
		{
			name: "head body tail in order",
			spec: FileSpec{Head: BodyOf("H"), Body: BodyOf("B"), Tail: BodyOf("T")},
			want: "HBT",
		},
		{
			name: "absent body contributes nothing",
			spec: FileSpec{Head: BodyOf("H"), Tail: BodyOf("T")},
			want: "HT",
		},
		{
			name: "body only",
			spec: FileSpec{Body: BodyOf("B")},
			want: "B",
		},
		{
			name: "all absent",
			spec: FileSpec{},
			want: "",
		},
		{
			name: "present but empty segments",
			spec: FileSpec{Head: BodyOf(""), Body: BodyOf("B"), Tail: BodyOf("")},
			want: "B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(tt.spec.Compose()); got != tt.want {
				t.Errorf("Compose() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFileCollectionSaveAll(t *testing.T) {
	tmpDir := t.TempDir()
	base := filepath.Join(tmpDir, "package-demo", "package")

	c := NewFileCollection(base)
	c.Add("postinst", "debian", Body{}, true, BodyOf("#!/bin/bash\n"), BodyOf("exit 0\n"))
	c.Add("demo_cron", "misc", BodyOf("*/1 * * * * root true\n"), false, Body{}, Body{})
	c.Add("package.conf", "", BodyOf("[package]\nname=demo\n"), false, Body{}, Body{})

	if err := c.SaveAll(); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}

	t.Run("subdirectories created", func(t *testing.T) {
		for _, dir := range []string{"debian", "misc"} {
			info, err := os.Stat(filepath.Join(base, dir))
			if err != nil || !info.IsDir() {
				t.Errorf("expected directory %s: %v", dir, err)
			}
		}
	})

	t.Run("content composed head+body+tail", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(base, "debian", "postinst"))
		if err != nil {
			t.Fatalf("read postinst: %v", err)
		}
		if string(data) != "#!/bin/bash\nexit 0\n" {
			t.Errorf("unexpected postinst content: %q", data)
		}
	})

	t.Run("executable flag maps to file mode", func(t *testing.T) {
		info, err := os.Stat(filepath.Join(base, "debian", "postinst"))
		if err != nil {
			t.Fatalf("stat postinst: %v", err)
		}
		if info.Mode().Perm()&0111 == 0 {
			t.Errorf("postinst should be executable, mode %v", info.Mode())
		}

		info, err = os.Stat(filepath.Join(base, "misc", "demo_cron"))
		if err != nil {
			t.Fatalf("stat demo_cron: %v", err)
		}
		if info.Mode().Perm()&0111 != 0 {
			t.Errorf("demo_cron should not be executable, mode %v", info.Mode())
		}
	})

	t.Run("no temporary files left behind", func(t *testing.T) {
		err := filepath.WalkDir(base, func(path string, _ os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if strings.HasSuffix(path, ".tmp") {
				t.Errorf("leftover temporary file: %s", path)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("walk failed: %v", err)
		}
	})
}

func TestSaveAllWriteError(t *testing.T) {
	tmpDir := t.TempDir()

	// Occupy the base path with a regular file so directory creation fails.
	base := filepath.Join(tmpDir, "blocked")
	if err := os.WriteFile(base, []byte("x"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	c := NewFileCollection(base)
	c.Add("package.conf", "", BodyOf("x"), false, Body{}, Body{})

	err := c.SaveAll()
	if err == nil {
		t.Fatal("expected write error")
	}
	skelErr, ok := err.(*SkeletonError)
	if !ok || skelErr.Type != WriteFailed {
		t.Errorf("expected WriteFailed, got %T: %v", err, err)
	}
}

func TestEndToEndCreate(t *testing.T) {
	tmpDir := t.TempDir()

	b, err := New(Config{
		ProjectName: "my_app",
		Prefix:      "p-",
		Language:    language.C,
		OutputDir:   tmpDir,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := b.Create(); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	base := filepath.Join(tmpDir, "package-p-my-app", "package")
	wantFiles := []string{
		"debian/postinst", "debian/postrm", "debian/preinst", "debian/prerm",
		"mount/build-package", "mount/clean-package",
		"misc/my_app_cron", "misc/my_app_initd",
		"package.conf",
	}
	for _, rel := range wantFiles {
		if _, err := os.Stat(filepath.Join(base, rel)); err != nil {
			t.Errorf("expected file %s: %v", rel, err)
		}
	}

	if !IsPackageRootAt(filepath.Join(tmpDir, "package-p-my-app")) {
		t.Error("created skeleton root should be detected as a package root")
	}
}
