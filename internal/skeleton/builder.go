// Package skeleton generates the packaging file skeleton for a new project:
// Debian maintainer scripts, build and clean scripts, a cron entry, an init.d
// script and the package manifest.
package skeleton

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/pkgsmith/pkgsmith/internal/debug"
	"github.com/pkgsmith/pkgsmith/internal/language"
	"github.com/pkgsmith/pkgsmith/internal/license"
	"github.com/pkgsmith/pkgsmith/internal/render"
)

// dirPrefix prefixes every package root directory name; markerDir is the
// subdirectory that identifies a package root on disk.
const (
	dirPrefix = "package"
	markerDir = "package"
)

// defaultArch is the architecture baked into the build script when the
// configuration does not override it.
const defaultArch = "i686"

// Config is the immutable per-invocation generation configuration.
type Config struct {
	// ProjectName is the project name; underscores and hyphens are allowed.
	ProjectName string
	// Prefix is an optional name prefix for the root directory.
	Prefix string
	// Language selects whether a native build-script body is generated.
	Language language.Language
	// License is the license identifier; empty means no license block.
	License string
	// Arch overrides the default package destination architecture.
	Arch string
	// Maintainer is the package maintainer, "Name <email>" form.
	Maintainer string
	// Version is the initial package version; nil defaults to 0.1.1-beta.
	// A non-empty prerelease marks the package as a beta release.
	Version *semver.Version
	// OutputDir is the parent directory for the skeleton; empty means the
	// working directory.
	OutputDir string
}

// Builder composes the package skeleton files for one configuration and
// hands them to a FileCollection for writing.
type Builder struct {
	cfg     Config
	rootDir string
	files   *FileCollection
}

// New creates a Builder and registers every skeleton file. The root
// directory name favors hyphens (underscores in the project name are
// replaced), while cron/init file names favor underscores. An unknown
// license identifier fails here, before any file is registered.
func New(cfg Config) (*Builder, error) {
	if strings.TrimSpace(cfg.ProjectName) == "" {
		return nil, newValidationError("project name must not be empty", nil)
	}

	rootDir := dirPrefix + "-" + cfg.Prefix + strings.ReplaceAll(cfg.ProjectName, "_", "-")

	b := &Builder{
		cfg:     cfg,
		rootDir: rootDir,
		files:   NewFileCollection(filepath.Join(cfg.OutputDir, rootDir, markerDir)),
	}

	debug.Debug("[skeleton] New builder: project=%s, rootDir=%s, language=%s, license=%q",
		cfg.ProjectName, rootDir, cfg.Language, cfg.License)

	if err := b.registerFiles(); err != nil {
		return nil, err
	}
	return b, nil
}

// CurrentDir returns the computed package root directory name.
func (b *Builder) CurrentDir() string {
	return b.rootDir
}

// Files returns the registered file specifications, for inspection and
// dry-run display.
func (b *Builder) Files() []FileSpec {
	return b.files.Specs()
}

// Create writes all registered files to disk.
func (b *Builder) Create() error {
	return b.files.SaveAll()
}

// bindings derives the variable bindings for every template from the
// configuration. Placeholders without a binding survive substitution, so the
// scripts' own shell variables are never at risk.
func (b *Builder) bindings() render.Bindings {
	arch := b.cfg.Arch
	if arch == "" {
		arch = defaultArch
	}

	version := b.cfg.Version
	if version == nil {
		version = semver.New(0, 1, 1, "beta", "")
	}
	beta := version.Prerelease() != ""

	return render.Bindings{
		"PROJECT_NAME":    b.cfg.ProjectName,
		"PROJECT_BIN":     strings.ReplaceAll(b.cfg.ProjectName, "-", "_"),
		"MAINTAINER":      b.cfg.Maintainer,
		"YEAR":            strconv.Itoa(time.Now().Year()),
		"ARCH":            arch,
		"VERSION_MAJOR":   strconv.FormatUint(version.Major(), 10),
		"VERSION_MINOR":   strconv.FormatUint(version.Minor(), 10),
		"VERSION_RELEASE": strconv.FormatUint(version.Patch(), 10),
		"VERSION_BETA":    strconv.FormatBool(beta),
	}
}

// registerFiles builds the shared head and tail, composes each body and
// registers the nine skeleton files with the collection.
func (b *Builder) registerFiles() error {
	vars := b.bindings()

	head, err := b.scriptHead(vars)
	if err != nil {
		return err
	}
	tail := BodyOf(render.Render(language.ShellTail(), vars))

	// Identifier-like names (cron/init files, binary) favor underscores.
	prefix := strings.ReplaceAll(b.cfg.ProjectName, "-", "_")

	// Debian maintainer scripts: head and tail only.
	for _, name := range []string{"postinst", "postrm", "preinst", "prerm"} {
		b.files.Add(name, "debian", Body{}, true, head, tail)
	}

	// Build script: body only for the native compiled language; the file is
	// still generated with head and tail otherwise.
	b.files.Add("build-package", "mount", buildScriptBody(b.cfg.Language, vars), true, head, tail)
	b.files.Add("clean-package", "mount", BodyOf(render.Render(cleanScript, vars)), true, head, tail)

	// Cron and init.d entries carry their own framing.
	b.files.Add(prefix+"_cron", "misc", BodyOf(render.Render(cronEntry, vars)), false, Body{}, Body{})
	b.files.Add(prefix+"_initd", "misc", BodyOf(render.Render(initScript, vars)), true, Body{}, Body{})

	// Package manifest at the collection root.
	b.files.Add("package.conf", "", BodyOf(render.Render(packageConf, vars)), false, Body{}, Body{})

	debug.Debug("[skeleton] Registered %d files", len(b.files.specs))
	return nil
}

// scriptHead builds the shared script header. With a license configured the
// header template's insertion slot receives the rendered license block; the
// license error, if any, propagates unchanged.
func (b *Builder) scriptHead(vars render.Bindings) (Body, error) {
	if b.cfg.License == "" {
		return BodyOf(render.Render(language.ShellHeader(), vars)), nil
	}

	block, err := license.Block(b.cfg.License, vars, "#")
	if err != nil {
		return Body{}, err
	}
	head := fmt.Sprintf(render.Render(language.ShellHeaderWithLicense(), vars), block)
	return BodyOf(head), nil
}

// buildScriptBody selects the build-script body for the language. Every
// non-native language maps to the explicit no-body variant.
func buildScriptBody(lang language.Language, vars render.Bindings) Body {
	switch lang {
	case language.C:
		return BodyOf(render.Render(buildScript, vars))
	default:
		return Body{}
	}
}
