package skeleton

import (
	"os"
	"path/filepath"

	"github.com/pkgsmith/pkgsmith/internal/debug"
)

// Body is one segment of a generated file. The zero value is the explicit
// "no text" variant; it contributes nothing during composition.
type Body struct {
	// Text is the segment text.
	Text string
	// Present reports whether the segment carries text at all.
	Present bool
}

// BodyOf wraps text in a present Body.
func BodyOf(text string) Body {
	return Body{Text: text, Present: true}
}

// FileSpec describes one file of the package skeleton. Specs are built once
// during Builder construction and never mutated afterwards.
type FileSpec struct {
	// Name is the file name without any directory component.
	Name string
	// Subdir is the destination subdirectory relative to the collection
	// base; empty means the base directory itself.
	Subdir string
	// Executable selects the executable permission bit on save.
	Executable bool
	// Body is the main file content.
	Body Body
	// Head is prepended before Body.
	Head Body
	// Tail is appended after Body.
	Tail Body
}

// Compose returns the final file content: head, body, tail, in that order,
// absent segments contributing nothing.
func (s FileSpec) Compose() []byte {
	var out []byte
	for _, segment := range []Body{s.Head, s.Body, s.Tail} {
		if segment.Present {
			out = append(out, segment.Text...)
		}
	}
	return out
}

// FileCollection accumulates pending FileSpecs and flushes them to disk in a
// single SaveAll call. It owns all filesystem side effects of generation.
type FileCollection struct {
	baseDir string
	specs   []FileSpec
}

// NewFileCollection creates a collection rooted at baseDir. Nothing is
// written until SaveAll.
func NewFileCollection(baseDir string) *FileCollection {
	return &FileCollection{baseDir: baseDir}
}

// Add registers one pending file.
func (c *FileCollection) Add(name, subdir string, body Body, executable bool, head, tail Body) {
	c.specs = append(c.specs, FileSpec{
		Name:       name,
		Subdir:     subdir,
		Executable: executable,
		Body:       body,
		Head:       head,
		Tail:       tail,
	})
}

// Specs returns the registered file specifications in registration order.
func (c *FileCollection) Specs() []FileSpec {
	out := make([]FileSpec, len(c.specs))
	copy(out, c.specs)
	return out
}

// BaseDir returns the directory all files are written under.
func (c *FileCollection) BaseDir() string {
	return c.baseDir
}

// SaveAll creates the destination directories and writes every registered
// file. Executable specs are written 0755, the rest 0644.
func (c *FileCollection) SaveAll() error {
	debug.Debug("[skeleton] Saving %d files under %s", len(c.specs), c.baseDir)

	for _, spec := range c.specs {
		dir := c.baseDir
		if spec.Subdir != "" {
			dir = filepath.Join(c.baseDir, spec.Subdir)
		}
		if err := createDir(dir); err != nil {
			return err
		}

		mode := os.FileMode(0644)
		if spec.Executable {
			mode = 0755
		}

		path := filepath.Join(dir, spec.Name)
		if err := writeFile(path, spec.Compose(), mode); err != nil {
			return err
		}
	}

	debug.Debug("[skeleton] All files saved")
	return nil
}

// createDir creates a directory and any necessary parents with 0755.
func createDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return newWriteError("failed to create directory", path, err)
	}
	return nil
}

// writeFile writes content atomically using a temporary file and rename.
func writeFile(path string, content []byte, mode os.FileMode) error {
	debug.Debug("[skeleton] Writing file: %s (size: %d bytes, mode: %o)", path, len(content), mode)

	tempFile := path + ".tmp"
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return newWriteError("failed to create temporary file", path, err)
	}

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(tempFile)
		return newWriteError("failed to write file content", path, err)
	}
	if closeErr != nil {
		_ = os.Remove(tempFile)
		return newWriteError("failed to close file", path, closeErr)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return newWriteError("failed to rename temporary file", path, err)
	}

	return nil
}
