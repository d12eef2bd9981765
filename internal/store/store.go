// Package store persists the name → path mapping as a single JSON file.
//
// The file is read once and written at most once per invocation. There is no
// locking: two processes saving at the same time race and the later write
// wins. Writes go through a temp file and rename so a crash mid-write never
// leaves a truncated store behind.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

// AccessError reports an I/O fault reading or writing the store or creating
// its parent directory.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot access the marks located at '%s': %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// DeserializeError reports a store file that exists but is not a JSON object
// of strings.
type DeserializeError struct {
	Path string
	Err  error
}

func (e *DeserializeError) Error() string {
	return fmt.Sprintf("could not read marks located at '%s'. Is the file malformed?", e.Path)
}

func (e *DeserializeError) Unwrap() error { return e.Err }

var errNullStore = errors.New("store is null")

// ---------------------------------------------------------------------------
// File
// ---------------------------------------------------------------------------

// File is the on-disk store.
type File struct {
	Path string
}

// New returns a File rooted at path.
func New(path string) *File {
	return &File{Path: path}
}

// Load reads and decodes the mapping. A missing file yields an empty,
// non-nil mapping.
func (f *File) Load() (map[string]string, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("store: no file yet, starting empty", "path", f.Path)
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, &AccessError{Path: f.Path, Err: err}
	}

	var marks map[string]string
	if err := json.Unmarshal(data, &marks); err != nil {
		return nil, &DeserializeError{Path: f.Path, Err: err}
	}
	if marks == nil {
		return nil, &DeserializeError{Path: f.Path, Err: errNullStore}
	}
	slog.Debug("store: loaded", "path", f.Path, "marks", len(marks))
	return marks, nil
}

// Save encodes marks and replaces the store file, creating parent
// directories as needed.
func (f *File) Save(marks map[string]string) error {
	if marks == nil {
		marks = make(map[string]string)
	}
	data, err := json.Marshal(marks)
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &AccessError{Path: f.Path, Err: err}
	}
	target, perm := resolveTarget(f.Path)
	if err := writeAtomic(target, data, perm); err != nil {
		return &AccessError{Path: f.Path, Err: err}
	}
	slog.Debug("store: saved", "path", f.Path, "target", target, "marks", len(marks))
	return nil
}

// resolveTarget follows symlinks at path so the rename lands on the linked
// file rather than replacing the link, and keeps an existing file's mode.
// A path that does not exist yet is written as-is with mode 0o644.
func resolveTarget(path string) (string, os.FileMode) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path, 0o644
	}
	fi, err := os.Stat(resolved)
	if err != nil {
		return resolved, 0o644
	}
	return resolved, fi.Mode().Perm()
}

// writeAtomic writes data to a temp file next to path and renames it into
// place.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".marks-tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	committed = true
	return nil
}
