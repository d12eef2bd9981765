// Package config resolves where the marks store lives.
package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/go-ports/marks/internal/env"
	"github.com/go-ports/marks/internal/models"
)

// ErrNoHome is returned when the host cannot supply a home directory.
var ErrNoHome = errors.New("could not locate home folder")

// StoreRelPath is the store location relative to the home directory.
var StoreRelPath = filepath.Join(".config", "marks.list")

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

// Settings describes the resolved runtime configuration, as shown by
// `marks config`.
type Settings struct {
	StorePath   string `yaml:"store_path"`
	StoreSource string `yaml:"store_source"` // "flag" | "default"
	DefaultMark string `yaml:"default_mark"`
}

// Resolve builds Settings from p and the --store flag value.
func Resolve(p env.Provider, override string) (*Settings, error) {
	path, source, err := ResolveStorePath(p, override)
	if err != nil {
		return nil, err
	}
	return &Settings{
		StorePath:   path,
		StoreSource: source,
		DefaultMark: models.DefaultName,
	}, nil
}

// ---------------------------------------------------------------------------
// Store path resolution
// ---------------------------------------------------------------------------

// DefaultStorePath returns <home>/.config/marks.list.
func DefaultStorePath(p env.Provider) (string, error) {
	home, err := p.HomeDir()
	if err != nil || home == "" {
		return "", ErrNoHome
	}
	return filepath.Join(home, StoreRelPath), nil
}

// ResolveStorePath returns the store path and the source it came from.
// Priority: override (the --store flag) → <home>/.config/marks.list.
// source is one of "flag" or "default".
func ResolveStorePath(p env.Provider, override string) (path, source string, err error) {
	if override = strings.TrimSpace(override); override != "" {
		path, err = normalizePath(p, override)
		if err != nil {
			return "", "", err
		}
		return path, "flag", nil
	}

	path, err = DefaultStorePath(p)
	if err != nil {
		return "", "", err
	}
	return path, "default", nil
}

// normalizePath expands a leading ~ and makes the path absolute.
func normalizePath(p env.Provider, path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := p.HomeDir()
		if err != nil || home == "" {
			return "", ErrNoHome
		}
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	cwd, err := p.CurrentDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, path), nil
}
