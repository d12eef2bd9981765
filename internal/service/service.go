// Package service implements the mark store operations. Every call loads the
// store from disk, applies one query or mutation, and saves the result when
// it mutated.
package service

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gobwas/glob"

	"github.com/go-ports/marks/internal/config"
	"github.com/go-ports/marks/internal/env"
	"github.com/go-ports/marks/internal/models"
	"github.com/go-ports/marks/internal/store"
)

// NoPathSetError is returned by Recall when no mark exists for Key.
type NoPathSetError struct {
	Key string
}

func (e *NoPathSetError) Error() string {
	return fmt.Sprintf("No path set for %s.", e.Key)
}

// Service orchestrates mark operations against one store file.
type Service struct {
	env   env.Provider
	store *store.File

	// mu serialises calls within one process (the MCP server). Separate
	// processes are not coordinated.
	mu sync.Mutex
}

// New initialises a Service. storeOverride is the --store flag value; when
// empty the store lives at <home>/.config/marks.list.
func New(p env.Provider, storeOverride string) (*Service, error) {
	if p == nil {
		p = env.OS{}
	}
	path, _, err := config.ResolveStorePath(p, storeOverride)
	if err != nil {
		return nil, err
	}
	return &Service{env: p, store: store.New(path)}, nil
}

// StorePath returns the resolved store file path.
func (s *Service) StorePath() string { return s.store.Path }

// ---------------------------------------------------------------------------
// Mark
// ---------------------------------------------------------------------------

// Mark points name at the current working directory, replacing any previous
// path for that name.
func (s *Service) Mark(name string) (models.Mark, error) {
	cwd, err := s.env.CurrentDir()
	if err != nil {
		return models.Mark{}, fmt.Errorf("service.Mark: current directory: %w", err)
	}
	return s.MarkPath(name, cwd)
}

// MarkPath points name at path. The path is stored as given.
func (s *Service) MarkPath(name, path string) (models.Mark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	marks, err := s.store.Load()
	if err != nil {
		return models.Mark{}, err
	}
	key := models.NormalizeName(name)
	marks[key] = path
	if err := s.store.Save(marks); err != nil {
		return models.Mark{}, err
	}
	return models.Mark{Name: key, Path: path}, nil
}

// ---------------------------------------------------------------------------
// Recall
// ---------------------------------------------------------------------------

// Recall returns the path stored for name.
func (s *Service) Recall(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	marks, err := s.store.Load()
	if err != nil {
		return "", err
	}
	key := models.NormalizeName(name)
	if path, ok := marks[key]; ok {
		return path, nil
	}
	if key == models.DefaultName {
		return "", &NoPathSetError{Key: models.DefaultKey}
	}
	return "", &NoPathSetError{Key: name}
}

// ---------------------------------------------------------------------------
// Clear
// ---------------------------------------------------------------------------

// Clear removes the mark for name, or every mark when all is set. Removing
// an absent mark is not an error. The store is saved either way. It returns
// how many marks were removed.
//
//revive:disable:flag-parameter
func (s *Service) Clear(name string, all bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	marks, err := s.store.Load()
	if err != nil {
		return 0, err
	}

	removed := 0
	if all {
		removed = len(marks)
		clear(marks)
	} else {
		key := models.NormalizeName(name)
		if _, ok := marks[key]; ok {
			delete(marks, key)
			removed = 1
		}
	}

	if err := s.store.Save(marks); err != nil {
		return 0, err
	}
	return removed, nil
}

//revive:enable:flag-parameter

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

// List returns all marks sorted by name. A non-empty pattern is a glob
// matched against the (lowercase) mark name.
func (s *Service) List(pattern string) ([]models.Mark, error) {
	var g glob.Glob
	if pattern != "" {
		var err error
		g, err = glob.Compile(strings.ToLower(pattern))
		if err != nil {
			return nil, fmt.Errorf("service.List: invalid pattern %q: %w", pattern, err)
		}
	}

	s.mu.Lock()
	marks, err := s.store.Load()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	out := models.FromMap(marks)
	if g == nil {
		return out, nil
	}
	filtered := make([]models.Mark, 0, len(out))
	for _, m := range out {
		if g.Match(m.Name) {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}
