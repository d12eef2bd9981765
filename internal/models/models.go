// Package models defines the core data types for marks.
package models

import (
	"sort"
	"strings"
)

// DefaultName is the mark used when no name is given on the command line.
const DefaultName = "default"

// DefaultKey is how the default mark is referred to in user-facing messages.
const DefaultKey = "the default path"

// Mark is a named directory bookmark.
type Mark struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// NormalizeName lowercases name; mark names are case-insensitive.
// Whitespace is kept as given. An empty name resolves to DefaultName.
func NormalizeName(name string) string {
	if name == "" {
		return DefaultName
	}
	return strings.ToLower(name)
}

// FromMap converts a name → path mapping into marks sorted by name.
func FromMap(m map[string]string) []Mark {
	out := make([]Mark, 0, len(m))
	for name, path := range m {
		out = append(out, Mark{Name: name, Path: path})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
