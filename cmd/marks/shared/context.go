// Package shared holds the context passed to all CLI commands.
package shared

import (
	"github.com/go-ports/marks/internal/env"
	"github.com/go-ports/marks/internal/service"
)

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// StorePath overrides the store location.
	// When empty the store lives at <home>/.config/marks.list.
	StorePath string

	// Debug turns on debug-level logging to stderr.
	Debug bool

	// Env supplies the home and working directories. Nil means the real OS.
	Env env.Provider
}

// Provider returns the environment provider for this invocation.
func (c *Context) Provider() env.Provider {
	if c.Env != nil {
		return c.Env
	}
	return env.OS{}
}

// Service opens the mark service for this invocation.
func (c *Context) Service() (*service.Service, error) {
	return service.New(c.Provider(), c.StorePath)
}
