// Package env abstracts the host lookups marks depends on: the user's home
// directory and the process working directory.
package env

import "os"

// Provider supplies the home and current directories.
type Provider interface {
	HomeDir() (string, error)
	CurrentDir() (string, error)
}

// OS is the Provider backed by the running process.
type OS struct{}

// HomeDir returns the user's home directory.
func (OS) HomeDir() (string, error) { return os.UserHomeDir() }

// CurrentDir returns the process working directory.
func (OS) CurrentDir() (string, error) { return os.Getwd() }

// Static is a Provider returning fixed values. An empty Home or Cwd is
// reported with the matching Err field, or os.ErrNotExist when that is nil.
type Static struct {
	Home    string
	Cwd     string
	HomeErr error
	CwdErr  error
}

// HomeDir returns s.Home.
func (s Static) HomeDir() (string, error) {
	if s.HomeErr != nil {
		return "", s.HomeErr
	}
	if s.Home == "" {
		return "", os.ErrNotExist
	}
	return s.Home, nil
}

// CurrentDir returns s.Cwd.
func (s Static) CurrentDir() (string, error) {
	if s.CwdErr != nil {
		return "", s.CwdErr
	}
	if s.Cwd == "" {
		return "", os.ErrNotExist
	}
	return s.Cwd, nil
}
