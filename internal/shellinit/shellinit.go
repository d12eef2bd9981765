// Package shellinit renders the shell functions that turn `marks recall` into
// a directory jump.
package shellinit

import (
	"embed"
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

//go:embed scripts/*
var scripts embed.FS

// Shells lists the supported shells.
var Shells = []string{"bash", "zsh", "fish"}

// Options customises the generated script.
type Options struct {
	Bin  string // executable name; default "marks"
	Func string // shell function name; default "m"
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Script returns the integration script for shell.
func Script(shell string, opts Options) (string, error) {
	shell = strings.ToLower(strings.TrimSpace(shell))
	if !isSupported(shell) {
		return "", fmt.Errorf("unsupported shell %q (want one of: %s)", shell, strings.Join(Shells, ", "))
	}
	if opts.Bin == "" {
		opts.Bin = "marks"
	}
	if opts.Func == "" {
		opts.Func = "m"
	}
	if !identRe.MatchString(opts.Func) {
		return "", fmt.Errorf("invalid function name %q", opts.Func)
	}
	if !identRe.MatchString(opts.Bin) {
		return "", fmt.Errorf("invalid executable name %q", opts.Bin)
	}

	tmpl, err := template.ParseFS(scripts, "scripts/marks."+shell)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func isSupported(shell string) bool {
	for _, s := range Shells {
		if s == shell {
			return true
		}
	}
	return false
}
