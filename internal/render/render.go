// Package render formats mark listings for the terminal and for scripts.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/marks/internal/models"
)

// Output formats accepted by Marks.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatNames = "names"
)

// Formats lists the accepted format names.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatNames}

var nameColor = color.New(color.FgCyan, color.Bold)

// Options controls Marks output.
type Options struct {
	Format string // one of Formats; empty means FormatText
	Color  bool   // colour names in text output
}

// Marks writes marks to w in the requested format.
func Marks(w io.Writer, marks []models.Mark, opts Options) error {
	switch opts.Format {
	case "", FormatText:
		return text(w, marks, opts.Color)
	case FormatJSON:
		return jsonObject(w, marks)
	case FormatYAML:
		return yamlObject(w, marks)
	case FormatNames:
		for _, m := range marks {
			if _, err := fmt.Fprintln(w, m.Name); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want one of: %s)", opts.Format, strings.Join(Formats, ", "))
	}
}

// text prints one "name: path" line per mark.
func text(w io.Writer, marks []models.Mark, colored bool) error {
	for _, m := range marks {
		name := m.Name
		if colored {
			name = nameColor.Sprint(name)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", name, m.Path); err != nil {
			return err
		}
	}
	return nil
}

func toMap(marks []models.Mark) map[string]string {
	m := make(map[string]string, len(marks))
	for _, mk := range marks {
		m[mk.Name] = mk.Path
	}
	return m
}

func jsonObject(w io.Writer, marks []models.Mark) error {
	b, err := json.MarshalIndent(toMap(marks), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func yamlObject(w io.Writer, marks []models.Mark) error {
	if len(marks) == 0 {
		_, err := fmt.Fprintln(w, "{}")
		return err
	}
	b, err := yaml.Marshal(toMap(marks))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(b))
	return err
}
