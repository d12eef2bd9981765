// Package listcmd implements the `marks list` command.
package listcmd

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/go-ports/marks/cmd/marks/shared"
	"github.com/go-ports/marks/internal/render"
)

// Command implements `marks list`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	format string
}

// New creates the list command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:     "list [pattern]",
		Aliases: []string{"ls"},
		Short:   "List all marks",
		Long:    "List all marks as 'name: path' lines. An optional glob pattern (e.g. 'api-*') filters by name.",
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.run,
	}

	c.cmd.Flags().StringVarP(&c.format, "format", "f", render.FormatText,
		"Output format: "+strings.Join(render.Formats, " | "))

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}

	pattern := ""
	if len(args) == 1 {
		pattern = args[0]
	}
	marks, err := svc.List(pattern)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return render.Marks(out, marks, render.Options{
		Format: c.format,
		Color:  isTerminal(out),
	})
}

// isTerminal reports whether out is the process stdout and colour is enabled
// for it.
func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && f == os.Stdout && !color.NoColor
}
