// Package markcmd implements the `marks mark` command.
package markcmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/go-ports/marks/cmd/marks/shared"
	"github.com/go-ports/marks/internal/models"
)

// Command implements `marks mark`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the mark command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "mark [name]",
		Short: "Bookmark the current directory",
		Long: "Bookmark the current directory under name. If no mark name is provided '" +
			models.DefaultName + "' will be used instead. An existing mark with the same name is replaced.",
		Args: cobra.MaximumNArgs(1),
		RunE: c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(_ *cobra.Command, args []string) error {
	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}

	name := models.DefaultName
	if len(args) == 1 {
		name = args[0]
	}
	m, err := svc.Mark(name)
	if err != nil {
		return err
	}
	slog.Debug("marked", "name", m.Name, "path", m.Path)
	return nil
}
