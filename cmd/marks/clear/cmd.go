// Package clearcmd implements the `marks clear` command.
package clearcmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/go-ports/marks/cmd/marks/shared"
	"github.com/go-ports/marks/internal/models"
)

// Command implements `marks clear`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	all bool
}

// New creates the clear command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "clear [name]",
		Short: "Delete a mark, or every mark with --all",
		Long: "Delete the mark called name. If no mark name is provided '" +
			models.DefaultName + "' will be used instead. Deleting a mark that does not exist is not an error.",
		Args: cobra.MaximumNArgs(1),
		RunE: c.run,
	}

	c.cmd.Flags().BoolVar(&c.all, "all", false, "Delete all marks")

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
	removed, err := svc.Clear(name, c.all)
	if err != nil {
		return err
	}
	slog.Debug("cleared", "name", name, "all", c.all, "removed", removed)
	return nil
}
