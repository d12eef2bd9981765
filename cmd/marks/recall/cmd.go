// Package recallcmd implements the `marks recall` command.
package recallcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/marks/cmd/marks/shared"
	"github.com/go-ports/marks/internal/models"
)

// Command implements `marks recall`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the recall command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "recall [name]",
		Short: "Print the directory bookmarked under name",
		Long: "Print the directory bookmarked under name. If no mark name is provided '" +
			models.DefaultName + "' will be used instead.",
		Args:              cobra.MaximumNArgs(1),
		RunE:              c.run,
		ValidArgsFunction: c.complete,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}

	name := models.DefaultName
	if len(args) == 1 {
		name = args[0]
	}
	path, err := svc.Recall(name)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// complete offers existing mark names for shell completion.
func (c *Command) complete(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	svc, err := c.ctx.Service()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	marks, err := svc.List("")
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names := make([]string, 0, len(marks))
	for _, m := range marks {
		names = append(names, m.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
