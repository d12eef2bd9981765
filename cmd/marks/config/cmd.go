// Package configcmd implements the `marks config` command.
package configcmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/marks/cmd/marks/shared"
	"github.com/go-ports/marks/internal/config"
)

// Command implements `marks config`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	pathOnly bool
}

// New creates the config command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	c.cmd.Flags().BoolVar(&c.pathOnly, "path", false, "Print only the marks file path")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	settings, err := config.Resolve(c.ctx.Provider(), c.ctx.StorePath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if c.pathOnly {
		fmt.Fprintln(out, settings.StorePath)
		return nil
	}

	b, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(b))
	return nil
}
