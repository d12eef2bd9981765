// Package initcmd implements the `marks init` command.
package initcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/marks/cmd/marks/shared"
	"github.com/go-ports/marks/internal/shellinit"
)

// Command implements `marks init`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	fn  string
	bin string
}

// New creates the init command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "init <bash|zsh|fish>",
		Short: "Print shell integration (a function that jumps to marks)",
		Long: `Print a shell function that changes into a recalled mark.

  bash:  eval "$(marks init bash)"
  zsh:   eval "$(marks init zsh)"
  fish:  marks init fish | source

The function (default "m") jumps with "m NAME", marks with "m -s NAME",
deletes with "m -d NAME" and lists with "m -l".`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: shellinit.Shells,
		RunE:      c.run,
	}

	f := c.cmd.Flags()
	f.StringVar(&c.fn, "func", "m", "Name of the generated shell function")
	f.StringVar(&c.bin, "bin", "marks", "Executable the function calls")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	script, err := shellinit.Script(args[0], shellinit.Options{Bin: c.bin, Func: c.fn})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), script)
	return nil
}
