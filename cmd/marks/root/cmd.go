// Package rootcmd wires the root cobra.Command for the marks CLI binary.
package rootcmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	clearcmd "github.com/go-ports/marks/cmd/marks/clear"
	configcmd "github.com/go-ports/marks/cmd/marks/config"
	initcmd "github.com/go-ports/marks/cmd/marks/init"
	listcmd "github.com/go-ports/marks/cmd/marks/list"
	markcmd "github.com/go-ports/marks/cmd/marks/mark"
	mcpcmd "github.com/go-ports/marks/cmd/marks/mcp"
	recallcmd "github.com/go-ports/marks/cmd/marks/recall"
	"github.com/go-ports/marks/cmd/marks/shared"
	"github.com/go-ports/marks/internal/buildinfo"
)

// New creates and returns the root cobra.Command for the marks CLI.
func New() *cobra.Command {
	return NewWithContext(&shared.Context{})
}

// NewWithContext is New with a caller-supplied shared context, letting tests
// inject a fake environment.
func NewWithContext(ctx *shared.Context) *cobra.Command {
	root := &cobra.Command{
		Use:           "marks",
		Short:         "Bookmark directories by name and jump back to them",
		Version:       buildinfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if ctx.Debug {
				slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().StringVar(
		&ctx.StorePath, "store", "",
		"Override the marks file location (default: ~/.config/marks.list)",
	)
	root.PersistentFlags().BoolVar(&ctx.Debug, "debug", false, "Log debug output to stderr")

	root.AddCommand(
		markcmd.New(ctx).Cmd(),
		recallcmd.New(ctx).Cmd(),
		clearcmd.New(ctx).Cmd(),
		listcmd.New(ctx).Cmd(),
		configcmd.New(ctx).Cmd(),
		initcmd.New(ctx).Cmd(),
		mcpcmd.New(ctx).Cmd(),
	)

	return root
}
