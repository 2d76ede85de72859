package cli

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/govalet/internal/app"
	"github.com/doeshing/govalet/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(opts Options) *cobra.Command {
	container := app.BuildContainer(opts.Verbose)

	root := &cobra.Command{
		Use:   "govalet",
		Short: "govalet - local PHP development environment manager",
		Long:  "govalet keeps dnsmasq, nginx and php-fpm installed, linked and running for local development.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		commands.NewDoctorCommand(container),
		commands.NewInstallCommand(container),
		commands.NewUninstallCommand(container),
		commands.NewUseCommand(container),
		commands.NewStartCommand(container),
		commands.NewStopCommand(container),
		commands.NewRestartCommand(container),
		commands.NewStatusCommand(container),
		commands.NewConfigCommand(container),
		commands.NewHistoryCommand(container),
		commands.NewVersionCommand(),
	)
	return root
}
