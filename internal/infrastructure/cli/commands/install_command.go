package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/govalet/internal/app"
	"github.com/doeshing/govalet/internal/infrastructure/cli/helpers"
)

// NewInstallCommand creates the install command
func NewInstallCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install and start the managed services",
		Long: `Scaffold the govalet install directory, install dnsmasq, nginx and PHP
through the system package manager, and start their services.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Installing govalet services...")
			if helpers.IsInteractive() {
				spinner := helpers.NewSpinner(out)
				spinner.Start()
				defer spinner.Stop()
			}

			if err := container.Installer.Install(); err != nil {
				return err
			}
			fmt.Fprintln(out, "govalet installed. Run `govalet doctor` to verify the setup.")
			return nil
		},
	}
}
