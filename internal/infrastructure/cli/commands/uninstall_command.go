package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/govalet/internal/app"
	"github.com/doeshing/govalet/internal/infrastructure/cli/helpers"
)

// NewUninstallCommand creates the uninstall command
func NewUninstallCommand(container *app.Container) *cobra.Command {
	var purge bool
	var yes bool

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Stop the managed services",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if purge && !yes {
				prompter := helpers.NewPrompter(cmd.InOrStdin(), out)
				confirmed, err := prompter.Confirm("Remove dnsmasq, nginx and PHP packages as well?")
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			container.Installer.Uninstall(purge)
			fmt.Fprintln(out, "govalet services stopped.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&purge, "purge", false, "Also remove the installed packages")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
