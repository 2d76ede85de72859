package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/govalet/internal/app"
	"github.com/doeshing/govalet/internal/domain"
)

// NewStartCommand creates the start command
func NewStartCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "start [service]",
		Short: "Start a managed service, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				container.Backend.StartService(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Started %s.\n", args[0])
				return nil
			}
			container.Backend.StartService(domain.PackageDnsmasq)
			container.Backend.StartService(domain.PackageNginx)
			fmt.Fprintln(cmd.OutOrStdout(), "Started dnsmasq and nginx.")
			return nil
		},
	}
}

// NewStopCommand creates the stop command
func NewStopCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stop [service]",
		Short: "Stop a managed service, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				container.Backend.StopService(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Stopped %s.\n", args[0])
				return nil
			}
			container.Backend.StopService(domain.PackageDnsmasq)
			container.Backend.StopService(domain.PackageNginx)
			fmt.Fprintln(cmd.OutOrStdout(), "Stopped dnsmasq and nginx.")
			return nil
		},
	}
}

// NewRestartCommand creates the restart command
func NewRestartCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "restart [service]",
		Short: "Restart a managed service, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				container.Backend.RestartService(args[0])
				fmt.Fprintf(out, "Restarted %s.\n", args[0])
				return nil
			}
			container.Backend.RestartService(domain.PackageDnsmasq)
			container.Backend.RestartService(domain.PackageNginx)
			if err := container.Backend.RestartLinkedPhp(); err != nil {
				return err
			}
			fmt.Fprintln(out, "Restarted dnsmasq, nginx and the linked PHP FPM.")
			return nil
		},
	}
}
