package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/doeshing/govalet/internal/app"
	"github.com/doeshing/govalet/internal/domain"
)

// NewStatusCommand creates the status command
func NewStatusCommand(container *app.Container) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the managed services and their state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return displayServiceStatus(cmd.OutOrStdout(), container, all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every service the manager knows, not just the managed ones")
	return cmd
}

// displayServiceStatus renders the normalized service snapshot.
func displayServiceStatus(out io.Writer, container *app.Container, all bool) error {
	records := container.Backend.Services()

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SERVICE\tSTATUS\tROOT\tREF")
	shown := 0
	for _, rec := range records {
		if !all && !isManagedService(rec.Name) {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%v\t%s\n", rec.Name, rec.Status, rec.RootOwned, rec.Ref)
		shown++
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if shown == 0 {
		fmt.Fprintln(out, "No services found. Run `govalet install` first.")
	}
	return nil
}

func isManagedService(name string) bool {
	return name == domain.PackageDnsmasq ||
		strings.Contains(name, domain.PackageNginx) ||
		strings.Contains(name, "php")
}
