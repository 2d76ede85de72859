package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/govalet/internal/app"
	"github.com/doeshing/govalet/internal/domain"
)

const msgNoHistoryRecorded = "No doctor runs recorded yet."

// NewHistoryCommand creates the history command
func NewHistoryCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent doctor runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listDoctorRuns(cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistoryLimit, "Max runs to show")
	return cmd
}

// listDoctorRuns displays recent doctor run summaries
func listDoctorRuns(out io.Writer, container *app.Container, limit int) error {
	runs, err := container.History.List(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, msgNoHistoryRecorded)
		return nil
	}

	for _, run := range runs {
		verdict := "ok"
		if !run.Success {
			verdict = fmt.Sprintf("failed (%s)", strings.Join(run.FailedChecks, ", "))
		}
		fmt.Fprintf(out, "%s  %s  %s\n", run.Timestamp.Format(time.RFC3339), run.ID, verdict)
	}
	return nil
}
