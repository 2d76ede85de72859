package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/govalet/internal/app"
	"github.com/doeshing/govalet/internal/domain"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the local environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctorDiagnostics(cmd.OutOrStdout(), container)
		},
	}
}

// runDoctorDiagnostics runs the check battery, renders the report, and
// records the run.
func runDoctorDiagnostics(out io.Writer, container *app.Container) error {
	report := container.Doctor.Check()
	displayDoctorReport(out, report)

	if err := container.History.Save(domain.DoctorRun{
		Timestamp:    time.Now(),
		Success:      report.Success,
		FailedChecks: report.FailedChecks(),
		Instructions: report.InstructionBlock(),
	}); err != nil {
		container.Log.Warn("doctor run not recorded", map[string]interface{}{"error": err.Error()})
	}

	if !report.Success {
		return fmt.Errorf("environment check failed")
	}
	return nil
}

// displayDoctorReport displays the health check report
func displayDoctorReport(out io.Writer, report domain.HealthReport) {
	for _, result := range report.Results {
		status := "PASS"
		if !result.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(out, "[%s] %s\n", status, result.Description)
	}

	if report.Success {
		fmt.Fprintln(out, "\nEverything looks good.")
		return
	}
	fmt.Fprintln(out, "\nDebug suggestions:")
	fmt.Fprintln(out, report.InstructionBlock())
}
