package domain

import (
	"strings"
	"time"
)

// Check is a single named diagnostic: a predicate plus the remediation hint
// shown when it fails. Checks are declared as an ordered battery; order only
// affects report readability and hint de-duplication order.
type Check struct {
	Description string
	Predicate   func() bool
	DebugHint   string
}

// CheckResult records the outcome of one check.
type CheckResult struct {
	Description string
	Passed      bool
}

// HealthReport aggregates a full diagnostic run. A fresh report is produced
// on every run; it is never reused across runs.
type HealthReport struct {
	// Success is the logical AND of every check result.
	Success bool
	// Results holds one entry per declared check, in declaration order.
	Results []CheckResult
	// DebugInstructions holds the hints of failing checks, exact-string
	// deduplicated, first occurrence first.
	DebugInstructions []string
}

// InstructionBlock renders the remediation hints as a newline-joined block.
func (r HealthReport) InstructionBlock() string {
	return strings.Join(r.DebugInstructions, "\n")
}

// FailedChecks returns the descriptions of every failing check.
func (r HealthReport) FailedChecks() []string {
	var failed []string
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res.Description)
		}
	}
	return failed
}

// DoctorRun is the persisted summary of one doctor invocation.
type DoctorRun struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Success      bool      `json:"success"`
	FailedChecks []string  `json:"failed_checks"`
	Instructions string    `json:"instructions"`
}
