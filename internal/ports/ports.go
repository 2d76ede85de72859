// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). The application depends on these
// abstractions, never on a concrete package manager, service manager, or
// filesystem implementation.
package ports

import "github.com/doeshing/govalet/internal/domain"

// ConfigSource reads the govalet configuration from persistent storage.
// A parse failure is returned as an error value; the doctor treats it as a
// failed check, never as a fatal condition.
type ConfigSource interface {
	Read() (domain.Config, error)
	Path() string
	HomePath() string
}

// Filesystem exposes the read-only existence checks the core needs.
type Filesystem interface {
	Exists(path string) bool
	IsDir(path string) bool
}

// RunOptions controls a single command invocation.
type RunOptions struct {
	// Sudo runs the command with elevated privileges.
	Sudo bool
	// OnFailure, when set, receives the exit code and captured stderr of a
	// failing command. When nil, failures are only logged.
	OnFailure func(exitCode int, errorOutput string)
}

// CommandRunner executes a shell command, blocking until the subprocess
// exits, and returns its captured standard output.
type CommandRunner interface {
	Run(command string, opts RunOptions) string
}

// ServiceBackend normalizes package and service management across the
// Homebrew (darwin) and apt/systemd (linux) ecosystems. Callers depend only
// on this capability, never on which variant is active.
//
// Instances memoize the service-manager listing: the first running-status or
// ownership query fetches it once, and every later query within the same
// instance reuses that snapshot. Construct a new backend for fresh state.
type ServiceBackend interface {
	// Available reports whether the underlying package manager is reachable.
	Available() bool

	// Installed reports whether pkg is present in the installed-package list.
	Installed(pkg string) bool
	// EnsureInstalled installs pkg unless it is already present, enabling
	// the given repositories first. A failed install returns an
	// *domain.InstallError and must abort the surrounding workflow.
	EnsureInstalled(pkg string, installArgs []string, repos []string) error
	// Uninstall removes pkg. Failures are logged, not returned.
	Uninstall(pkg string)
	// CleanupCache clears the package manager caches. Failures are logged.
	CleanupCache()

	// IsServiceRunning reports whether a running service matches name.
	// With exact false, substring containment is used instead of equality.
	IsServiceRunning(name string, exact bool) bool
	// IsServiceRunningAsRoot is IsServiceRunning restricted to instances
	// owned by a privileged account.
	IsServiceRunningAsRoot(name string, exact bool) bool
	// IsServiceRunningAsUser is IsServiceRunning restricted to instances
	// owned by the invoking user. Always false on the systemd backend,
	// which has no user-scoped service concept.
	IsServiceRunningAsUser(name string, exact bool) bool

	StartService(name string)
	StopService(name string)
	RestartService(name string)

	// Services returns the normalized snapshot of every service the
	// manager knows, including inactive ones.
	Services() []domain.ServiceRecord

	// SupportedPhpVersions lists the PHP packages this backend can manage,
	// most recent first, with the generic "php" entry included.
	SupportedPhpVersions() []string
	// LinkedPhp resolves the currently linked PHP executable and returns
	// the first supported version whose digit projection matches it. No
	// match returns a *domain.PhpResolutionError.
	LinkedPhp() (string, error)
	// LinkedPhpFormula returns the base-plus-version label of the linked
	// PHP executable ("php8.2"), or "php" when nothing parseable is linked.
	LinkedPhpFormula() string
	// Link points the well-known PHP binary at pkg's executable.
	Link(pkg string) error
	// Unlink removes the link for pkg.
	Unlink(pkg string) error
	// RestartLinkedPhp restarts the FPM service of the linked PHP version.
	RestartLinkedPhp() error
}

// DoctorHistory persists doctor run summaries.
type DoctorHistory interface {
	Save(run domain.DoctorRun) error
	List(limit int) ([]domain.DoctorRun, error)
	Close() error
}

// ConfirmationPrompter asks the user to confirm destructive operations.
type ConfirmationPrompter interface {
	Confirm(question string) (bool, error)
	Enabled() bool
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
