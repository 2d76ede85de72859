package domain

// ServiceRecord is the normalized shape of one service-manager listing entry.
// Both backends translate their native listing format into this shape; the
// rest of the system only ever sees ServiceRecords.
type ServiceRecord struct {
	// Name is the service name with any unit-type suffix stripped
	// ("nginx", not "nginx.service"). Unique within one snapshot.
	Name string
	// Running reports whether the service is currently active.
	Running bool
	// Status is the backend's raw status word ("active", "started", ...).
	Status string
	// RootOwned reports whether the instance runs under a privileged account.
	RootOwned bool
	// Ref is the backend's unit or plist file reference, when known.
	Ref string
	// ExitCode is the last recorded exit code, when the backend reports one.
	ExitCode *int
	// ErrorLog is the error log path, when the backend reports one.
	ErrorLog string
}
