// Package pm holds the pieces shared by the Homebrew and apt/systemd
// service backends: the memoized service-listing snapshot and the record
// matching helpers both variants answer queries with.
package pm

import (
	"strings"

	"github.com/doeshing/govalet/internal/domain"
)

// ServiceSnapshot memoizes the service manager's listing for the lifetime of
// one backend instance. The first access fetches exactly once; the snapshot
// is never invalidated mid-instance. Not safe for concurrent use; the model
// is one backend instance per invocation, running to completion.
type ServiceSnapshot struct {
	records []domain.ServiceRecord
	loaded  bool
}

// Get returns the cached records, calling fetch on first access only.
func (s *ServiceSnapshot) Get(fetch func() []domain.ServiceRecord) []domain.ServiceRecord {
	if !s.loaded {
		s.records = fetch()
		s.loaded = true
	}
	return s.records
}

// Clear drops the snapshot so the next access fetches again.
func (s *ServiceSnapshot) Clear() {
	s.records = nil
	s.loaded = false
}

// Matches reports whether a record name matches the queried name. With exact
// false, substring containment is used, for callers that only know a partial
// or unversioned service name ("php" matching "php8.2-fpm").
func Matches(recordName, name string, exact bool) bool {
	if exact {
		return recordName == name
	}
	return strings.Contains(recordName, name)
}

// IsRunning reports whether any running record matches name.
func IsRunning(records []domain.ServiceRecord, name string, exact bool) bool {
	for _, rec := range records {
		if rec.Running && Matches(rec.Name, name, exact) {
			return true
		}
	}
	return false
}

// IsRunningAsRoot is IsRunning restricted to root-owned instances.
func IsRunningAsRoot(records []domain.ServiceRecord, name string, exact bool) bool {
	for _, rec := range records {
		if rec.Running && rec.RootOwned && Matches(rec.Name, name, exact) {
			return true
		}
	}
	return false
}

// IsRunningAsUser is IsRunning restricted to user-owned instances.
func IsRunningAsUser(records []domain.ServiceRecord, name string, exact bool) bool {
	for _, rec := range records {
		if rec.Running && !rec.RootOwned && Matches(rec.Name, name, exact) {
			return true
		}
	}
	return false
}
