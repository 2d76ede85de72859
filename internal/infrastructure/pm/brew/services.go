package brew

import (
	"encoding/json"

	"github.com/doeshing/govalet/internal/domain"
	"github.com/doeshing/govalet/internal/ports"
)

// serviceEntry is one element of `brew services list --json`.
type serviceEntry struct {
	Name         string `json:"name"`
	Status       string `json:"status"`
	User         string `json:"user"`
	File         string `json:"file"`
	ExitCode     *int   `json:"exit_code"`
	ErrorLogPath string `json:"error_log_path"`
}

// fetchServices combines the root-daemon listing with the invoking user's
// listing. The root listing reports every known service, with status "none"
// for the ones not started at root scope, so when both scopes know a service
// of the same name the started instance wins; root wins only when both are
// started. Unparseable or empty output from either scope contributes
// nothing: no services known.
func (b *Backend) fetchServices() []domain.ServiceRecord {
	var records []domain.ServiceRecord
	index := make(map[string]int)

	for _, sudo := range []bool{true, false} {
		raw := b.cli.Run("brew services list --json", ports.RunOptions{Sudo: sudo, OnFailure: swallow})

		var entries []serviceEntry
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			continue
		}
		for _, e := range entries {
			if e.Name == "" {
				continue
			}
			rec := domain.ServiceRecord{
				Name:      e.Name,
				Running:   e.Status == "started",
				Status:    e.Status,
				RootOwned: sudo || e.User == "root",
				Ref:       e.File,
				ExitCode:  e.ExitCode,
				ErrorLog:  e.ErrorLogPath,
			}
			if i, ok := index[e.Name]; ok {
				if rec.Running && !records[i].Running {
					records[i] = rec
				}
				continue
			}
			index[e.Name] = len(records)
			records = append(records, rec)
		}
	}
	return records
}
