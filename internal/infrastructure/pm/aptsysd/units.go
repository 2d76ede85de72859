package aptsysd

import (
	"encoding/json"
	"strings"

	"github.com/doeshing/govalet/internal/domain"
	"github.com/doeshing/govalet/internal/ports"
)

// unitEntry is one element of `systemctl list-units --output=json`.
type unitEntry struct {
	Unit        string `json:"unit"`
	Load        string `json:"load"`
	Active      string `json:"active"`
	Sub         string `json:"sub"`
	Description string `json:"description"`
}

const unitSuffix = ".service"

// fetchServices lists every service unit systemd knows, including inactive
// ones, and normalizes them. Unparseable or empty output yields an empty
// snapshot, never an error: no services known.
func (b *Backend) fetchServices() []domain.ServiceRecord {
	raw := b.cli.Run(
		"systemctl list-units --all --type=service --output=json --no-pager",
		ports.RunOptions{OnFailure: swallow},
	)

	var entries []unitEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		b.log.Debug("unparseable systemctl listing", map[string]interface{}{"bytes": len(raw)})
		return nil
	}

	records := make([]domain.ServiceRecord, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		name := strings.TrimSuffix(e.Unit, unitSuffix)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		records = append(records, domain.ServiceRecord{
			Name:    name,
			Running: e.Active == "active",
			Status:  e.Active,
			// System units always run under a privileged account.
			RootOwned: true,
			Ref:       e.Unit,
		})
	}
	return records
}
