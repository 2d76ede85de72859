package pm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/govalet/internal/domain"
	"github.com/doeshing/govalet/internal/infrastructure/pm"
)

func TestServiceSnapshot_FetchesExactlyOnce(t *testing.T) {
	fetches := 0
	fetch := func() []domain.ServiceRecord {
		fetches++
		return []domain.ServiceRecord{{Name: "nginx", Running: true}}
	}

	var snapshot pm.ServiceSnapshot
	for i := 0; i < 5; i++ {
		records := snapshot.Get(fetch)
		assert.Len(t, records, 1)
	}
	assert.Equal(t, 1, fetches)
}

func TestServiceSnapshot_CachesEmptyResults(t *testing.T) {
	fetches := 0
	fetch := func() []domain.ServiceRecord {
		fetches++
		return nil
	}

	var snapshot pm.ServiceSnapshot
	assert.Empty(t, snapshot.Get(fetch))
	assert.Empty(t, snapshot.Get(fetch))
	assert.Equal(t, 1, fetches)
}

func TestServiceSnapshot_ClearRefetches(t *testing.T) {
	fetches := 0
	fetch := func() []domain.ServiceRecord {
		fetches++
		return nil
	}

	var snapshot pm.ServiceSnapshot
	snapshot.Get(fetch)
	snapshot.Clear()
	snapshot.Get(fetch)
	assert.Equal(t, 2, fetches)
}

func TestRunningQueries(t *testing.T) {
	records := []domain.ServiceRecord{
		{Name: "php8.2-fpm", Running: true, RootOwned: true},
		{Name: "nginx", Running: false, RootOwned: true},
		{Name: "mysql", Running: true, RootOwned: false},
	}

	tests := []struct {
		name  string
		query func() bool
		want  bool
	}{
		{
			name:  "substring containment finds versioned service",
			query: func() bool { return pm.IsRunning(records, "php", false) },
			want:  true,
		},
		{
			name:  "exact match misses versioned service",
			query: func() bool { return pm.IsRunning(records, "php", true) },
			want:  false,
		},
		{
			name:  "stopped service is not running",
			query: func() bool { return pm.IsRunning(records, "nginx", true) },
			want:  false,
		},
		{
			name:  "root query honors ownership",
			query: func() bool { return pm.IsRunningAsRoot(records, "mysql", true) },
			want:  false,
		},
		{
			name:  "user query honors ownership",
			query: func() bool { return pm.IsRunningAsUser(records, "mysql", true) },
			want:  true,
		},
		{
			name:  "user query misses root service",
			query: func() bool { return pm.IsRunningAsUser(records, "php8.2-fpm", true) },
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query())
		})
	}
}
