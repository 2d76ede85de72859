package history

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/doeshing/govalet/internal/domain"
	"github.com/doeshing/govalet/internal/ports"
)

// SQLiteStore persists doctor run summaries in a SQLite database under the
// install home's Log directory.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) <home>/Log/doctor.db.
func NewSQLiteStore(home string) *SQLiteStore {
	path := filepath.Join(home, "Log", "doctor.db")
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS doctor_runs (
		id TEXT PRIMARY KEY,
		timestamp TEXT,
		success INTEGER,
		failed_checks TEXT,
		instructions TEXT
	);`)
	return err
}

// Save inserts a run summary, assigning a ULID when the run has no ID yet.
func (s *SQLiteStore) Save(run domain.DoctorRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return os.ErrInvalid
	}
	if run.ID == "" {
		run.ID = ulid.Make().String()
	}
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now()
	}
	failed, err := json.Marshal(run.FailedChecks)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO doctor_runs (id, timestamp, success, failed_checks, instructions) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Timestamp.Format(time.RFC3339), boolToInt(run.Success), string(failed), run.Instructions,
	)
	return err
}

// List returns the most recent runs, newest first.
func (s *SQLiteStore) List(limit int) ([]domain.DoctorRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, os.ErrInvalid
	}
	if limit <= 0 {
		limit = domain.DefaultHistoryLimit
	}
	rows, err := s.db.Query(
		`SELECT id, timestamp, success, failed_checks, instructions FROM doctor_runs ORDER BY timestamp DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.DoctorRun
	for rows.Next() {
		var (
			run     domain.DoctorRun
			ts      string
			success int
			failed  string
		)
		if err := rows.Scan(&run.ID, &ts, &success, &failed, &run.Instructions); err != nil {
			return nil, err
		}
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			run.Timestamp = parsed
		}
		run.Success = success != 0
		if failed != "" {
			_ = json.Unmarshal([]byte(failed), &run.FailedChecks)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.DoctorHistory = (*SQLiteStore)(nil)
