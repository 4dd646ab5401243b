package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	sqlitemigrate "github.com/louisbranch/clinicdesk/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/clinicdesk/internal/services/admin/storage"
	"github.com/louisbranch/clinicdesk/internal/services/admin/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides a SQLite-backed store implementing admin storage interfaces.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at the provided path, applies migrations, and
// seeds demo rows when the doctors table is empty.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}

	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	if err := store.seedDemoRows(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("seed demo rows: %w", err)
	}

	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// runMigrations runs embedded SQL migrations.
func (s *Store) runMigrations() error {
	return sqlitemigrate.ApplyMigrations(s.sqlDB, migrations.FS)
}

// seedDemoRows inserts the demo doctors and patients on first run. The
// doctors table doubles as the first-run marker, so reopening an existing
// database never duplicates the seed.
func (s *Store) seedDemoRows(ctx context.Context) error {
	var count int64
	if err := s.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM doctors").Scan(&count); err != nil {
		return fmt.Errorf("count doctors: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	seedDoctors := []storage.Doctor{
		{FirstName: "Asha", Specialty: "Cardiology", HourlyRate: 150},
		{FirstName: "Miguel", Specialty: "Dermatology", HourlyRate: 95},
	}
	for _, doctor := range seedDoctors {
		if _, err := tx.ExecContext(
			ctx,
			"INSERT INTO doctors (first_name, specialty, hourly_rate) VALUES (?, ?, ?)",
			doctor.FirstName,
			doctor.Specialty,
			doctor.HourlyRate,
		); err != nil {
			return fmt.Errorf("seed doctor %s: %w", doctor.FirstName, err)
		}
	}

	seedPatients := []storage.Patient{
		{Name: "Jane Smith", Phone: "9848000001"},
		{Name: "Ravi Kumar", Phone: "9848000002"},
	}
	for _, patient := range seedPatients {
		if _, err := tx.ExecContext(
			ctx,
			"INSERT INTO patients (name, phone) VALUES (?, ?)",
			patient.Name,
			patient.Phone,
		); err != nil {
			return fmt.Errorf("seed patient %s: %w", patient.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

var _ storage.Store = (*Store)(nil)
