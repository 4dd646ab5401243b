package sqlite

import (
	"context"
	"fmt"

	"github.com/louisbranch/clinicdesk/internal/services/admin/storage"
)

// GetClinicStats returns the dashboard counters in one round trip.
func (s *Store) GetClinicStats(ctx context.Context) (storage.ClinicStats, error) {
	if err := s.ready(ctx); err != nil {
		return storage.ClinicStats{}, err
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT
		    (SELECT COUNT(*) FROM doctors),
		    (SELECT COUNT(*) FROM patients),
		    (SELECT COUNT(*) FROM appointments),
		    (SELECT COUNT(*) FROM treatments),
		    (SELECT COUNT(*) FROM appointments WHERE status = ?),
		    (SELECT COALESCE(SUM(cost), 0) FROM treatments)`,
		storage.StatusScheduled,
	)

	var stats storage.ClinicStats
	if err := row.Scan(
		&stats.Doctors,
		&stats.Patients,
		&stats.Appointments,
		&stats.Treatments,
		&stats.Scheduled,
		&stats.Revenue,
	); err != nil {
		return storage.ClinicStats{}, fmt.Errorf("scan clinic stats: %w", err)
	}
	return stats, nil
}
