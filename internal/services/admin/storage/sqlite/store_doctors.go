package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/clinicdesk/internal/services/admin/storage"
)

// CreateDoctor inserts a doctor row and returns its id.
func (s *Store) CreateDoctor(ctx context.Context, doctor storage.Doctor) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	if strings.TrimSpace(doctor.FirstName) == "" {
		return 0, fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(doctor.Specialty) == "" {
		return 0, fmt.Errorf("specialty is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		"INSERT INTO doctors (first_name, specialty, hourly_rate) VALUES (?, ?, ?)",
		strings.TrimSpace(doctor.FirstName),
		strings.TrimSpace(doctor.Specialty),
		doctor.HourlyRate,
	)
	if err != nil {
		return 0, fmt.Errorf("insert doctor: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("doctor insert id: %w", err)
	}
	return id, nil
}

// ListDoctors returns all doctors ordered by id.
func (s *Store) ListDoctors(ctx context.Context) ([]storage.Doctor, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		"SELECT doctor_id, first_name, specialty, hourly_rate FROM doctors ORDER BY doctor_id",
	)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var doctors []storage.Doctor
	for rows.Next() {
		var doctor storage.Doctor
		if err := rows.Scan(&doctor.ID, &doctor.FirstName, &doctor.Specialty, &doctor.HourlyRate); err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		doctors = append(doctors, doctor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate doctors: %w", err)
	}
	return doctors, nil
}

// ListDoctorOptions returns doctors as dropdown options labeled with name and
// specialty. The id travels with the option so the label is display-only.
func (s *Store) ListDoctorOptions(ctx context.Context) ([]storage.Option, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		"SELECT doctor_id, first_name, specialty FROM doctors ORDER BY first_name, doctor_id",
	)
	if err != nil {
		return nil, fmt.Errorf("list doctor options: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var options []storage.Option
	for rows.Next() {
		var id int64
		var firstName, specialty string
		if err := rows.Scan(&id, &firstName, &specialty); err != nil {
			return nil, fmt.Errorf("scan doctor option: %w", err)
		}
		options = append(options, storage.Option{
			ID:    id,
			Label: fmt.Sprintf("Dr. %s - %s", firstName, specialty),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate doctor options: %w", err)
	}
	return options, nil
}
