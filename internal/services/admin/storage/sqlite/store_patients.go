package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/clinicdesk/internal/services/admin/storage"
)

// CreatePatient inserts a patient row and returns its id. A duplicate phone
// fails on the unique constraint and leaves the table unchanged.
func (s *Store) CreatePatient(ctx context.Context, patient storage.Patient) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	if strings.TrimSpace(patient.Name) == "" {
		return 0, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(patient.Phone) == "" {
		return 0, fmt.Errorf("phone is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		"INSERT INTO patients (name, phone) VALUES (?, ?)",
		strings.TrimSpace(patient.Name),
		strings.TrimSpace(patient.Phone),
	)
	if err != nil {
		return 0, fmt.Errorf("insert patient: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("patient insert id: %w", err)
	}
	return id, nil
}

// ListPatients returns all patients ordered by id descending, newest first.
func (s *Store) ListPatients(ctx context.Context) ([]storage.Patient, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		"SELECT patient_id, name, phone FROM patients ORDER BY patient_id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var patients []storage.Patient
	for rows.Next() {
		var patient storage.Patient
		if err := rows.Scan(&patient.ID, &patient.Name, &patient.Phone); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		patients = append(patients, patient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate patients: %w", err)
	}
	return patients, nil
}

// ListPatientOptions returns patients as dropdown options labeled by name.
func (s *Store) ListPatientOptions(ctx context.Context) ([]storage.Option, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		"SELECT patient_id, name FROM patients ORDER BY name, patient_id",
	)
	if err != nil {
		return nil, fmt.Errorf("list patient options: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var options []storage.Option
	for rows.Next() {
		var option storage.Option
		if err := rows.Scan(&option.ID, &option.Label); err != nil {
			return nil, fmt.Errorf("scan patient option: %w", err)
		}
		options = append(options, option)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate patient options: %w", err)
	}
	return options, nil
}
