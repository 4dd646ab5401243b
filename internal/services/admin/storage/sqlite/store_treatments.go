package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/clinicdesk/internal/services/admin/storage"
)

// CreateTreatment inserts a treatment row and returns its id. An unknown
// appointment id fails on the foreign key constraint.
func (s *Store) CreateTreatment(ctx context.Context, treatment storage.Treatment) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	if treatment.AppointmentID <= 0 {
		return 0, fmt.Errorf("appointment id is required")
	}
	if strings.TrimSpace(treatment.ServiceName) == "" {
		return 0, fmt.Errorf("service name is required")
	}
	if treatment.Cost < 0 {
		return 0, fmt.Errorf("cost must not be negative")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		"INSERT INTO treatments (appoint_id, service_name, cost) VALUES (?, ?, ?)",
		treatment.AppointmentID,
		strings.TrimSpace(treatment.ServiceName),
		treatment.Cost,
	)
	if err != nil {
		return 0, fmt.Errorf("insert treatment: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("treatment insert id: %w", err)
	}
	return id, nil
}

// ListTreatments returns all treatments joined with their appointment
// context, newest first.
func (s *Store) ListTreatments(ctx context.Context) ([]storage.TreatmentRow, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT t.treatment_id, t.service_name, t.cost, a.appoint_date, p.name, d.first_name
		 FROM treatments t
		 JOIN appointments a ON t.appoint_id = a.appoint_id
		 JOIN patients p ON a.patient_id = p.patient_id
		 JOIN doctors d ON a.doctor_id = d.doctor_id
		 ORDER BY t.treatment_id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list treatments: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var treatments []storage.TreatmentRow
	for rows.Next() {
		var row storage.TreatmentRow
		if err := rows.Scan(&row.ID, &row.ServiceName, &row.Cost, &row.AppointmentDate, &row.PatientName, &row.DoctorName); err != nil {
			return nil, fmt.Errorf("scan treatment: %w", err)
		}
		treatments = append(treatments, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate treatments: %w", err)
	}
	return treatments, nil
}
