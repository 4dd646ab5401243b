package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/clinicdesk/internal/services/admin/storage"
)

// CreateAppointment inserts an appointment row and returns its id. Unknown
// patient or doctor ids fail on the foreign key constraints.
func (s *Store) CreateAppointment(ctx context.Context, appointment storage.Appointment) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	if appointment.PatientID <= 0 {
		return 0, fmt.Errorf("patient id is required")
	}
	if appointment.DoctorID <= 0 {
		return 0, fmt.Errorf("doctor id is required")
	}
	if strings.TrimSpace(appointment.Date) == "" {
		return 0, fmt.Errorf("appointment date is required")
	}
	status := strings.TrimSpace(appointment.Status)
	if status == "" {
		status = storage.StatusScheduled
	}
	if !storage.ValidStatus(status) {
		return 0, fmt.Errorf("invalid appointment status %q", status)
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		"INSERT INTO appointments (patient_id, doctor_id, appoint_date, status) VALUES (?, ?, ?, ?)",
		appointment.PatientID,
		appointment.DoctorID,
		strings.TrimSpace(appointment.Date),
		status,
	)
	if err != nil {
		return 0, fmt.Errorf("insert appointment: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("appointment insert id: %w", err)
	}
	return id, nil
}

// ListAppointments returns all appointments joined with patient and doctor
// display names, newest date first.
func (s *Store) ListAppointments(ctx context.Context) ([]storage.AppointmentRow, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT a.appoint_id, p.name, d.first_name, d.specialty, a.appoint_date, a.status
		 FROM appointments a
		 JOIN patients p ON a.patient_id = p.patient_id
		 JOIN doctors d ON a.doctor_id = d.doctor_id
		 ORDER BY a.appoint_date DESC, a.appoint_id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var appointments []storage.AppointmentRow
	for rows.Next() {
		var row storage.AppointmentRow
		if err := rows.Scan(&row.ID, &row.PatientName, &row.DoctorName, &row.Specialty, &row.Date, &row.Status); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appointments = append(appointments, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}
	return appointments, nil
}

// ListAppointmentOptions returns appointments as dropdown options labeled
// with date, patient, and doctor.
func (s *Store) ListAppointmentOptions(ctx context.Context) ([]storage.Option, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT a.appoint_id, a.appoint_date, p.name, d.first_name
		 FROM appointments a
		 JOIN patients p ON a.patient_id = p.patient_id
		 JOIN doctors d ON a.doctor_id = d.doctor_id
		 ORDER BY a.appoint_date DESC, a.appoint_id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list appointment options: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var options []storage.Option
	for rows.Next() {
		var id int64
		var date, patientName, doctorName string
		if err := rows.Scan(&id, &date, &patientName, &doctorName); err != nil {
			return nil, fmt.Errorf("scan appointment option: %w", err)
		}
		options = append(options, storage.Option{
			ID:    id,
			Label: fmt.Sprintf("%s - %s with Dr. %s", date, patientName, doctorName),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointment options: %w", err)
	}
	return options, nil
}

// UpdateAppointmentStatus sets the status of one appointment. The status is
// the only mutable appointment field; last write wins.
func (s *Store) UpdateAppointmentStatus(ctx context.Context, appointmentID int64, status string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if appointmentID <= 0 {
		return fmt.Errorf("appointment id is required")
	}
	if !storage.ValidStatus(status) {
		return fmt.Errorf("invalid appointment status %q", status)
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		"UPDATE appointments SET status = ? WHERE appoint_id = ?",
		status,
		appointmentID,
	)
	if err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("appointment update result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
