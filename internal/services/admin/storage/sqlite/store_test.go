package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/louisbranch/clinicdesk/internal/services/admin/storage"
	_ "modernc.org/sqlite"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clinic.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return store
}

func assertTableExists(t *testing.T, sqlDB *sql.DB, table string) {
	t.Helper()
	var name string
	err := sqlDB.QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
	).Scan(&name)
	if err != nil {
		t.Fatalf("table %s: %v", table, err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestOpenCreatesSchemaAndSeedsOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clinic.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopening must not duplicate the demo rows.
	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	assertTableExists(t, sqlDB, "doctors")
	assertTableExists(t, sqlDB, "patients")
	assertTableExists(t, sqlDB, "appointments")
	assertTableExists(t, sqlDB, "treatments")

	ctx := context.Background()
	doctors, err := store.ListDoctors(ctx)
	if err != nil {
		t.Fatalf("list doctors: %v", err)
	}
	if len(doctors) != 2 {
		t.Fatalf("doctors = %d, want 2", len(doctors))
	}
	patients, err := store.ListPatients(ctx)
	if err != nil {
		t.Fatalf("list patients: %v", err)
	}
	if len(patients) != 2 {
		t.Fatalf("patients = %d, want 2", len(patients))
	}
}

func TestCreatePatientRejectsDuplicatePhone(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	before, err := store.ListPatients(ctx)
	if err != nil {
		t.Fatalf("list patients: %v", err)
	}

	// Seeded Jane Smith already uses this phone.
	_, err = store.CreatePatient(ctx, storage.Patient{Name: "Someone Else", Phone: "9848000001"})
	if err == nil {
		t.Fatal("expected duplicate phone error")
	}

	after, err := store.ListPatients(ctx)
	if err != nil {
		t.Fatalf("list patients: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("patients = %d, want %d (table must be unchanged)", len(after), len(before))
	}
}

func TestCreatePatientRequiresFields(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.CreatePatient(ctx, storage.Patient{Phone: "5550001"}); err == nil {
		t.Fatal("expected error for missing name")
	}
	if _, err := store.CreatePatient(ctx, storage.Patient{Name: "No Phone"}); err == nil {
		t.Fatal("expected error for missing phone")
	}
}

func TestCreateAppointmentRejectsUnknownReferences(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.CreateAppointment(ctx, storage.Appointment{
		PatientID: 999,
		DoctorID:  1,
		Date:      "2026-09-01",
	}); err == nil {
		t.Fatal("expected foreign key error for unknown patient")
	}

	if _, err := store.CreateAppointment(ctx, storage.Appointment{
		PatientID: 1,
		DoctorID:  999,
		Date:      "2026-09-01",
	}); err == nil {
		t.Fatal("expected foreign key error for unknown doctor")
	}
}

func TestCreateAppointmentDefaultsToScheduled(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	id, err := store.CreateAppointment(ctx, storage.Appointment{
		PatientID: 1,
		DoctorID:  1,
		Date:      "2026-09-01",
	})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	if id <= 0 {
		t.Fatalf("appointment id = %d, want > 0", id)
	}

	appointments, err := store.ListAppointments(ctx)
	if err != nil {
		t.Fatalf("list appointments: %v", err)
	}
	if len(appointments) != 1 {
		t.Fatalf("appointments = %d, want 1", len(appointments))
	}
	if appointments[0].Status != storage.StatusScheduled {
		t.Fatalf("status = %q, want %q", appointments[0].Status, storage.StatusScheduled)
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	id, err := store.CreateAppointment(ctx, storage.Appointment{
		PatientID: 1,
		DoctorID:  1,
		Date:      "2026-09-02",
	})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	if err := store.UpdateAppointmentStatus(ctx, id, storage.StatusCompleted); err != nil {
		t.Fatalf("update status: %v", err)
	}

	appointments, err := store.ListAppointments(ctx)
	if err != nil {
		t.Fatalf("list appointments: %v", err)
	}
	if appointments[0].Status != storage.StatusCompleted {
		t.Fatalf("status = %q, want %q", appointments[0].Status, storage.StatusCompleted)
	}

	if err := store.UpdateAppointmentStatus(ctx, id, "Rescheduled"); err == nil {
		t.Fatal("expected error for status outside the accepted set")
	}
	if err := store.UpdateAppointmentStatus(ctx, 999, storage.StatusCancelled); err != storage.ErrNotFound {
		t.Fatalf("missing appointment error = %v, want ErrNotFound", err)
	}
}

func TestBookingJoinsDisplayNames(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	patients, err := store.ListPatientOptions(ctx)
	if err != nil {
		t.Fatalf("list patient options: %v", err)
	}
	var janeID int64
	for _, option := range patients {
		if option.Label == "Jane Smith" {
			janeID = option.ID
		}
	}
	if janeID == 0 {
		t.Fatal("seeded patient Jane Smith not found")
	}

	doctors, err := store.ListDoctorOptions(ctx)
	if err != nil {
		t.Fatalf("list doctor options: %v", err)
	}
	if len(doctors) == 0 {
		t.Fatal("expected seeded doctor options")
	}

	if _, err := store.CreateAppointment(ctx, storage.Appointment{
		PatientID: janeID,
		DoctorID:  doctors[0].ID,
		Date:      "2026-10-01",
		Status:    storage.StatusScheduled,
	}); err != nil {
		t.Fatalf("book appointment: %v", err)
	}

	appointments, err := store.ListAppointments(ctx)
	if err != nil {
		t.Fatalf("list appointments: %v", err)
	}
	if len(appointments) != 1 {
		t.Fatalf("appointments = %d, want exactly 1 new row", len(appointments))
	}
	row := appointments[0]
	if row.PatientName != "Jane Smith" {
		t.Fatalf("patient name = %q, want %q", row.PatientName, "Jane Smith")
	}
	if row.DoctorName == "" || row.Specialty == "" {
		t.Fatalf("doctor join incomplete: %+v", row)
	}
	if row.Date != "2026-10-01" {
		t.Fatalf("date = %q, want %q", row.Date, "2026-10-01")
	}
}

func TestRevenueSumsTreatmentCosts(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	stats, err := store.GetClinicStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Revenue != 0 {
		t.Fatalf("revenue = %v, want 0 with no treatments", stats.Revenue)
	}
	if stats.Doctors != 2 || stats.Patients != 2 {
		t.Fatalf("seed counts = %d doctors / %d patients, want 2/2", stats.Doctors, stats.Patients)
	}

	appointmentID, err := store.CreateAppointment(ctx, storage.Appointment{
		PatientID: 1,
		DoctorID:  1,
		Date:      "2026-10-02",
	})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	if _, err := store.CreateTreatment(ctx, storage.Treatment{
		AppointmentID: appointmentID,
		ServiceName:   "ECG",
		Cost:          120.5,
	}); err != nil {
		t.Fatalf("create treatment: %v", err)
	}
	if _, err := store.CreateTreatment(ctx, storage.Treatment{
		AppointmentID: appointmentID,
		ServiceName:   "Consultation",
		Cost:          80,
	}); err != nil {
		t.Fatalf("create treatment: %v", err)
	}

	stats, err = store.GetClinicStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Revenue != 200.5 {
		t.Fatalf("revenue = %v, want 200.5", stats.Revenue)
	}
	if stats.Treatments != 2 {
		t.Fatalf("treatments = %d, want 2", stats.Treatments)
	}
	if stats.Scheduled != 1 {
		t.Fatalf("scheduled = %d, want 1", stats.Scheduled)
	}
}

func TestCreateTreatmentRejectsUnknownAppointment(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.CreateTreatment(ctx, storage.Treatment{
		AppointmentID: 999,
		ServiceName:   "X-Ray",
		Cost:          60,
	}); err == nil {
		t.Fatal("expected foreign key error for unknown appointment")
	}
}

func TestRunQueryReturnsRows(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	result, err := store.RunQuery(ctx, "SELECT name, phone FROM patients ORDER BY patient_id")
	if err != nil {
		t.Fatalf("run query: %v", err)
	}
	if len(result.Columns) != 2 {
		t.Fatalf("columns = %v, want 2", result.Columns)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(result.Rows))
	}
	if result.Rows[0][0] != "Jane Smith" {
		t.Fatalf("first row = %v", result.Rows[0])
	}

	if _, err := store.RunQuery(ctx, "SELECT * FROM no_such_table"); err == nil {
		t.Fatal("expected error for malformed query")
	}
	if _, err := store.RunQuery(ctx, "   "); err == nil {
		t.Fatal("expected error for blank query")
	}
}
