package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Appointment status values accepted by the schema.
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Statuses returns the accepted appointment status values in display order.
func Statuses() []string {
	return []string{StatusScheduled, StatusCompleted, StatusCancelled}
}

// ValidStatus reports whether value is an accepted appointment status.
func ValidStatus(value string) bool {
	switch value {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Doctor is a clinic doctor record.
type Doctor struct {
	ID         int64
	FirstName  string
	Specialty  string
	HourlyRate float64
}

// Patient is a clinic patient record.
type Patient struct {
	ID    int64
	Name  string
	Phone string
}

// Appointment is a booked visit linking a patient to a doctor.
type Appointment struct {
	ID        int64
	PatientID int64
	DoctorID  int64
	// Date is the visit date in ISO yyyy-mm-dd form.
	Date   string
	Status string
}

// AppointmentRow is an appointment joined with its display names for listing.
type AppointmentRow struct {
	ID          int64
	PatientName string
	DoctorName  string
	Specialty   string
	Date        string
	Status      string
}

// Treatment is a service performed during an appointment.
type Treatment struct {
	ID            int64
	AppointmentID int64
	ServiceName   string
	Cost          float64
}

// TreatmentRow is a treatment joined with appointment context for listing.
type TreatmentRow struct {
	ID              int64
	ServiceName     string
	Cost            float64
	AppointmentDate string
	PatientName     string
	DoctorName      string
}

// Option pairs a row id with a human-readable dropdown label. Selections
// submit the id directly; labels are never matched back to rows.
type Option struct {
	ID    int64
	Label string
}

// ClinicStats aggregates dashboard counters across the four tables.
type ClinicStats struct {
	Doctors      int64
	Patients     int64
	Appointments int64
	Treatments   int64
	Scheduled    int64
	// Revenue is the sum of all treatment costs, 0 when none exist.
	Revenue float64
}

// QueryResult holds an ad-hoc query response as displayable strings.
type QueryResult struct {
	Columns []string
	Rows    [][]string
}

// DoctorStore persists doctor records.
type DoctorStore interface {
	CreateDoctor(ctx context.Context, doctor Doctor) (int64, error)
	ListDoctors(ctx context.Context) ([]Doctor, error)
	ListDoctorOptions(ctx context.Context) ([]Option, error)
}

// PatientStore persists patient records.
type PatientStore interface {
	CreatePatient(ctx context.Context, patient Patient) (int64, error)
	ListPatients(ctx context.Context) ([]Patient, error)
	ListPatientOptions(ctx context.Context) ([]Option, error)
}

// AppointmentStore persists appointment records.
type AppointmentStore interface {
	CreateAppointment(ctx context.Context, appointment Appointment) (int64, error)
	ListAppointments(ctx context.Context) ([]AppointmentRow, error)
	ListAppointmentOptions(ctx context.Context) ([]Option, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID int64, status string) error
}

// TreatmentStore persists treatment records.
type TreatmentStore interface {
	CreateTreatment(ctx context.Context, treatment Treatment) (int64, error)
	ListTreatments(ctx context.Context) ([]TreatmentRow, error)
}

// StatsStore reports aggregate clinic metrics.
type StatsStore interface {
	GetClinicStats(ctx context.Context) (ClinicStats, error)
}

// QueryRunner executes ad-hoc SQL for the console screen.
type QueryRunner interface {
	RunQuery(ctx context.Context, query string) (QueryResult, error)
}

// Store is a composite interface for admin storage concerns.
type Store interface {
	DoctorStore
	PatientStore
	AppointmentStore
	TreatmentStore
	StatsStore
	QueryRunner
	Close() error
}
