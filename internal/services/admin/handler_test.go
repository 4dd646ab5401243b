package admin

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/clinicdesk/internal/services/admin/storage"
	"github.com/louisbranch/clinicdesk/internal/services/admin/storage/sqlite"
	"github.com/louisbranch/clinicdesk/internal/services/shared/htmx"
)

func newTestHandler(t *testing.T) (*Handler, storage.Store) {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "clinic.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return NewHandler(store), store
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestDashboardRendersStats(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	rec := get(t, handler, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Dashboard | ClinicDesk</title>") {
		t.Error("dashboard title missing")
	}
	// Seeded database starts with 2 doctors, 2 patients, no revenue.
	if !strings.Contains(body, "$0.00") {
		t.Error("zero revenue stat missing")
	}
}

func TestDoctorsPageListsSeededDoctors(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	body := get(t, handler, "/doctors").Body.String()

	for _, want := range []string{"Asha", "Cardiology", "Miguel", "Dermatology"} {
		if !strings.Contains(body, want) {
			t.Errorf("doctors page missing %q", want)
		}
	}
}

func TestDoctorsCreateAddsRow(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	rec := postForm(t, handler, "/doctors/create", url.Values{
		"first_name":  {"Lena"},
		"specialty":   {"Pediatrics"},
		"hourly_rate": {"110.50"},
	})

	body := rec.Body.String()
	if !strings.Contains(body, "Doctor added!") {
		t.Error("success message missing")
	}
	if !strings.Contains(body, "<td>Lena</td>") {
		t.Error("new doctor row missing")
	}
	if !strings.Contains(body, "<td>110.50</td>") {
		t.Error("formatted rate missing")
	}
}

func TestDoctorsCreateRejectsBadRate(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	rec := postForm(t, handler, "/doctors/create", url.Values{
		"first_name":  {"Lena"},
		"specialty":   {"Pediatrics"},
		"hourly_rate": {"lots"},
	})

	body := rec.Body.String()
	if !strings.Contains(body, "Enter a valid non-negative number.") {
		t.Error("validation message missing")
	}
	if !strings.Contains(body, `value="Lena"`) {
		t.Error("form echo missing")
	}
	if strings.Contains(body, "<td>Lena</td>") {
		t.Error("rejected doctor should not be listed")
	}
}

func TestPatientsCreateReportsDuplicatePhone(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	// 9848000001 belongs to the seeded Jane Smith record.
	rec := postForm(t, handler, "/patients/create", url.Values{
		"name":  {"Impostor"},
		"phone": {"9848000001"},
	})

	body := rec.Body.String()
	if !strings.Contains(body, "Database error:") {
		t.Error("duplicate phone should surface a database error")
	}
	if strings.Contains(body, "<td>Impostor</td>") {
		t.Error("duplicate patient should not be listed")
	}
}

func TestAppointmentFlowBooksAndUpdatesStatus(t *testing.T) {
	t.Parallel()

	handler, store := newTestHandler(t)

	patients, err := store.ListPatientOptions(t.Context())
	if err != nil {
		t.Fatalf("list patient options: %v", err)
	}
	doctors, err := store.ListDoctorOptions(t.Context())
	if err != nil {
		t.Fatalf("list doctor options: %v", err)
	}
	if len(patients) == 0 || len(doctors) == 0 {
		t.Fatal("seeded options missing")
	}

	rec := postForm(t, handler, "/appointments/create", url.Values{
		"patient_id":   {formatID(patients[0].ID)},
		"doctor_id":    {formatID(doctors[0].ID)},
		"appoint_date": {"2026-09-01"},
		"status":       {"Scheduled"},
	})
	body := rec.Body.String()
	if !strings.Contains(body, "Appointment booked!") {
		t.Fatalf("booking success message missing in %q", body)
	}
	if !strings.Contains(body, "<td>2026-09-01</td>") {
		t.Error("booked appointment row missing")
	}

	appointments, err := store.ListAppointmentOptions(t.Context())
	if err != nil {
		t.Fatalf("list appointment options: %v", err)
	}
	if len(appointments) != 1 {
		t.Fatalf("appointment options = %d, want 1", len(appointments))
	}

	rec = postForm(t, handler, "/appointments/status", url.Values{
		"appointment_id": {formatID(appointments[0].ID)},
		"status":         {"Completed"},
	})
	body = rec.Body.String()
	if !strings.Contains(body, "Appointment status updated!") {
		t.Error("status update success message missing")
	}
	if !strings.Contains(body, "<td>Completed</td>") {
		t.Error("updated status missing from list")
	}
}

func TestAppointmentCreateRejectsInvalidDate(t *testing.T) {
	t.Parallel()

	handler, store := newTestHandler(t)
	patients, err := store.ListPatientOptions(t.Context())
	if err != nil {
		t.Fatalf("list patient options: %v", err)
	}
	doctors, err := store.ListDoctorOptions(t.Context())
	if err != nil {
		t.Fatalf("list doctor options: %v", err)
	}

	rec := postForm(t, handler, "/appointments/create", url.Values{
		"patient_id":   {formatID(patients[0].ID)},
		"doctor_id":    {formatID(doctors[0].ID)},
		"appoint_date": {"01/09/2026"},
		"status":       {"Scheduled"},
	})
	if !strings.Contains(rec.Body.String(), "yyyy-mm-dd") {
		t.Error("date validation message missing")
	}
}

func TestAppointmentStatusRejectsUnknownAppointment(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	rec := postForm(t, handler, "/appointments/status", url.Values{
		"appointment_id": {"999"},
		"status":         {"Completed"},
	})
	if !strings.Contains(rec.Body.String(), "Select a valid entry from the list.") {
		t.Error("unknown appointment should be rejected")
	}
}

func TestTreatmentCreateAndRevenue(t *testing.T) {
	t.Parallel()

	handler, store := newTestHandler(t)

	patients, err := store.ListPatientOptions(t.Context())
	if err != nil {
		t.Fatalf("list patient options: %v", err)
	}
	doctors, err := store.ListDoctorOptions(t.Context())
	if err != nil {
		t.Fatalf("list doctor options: %v", err)
	}
	appointmentID, err := store.CreateAppointment(t.Context(), storage.Appointment{
		PatientID: patients[0].ID,
		DoctorID:  doctors[0].ID,
		Date:      "2026-09-01",
		Status:    "Completed",
	})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	rec := postForm(t, handler, "/treatments/create", url.Values{
		"appointment_id": {formatID(appointmentID)},
		"service_name":   {"ECG"},
		"cost":           {"120.50"},
	})
	body := rec.Body.String()
	if !strings.Contains(body, "Treatment recorded!") {
		t.Error("treatment success message missing")
	}
	if !strings.Contains(body, "<td>ECG</td>") {
		t.Error("treatment row missing")
	}

	dashboard := get(t, handler, "/").Body.String()
	if !strings.Contains(dashboard, "$120.50") {
		t.Error("dashboard revenue should sum treatment costs")
	}
}

func TestConsoleRunsQueryAndReportsRowCount(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	rec := postForm(t, handler, "/console/run", url.Values{
		"query": {"SELECT first_name FROM doctors ORDER BY doctor_id"},
	})

	body := rec.Body.String()
	if !strings.Contains(body, "2 rows returned.") {
		t.Error("row count message missing")
	}
	if !strings.Contains(body, "<td>Asha</td>") {
		t.Error("query results missing")
	}
}

func TestConsoleSurfacesSQLErrors(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	rec := postForm(t, handler, "/console/run", url.Values{
		"query": {"SELECT * FROM no_such_table"},
	})

	if !strings.Contains(rec.Body.String(), "Database error:") {
		t.Error("SQL error should render inline")
	}
}

func TestHTMXRequestGetsFragmentWithTitle(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/doctors/table", nil)
	req.Header.Set(htmx.RequestHeaderKey, "true")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("HTMX response should not include the full layout")
	}
	if !strings.Contains(body, "<title>Doctors | ClinicDesk</title>") {
		t.Error("HTMX fragment should carry a title for swaps")
	}
	if !strings.Contains(body, `id="doctors-table"`) {
		t.Error("table fragment missing")
	}
}

func TestLanguageToggleRendersPortuguese(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	rec := get(t, handler, "/patients?lang=pt-BR")

	body := rec.Body.String()
	if !strings.Contains(body, "Cadastrar paciente") {
		t.Error("portuguese form heading missing")
	}
	if rec.Header().Get("Set-Cookie") == "" {
		t.Error("explicit language choice should persist a cookie")
	}
}
