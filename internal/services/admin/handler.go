// Package admin serves the clinic admin panel over HTTP.
package admin

import (
	"net/http"

	"github.com/louisbranch/clinicdesk/internal/services/admin/routepath"
	"github.com/louisbranch/clinicdesk/internal/services/admin/static"
	"github.com/louisbranch/clinicdesk/internal/services/admin/storage"
	"github.com/louisbranch/clinicdesk/internal/services/admin/transport/httpmux"
)

// Handler routes admin panel requests to their screen handlers.
type Handler struct {
	store storage.Store
	mux   *http.ServeMux
}

// NewHandler builds the admin handler on top of the given store.
func NewHandler(store storage.Store) *Handler {
	h := &Handler{store: store}
	h.mux = h.routes()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) routes() *http.ServeMux {
	mux := http.NewServeMux()

	httpmux.MountStatic(mux, static.FS)

	mux.HandleFunc("GET /{$}", h.dashboard)

	mux.HandleFunc("GET "+routepath.Doctors, h.doctorsPage)
	mux.HandleFunc("GET "+routepath.DoctorsTable, h.doctorsTable)
	mux.HandleFunc("POST "+routepath.DoctorsCreate, h.doctorsCreate)

	mux.HandleFunc("GET "+routepath.Patients, h.patientsPage)
	mux.HandleFunc("GET "+routepath.PatientsTable, h.patientsTable)
	mux.HandleFunc("POST "+routepath.PatientsCreate, h.patientsCreate)

	mux.HandleFunc("GET "+routepath.Appointments, h.appointmentsPage)
	mux.HandleFunc("GET "+routepath.AppointmentsTable, h.appointmentsTable)
	mux.HandleFunc("POST "+routepath.AppointmentsCreate, h.appointmentsCreate)
	mux.HandleFunc("POST "+routepath.AppointmentsStatus, h.appointmentsStatus)

	mux.HandleFunc("GET "+routepath.Treatments, h.treatmentsPage)
	mux.HandleFunc("GET "+routepath.TreatmentsTable, h.treatmentsTable)
	mux.HandleFunc("POST "+routepath.TreatmentsCreate, h.treatmentsCreate)

	mux.HandleFunc("GET "+routepath.Console, h.consolePage)
	mux.HandleFunc("POST "+routepath.ConsoleRun, h.consoleRun)

	return mux
}
