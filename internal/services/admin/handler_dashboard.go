package admin

import (
	"log"
	"net/http"

	"github.com/louisbranch/clinicdesk/internal/services/admin/templates"
)

const recentAppointmentsLimit = 5

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	pageCtx := pageContext(w, r)
	loc := pageCtx.Loc

	view := templates.DashboardView{}
	stats, err := h.store.GetClinicStats(r.Context())
	if err != nil {
		log.Printf("dashboard stats: %v", err)
		http.Error(w, templates.T(loc, "error.database", err), http.StatusInternalServerError)
		return
	}
	view.Doctors = formatID(stats.Doctors)
	view.Patients = formatID(stats.Patients)
	view.Appointments = formatID(stats.Appointments)
	view.Treatments = formatID(stats.Treatments)
	view.Scheduled = formatID(stats.Scheduled)
	view.Revenue = "$" + formatMoney(stats.Revenue)

	rows, err := h.store.ListAppointments(r.Context())
	if err != nil {
		log.Printf("dashboard appointments: %v", err)
		http.Error(w, templates.T(loc, "error.database", err), http.StatusInternalServerError)
		return
	}
	if len(rows) > recentAppointmentsLimit {
		rows = rows[:recentAppointmentsLimit]
	}
	view.Recent = appointmentRowViews(rows)

	renderPage(w, r, pageCtx, "title.dashboard",
		templates.DashboardPage(view, loc),
		templates.DashboardFullPage(view, pageCtx))
}
