package admin

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/clinicdesk/internal/services/admin/storage"
	"github.com/louisbranch/clinicdesk/internal/services/admin/templates"
)

func (h *Handler) appointmentsView(r *http.Request, loc templates.Localizer, message flash) templates.AppointmentsView {
	view := templates.AppointmentsView{
		Message:        message.Text,
		MessageIsError: message.IsError,
		Statuses:       storage.Statuses(),
	}

	fail := func(operation string, err error) templates.AppointmentsView {
		log.Printf("%s: %v", operation, err)
		view.Message = templates.T(loc, "error.database", err)
		view.MessageIsError = true
		return view
	}

	rows, err := h.store.ListAppointments(r.Context())
	if err != nil {
		return fail("list appointments", err)
	}
	view.Rows = appointmentRowViews(rows)

	patientOptions, err := h.store.ListPatientOptions(r.Context())
	if err != nil {
		return fail("list patient options", err)
	}
	view.PatientOptions = optionViews(patientOptions)

	doctorOptions, err := h.store.ListDoctorOptions(r.Context())
	if err != nil {
		return fail("list doctor options", err)
	}
	view.DoctorOptions = optionViews(doctorOptions)

	appointmentOptions, err := h.store.ListAppointmentOptions(r.Context())
	if err != nil {
		return fail("list appointment options", err)
	}
	view.AppointmentOptions = optionViews(appointmentOptions)

	return view
}

func (h *Handler) renderAppointments(w http.ResponseWriter, r *http.Request, pageCtx templates.PageContext, view templates.AppointmentsView) {
	renderPage(w, r, pageCtx, "title.appointments",
		templates.AppointmentsPage(view, pageCtx.Loc),
		templates.AppointmentsFullPage(view, pageCtx))
}

func (h *Handler) appointmentsPage(w http.ResponseWriter, r *http.Request) {
	pageCtx := pageContext(w, r)
	h.renderAppointments(w, r, pageCtx, h.appointmentsView(r, pageCtx.Loc, flash{}))
}

func (h *Handler) appointmentsTable(w http.ResponseWriter, r *http.Request) {
	pageCtx := pageContext(w, r)
	view := h.appointmentsView(r, pageCtx.Loc, flash{})
	renderPage(w, r, pageCtx, "title.appointments",
		templates.AppointmentsTable(view, pageCtx.Loc),
		templates.AppointmentsFullPage(view, pageCtx))
}

func (h *Handler) appointmentsCreate(w http.ResponseWriter, r *http.Request) {
	pageCtx := pageContext(w, r)
	loc := pageCtx.Loc

	patientValue := r.FormValue("patient_id")
	doctorValue := r.FormValue("doctor_id")
	date := strings.TrimSpace(r.FormValue("appoint_date"))
	status := strings.TrimSpace(r.FormValue("status"))

	echo := func(message flash) templates.AppointmentsView {
		view := h.appointmentsView(r, loc, message)
		view.SelectedPatient = patientValue
		view.SelectedDoctor = doctorValue
		view.Date = date
		view.SelectedStatus = status
		return view
	}

	patientID, patientOK := parseID(patientValue)
	doctorID, doctorOK := parseID(doctorValue)
	if !patientOK || !doctorOK {
		h.renderAppointments(w, r, pageCtx, echo(errorFlash(loc, "error.invalid_selection")))
		return
	}
	if !validDate(date) {
		h.renderAppointments(w, r, pageCtx, echo(errorFlash(loc, "error.invalid_date")))
		return
	}
	if !storage.ValidStatus(status) {
		h.renderAppointments(w, r, pageCtx, echo(errorFlash(loc, "error.invalid_selection")))
		return
	}

	_, err := h.store.CreateAppointment(r.Context(), storage.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		Status:    status,
	})
	if err != nil {
		log.Printf("create appointment: %v", err)
		h.renderAppointments(w, r, pageCtx, echo(errorFlash(loc, "error.database", err)))
		return
	}

	h.renderAppointments(w, r, pageCtx, h.appointmentsView(r, loc, successFlash(loc, "success.appointment_booked")))
}

func (h *Handler) appointmentsStatus(w http.ResponseWriter, r *http.Request) {
	pageCtx := pageContext(w, r)
	loc := pageCtx.Loc

	appointmentID, ok := parseID(r.FormValue("appointment_id"))
	if !ok {
		h.renderAppointments(w, r, pageCtx, h.appointmentsView(r, loc, errorFlash(loc, "error.invalid_selection")))
		return
	}
	status := strings.TrimSpace(r.FormValue("status"))
	if !storage.ValidStatus(status) {
		h.renderAppointments(w, r, pageCtx, h.appointmentsView(r, loc, errorFlash(loc, "error.invalid_selection")))
		return
	}

	err := h.store.UpdateAppointmentStatus(r.Context(), appointmentID, status)
	if errors.Is(err, storage.ErrNotFound) {
		h.renderAppointments(w, r, pageCtx, h.appointmentsView(r, loc, errorFlash(loc, "error.invalid_selection")))
		return
	}
	if err != nil {
		log.Printf("update appointment status: %v", err)
		h.renderAppointments(w, r, pageCtx, h.appointmentsView(r, loc, errorFlash(loc, "error.database", err)))
		return
	}

	h.renderAppointments(w, r, pageCtx, h.appointmentsView(r, loc, successFlash(loc, "success.status_updated")))
}
