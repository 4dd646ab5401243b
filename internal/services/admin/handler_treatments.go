package admin

import (
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/clinicdesk/internal/services/admin/storage"
	"github.com/louisbranch/clinicdesk/internal/services/admin/templates"
)

func (h *Handler) treatmentsView(r *http.Request, loc templates.Localizer, message flash) templates.TreatmentsView {
	view := templates.TreatmentsView{
		Message:        message.Text,
		MessageIsError: message.IsError,
	}

	fail := func(operation string, err error) templates.TreatmentsView {
		log.Printf("%s: %v", operation, err)
		view.Message = templates.T(loc, "error.database", err)
		view.MessageIsError = true
		return view
	}

	rows, err := h.store.ListTreatments(r.Context())
	if err != nil {
		return fail("list treatments", err)
	}
	for _, row := range rows {
		view.Rows = append(view.Rows, templates.TreatmentRowView{
			ID:          formatID(row.ID),
			ServiceName: row.ServiceName,
			Cost:        formatMoney(row.Cost),
			Date:        row.AppointmentDate,
			PatientName: row.PatientName,
			DoctorName:  row.DoctorName,
		})
	}

	options, err := h.store.ListAppointmentOptions(r.Context())
	if err != nil {
		return fail("list appointment options", err)
	}
	view.AppointmentOptions = optionViews(options)

	return view
}

func (h *Handler) renderTreatments(w http.ResponseWriter, r *http.Request, pageCtx templates.PageContext, view templates.TreatmentsView) {
	renderPage(w, r, pageCtx, "title.treatments",
		templates.TreatmentsPage(view, pageCtx.Loc),
		templates.TreatmentsFullPage(view, pageCtx))
}

func (h *Handler) treatmentsPage(w http.ResponseWriter, r *http.Request) {
	pageCtx := pageContext(w, r)
	h.renderTreatments(w, r, pageCtx, h.treatmentsView(r, pageCtx.Loc, flash{}))
}

func (h *Handler) treatmentsTable(w http.ResponseWriter, r *http.Request) {
	pageCtx := pageContext(w, r)
	view := h.treatmentsView(r, pageCtx.Loc, flash{})
	renderPage(w, r, pageCtx, "title.treatments",
		templates.TreatmentsTable(view, pageCtx.Loc),
		templates.TreatmentsFullPage(view, pageCtx))
}

func (h *Handler) treatmentsCreate(w http.ResponseWriter, r *http.Request) {
	pageCtx := pageContext(w, r)
	loc := pageCtx.Loc

	appointmentValue := r.FormValue("appointment_id")
	serviceName := strings.TrimSpace(r.FormValue("service_name"))
	costValue := strings.TrimSpace(r.FormValue("cost"))

	echo := func(message flash) templates.TreatmentsView {
		view := h.treatmentsView(r, loc, message)
		view.SelectedAppointment = appointmentValue
		view.ServiceName = serviceName
		view.Cost = costValue
		return view
	}

	appointmentID, ok := parseID(appointmentValue)
	if !ok {
		h.renderTreatments(w, r, pageCtx, echo(errorFlash(loc, "error.invalid_selection")))
		return
	}
	if serviceName == "" || costValue == "" {
		h.renderTreatments(w, r, pageCtx, echo(errorFlash(loc, "error.required_fields")))
		return
	}
	cost, ok := parseMoney(costValue)
	if !ok {
		h.renderTreatments(w, r, pageCtx, echo(errorFlash(loc, "error.invalid_number")))
		return
	}

	_, err := h.store.CreateTreatment(r.Context(), storage.Treatment{
		AppointmentID: appointmentID,
		ServiceName:   serviceName,
		Cost:          cost,
	})
	if err != nil {
		log.Printf("create treatment: %v", err)
		h.renderTreatments(w, r, pageCtx, echo(errorFlash(loc, "error.database", err)))
		return
	}

	h.renderTreatments(w, r, pageCtx, h.treatmentsView(r, loc, successFlash(loc, "success.treatment_recorded")))
}
