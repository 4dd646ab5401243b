package admin

import (
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/clinicdesk/internal/services/admin/storage"
	"github.com/louisbranch/clinicdesk/internal/services/admin/templates"
)

func (h *Handler) patientsView(r *http.Request, loc templates.Localizer, message flash) templates.PatientsView {
	view := templates.PatientsView{
		Message:        message.Text,
		MessageIsError: message.IsError,
	}
	patients, err := h.store.ListPatients(r.Context())
	if err != nil {
		log.Printf("list patients: %v", err)
		view.Message = templates.T(loc, "error.database", err)
		view.MessageIsError = true
		return view
	}
	for _, patient := range patients {
		view.Rows = append(view.Rows, templates.PatientRowView{
			ID:    formatID(patient.ID),
			Name:  patient.Name,
			Phone: patient.Phone,
		})
	}
	return view
}

func (h *Handler) renderPatients(w http.ResponseWriter, r *http.Request, pageCtx templates.PageContext, view templates.PatientsView) {
	renderPage(w, r, pageCtx, "title.patients",
		templates.PatientsPage(view, pageCtx.Loc),
		templates.PatientsFullPage(view, pageCtx))
}

func (h *Handler) patientsPage(w http.ResponseWriter, r *http.Request) {
	pageCtx := pageContext(w, r)
	h.renderPatients(w, r, pageCtx, h.patientsView(r, pageCtx.Loc, flash{}))
}

func (h *Handler) patientsTable(w http.ResponseWriter, r *http.Request) {
	pageCtx := pageContext(w, r)
	view := h.patientsView(r, pageCtx.Loc, flash{})
	renderPage(w, r, pageCtx, "title.patients",
		templates.PatientsTable(view, pageCtx.Loc),
		templates.PatientsFullPage(view, pageCtx))
}

func (h *Handler) patientsCreate(w http.ResponseWriter, r *http.Request) {
	pageCtx := pageContext(w, r)
	loc := pageCtx.Loc

	name := strings.TrimSpace(r.FormValue("name"))
	phone := strings.TrimSpace(r.FormValue("phone"))

	echo := func(message flash) templates.PatientsView {
		view := h.patientsView(r, loc, message)
		view.Name = name
		view.Phone = phone
		return view
	}

	if name == "" || phone == "" {
		h.renderPatients(w, r, pageCtx, echo(errorFlash(loc, "error.required_fields")))
		return
	}

	_, err := h.store.CreatePatient(r.Context(), storage.Patient{Name: name, Phone: phone})
	if err != nil {
		log.Printf("create patient: %v", err)
		h.renderPatients(w, r, pageCtx, echo(errorFlash(loc, "error.database", err)))
		return
	}

	h.renderPatients(w, r, pageCtx, h.patientsView(r, loc, successFlash(loc, "success.patient_registered", name)))
}
