package admin

import (
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/clinicdesk/internal/services/admin/storage"
	"github.com/louisbranch/clinicdesk/internal/services/admin/templates"
)

func (h *Handler) doctorsView(r *http.Request, loc templates.Localizer, message flash) templates.DoctorsView {
	view := templates.DoctorsView{
		Message:        message.Text,
		MessageIsError: message.IsError,
	}
	doctors, err := h.store.ListDoctors(r.Context())
	if err != nil {
		log.Printf("list doctors: %v", err)
		view.Message = templates.T(loc, "error.database", err)
		view.MessageIsError = true
		return view
	}
	for _, doctor := range doctors {
		view.Rows = append(view.Rows, templates.DoctorRowView{
			ID:         formatID(doctor.ID),
			FirstName:  doctor.FirstName,
			Specialty:  doctor.Specialty,
			HourlyRate: formatMoney(doctor.HourlyRate),
		})
	}
	return view
}

func (h *Handler) renderDoctors(w http.ResponseWriter, r *http.Request, pageCtx templates.PageContext, view templates.DoctorsView) {
	renderPage(w, r, pageCtx, "title.doctors",
		templates.DoctorsPage(view, pageCtx.Loc),
		templates.DoctorsFullPage(view, pageCtx))
}

func (h *Handler) doctorsPage(w http.ResponseWriter, r *http.Request) {
	pageCtx := pageContext(w, r)
	h.renderDoctors(w, r, pageCtx, h.doctorsView(r, pageCtx.Loc, flash{}))
}

func (h *Handler) doctorsTable(w http.ResponseWriter, r *http.Request) {
	pageCtx := pageContext(w, r)
	view := h.doctorsView(r, pageCtx.Loc, flash{})
	renderPage(w, r, pageCtx, "title.doctors",
		templates.DoctorsTable(view, pageCtx.Loc),
		templates.DoctorsFullPage(view, pageCtx))
}

func (h *Handler) doctorsCreate(w http.ResponseWriter, r *http.Request) {
	pageCtx := pageContext(w, r)
	loc := pageCtx.Loc

	firstName := strings.TrimSpace(r.FormValue("first_name"))
	specialty := strings.TrimSpace(r.FormValue("specialty"))
	rateValue := strings.TrimSpace(r.FormValue("hourly_rate"))

	echo := func(message flash) templates.DoctorsView {
		view := h.doctorsView(r, loc, message)
		view.FirstName = firstName
		view.Specialty = specialty
		view.HourlyRate = rateValue
		return view
	}

	if firstName == "" || specialty == "" || rateValue == "" {
		h.renderDoctors(w, r, pageCtx, echo(errorFlash(loc, "error.required_fields")))
		return
	}
	rate, ok := parseMoney(rateValue)
	if !ok {
		h.renderDoctors(w, r, pageCtx, echo(errorFlash(loc, "error.invalid_number")))
		return
	}

	_, err := h.store.CreateDoctor(r.Context(), storage.Doctor{
		FirstName:  firstName,
		Specialty:  specialty,
		HourlyRate: rate,
	})
	if err != nil {
		log.Printf("create doctor: %v", err)
		h.renderDoctors(w, r, pageCtx, echo(errorFlash(loc, "error.database", err)))
		return
	}

	h.renderDoctors(w, r, pageCtx, h.doctorsView(r, loc, successFlash(loc, "success.doctor_added")))
}
