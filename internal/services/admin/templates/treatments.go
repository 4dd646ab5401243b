package templates

import (
	"strings"

	"github.com/a-h/templ"
	routepath "github.com/louisbranch/clinicdesk/internal/services/admin/routepath"
)

// TreatmentRowView is a treatment list row joined with its appointment.
type TreatmentRowView struct {
	ID          string
	ServiceName string
	Cost        string
	Date        string
	PatientName string
	DoctorName  string
}

// TreatmentsView carries everything the treatments screen renders.
type TreatmentsView struct {
	Message             string
	MessageIsError      bool
	Rows                []TreatmentRowView
	AppointmentOptions  []OptionView
	SelectedAppointment string
	ServiceName         string
	Cost                string
}

// TreatmentsTable renders the treatment list fragment.
func TreatmentsTable(view TreatmentsView, loc Localizer) templ.Component {
	return htmlComponent(func(b *strings.Builder) {
		writeTreatmentsTable(b, view, loc)
	})
}

func writeTreatmentsTable(b *strings.Builder, view TreatmentsView, loc Localizer) {
	headers := []string{
		"ID",
		T(loc, "treatments.service"),
		T(loc, "treatments.cost"),
		T(loc, "appointments.date"),
		T(loc, "appointments.patient"),
		T(loc, "appointments.doctor"),
	}
	rows := make([][]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		rows = append(rows, []string{row.ID, row.ServiceName, row.Cost, row.Date, row.PatientName, row.DoctorName})
	}
	writeTable(b, "treatments-table", headers, rows, T(loc, "table.empty"))
}

// TreatmentsPage renders the treatments screen content.
func TreatmentsPage(view TreatmentsView, loc Localizer) templ.Component {
	return htmlComponent(func(b *strings.Builder) {
		b.WriteString(`<h2>` + esc(T(loc, "title.treatments")) + `</h2>`)
		writeMessage(b, view.Message, view.MessageIsError)
		writeTreatmentsTable(b, view, loc)

		b.WriteString(`<section class="panel"><h3>` + esc(T(loc, "treatments.record")) + `</h3>`)
		b.WriteString(`<form method="post" action="` + routepath.TreatmentsCreate + `">`)
		writeSelect(b, "appointment_id", T(loc, "treatments.appointment"), view.AppointmentOptions, view.SelectedAppointment)
		writeTextInput(b, "service_name", T(loc, "treatments.service"), view.ServiceName)
		writeTextInput(b, "cost", T(loc, "treatments.cost"), view.Cost)
		b.WriteString(`<button type="submit">` + esc(T(loc, "treatments.save")) + `</button>`)
		b.WriteString(`</form></section>`)
	})
}

// TreatmentsFullPage wraps the treatments screen in the page layout.
func TreatmentsFullPage(view TreatmentsView, pageCtx PageContext) templ.Component {
	return Layout("title.treatments", routepath.Treatments, pageCtx, TreatmentsPage(view, pageCtx.Loc))
}
