package templates

import (
	"strings"

	"github.com/a-h/templ"
	routepath "github.com/louisbranch/clinicdesk/internal/services/admin/routepath"
)

// AppointmentRowView is a booking list row joined with display names.
type AppointmentRowView struct {
	ID          string
	PatientName string
	DoctorName  string
	Specialty   string
	Date        string
	Status      string
}

// AppointmentsView carries everything the appointments screen renders. The
// dropdowns submit row ids; labels are display-only.
type AppointmentsView struct {
	Message            string
	MessageIsError     bool
	Rows               []AppointmentRowView
	PatientOptions     []OptionView
	DoctorOptions      []OptionView
	AppointmentOptions []OptionView
	Statuses           []string
	SelectedPatient    string
	SelectedDoctor     string
	Date               string
	SelectedStatus     string
}

// AppointmentsTable renders the booking list fragment.
func AppointmentsTable(view AppointmentsView, loc Localizer) templ.Component {
	return htmlComponent(func(b *strings.Builder) {
		writeAppointmentsTable(b, view, loc)
	})
}

func writeAppointmentsTable(b *strings.Builder, view AppointmentsView, loc Localizer) {
	headers := []string{
		"ID",
		T(loc, "appointments.patient"),
		T(loc, "appointments.doctor"),
		T(loc, "doctors.specialty"),
		T(loc, "appointments.date"),
		T(loc, "appointments.status"),
	}
	rows := make([][]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		rows = append(rows, []string{row.ID, row.PatientName, row.DoctorName, row.Specialty, row.Date, row.Status})
	}
	writeTable(b, "appointments-table", headers, rows, T(loc, "table.empty"))
}

// AppointmentsPage renders the appointments screen content: the booking list,
// the booking form, and the status update form.
func AppointmentsPage(view AppointmentsView, loc Localizer) templ.Component {
	return htmlComponent(func(b *strings.Builder) {
		b.WriteString(`<h2>` + esc(T(loc, "title.appointments")) + `</h2>`)
		writeMessage(b, view.Message, view.MessageIsError)
		writeAppointmentsTable(b, view, loc)

		b.WriteString(`<section class="panel"><h3>` + esc(T(loc, "appointments.book")) + `</h3>`)
		b.WriteString(`<form method="post" action="` + routepath.AppointmentsCreate + `">`)
		writeSelect(b, "patient_id", T(loc, "appointments.patient"), view.PatientOptions, view.SelectedPatient)
		writeSelect(b, "doctor_id", T(loc, "appointments.doctor"), view.DoctorOptions, view.SelectedDoctor)
		b.WriteString(`<label for="appoint_date">` + esc(T(loc, "appointments.date")) + `</label>`)
		b.WriteString(`<input type="date" id="appoint_date" name="appoint_date" value="` + esc(view.Date) + `">`)
		writeSelect(b, "status", T(loc, "appointments.status"), statusOptions(view.Statuses), view.SelectedStatus)
		b.WriteString(`<button type="submit">` + esc(T(loc, "appointments.save")) + `</button>`)
		b.WriteString(`</form></section>`)

		b.WriteString(`<section class="panel"><h3>` + esc(T(loc, "appointments.update_status")) + `</h3>`)
		b.WriteString(`<form method="post" action="` + routepath.AppointmentsStatus + `">`)
		writeSelect(b, "appointment_id", T(loc, "appointments.appointment"), view.AppointmentOptions, "")
		writeSelect(b, "status", T(loc, "appointments.status"), statusOptions(view.Statuses), "")
		b.WriteString(`<button type="submit">` + esc(T(loc, "appointments.apply")) + `</button>`)
		b.WriteString(`</form></section>`)
	})
}

// AppointmentsFullPage wraps the appointments screen in the page layout.
func AppointmentsFullPage(view AppointmentsView, pageCtx PageContext) templ.Component {
	return Layout("title.appointments", routepath.Appointments, pageCtx, AppointmentsPage(view, pageCtx.Loc))
}
