package templates

import (
	"strings"

	"github.com/a-h/templ"
	routepath "github.com/louisbranch/clinicdesk/internal/services/admin/routepath"
)

// DoctorRowView is a doctor list row pre-formatted for display.
type DoctorRowView struct {
	ID         string
	FirstName  string
	Specialty  string
	HourlyRate string
}

// DoctorsView carries everything the doctors screen renders, including form
// echoes after a failed submission.
type DoctorsView struct {
	Message        string
	MessageIsError bool
	Rows           []DoctorRowView
	FirstName      string
	Specialty      string
	HourlyRate     string
}

// DoctorsTable renders the doctor list fragment.
func DoctorsTable(view DoctorsView, loc Localizer) templ.Component {
	return htmlComponent(func(b *strings.Builder) {
		writeDoctorsTable(b, view, loc)
	})
}

func writeDoctorsTable(b *strings.Builder, view DoctorsView, loc Localizer) {
	headers := []string{
		"ID",
		T(loc, "doctors.first_name"),
		T(loc, "doctors.specialty"),
		T(loc, "doctors.hourly_rate"),
	}
	rows := make([][]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		rows = append(rows, []string{row.ID, row.FirstName, row.Specialty, row.HourlyRate})
	}
	writeTable(b, "doctors-table", headers, rows, T(loc, "table.empty"))
}

// DoctorsPage renders the doctors screen content.
func DoctorsPage(view DoctorsView, loc Localizer) templ.Component {
	return htmlComponent(func(b *strings.Builder) {
		b.WriteString(`<h2>` + esc(T(loc, "title.doctors")) + `</h2>`)
		writeMessage(b, view.Message, view.MessageIsError)
		writeDoctorsTable(b, view, loc)

		b.WriteString(`<section class="panel"><h3>` + esc(T(loc, "doctors.add")) + `</h3>`)
		b.WriteString(`<form method="post" action="` + routepath.DoctorsCreate + `">`)
		writeTextInput(b, "first_name", T(loc, "doctors.first_name"), view.FirstName)
		writeTextInput(b, "specialty", T(loc, "doctors.specialty"), view.Specialty)
		writeTextInput(b, "hourly_rate", T(loc, "doctors.hourly_rate"), view.HourlyRate)
		b.WriteString(`<button type="submit">` + esc(T(loc, "doctors.save")) + `</button>`)
		b.WriteString(`</form></section>`)
	})
}

// DoctorsFullPage wraps the doctors screen in the page layout.
func DoctorsFullPage(view DoctorsView, pageCtx PageContext) templ.Component {
	return Layout("title.doctors", routepath.Doctors, pageCtx, DoctorsPage(view, pageCtx.Loc))
}
