package templates

import (
	"strings"

	"github.com/a-h/templ"
	routepath "github.com/louisbranch/clinicdesk/internal/services/admin/routepath"
)

// PatientRowView is a patient list row pre-formatted for display.
type PatientRowView struct {
	ID    string
	Name  string
	Phone string
}

// PatientsView carries everything the patients screen renders.
type PatientsView struct {
	Message        string
	MessageIsError bool
	Rows           []PatientRowView
	Name           string
	Phone          string
}

// PatientsTable renders the patient list fragment.
func PatientsTable(view PatientsView, loc Localizer) templ.Component {
	return htmlComponent(func(b *strings.Builder) {
		writePatientsTable(b, view, loc)
	})
}

func writePatientsTable(b *strings.Builder, view PatientsView, loc Localizer) {
	headers := []string{"ID", T(loc, "patients.name"), T(loc, "patients.phone")}
	rows := make([][]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		rows = append(rows, []string{row.ID, row.Name, row.Phone})
	}
	writeTable(b, "patients-table", headers, rows, T(loc, "table.empty"))
}

// PatientsPage renders the patients screen content.
func PatientsPage(view PatientsView, loc Localizer) templ.Component {
	return htmlComponent(func(b *strings.Builder) {
		b.WriteString(`<h2>` + esc(T(loc, "title.patients")) + `</h2>`)
		writeMessage(b, view.Message, view.MessageIsError)
		writePatientsTable(b, view, loc)

		b.WriteString(`<section class="panel"><h3>` + esc(T(loc, "patients.register")) + `</h3>`)
		b.WriteString(`<form method="post" action="` + routepath.PatientsCreate + `">`)
		writeTextInput(b, "name", T(loc, "patients.name"), view.Name)
		writeTextInput(b, "phone", T(loc, "patients.phone"), view.Phone)
		b.WriteString(`<button type="submit">` + esc(T(loc, "patients.save")) + `</button>`)
		b.WriteString(`</form></section>`)
	})
}

// PatientsFullPage wraps the patients screen in the page layout.
func PatientsFullPage(view PatientsView, pageCtx PageContext) templ.Component {
	return Layout("title.patients", routepath.Patients, pageCtx, PatientsPage(view, pageCtx.Loc))
}
