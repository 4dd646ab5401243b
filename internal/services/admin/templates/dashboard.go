package templates

import (
	"strings"

	"github.com/a-h/templ"
	routepath "github.com/louisbranch/clinicdesk/internal/services/admin/routepath"
)

// DashboardView carries the clinic counters and the recent booking list.
type DashboardView struct {
	Doctors      string
	Patients     string
	Appointments string
	Treatments   string
	Scheduled    string
	Revenue      string
	Recent       []AppointmentRowView
}

func writeStatCard(b *strings.Builder, label, value string) {
	b.WriteString(`<div class="stat-card"><span class="stat-value">` + esc(value) + `</span><span class="stat-label">` + esc(label) + `</span></div>`)
}

// DashboardPage renders the dashboard screen content.
func DashboardPage(view DashboardView, loc Localizer) templ.Component {
	return htmlComponent(func(b *strings.Builder) {
		b.WriteString(`<h2>` + esc(T(loc, "title.dashboard")) + `</h2>`)

		b.WriteString(`<div class="stats">`)
		writeStatCard(b, T(loc, "dashboard.doctors"), view.Doctors)
		writeStatCard(b, T(loc, "dashboard.patients"), view.Patients)
		writeStatCard(b, T(loc, "dashboard.appointments"), view.Appointments)
		writeStatCard(b, T(loc, "dashboard.treatments"), view.Treatments)
		writeStatCard(b, T(loc, "dashboard.scheduled"), view.Scheduled)
		writeStatCard(b, T(loc, "dashboard.revenue"), view.Revenue)
		b.WriteString(`</div>`)

		b.WriteString(`<h3>` + esc(T(loc, "dashboard.recent")) + `</h3>`)
		writeAppointmentsTable(b, AppointmentsView{Rows: view.Recent}, loc)
	})
}

// DashboardFullPage wraps the dashboard screen in the page layout.
func DashboardFullPage(view DashboardView, pageCtx PageContext) templ.Component {
	return Layout("title.dashboard", routepath.Root, pageCtx, DashboardPage(view, pageCtx.Loc))
}
