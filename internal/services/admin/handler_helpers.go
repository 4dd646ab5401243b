package admin

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/louisbranch/clinicdesk/internal/services/admin/i18n"
	"github.com/louisbranch/clinicdesk/internal/services/admin/storage"
	"github.com/louisbranch/clinicdesk/internal/services/admin/templates"
	"github.com/louisbranch/clinicdesk/internal/services/shared/htmx"
)

// flash is an inline screen message produced by a form submission.
type flash struct {
	Text    string
	IsError bool
}

func errorFlash(loc templates.Localizer, key string, args ...any) flash {
	return flash{Text: templates.T(loc, key, args...), IsError: true}
}

func successFlash(loc templates.Localizer, key string, args ...any) flash {
	return flash{Text: templates.T(loc, key, args...)}
}

// pageContext resolves the request language and persists an explicit choice.
func pageContext(w http.ResponseWriter, r *http.Request) templates.PageContext {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return templates.PageContext{
		Lang:        tag.String(),
		Loc:         i18n.Printer(tag),
		CurrentPath: r.URL.Path,
	}
}

// renderPage serves the fragment for HTMX requests and the full layout
// otherwise, carrying a localized title for fragment swaps.
func renderPage(w http.ResponseWriter, r *http.Request, pageCtx templates.PageContext, titleKey string, fragment, full templ.Component) {
	title := templates.T(pageCtx.Loc, titleKey) + " | " + templates.AppName()
	htmx.RenderPage(w, r, fragment, full, htmx.TitleTag(title))
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatMoney(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// parseID parses a dropdown-submitted row id.
func parseID(value string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseMoney parses a non-negative money amount from a form field.
func parseMoney(value string) (float64, bool) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}

// validDate reports whether value is a yyyy-mm-dd calendar date.
func validDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

func optionViews(options []storage.Option) []templates.OptionView {
	views := make([]templates.OptionView, 0, len(options))
	for _, option := range options {
		views = append(views, templates.OptionView{
			Value: formatID(option.ID),
			Label: option.Label,
		})
	}
	return views
}

func appointmentRowViews(rows []storage.AppointmentRow) []templates.AppointmentRowView {
	views := make([]templates.AppointmentRowView, 0, len(rows))
	for _, row := range rows {
		views = append(views, templates.AppointmentRowView{
			ID:          formatID(row.ID),
			PatientName: row.PatientName,
			DoctorName:  row.DoctorName,
			Specialty:   row.Specialty,
			Date:        row.Date,
			Status:      row.Status,
		})
	}
	return views
}
