package templates

import (
	"strings"

	"github.com/a-h/templ"
	routepath "github.com/louisbranch/clinicdesk/internal/services/admin/routepath"
)

// ConsoleView carries the ad-hoc SQL console state: the submitted query and
// either a result grid or an error message.
type ConsoleView struct {
	Query          string
	Message        string
	MessageIsError bool
	Columns        []string
	Rows           [][]string
}

// ConsolePage renders the SQL console screen content.
func ConsolePage(view ConsoleView, loc Localizer) templ.Component {
	return htmlComponent(func(b *strings.Builder) {
		b.WriteString(`<h2>` + esc(T(loc, "title.console")) + `</h2>`)
		b.WriteString(`<p class="warning">` + esc(T(loc, "console.warning")) + `</p>`)
		writeMessage(b, view.Message, view.MessageIsError)

		b.WriteString(`<section class="panel">`)
		b.WriteString(`<form method="post" action="` + routepath.ConsoleRun + `">`)
		b.WriteString(`<label for="query">` + esc(T(loc, "console.query")) + `</label>`)
		b.WriteString(`<textarea id="query" name="query" rows="5">` + esc(view.Query) + `</textarea>`)
		b.WriteString(`<button type="submit">` + esc(T(loc, "console.run")) + `</button>`)
		b.WriteString(`</form></section>`)

		if len(view.Columns) > 0 {
			writeTable(b, "console-results", view.Columns, view.Rows, T(loc, "table.empty"))
		}
	})
}

// ConsoleFullPage wraps the SQL console screen in the page layout.
func ConsoleFullPage(view ConsoleView, pageCtx PageContext) templ.Component {
	return Layout("title.console", routepath.Console, pageCtx, ConsolePage(view, pageCtx.Loc))
}
