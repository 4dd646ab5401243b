package admin

import (
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/clinicdesk/internal/services/admin/templates"
)

func (h *Handler) renderConsole(w http.ResponseWriter, r *http.Request, pageCtx templates.PageContext, view templates.ConsoleView) {
	renderPage(w, r, pageCtx, "title.console",
		templates.ConsolePage(view, pageCtx.Loc),
		templates.ConsoleFullPage(view, pageCtx))
}

func (h *Handler) consolePage(w http.ResponseWriter, r *http.Request) {
	h.renderConsole(w, r, pageContext(w, r), templates.ConsoleView{})
}

// consoleRun executes the submitted SQL verbatim and renders either the
// result grid or the database error inline.
func (h *Handler) consoleRun(w http.ResponseWriter, r *http.Request) {
	pageCtx := pageContext(w, r)
	loc := pageCtx.Loc

	query := strings.TrimSpace(r.FormValue("query"))
	view := templates.ConsoleView{Query: query}

	if query == "" {
		view.Message = templates.T(loc, "error.required_fields")
		view.MessageIsError = true
		h.renderConsole(w, r, pageCtx, view)
		return
	}

	result, err := h.store.RunQuery(r.Context(), query)
	if err != nil {
		log.Printf("console query: %v", err)
		view.Message = templates.T(loc, "error.database", err)
		view.MessageIsError = true
		h.renderConsole(w, r, pageCtx, view)
		return
	}

	view.Columns = result.Columns
	view.Rows = result.Rows
	view.Message = templates.T(loc, "console.rows_returned", len(result.Rows))
	h.renderConsole(w, r, pageCtx, view)
}
