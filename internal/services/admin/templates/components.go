// Package templates renders the admin panel screens as templ components.
//
// Components are hand-built: each screen assembles escaped HTML into a
// builder and nests child components through templ's Render contract.
package templates

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
	routepath "github.com/louisbranch/clinicdesk/internal/services/admin/routepath"
)

const appName = "ClinicDesk"

// AppName returns the product name used in page titles.
func AppName() string {
	return appName
}

// OptionView is a dropdown entry. Value is the row id submitted by the form;
// Label is display-only and never parsed back.
type OptionView struct {
	Value string
	Label string
}

func esc(value string) string {
	return html.EscapeString(value)
}

// htmlComponent wraps a builder function as a templ component.
func htmlComponent(render func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		render(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// writeMessage renders an inline success or error message when text is set.
func writeMessage(b *strings.Builder, text string, isError bool) {
	if strings.TrimSpace(text) == "" {
		return
	}
	class := "message"
	if isError {
		class = "message error"
	}
	b.WriteString(`<p class="` + class + `">` + esc(text) + `</p>`)
}

// writeTable renders a plain data table, or the empty label with no rows.
func writeTable(b *strings.Builder, id string, headers []string, rows [][]string, emptyLabel string) {
	if len(rows) == 0 {
		b.WriteString(`<p id="` + esc(id) + `" class="panel">` + esc(emptyLabel) + `</p>`)
		return
	}
	b.WriteString(`<table id="` + esc(id) + `"><thead><tr>`)
	for _, header := range headers {
		b.WriteString(`<th>` + esc(header) + `</th>`)
	}
	b.WriteString(`</tr></thead><tbody>`)
	for _, row := range rows {
		b.WriteString(`<tr>`)
		for _, cell := range row {
			b.WriteString(`<td>` + esc(cell) + `</td>`)
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table>`)
}

// writeTextInput renders a labeled text input echoing any prior value.
func writeTextInput(b *strings.Builder, name, label, value string) {
	b.WriteString(`<label for="` + esc(name) + `">` + esc(label) + `</label>`)
	b.WriteString(`<input type="text" id="` + esc(name) + `" name="` + esc(name) + `" value="` + esc(value) + `">`)
}

// writeSelect renders a labeled dropdown whose option values are row ids.
func writeSelect(b *strings.Builder, name, label string, options []OptionView, selected string) {
	b.WriteString(`<label for="` + esc(name) + `">` + esc(label) + `</label>`)
	b.WriteString(`<select id="` + esc(name) + `" name="` + esc(name) + `">`)
	for _, option := range options {
		b.WriteString(`<option value="` + esc(option.Value) + `"`)
		if option.Value == selected {
			b.WriteString(` selected`)
		}
		b.WriteString(`>` + esc(option.Label) + `</option>`)
	}
	b.WriteString(`</select>`)
}

// statusOptions adapts the accepted status strings into dropdown entries.
func statusOptions(statuses []string) []OptionView {
	options := make([]OptionView, 0, len(statuses))
	for _, status := range statuses {
		options = append(options, OptionView{Value: status, Label: status})
	}
	return options
}

type navEntry struct {
	path  string
	label string
}

// Layout wraps screen content in the shared page chrome.
func Layout(titleKey string, active string, pageCtx PageContext, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := pageCtx.Loc
		entries := []navEntry{
			{routepath.Root, T(loc, "nav.dashboard")},
			{routepath.Doctors, T(loc, "nav.doctors")},
			{routepath.Patients, T(loc, "nav.patients")},
			{routepath.Appointments, T(loc, "nav.appointments")},
			{routepath.Treatments, T(loc, "nav.treatments")},
			{routepath.Console, T(loc, "nav.console")},
		}

		var b strings.Builder
		lang := pageCtx.Lang
		if lang == "" {
			lang = "en"
		}
		b.WriteString(`<!DOCTYPE html><html lang="` + esc(lang) + `"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>` + esc(T(loc, titleKey)+" | "+appName) + `</title>`)
		b.WriteString(`<link rel="stylesheet" href="` + routepath.StaticPrefix + `admin.css">`)
		b.WriteString(`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`)
		b.WriteString(`</head><body hx-boost="true"><div class="shell">`)

		b.WriteString(`<nav class="sidebar"><h1>` + esc(appName) + `</h1>`)
		for _, entry := range entries {
			class := ""
			if entry.path == active {
				class = ` class="active"`
			}
			b.WriteString(`<a href="` + entry.path + `"` + class + `>` + esc(entry.label) + `</a>`)
		}
		currentPath := pageCtx.CurrentPath
		if currentPath == "" {
			currentPath = routepath.Root
		}
		b.WriteString(`<p class="lang-switch"><a href="` + esc(currentPath) + `?lang=en">EN</a> | <a href="` + esc(currentPath) + `?lang=pt-BR">PT</a></p>`)
		b.WriteString(`</nav><main>`)

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></div></body></html>`)
		return err
	})
}
