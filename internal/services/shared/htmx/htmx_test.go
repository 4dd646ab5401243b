package htmx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func textComponent(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	})
}

func TestIsHTMXRequest(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTMXRequest(r) {
		t.Fatal("plain request must not be HTMX")
	}
	r.Header.Set(RequestHeaderKey, "true")
	if !IsHTMXRequest(r) {
		t.Fatal("expected HTMX request")
	}
	if IsHTMXRequest(nil) {
		t.Fatal("nil request must not be HTMX")
	}
}

func TestTitleTagEscapes(t *testing.T) {
	t.Parallel()

	if got := TitleTag("Doctors & Patients"); got != "<title>Doctors &amp; Patients</title>" {
		t.Fatalf("title tag = %q", got)
	}
	if got := TitleTag("  "); got != "" {
		t.Fatalf("blank title tag = %q", got)
	}
}

func TestRenderPageServesFullForPlainRequests(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	RenderPage(rec, r, textComponent("fragment"), textComponent("full page"), "")

	if body := rec.Body.String(); body != "full page" {
		t.Fatalf("body = %q, want full page", body)
	}
}

func TestRenderPageServesFragmentForHTMX(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestHeaderKey, "true")
	rec := httptest.NewRecorder()
	RenderPage(rec, r, textComponent("<table></table>"), textComponent("full page"), TitleTag("Doctors"))

	body := rec.Body.String()
	if !strings.Contains(body, "<table></table>") {
		t.Fatalf("body = %q, want fragment content", body)
	}
	if !strings.Contains(body, "<title>Doctors</title>") {
		t.Fatalf("body = %q, want injected title", body)
	}
}

func TestRenderPageFallsBackToFragment(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	RenderPage(rec, r, textComponent("only fragment"), nil, "")

	if body := rec.Body.String(); body != "only fragment" {
		t.Fatalf("body = %q, want fragment fallback", body)
	}
}
