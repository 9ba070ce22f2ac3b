package http

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ssonuprakashks-droid/attendance/internal/attendance/domain"
	"github.com/ssonuprakashks-droid/attendance/pkg/slogx"
)

//go:embed templates/*.html
var templateFS embed.FS

// flashCookieName carries a one-shot notice (e.g. "Welcome, Admin User!")
// across the redirect that follows login/logout.
const flashCookieName = "attendance_flash"

const (
	flashSuccess = "success"
	flashError   = "error"
	flashInfo    = "info"
)

type flash struct {
	Kind    string
	Message string
}

// pageData is what every template receives. Fields irrelevant to a given
// page stay zero.
type pageData struct {
	User    *domain.User
	Flash   *flash
	Error   string // inline validation message (login form)
	Today   *domain.AttendanceRecord
	Stats   domain.StatusCounts
	Records []domain.AttendanceRecord
}

type pages struct {
	tmpl *template.Template
}

func newPages() (*pages, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"clock": func(t time.Time) string { return t.Format("15:04:05") },
		"clockPtr": func(t *time.Time) string {
			if t == nil {
				return "-"
			}
			return t.Format("15:04:05")
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &pages{tmpl: tmpl}, nil
}

// render writes the named template. The flash cookie, if any, is consumed
// so the notice shows exactly once.
func (p *pages) render(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	if data.Flash == nil {
		data.Flash = takeFlash(w, r)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := p.tmpl.ExecuteTemplate(w, name, data); err != nil {
		slogx.FromContext(r.Context()).Error("template render failed", "template", name, "err", err)
	}
}

func setFlash(w http.ResponseWriter, kind, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func takeFlash(w http.ResponseWriter, r *http.Request) *flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	// Consume the cookie regardless of whether it parses.
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(raw, "|")
	if !ok || message == "" {
		return nil
	}
	return &flash{Kind: kind, Message: message}
}
