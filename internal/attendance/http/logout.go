package http

import (
	"net/http"

	"github.com/ssonuprakashks-droid/attendance/internal/attendance/service"
	"github.com/ssonuprakashks-droid/attendance/pkg/slogx"
)

// LogoutHandler tears down the session and returns the user to the login
// page. It succeeds even when no session exists.
type LogoutHandler struct {
	AuthService *service.AuthService
}

func (h *LogoutHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.AuthService.Logout(r.Context(), cookie.Value); err != nil {
			slogx.FromContext(r.Context()).Error("logout failed", "err", err)
		}
	}

	clearSessionCookie(w)
	setFlash(w, flashInfo, "You have been logged out")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
