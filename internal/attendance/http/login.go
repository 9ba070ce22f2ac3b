package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ssonuprakashks-droid/attendance/internal/attendance/service"
	"github.com/ssonuprakashks-droid/attendance/pkg/slogx"
)

// LoginHandler serves the login form and processes credential submissions.
type LoginHandler struct {
	AuthService *service.AuthService
	Pages       *pages
}

// HandleGet renders the login form. An already-authenticated user is sent
// straight to the home page.
func (h *LoginHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if _, ok := userFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.Pages.render(w, r, http.StatusOK, "login.html", pageData{})
}

// HandlePost verifies the submitted credentials, mints a session and
// redirects to the home page. Failures re-render the form with an inline
// message that never reveals whether the username or the password was wrong.
func (h *LoginHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Pages.render(w, r, http.StatusBadRequest, "login.html", pageData{
			Error: "Invalid form submission",
		})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		h.Pages.render(w, r, http.StatusBadRequest, "login.html", pageData{
			Error: "Username and password are required",
		})
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.Pages.render(w, r, http.StatusUnauthorized, "login.html", pageData{
				Error: "Invalid username or password",
			})
			return
		}
		slogx.FromContext(r.Context()).Error("login failed", "err", err)
		h.Pages.render(w, r, http.StatusInternalServerError, "login.html", pageData{
			Error: "Something went wrong, please try again",
		})
		return
	}

	setSessionCookie(w, token, int(h.AuthService.TTL().Seconds()))
	setFlash(w, flashSuccess, fmt.Sprintf("Welcome, %s!", user.FullName))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
