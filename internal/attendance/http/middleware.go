package http

import (
	"net/http"

	"github.com/ssonuprakashks-droid/attendance/pkg/httpx"
	"github.com/ssonuprakashks-droid/attendance/pkg/slogx"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "attendance_session"

// withSession resolves the session cookie into a user and stamps it onto
// the request context. Anonymous requests pass through untouched; handlers
// behind requireSessionPage / requireSessionJSON enforce presence.
func (r *Router) withSession() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			cookie, err := req.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, req)
				return
			}

			user, err := r.AuthService.Authenticate(req.Context(), cookie.Value)
			if err != nil {
				// Stale cookie; drop it so the client stops sending it.
				clearSessionCookie(w)
				next.ServeHTTP(w, req)
				return
			}

			ctx := contextWithUser(req.Context(), user)
			ctx = httpx.ContextWithUserID(ctx, user.ID)
			ctx = slogx.WithContext(ctx, slogx.FromContext(ctx).With("user_id", user.ID))
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// requireSessionPage guards HTML pages: anonymous requests are flashed and
// redirected to the login surface.
func requireSessionPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := userFromContext(r.Context()); !ok {
			setFlash(w, flashError, "Please login first")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireSessionJSON guards JSON endpoints: anonymous requests get 401.
func requireSessionJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := userFromContext(r.Context()); !ok {
			httpx.WriteJSON(w, http.StatusUnauthorized, actionResponse{
				Success: false,
				Message: "Authentication required",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
