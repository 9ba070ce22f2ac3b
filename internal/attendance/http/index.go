package http

import (
	"net/http"
)

// IndexHandler serves the authenticated landing page.
type IndexHandler struct {
	Pages *pages
}

func (h *IndexHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	// The ServeMux "/" pattern is a catch-all; anything but the root itself
	// is a miss.
	if r.URL.Path != "/" {
		h.Pages.render(w, r, http.StatusNotFound, "404.html", pageData{})
		return
	}

	user, ok := userFromContext(r.Context())
	if !ok {
		setFlash(w, flashError, "Please login first")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.Pages.render(w, r, http.StatusOK, "index.html", pageData{User: &user})
}
