package http

import (
	"net/http"

	"github.com/ssonuprakashks-droid/attendance/internal/attendance/service"
	"github.com/ssonuprakashks-droid/attendance/pkg/slogx"
)

// ReportsHandler serves the user's recent attendance history.
type ReportsHandler struct {
	AttendanceService *service.AttendanceService
	Pages             *pages
}

func (h *ReportsHandler) HandleReports(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	records, err := h.AttendanceService.Reports(r.Context(), user.ID)
	if err != nil {
		slogx.FromContext(r.Context()).Error("load reports failed", "err", err)
		h.Pages.render(w, r, http.StatusInternalServerError, "500.html", pageData{User: &user})
		return
	}

	h.Pages.render(w, r, http.StatusOK, "reports.html", pageData{
		User:    &user,
		Records: records,
	})
}
