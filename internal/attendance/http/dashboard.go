package http

import (
	"net/http"
	"time"

	"github.com/ssonuprakashks-droid/attendance/internal/attendance/service"
	"github.com/ssonuprakashks-droid/attendance/pkg/slogx"
)

// DashboardHandler serves today's attendance state plus lifetime stats.
type DashboardHandler struct {
	AttendanceService *service.AttendanceService
	Pages             *pages
}

func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	data := pageData{User: &user}

	rec, found, err := h.AttendanceService.TodayRecord(r.Context(), user.ID, time.Now())
	if err != nil {
		slogx.FromContext(r.Context()).Error("load today's record failed", "err", err)
		h.Pages.render(w, r, http.StatusInternalServerError, "500.html", pageData{User: &user})
		return
	}
	if found {
		data.Today = &rec
	}

	stats, err := h.AttendanceService.Stats(r.Context(), user.ID)
	if err != nil {
		slogx.FromContext(r.Context()).Error("load stats failed", "err", err)
		h.Pages.render(w, r, http.StatusInternalServerError, "500.html", pageData{User: &user})
		return
	}
	data.Stats = stats

	h.Pages.render(w, r, http.StatusOK, "dashboard.html", data)
}
