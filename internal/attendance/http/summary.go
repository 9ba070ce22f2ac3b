package http

import (
	"net/http"

	"github.com/ssonuprakashks-droid/attendance/internal/attendance/service"
	"github.com/ssonuprakashks-droid/attendance/pkg/httpx"
	"github.com/ssonuprakashks-droid/attendance/pkg/slogx"
)

// SummaryHandler serves the per-status attendance counts as JSON, keyed by
// status name. Only statuses the user actually has appear in the object.
type SummaryHandler struct {
	AttendanceService *service.AttendanceService
}

func (h *SummaryHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	summary, err := h.AttendanceService.Summary(r.Context(), user.ID)
	if err != nil {
		slogx.FromContext(r.Context()).Error("load summary failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, actionResponse{
			Success: false,
			Message: "Internal server error",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, summary)
}
