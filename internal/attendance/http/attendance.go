package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/ssonuprakashks-droid/attendance/internal/attendance/service"
	"github.com/ssonuprakashks-droid/attendance/pkg/httpx"
	"github.com/ssonuprakashks-droid/attendance/pkg/slogx"
)

// actionTimeFormat is the timestamp shape check-in/check-out responses use.
const actionTimeFormat = "2006-01-02 15:04:05"

// actionResponse is the JSON envelope for the check-in/check-out endpoints.
type actionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Time    string `json:"time,omitempty"`
}

// AttendanceHandler processes the check-in and check-out actions.
type AttendanceHandler struct {
	AttendanceService *service.AttendanceService
}

// HandleCheckIn records today's check-in for the authenticated user.
// A duplicate check-in fails with 400 and leaves the existing record alone.
func (h *AttendanceHandler) HandleCheckIn(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, actionResponse{
			Success: false,
			Message: "Authentication required",
		})
		return
	}

	now := time.Now()
	rec, err := h.AttendanceService.CheckIn(r.Context(), user.ID, now)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyCheckedIn) {
			httpx.WriteJSON(w, http.StatusBadRequest, actionResponse{
				Success: false,
				Message: "Already checked in today",
			})
			return
		}
		slogx.FromContext(r.Context()).Error("check-in failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, actionResponse{
			Success: false,
			Message: "Internal server error",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, actionResponse{
		Success: true,
		Message: "Checked in successfully",
		Time:    rec.CheckIn.Format(actionTimeFormat),
	})
}

// HandleCheckOut closes today's open record for the authenticated user.
// Without an open check-in this fails with 400; it never mutates twice.
func (h *AttendanceHandler) HandleCheckOut(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, actionResponse{
			Success: false,
			Message: "Authentication required",
		})
		return
	}

	now := time.Now()
	if err := h.AttendanceService.CheckOut(r.Context(), user.ID, now); err != nil {
		if errors.Is(err, service.ErrNoActiveCheckIn) {
			httpx.WriteJSON(w, http.StatusBadRequest, actionResponse{
				Success: false,
				Message: "No active check-in found",
			})
			return
		}
		slogx.FromContext(r.Context()).Error("check-out failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, actionResponse{
			Success: false,
			Message: "Internal server error",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, actionResponse{
		Success: true,
		Message: "Checked out successfully",
		Time:    now.Format(actionTimeFormat),
	})
}
