package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ssonuprakashks-droid/attendance/internal/attendance/domain"
	"github.com/ssonuprakashks-droid/attendance/internal/attendance/store"
	"github.com/ssonuprakashks-droid/attendance/pkg/idx"
	"github.com/ssonuprakashks-droid/attendance/pkg/slogx"
)

var (
	ErrAlreadyCheckedIn = errors.New("already checked in today")
	ErrNoActiveCheckIn  = errors.New("no active check-in found")
)

// ReportLimit caps how many records the reports page shows.
const ReportLimit = 30

// AttendanceService owns the per-day check-in/check-out state machine and
// the read-side aggregations. Every operation is scoped to a single user id.
type AttendanceService struct {
	Store store.Store
}

// CheckIn transitions (user, today) from NoRecord to CheckedIn. The insert
// itself is the precondition check: the store's uniqueness constraint on
// (user_id, day) rejects a duplicate atomically, whatever the check_out
// state of the existing row.
func (s *AttendanceService) CheckIn(ctx context.Context, userID string, now time.Time) (domain.AttendanceRecord, error) {
	log := slogx.FromContext(ctx)

	rec := domain.AttendanceRecord{
		ID:      idx.New().String(),
		UserID:  userID,
		CheckIn: now,
		Day:     domain.Day(now),
		Status:  domain.StatusPresent,
	}

	if err := s.Store.Attendance().CreateRecord(ctx, rec); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.AttendanceRecord{}, ErrAlreadyCheckedIn
		}
		return domain.AttendanceRecord{}, fmt.Errorf("create attendance record: %w", err)
	}

	log.Info("check-in recorded", "user_id", userID, "day", rec.Day)
	return rec, nil
}

// CheckOut transitions (user, today) from CheckedIn to CheckedOut with a
// single conditional update. Repeating it after success fails with
// ErrNoActiveCheckIn and performs no second mutation.
func (s *AttendanceService) CheckOut(ctx context.Context, userID string, now time.Time) error {
	log := slogx.FromContext(ctx)

	day := domain.Day(now)
	if err := s.Store.Attendance().CloseOpenRecord(ctx, userID, day, now); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNoActiveCheckIn
		}
		return fmt.Errorf("close attendance record: %w", err)
	}

	log.Info("check-out recorded", "user_id", userID, "day", day)
	return nil
}

// TodayRecord returns the record for (userID, today), or found=false when
// the user hasn't checked in yet.
func (s *AttendanceService) TodayRecord(ctx context.Context, userID string, now time.Time) (domain.AttendanceRecord, bool, error) {
	rec, err := s.Store.Attendance().GetRecordForDay(ctx, userID, domain.Day(now))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AttendanceRecord{}, false, nil
		}
		return domain.AttendanceRecord{}, false, fmt.Errorf("get today's record: %w", err)
	}
	return rec, true, nil
}

// Stats returns lifetime per-status counts for the user. Statuses without
// rows are logical zeroes, never errors.
func (s *AttendanceService) Stats(ctx context.Context, userID string) (domain.StatusCounts, error) {
	counts, err := s.Store.Attendance().CountByStatus(ctx, userID)
	if err != nil {
		return domain.StatusCounts{}, fmt.Errorf("count attendance by status: %w", err)
	}

	stats := domain.StatusCounts{
		Present: counts[domain.StatusPresent],
		Absent:  counts[domain.StatusAbsent],
		Late:    counts[domain.StatusLate],
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

// Reports returns up to ReportLimit records for the user, newest day first.
func (s *AttendanceService) Reports(ctx context.Context, userID string) ([]domain.AttendanceRecord, error) {
	records, err := s.Store.Attendance().ListRecent(ctx, userID, ReportLimit)
	if err != nil {
		return nil, fmt.Errorf("list attendance records: %w", err)
	}
	return records, nil
}

// Summary returns status occurrence counts for the user, covering only
// statuses that actually occur in the data (no zero-filling).
func (s *AttendanceService) Summary(ctx context.Context, userID string) (map[string]int, error) {
	counts, err := s.Store.Attendance().CountByStatus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count attendance by status: %w", err)
	}
	return counts, nil
}
