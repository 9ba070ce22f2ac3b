package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ssonuprakashks-droid/attendance/internal/attendance/domain"
)

func TestCheckInAndCheckOut(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := createTestUser(t, st, "alice", "s3cret-password")

	svc := &AttendanceService{Store: st}
	now := time.Now()

	rec, err := svc.CheckIn(ctx, user.ID, now)
	require.NoError(t, err)
	require.Equal(t, user.ID, rec.UserID)
	require.Equal(t, domain.Day(now), rec.Day)
	require.Equal(t, domain.StatusPresent, rec.Status)
	require.Nil(t, rec.CheckOut)

	require.NoError(t, svc.CheckOut(ctx, user.ID, now.Add(8*time.Hour)))

	got, found, err := svc.TodayRecord(ctx, user.ID, now)
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, got.CheckOut)
	require.False(t, got.Open())
}

func TestCheckInTwiceSameDayFails(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := createTestUser(t, st, "alice", "s3cret-password")

	svc := &AttendanceService{Store: st}
	now := time.Now()

	first, err := svc.CheckIn(ctx, user.ID, now)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, user.ID, now.Add(time.Minute))
	require.ErrorIs(t, err, ErrAlreadyCheckedIn)

	// The original record is untouched.
	got, found, err := svc.TodayRecord(ctx, user.ID, now)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, first.ID, got.ID)
}

func TestCheckInAfterCheckOutSameDayFails(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := createTestUser(t, st, "alice", "s3cret-password")

	svc := &AttendanceService{Store: st}
	now := time.Now()

	_, err := svc.CheckIn(ctx, user.ID, now)
	require.NoError(t, err)
	require.NoError(t, svc.CheckOut(ctx, user.ID, now.Add(time.Hour)))

	_, err = svc.CheckIn(ctx, user.ID, now.Add(2*time.Hour))
	require.ErrorIs(t, err, ErrAlreadyCheckedIn)
}

func TestCheckOutWithoutCheckInFails(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := createTestUser(t, st, "alice", "s3cret-password")

	svc := &AttendanceService{Store: st}

	err := svc.CheckOut(ctx, user.ID, time.Now())
	require.ErrorIs(t, err, ErrNoActiveCheckIn)
}

func TestCheckOutTwiceFails(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := createTestUser(t, st, "alice", "s3cret-password")

	svc := &AttendanceService{Store: st}
	now := time.Now()

	_, err := svc.CheckIn(ctx, user.ID, now)
	require.NoError(t, err)

	first := now.Add(time.Hour)
	require.NoError(t, svc.CheckOut(ctx, user.ID, first))
	require.ErrorIs(t, svc.CheckOut(ctx, user.ID, now.Add(2*time.Hour)), ErrNoActiveCheckIn)

	// The recorded check-out time is from the first call.
	got, found, err := svc.TodayRecord(ctx, user.ID, now)
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, got.CheckOut)
	require.WithinDuration(t, first, *got.CheckOut, time.Second)
}

func TestAttendanceIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := createTestUser(t, st, "alice", "s3cret-password")
	bob := createTestUser(t, st, "bob", "s3cret-password")

	svc := &AttendanceService{Store: st}
	now := time.Now()

	_, err := svc.CheckIn(ctx, alice.ID, now)
	require.NoError(t, err)

	// Alice's record doesn't block Bob's check-in, and Bob can't check
	// out against it.
	require.ErrorIs(t, svc.CheckOut(ctx, bob.ID, now), ErrNoActiveCheckIn)

	_, err = svc.CheckIn(ctx, bob.ID, now)
	require.NoError(t, err)

	_, found, err := svc.TodayRecord(ctx, bob.ID, now)
	require.NoError(t, err)
	require.True(t, found)
}

func TestTodayRecordMissing(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := createTestUser(t, st, "alice", "s3cret-password")

	svc := &AttendanceService{Store: st}

	_, found, err := svc.TodayRecord(ctx, user.ID, time.Now())
	require.NoError(t, err)
	require.False(t, found)
}

func TestStatsAndSummary(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := createTestUser(t, st, "alice", "s3cret-password")

	svc := &AttendanceService{Store: st}
	now := time.Now()

	// Three present days checked in on distinct days.
	for i := range 3 {
		day := now.AddDate(0, 0, -i)
		_, err := svc.CheckIn(ctx, user.ID, day)
		require.NoError(t, err)
	}

	stats, err := svc.Stats(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCounts{Total: 3, Present: 3}, stats)

	summary, err := svc.Summary(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, map[string]int{domain.StatusPresent: 3}, summary)
}

func TestSummaryEmpty(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := createTestUser(t, st, "alice", "s3cret-password")

	svc := &AttendanceService{Store: st}

	summary, err := svc.Summary(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, summary)

	stats, err := svc.Stats(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCounts{}, stats)
}

func TestReportsNewestFirstAndCapped(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := createTestUser(t, st, "alice", "s3cret-password")

	svc := &AttendanceService{Store: st}
	now := time.Now()

	for i := range ReportLimit + 5 {
		day := now.AddDate(0, 0, -i)
		_, err := svc.CheckIn(ctx, user.ID, day)
		require.NoError(t, err)
	}

	records, err := svc.Reports(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, records, ReportLimit)

	require.Equal(t, domain.Day(now), records[0].Day)
	for i := 1; i < len(records); i++ {
		require.Greater(t, records[i-1].Day, records[i].Day)
	}
}
