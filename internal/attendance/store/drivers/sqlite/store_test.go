package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ssonuprakashks-droid/attendance/internal/attendance/domain"
	"github.com/ssonuprakashks-droid/attendance/internal/attendance/store"
	"github.com/ssonuprakashks-droid/attendance/pkg/idx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st store.Store, username string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: "hash",
		Email:        username + "@example.com",
		FullName:     "Test " + username,
		Role:         domain.RoleUser,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func TestUsersRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	empty, err := st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	u := seedUser(t, st, "alice")

	empty, err = st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)

	byID, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Username, byID.Username)
	require.False(t, byID.CreatedAt.IsZero())

	byName, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, u.ID, byName.ID)

	_, err = st.Users().GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "alice")

	dup := domain.User{
		ID:           idx.New().String(),
		Username:     "alice",
		PasswordHash: "hash",
		Role:         domain.RoleUser,
	}
	require.ErrorIs(t, st.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
}

func TestAttendanceUniquePerUserDay(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := seedUser(t, st, "alice")
	bob := seedUser(t, st, "bob")

	now := time.Now()
	day := domain.Day(now)

	rec := domain.AttendanceRecord{
		ID:      idx.New().String(),
		UserID:  alice.ID,
		CheckIn: now,
		Day:     day,
		Status:  domain.StatusPresent,
	}
	require.NoError(t, st.Attendance().CreateRecord(ctx, rec))

	// A second row for the same (user, day) violates the constraint even
	// with a fresh id.
	rec.ID = idx.New().String()
	require.ErrorIs(t, st.Attendance().CreateRecord(ctx, rec), store.ErrAlreadyExists)

	// Another user on the same day is fine.
	require.NoError(t, st.Attendance().CreateRecord(ctx, domain.AttendanceRecord{
		ID:      idx.New().String(),
		UserID:  bob.ID,
		CheckIn: now,
		Day:     day,
		Status:  domain.StatusPresent,
	}))
}

func TestCloseOpenRecordIsConditional(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := seedUser(t, st, "alice")

	now := time.Now()
	day := domain.Day(now)

	require.ErrorIs(t,
		st.Attendance().CloseOpenRecord(ctx, alice.ID, day, now),
		store.ErrNotFound)

	require.NoError(t, st.Attendance().CreateRecord(ctx, domain.AttendanceRecord{
		ID:      idx.New().String(),
		UserID:  alice.ID,
		CheckIn: now,
		Day:     day,
		Status:  domain.StatusPresent,
	}))

	require.NoError(t, st.Attendance().CloseOpenRecord(ctx, alice.ID, day, now.Add(time.Hour)))

	// Already closed; the conditional update matches nothing.
	require.ErrorIs(t,
		st.Attendance().CloseOpenRecord(ctx, alice.ID, day, now.Add(2*time.Hour)),
		store.ErrNotFound)

	got, err := st.Attendance().GetRecordForDay(ctx, alice.ID, day)
	require.NoError(t, err)
	require.NotNil(t, got.CheckOut)
	require.WithinDuration(t, now.Add(time.Hour), *got.CheckOut, time.Second)
}

func TestWithTxCommitsAndRollsBack(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	err := st.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, domain.User{
			ID:           idx.New().String(),
			Username:     "committed",
			PasswordHash: "hash",
			Role:         domain.RoleUser,
		})
	})
	require.NoError(t, err)

	_, err = st.Users().GetUserByUsername(ctx, "committed")
	require.NoError(t, err)

	boom := context.DeadlineExceeded
	err = st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, domain.User{
			ID:           idx.New().String(),
			Username:     "rolled-back",
			PasswordHash: "hash",
			Role:         domain.RoleUser,
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = st.Users().GetUserByUsername(ctx, "rolled-back")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestNestedTxRejected(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	tx, err := st.Tx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Tx(ctx)
	require.Error(t, err)
}

func TestAttendanceCascadesOnUserDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := seedUser(t, st, "alice")

	now := time.Now()
	require.NoError(t, st.Attendance().CreateRecord(ctx, domain.AttendanceRecord{
		ID:      idx.New().String(),
		UserID:  alice.ID,
		CheckIn: now,
		Day:     domain.Day(now),
		Status:  domain.StatusPresent,
	}))

	_, err := st.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, alice.ID)
	require.NoError(t, err)

	_, err = st.Attendance().GetRecordForDay(ctx, alice.ID, domain.Day(now))
	require.ErrorIs(t, err, store.ErrNotFound)
}
