package store

import (
	"context"
	"errors"
	"time"

	"github.com/ssonuprakashks-droid/attendance/internal/attendance/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Attendance() Attendance
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during the credential check.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// A duplicate username yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// IsEmpty returns true if there are no users. Drives first-boot seeding.
	IsEmpty(ctx context.Context) (bool, error)
}

type Attendance interface {
	// CreateRecord inserts a new attendance record. The (user_id, day)
	// uniqueness constraint makes this the atomic check-in transition:
	// a second insert for the same day yields ErrAlreadyExists without
	// touching the existing row.
	CreateRecord(ctx context.Context, rec domain.AttendanceRecord) error

	// CloseOpenRecord sets check_out on the single open record for
	// (userID, day). It is a conditional update; ErrNotFound means there
	// was no open record, either because the user never checked in or
	// already checked out.
	CloseOpenRecord(ctx context.Context, userID, day string, checkOut time.Time) error

	// GetRecordForDay returns the record for (userID, day) or ErrNotFound.
	GetRecordForDay(ctx context.Context, userID, day string) (domain.AttendanceRecord, error)

	// ListRecent returns up to limit records for the user, newest day first.
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.AttendanceRecord, error)

	// CountByStatus returns occurrence counts per status for the user,
	// covering only statuses that actually occur.
	CountByStatus(ctx context.Context, userID string) (map[string]int, error)
}

type Sessions interface {
	// CreateSession stores a new session row (token_hash is the SHA-256
	// fingerprint of the opaque cookie token).
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByTokenHash returns the session by fingerprint.
	GetSessionByTokenHash(ctx context.Context, tokenHash string) (domain.Session, error)

	// DeleteSessionByTokenHash removes a session at logout. Deleting an
	// unknown fingerprint is not an error.
	DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpiredSessions removes sessions whose expiry has passed.
	// Housekeeping; returns the number of rows removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
