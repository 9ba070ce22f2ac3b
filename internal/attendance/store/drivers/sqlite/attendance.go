package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/ssonuprakashks-droid/attendance/internal/attendance/domain"
	"github.com/ssonuprakashks-droid/attendance/internal/attendance/store"
)

type attendanceRepo struct {
	db dbtx
}

const attendanceColumns = `id, user_id, check_in, check_out, day, status, created_at, updated_at`

func scanAttendanceRecord(row interface{ Scan(...any) error }) (domain.AttendanceRecord, error) {
	var rec domain.AttendanceRecord
	var checkOut sql.NullTime
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.CheckIn,
		&checkOut,
		&rec.Day,
		&rec.Status,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return domain.AttendanceRecord{}, err
	}
	rec.CheckOut = mapNullTimePtr(checkOut)
	return rec, nil
}

// CreateRecord is the check-in transition. The UNIQUE(user_id, day)
// constraint rejects a second insert for the same day atomically, so there
// is no window between checking and inserting.
func (r *attendanceRepo) CreateRecord(ctx context.Context, rec domain.AttendanceRecord) error {
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = now
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attendance (id, user_id, check_in, check_out, day, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.UserID,
		rec.CheckIn,
		mapOptionalTime(rec.CheckOut),
		rec.Day,
		rec.Status,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return mapConstraint(err)
}

// CloseOpenRecord is the check-out transition: a single conditional update
// that only touches the open record. Zero rows affected means there was
// nothing to close.
func (r *attendanceRepo) CloseOpenRecord(ctx context.Context, userID, day string, checkOut time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE attendance
		 SET check_out = ?, updated_at = ?
		 WHERE user_id = ? AND day = ? AND check_out IS NULL`,
		checkOut, time.Now().UTC(), userID, day,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *attendanceRepo) GetRecordForDay(ctx context.Context, userID, day string) (domain.AttendanceRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE user_id = ? AND day = ?`,
		userID, day)
	rec, err := scanAttendanceRecord(row)
	if err != nil {
		return domain.AttendanceRecord{}, mapNotFound(err)
	}
	return rec, nil
}

func (r *attendanceRepo) ListRecent(ctx context.Context, userID string, limit int) ([]domain.AttendanceRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance
		 WHERE user_id = ?
		 ORDER BY day DESC
		 LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendanceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *attendanceRepo) CountByStatus(ctx context.Context, userID string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM attendance WHERE user_id = ? GROUP BY status`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
