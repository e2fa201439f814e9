package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clocked-app/clocked/internal/db"
	"github.com/clocked-app/clocked/internal/domain"
)

// leaveColumns is the canonical SELECT column list for leave_entries.
const leaveColumns = `id, user_id, leave_type, started_at, duration_days, public_holiday, note`

// SQLiteLeaveRepo implements LeaveRepo using a SQLite database.
type SQLiteLeaveRepo struct {
	db db.DBTX
}

// NewSQLiteLeaveRepo creates a new SQLiteLeaveRepo.
func NewSQLiteLeaveRepo(db db.DBTX) *SQLiteLeaveRepo {
	return &SQLiteLeaveRepo{db: db}
}

func (r *SQLiteLeaveRepo) Create(ctx context.Context, l *domain.LeaveEntry) error {
	query := `INSERT INTO leave_entries (id, user_id, leave_type, started_at, duration_days, public_holiday, note)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.UserID, string(l.Type), l.Start, l.Duration, boolToInt(l.PublicHoliday), l.Note)
	if err != nil {
		return fmt.Errorf("inserting leave entry: %w", err)
	}
	return nil
}

func (r *SQLiteLeaveRepo) GetByID(ctx context.Context, id string) (*domain.LeaveEntry, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_entries WHERE id = ?`
	return r.scanLeave(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteLeaveRepo) ListByUser(ctx context.Context, userID string) ([]*domain.LeaveEntry, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_entries
		WHERE user_id = ? ORDER BY started_at DESC, id DESC`
	return r.queryLeaves(ctx, query, userID)
}

func (r *SQLiteLeaveRepo) ListSince(ctx context.Context, userID string, since int64) ([]*domain.LeaveEntry, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_entries
		WHERE user_id = ? AND started_at >= ? ORDER BY started_at DESC, id DESC`
	return r.queryLeaves(ctx, query, userID, since)
}

func (r *SQLiteLeaveRepo) ListBetween(ctx context.Context, userID string, start, end int64) ([]*domain.LeaveEntry, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_entries
		WHERE user_id = ? AND started_at >= ? AND started_at < ? ORDER BY started_at DESC, id DESC`
	return r.queryLeaves(ctx, query, userID, start, end)
}

func (r *SQLiteLeaveRepo) FirstStart(ctx context.Context, userID string) (int64, error) {
	query := `SELECT MIN(started_at) FROM leave_entries WHERE user_id = ?`
	var first sql.NullInt64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&first); err != nil {
		return 0, fmt.Errorf("finding first leave entry: %w", err)
	}
	if !first.Valid {
		return 0, fmt.Errorf("first leave entry: %w", ErrNotFound)
	}
	return first.Int64, nil
}

func (r *SQLiteLeaveRepo) Update(ctx context.Context, l *domain.LeaveEntry) error {
	query := `UPDATE leave_entries
		SET leave_type = ?, started_at = ?, duration_days = ?, public_holiday = ?, note = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		string(l.Type), l.Start, l.Duration, boolToInt(l.PublicHoliday), l.Note, l.ID)
	if err != nil {
		return fmt.Errorf("updating leave entry: %w", err)
	}
	return nil
}

func (r *SQLiteLeaveRepo) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM leave_entries WHERE id = ? AND user_id = ?`
	_, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting leave entry: %w", err)
	}
	return nil
}

func (r *SQLiteLeaveRepo) queryLeaves(ctx context.Context, query string, args ...any) ([]*domain.LeaveEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing leave entries: %w", err)
	}
	defer rows.Close()

	var leaves []*domain.LeaveEntry
	for rows.Next() {
		var l domain.LeaveEntry
		var leaveType string
		var publicHoliday int
		if err := rows.Scan(&l.ID, &l.UserID, &leaveType, &l.Start, &l.Duration, &publicHoliday, &l.Note); err != nil {
			return nil, fmt.Errorf("scanning leave entry row: %w", err)
		}
		l.Type = domain.LeaveType(leaveType)
		l.PublicHoliday = intToBool(publicHoliday)
		leaves = append(leaves, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leave entries: %w", err)
	}
	return leaves, nil
}

func (r *SQLiteLeaveRepo) scanLeave(row *sql.Row) (*domain.LeaveEntry, error) {
	var l domain.LeaveEntry
	var leaveType string
	var publicHoliday int

	err := row.Scan(&l.ID, &l.UserID, &leaveType, &l.Start, &l.Duration, &publicHoliday, &l.Note)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("leave entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning leave entry: %w", err)
	}
	l.Type = domain.LeaveType(leaveType)
	l.PublicHoliday = intToBool(publicHoliday)
	return &l, nil
}
