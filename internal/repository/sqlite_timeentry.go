package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/clocked-app/clocked/internal/db"
	"github.com/clocked-app/clocked/internal/domain"
)

// timeEntryColumns is the canonical SELECT column list for time_entries.
const timeEntryColumns = `id, user_id, started_at, ended_at, note`

// SQLiteTimeEntryRepo implements TimeEntryRepo using a SQLite database.
type SQLiteTimeEntryRepo struct {
	db db.DBTX
}

// NewSQLiteTimeEntryRepo creates a new SQLiteTimeEntryRepo.
func NewSQLiteTimeEntryRepo(db db.DBTX) *SQLiteTimeEntryRepo {
	return &SQLiteTimeEntryRepo{db: db}
}

func (r *SQLiteTimeEntryRepo) Create(ctx context.Context, e *domain.TimeEntry) error {
	query := `INSERT INTO time_entries (id, user_id, started_at, ended_at, note)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.UserID, e.Start, nullableInt64(e.End), e.Note)
	if err != nil {
		return fmt.Errorf("inserting time entry: %w", err)
	}
	for i := range e.Breaks {
		if err := r.CreateBreak(ctx, &e.Breaks[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteTimeEntryRepo) GetByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE id = ?`
	e, err := r.scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.attachBreaks(ctx, []*domain.TimeEntry{e}); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *SQLiteTimeEntryRepo) ListByUser(ctx context.Context, userID string) ([]*domain.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries
		WHERE user_id = ? ORDER BY started_at DESC, id DESC`
	return r.queryEntries(ctx, query, userID)
}

func (r *SQLiteTimeEntryRepo) ListSince(ctx context.Context, userID string, since int64) ([]*domain.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries
		WHERE user_id = ? AND started_at >= ? ORDER BY started_at DESC, id DESC`
	return r.queryEntries(ctx, query, userID, since)
}

func (r *SQLiteTimeEntryRepo) ListBetween(ctx context.Context, userID string, start, end int64) ([]*domain.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries
		WHERE user_id = ? AND started_at >= ? AND started_at < ? ORDER BY started_at DESC, id DESC`
	return r.queryEntries(ctx, query, userID, start, end)
}

func (r *SQLiteTimeEntryRepo) FindOpen(ctx context.Context, userID string) (*domain.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries
		WHERE user_id = ? AND ended_at IS NULL ORDER BY started_at DESC LIMIT 1`
	e, err := r.scanEntry(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		return nil, err
	}
	if err := r.attachBreaks(ctx, []*domain.TimeEntry{e}); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *SQLiteTimeEntryRepo) FirstStart(ctx context.Context, userID string) (int64, error) {
	query := `SELECT MIN(started_at) FROM time_entries WHERE user_id = ?`
	var first sql.NullInt64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&first); err != nil {
		return 0, fmt.Errorf("finding first time entry: %w", err)
	}
	if !first.Valid {
		return 0, fmt.Errorf("first time entry: %w", ErrNotFound)
	}
	return first.Int64, nil
}

func (r *SQLiteTimeEntryRepo) Update(ctx context.Context, e *domain.TimeEntry) error {
	query := `UPDATE time_entries SET started_at = ?, ended_at = ?, note = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, e.Start, nullableInt64(e.End), e.Note, e.ID)
	if err != nil {
		return fmt.Errorf("updating time entry: %w", err)
	}
	return nil
}

func (r *SQLiteTimeEntryRepo) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM time_entries WHERE id = ? AND user_id = ?`
	_, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting time entry: %w", err)
	}
	return nil
}

func (r *SQLiteTimeEntryRepo) CreateBreak(ctx context.Context, b *domain.BreakInterval) error {
	query := `INSERT INTO breaks (id, time_entry_id, started_at, ended_at, note)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, b.ID, b.TimeEntryID, b.Start, nullableInt64(b.End), b.Note)
	if err != nil {
		return fmt.Errorf("inserting break: %w", err)
	}
	return nil
}

func (r *SQLiteTimeEntryRepo) UpdateBreak(ctx context.Context, b *domain.BreakInterval) error {
	query := `UPDATE breaks SET started_at = ?, ended_at = ?, note = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, b.Start, nullableInt64(b.End), b.Note, b.ID)
	if err != nil {
		return fmt.Errorf("updating break: %w", err)
	}
	return nil
}

func (r *SQLiteTimeEntryRepo) queryEntries(ctx context.Context, query string, args ...any) ([]*domain.TimeEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.TimeEntry
	for rows.Next() {
		var e domain.TimeEntry
		var endedAt sql.NullInt64
		if err := rows.Scan(&e.ID, &e.UserID, &e.Start, &endedAt, &e.Note); err != nil {
			return nil, fmt.Errorf("scanning time entry row: %w", err)
		}
		e.End = int64Ptr(endedAt)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time entries: %w", err)
	}

	if err := r.attachBreaks(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *SQLiteTimeEntryRepo) scanEntry(row *sql.Row) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	var endedAt sql.NullInt64

	err := row.Scan(&e.ID, &e.UserID, &e.Start, &endedAt, &e.Note)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("time entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning time entry: %w", err)
	}
	e.End = int64Ptr(endedAt)
	return &e, nil
}

// attachBreaks loads the breaks for the given entries in one query and
// distributes them, ordered by start.
func (r *SQLiteTimeEntryRepo) attachBreaks(ctx context.Context, entries []*domain.TimeEntry) error {
	if len(entries) == 0 {
		return nil
	}

	byID := make(map[string]*domain.TimeEntry, len(entries))
	placeholders := make([]string, 0, len(entries))
	args := make([]any, 0, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
		placeholders = append(placeholders, "?")
		args = append(args, e.ID)
	}

	query := `SELECT id, time_entry_id, started_at, ended_at, note FROM breaks
		WHERE time_entry_id IN (` + strings.Join(placeholders, ",") + `) ORDER BY started_at`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("listing breaks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b domain.BreakInterval
		var endedAt sql.NullInt64
		if err := rows.Scan(&b.ID, &b.TimeEntryID, &b.Start, &endedAt, &b.Note); err != nil {
			return fmt.Errorf("scanning break row: %w", err)
		}
		b.End = int64Ptr(endedAt)
		if e, ok := byID[b.TimeEntryID]; ok {
			e.Breaks = append(e.Breaks, b)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating breaks: %w", err)
	}
	return nil
}
