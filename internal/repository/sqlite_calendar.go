package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clocked-app/clocked/internal/db"
	"github.com/clocked-app/clocked/internal/domain"
)

// SQLiteWorkCalendarRepo implements WorkCalendarRepo using a SQLite database.
type SQLiteWorkCalendarRepo struct {
	db db.DBTX
}

// NewSQLiteWorkCalendarRepo creates a new SQLiteWorkCalendarRepo.
func NewSQLiteWorkCalendarRepo(db db.DBTX) *SQLiteWorkCalendarRepo {
	return &SQLiteWorkCalendarRepo{db: db}
}

func (r *SQLiteWorkCalendarRepo) GetByUser(ctx context.Context, userID string) (*domain.WorkCalendar, error) {
	query := `SELECT id, user_id, timezone, week_start, hours_per_day, work_days, holiday_region
		FROM work_calendars WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var c domain.WorkCalendar
	err := row.Scan(&c.ID, &c.UserID, &c.Timezone, &c.WeekStart, &c.HoursPerDay, &c.WorkDays, &c.HolidayRegion)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work calendar: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work calendar: %w", err)
	}
	return &c, nil
}

func (r *SQLiteWorkCalendarRepo) Create(ctx context.Context, c *domain.WorkCalendar) error {
	query := `INSERT INTO work_calendars (id, user_id, timezone, week_start, hours_per_day, work_days, holiday_region)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.UserID, c.Timezone, c.WeekStart, c.HoursPerDay, c.WorkDays, c.HolidayRegion)
	if err != nil {
		return fmt.Errorf("inserting work calendar: %w", err)
	}
	return nil
}

func (r *SQLiteWorkCalendarRepo) Update(ctx context.Context, c *domain.WorkCalendar) error {
	query := `UPDATE work_calendars
		SET timezone = ?, week_start = ?, hours_per_day = ?, work_days = ?, holiday_region = ?
		WHERE user_id = ?`
	_, err := r.db.ExecContext(ctx, query,
		c.Timezone, c.WeekStart, c.HoursPerDay, c.WorkDays, c.HolidayRegion, c.UserID)
	if err != nil {
		return fmt.Errorf("updating work calendar: %w", err)
	}
	return nil
}
