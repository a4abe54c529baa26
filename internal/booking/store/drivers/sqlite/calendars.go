package sqlite

import (
	"context"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
)

type calendarsRepo struct {
	db dbtx
}

const calendarColumns = `id, user_id, event_title, description, event_venue,
	event_city, event_country, event_date, event_time, created_at, updated_at`

func scanCalendar(row interface{ Scan(...any) error }) (domain.Calendar, error) {
	var c domain.Calendar
	err := row.Scan(
		&c.ID, &c.UserID, &c.EventTitle, &c.Description, &c.EventVenue,
		&c.EventCity, &c.EventCountry, &c.EventDate, &c.EventTime,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Calendar{}, mapNotFound(err)
	}
	return c, nil
}

// CreateCalendar relies on the user_id UNIQUE constraint: a second calendar
// for the same user comes back as ErrAlreadyExists.
func (r *calendarsRepo) CreateCalendar(ctx context.Context, c domain.Calendar) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calendars (id, user_id, event_title, description, event_venue,
			event_city, event_country, event_date, event_time, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.EventTitle, c.Description, c.EventVenue,
		c.EventCity, c.EventCountry, c.EventDate, c.EventTime, c.CreatedAt, c.UpdatedAt,
	)
	return mapWriteErr(err)
}

func (r *calendarsRepo) GetCalendarByID(ctx context.Context, id string) (domain.Calendar, error) {
	return scanCalendar(r.db.QueryRowContext(ctx,
		`SELECT `+calendarColumns+` FROM calendars WHERE id = ?`, id))
}

func (r *calendarsRepo) GetCalendarByUserID(ctx context.Context, userID string) (domain.Calendar, error) {
	return scanCalendar(r.db.QueryRowContext(ctx,
		`SELECT `+calendarColumns+` FROM calendars WHERE user_id = ?`, userID))
}

func (r *calendarsRepo) ListCalendars(ctx context.Context, p store.Page) ([]domain.Calendar, error) {
	limit, offset := page(p)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+calendarColumns+` FROM calendars ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Calendar
	for rows.Next() {
		c, err := scanCalendar(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *calendarsRepo) UpdateCalendar(ctx context.Context, c domain.Calendar) error {
	return affectedOrNotFound(r.db.ExecContext(ctx, `
		UPDATE calendars
		SET event_title = ?, description = ?, event_venue = ?, event_city = ?,
			event_country = ?, event_date = ?, event_time = ?, updated_at = ?
		WHERE id = ?`,
		c.EventTitle, c.Description, c.EventVenue, c.EventCity,
		c.EventCountry, c.EventDate, c.EventTime, time.Now().UTC(), c.ID,
	))
}

func (r *calendarsRepo) DeleteCalendar(ctx context.Context, id string) error {
	return affectedOrNotFound(r.db.ExecContext(ctx,
		`DELETE FROM calendars WHERE id = ?`, id,
	))
}
