package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/castlinehq/castline/internal/booking/calendarsync"
	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
	"github.com/castlinehq/castline/pkg/idx"
	"github.com/castlinehq/castline/pkg/slogx"
)

// CalendarService manages the one-calendar-per-user entries and mirrors
// changes to the external scheduler.
type CalendarService struct {
	Store     store.Store
	Scheduler calendarsync.Scheduler
}

// Create inserts the user's calendar. A second calendar for the same user
// fails with ErrCalendarExists. The external push is best-effort.
func (s *CalendarService) Create(ctx context.Context, c domain.Calendar) (domain.Calendar, error) {
	now := time.Now()
	c.ID = idx.New().String()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.Store.Calendars().CreateCalendar(ctx, c); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Calendar{}, ErrCalendarExists
		}
		return domain.Calendar{}, err
	}

	s.push(ctx, c)
	return c, nil
}

func (s *CalendarService) Get(ctx context.Context, id string) (domain.Calendar, error) {
	c, err := s.Store.Calendars().GetCalendarByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Calendar{}, ErrNotFound
	}
	return c, err
}

func (s *CalendarService) GetByUser(ctx context.Context, userID string) (domain.Calendar, error) {
	c, err := s.Store.Calendars().GetCalendarByUserID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Calendar{}, ErrNotFound
	}
	return c, err
}

func (s *CalendarService) List(ctx context.Context, p store.Page) ([]domain.Calendar, error) {
	return s.Store.Calendars().ListCalendars(ctx, p)
}

func (s *CalendarService) Update(ctx context.Context, c domain.Calendar) (domain.Calendar, error) {
	if err := s.Store.Calendars().UpdateCalendar(ctx, c); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Calendar{}, ErrNotFound
		}
		return domain.Calendar{}, err
	}

	updated, err := s.Get(ctx, c.ID)
	if err != nil {
		return domain.Calendar{}, err
	}
	s.push(ctx, updated)
	return updated, nil
}

func (s *CalendarService) Delete(ctx context.Context, id string) error {
	err := s.Store.Calendars().DeleteCalendar(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// push mirrors the entry outward; failures are logged, never surfaced.
func (s *CalendarService) push(ctx context.Context, c domain.Calendar) {
	if s.Scheduler == nil {
		return
	}
	ev := calendarsync.Event{
		CalendarID: c.ID,
		UserID:     c.UserID,
		Title:      c.EventTitle,
		Venue:      c.EventVenue,
		Date:       c.EventDate,
		Time:       c.EventTime,
	}
	if err := s.Scheduler.ScheduleEvent(ctx, ev); err != nil {
		slogx.FromContext(ctx).Error("calendar sync failed",
			slog.Any("error", err), slog.String("calendar_id", c.ID))
	}
}
