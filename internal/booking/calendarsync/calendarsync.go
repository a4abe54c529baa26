// Package calendarsync pushes calendar entries to an external scheduling
// system. Calls are fire-and-forget from the caller's perspective: a failed
// push is logged, never surfaced to the client.
package calendarsync

import (
	"context"
	"log/slog"

	"github.com/castlinehq/castline/pkg/slogx"
)

// Event is the subset of a calendar entry the external system cares about.
type Event struct {
	CalendarID string
	UserID     string
	Title      string
	Venue      string
	Date       string
	Time       string
}

// Scheduler mirrors calendar entries outward.
type Scheduler interface {
	ScheduleEvent(ctx context.Context, ev Event) error
}

// LogScheduler is the default Scheduler: it records the push in the
// structured log and succeeds.
type LogScheduler struct{}

func (LogScheduler) ScheduleEvent(ctx context.Context, ev Event) error {
	slogx.FromContext(ctx).Info("calendar event scheduled",
		slog.String("calendar_id", ev.CalendarID),
		slog.String("user_id", ev.UserID),
		slog.String("title", ev.Title),
	)
	return nil
}
