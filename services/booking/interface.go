package booking

import (
	"context"

	"roomly/models"
)

// BookingService exposes the booking operations behind the HTTP handlers.
type BookingService interface {
	// CreateBooking validates and persists a single booking (the first
	// occurrence of a series, or a one-off).
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	// ExpandRecurrence generates, filters and persists the repeat occurrences
	// of a template booking. The template's own occurrence must already have
	// been created by the caller. Returns the number of occurrences inserted.
	ExpandRecurrence(ctx context.Context, template models.Booking, repeat models.RepeatType, endDate, requesterID string) (int, error)
	ListRoomDay(ctx context.Context, roomID, date string) ([]models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, id, requesterID string, isAdmin bool) error
}

// ReminderScheduler enqueues a reminder notification for a booking.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, booking models.Booking) error
}
