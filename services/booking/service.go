package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "roomly/database/repository/booking"
	roomRepo "roomly/database/repository/room"
	"roomly/models"
	"roomly/utils"
)

const minutesPerDay = 24 * 60

// DefaultBookingService is the production BookingService implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Rooms     roomRepo.RoomRepository
	Reminders ReminderScheduler // optional; nil disables reminders
}

// CreateBooking validates, conflict-checks and persists a single booking.
func (svc *DefaultBookingService) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if err := svc.validateBooking(ctx, booking); err != nil {
		return nil, err
	}

	existing, err := svc.Repo.FindOverlapping(ctx, booking.RoomID, booking.Date, booking.Start, booking.End)
	if err != nil {
		return nil, fmt.Errorf("conflict check failed: %w", err)
	}
	if len(existing) > 0 {
		return nil, ErrBookingConflict
	}

	booking.ID = uuid.New().String()
	booking.CreatedAt = time.Now()
	if err := svc.Repo.Insert(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}
	svc.scheduleReminders(ctx, []models.Booking{*booking})
	return booking, nil
}

// ListRoomDay returns the bookings of one room on one date (calendar view).
func (svc *DefaultBookingService) ListRoomDay(ctx context.Context, roomID, date string) ([]models.Booking, error) {
	if roomID == "" || date == "" {
		return nil, ErrMissingFields
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	return svc.Repo.ListByRoomDate(ctx, roomID, date)
}

// ListUserBookings returns all bookings owned by a user (dashboard view).
func (svc *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	if userID == "" {
		return nil, ErrMissingFields
	}
	return svc.Repo.ListByUser(ctx, userID)
}

// CancelBooking removes a booking. Only the owner or an admin may cancel.
func (svc *DefaultBookingService) CancelBooking(ctx context.Context, id, requesterID string, isAdmin bool) error {
	booking, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && booking.UserID != requesterID {
		return ErrNotAllowed
	}
	return svc.Repo.Delete(ctx, id)
}

// validateBooking checks the booking's required fields, time range, date
// format, and that the target room exists and is enabled.
func (svc *DefaultBookingService) validateBooking(ctx context.Context, b *models.Booking) error {
	if b.RoomID == "" || b.UserID == "" || b.Title == "" || b.Date == "" {
		return ErrMissingFields
	}
	if b.Start < 0 || b.End > minutesPerDay || b.Start >= b.End {
		return ErrInvalidTimeRange
	}
	if _, err := time.Parse(models.DateLayout, b.Date); err != nil {
		return ErrInvalidDate
	}
	room, err := svc.Rooms.GetByID(ctx, b.RoomID)
	if err != nil {
		return ErrRoomNotFound
	}
	if !room.Enabled {
		return ErrRoomDisabled
	}
	return nil
}

func (svc *DefaultBookingService) scheduleReminders(ctx context.Context, bookings []models.Booking) {
	if svc.Reminders == nil {
		return
	}
	logger := utils.GetLogger()
	for _, b := range bookings {
		if err := svc.Reminders.ScheduleReminder(ctx, b); err != nil {
			logger.Warn("failed to schedule reminder",
				zap.String("bookingId", b.ID),
				zap.Error(err))
		}
	}
}
