package bookingRepo

import (
	"context"

	"roomly/models"
)

// BookingRepository defines data access for booking documents.
type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	// InsertMany persists a batch of bookings in one ordered bulk write.
	// A failure means the batch must be treated as not persisted.
	InsertMany(ctx context.Context, bookings []models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// FindOverlapping returns existing bookings for the room and date whose
	// [start,end) interval intersects the given one.
	FindOverlapping(ctx context.Context, roomID, date string, start, end int) ([]models.Booking, error)
	ListByRoomDate(ctx context.Context, roomID, date string) ([]models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	Delete(ctx context.Context, id string) error
}
