package room

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	roomRepo "roomly/database/repository/room"
	"roomly/models"
)

var ErrMissingName = errors.New("room name is required")

// RoomService exposes room management operations.
type RoomService interface {
	CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error)
	ListRooms(ctx context.Context, includeDisabled bool) ([]models.Room, error)
	SetRoomEnabled(ctx context.Context, id string, enabled bool) error
}

// DefaultRoomService is the production RoomService implementation.
type DefaultRoomService struct {
	Repo roomRepo.RoomRepository
}

// CreateRoom registers a new room. Rooms start enabled.
func (svc *DefaultRoomService) CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	if room.Name == "" {
		return nil, ErrMissingName
	}
	room.ID = uuid.New().String()
	room.Enabled = true
	room.CreatedAt = time.Now()
	if err := svc.Repo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// ListRooms returns rooms for the booking UI; disabled rooms are included
// only for admin views.
func (svc *DefaultRoomService) ListRooms(ctx context.Context, includeDisabled bool) ([]models.Room, error) {
	return svc.Repo.List(ctx, !includeDisabled)
}

// SetRoomEnabled toggles whether a room accepts new bookings.
func (svc *DefaultRoomService) SetRoomEnabled(ctx context.Context, id string, enabled bool) error {
	return svc.Repo.SetEnabled(ctx, id, enabled)
}
