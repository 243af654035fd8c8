package roomRepo

import (
	"context"

	"roomly/models"
)

// RoomRepository defines data access for room documents.
type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id string) (*models.Room, error)
	List(ctx context.Context, enabledOnly bool) ([]models.Room, error)
	SetEnabled(ctx context.Context, id string, enabled bool) error
}
