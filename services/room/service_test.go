package room

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomly/models"
)

type fakeRoomRepo struct {
	rooms map[string]models.Room
}

func (f *fakeRoomRepo) Create(ctx context.Context, room *models.Room) error {
	f.rooms[room.ID] = *room
	return nil
}

func (f *fakeRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, fmt.Errorf("room with id %s not found", id)
	}
	return &r, nil
}

func (f *fakeRoomRepo) List(ctx context.Context, enabledOnly bool) ([]models.Room, error) {
	var out []models.Room
	for _, r := range f.rooms {
		if enabledOnly && !r.Enabled {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomRepo) SetEnabled(ctx context.Context, id string, enabled bool) error {
	r, ok := f.rooms[id]
	if !ok {
		return fmt.Errorf("room with id %s not found", id)
	}
	r.Enabled = enabled
	f.rooms[id] = r
	return nil
}

func TestCreateRoom(t *testing.T) {
	repo := &fakeRoomRepo{rooms: make(map[string]models.Room)}
	svc := &DefaultRoomService{Repo: repo}

	t.Run("requires a name", func(t *testing.T) {
		_, err := svc.CreateRoom(context.Background(), &models.Room{})
		assert.ErrorIs(t, err, ErrMissingName)
	})

	t.Run("new rooms start enabled", func(t *testing.T) {
		created, err := svc.CreateRoom(context.Background(), &models.Room{Name: "Conference A"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.True(t, created.Enabled)
	})
}

func TestListRoomsFiltersDisabled(t *testing.T) {
	repo := &fakeRoomRepo{rooms: map[string]models.Room{
		"r1": {ID: "r1", Name: "Open", Enabled: true},
		"r2": {ID: "r2", Name: "Closed", Enabled: false},
	}}
	svc := &DefaultRoomService{Repo: repo}

	visible, err := svc.ListRooms(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	all, err := svc.ListRooms(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
