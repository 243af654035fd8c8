package roomRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"roomly/config"
	"roomly/database"
	"roomly/models"
	"roomly/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Room documents change rarely but are read on every booking validation,
// so lookups go through the Redis cache first.
const roomCacheTTL = 5 * time.Minute

// MongoRoomRepo implements RoomRepository using MongoDB with a Redis
// read-through cache.
type MongoRoomRepo struct {
	coll  *mongo.Collection
	cache *redis.Client
}

// NewMongoRoomRepo constructs a new instance of MongoRoomRepo.
func NewMongoRoomRepo() RoomRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &MongoRoomRepo{
		coll:  db.Collection("rooms"),
		cache: utils.GetCacheClient(),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("warning: failed to ensure room indexes: %v\n", err)
	}
	return repo
}

func roomCacheKey(id string) string {
	return "room:" + id
}

// Create inserts a new room document.
func (repo *MongoRoomRepo) Create(ctx context.Context, room *models.Room) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctxWithTimeout, room)
	if err != nil {
		return fmt.Errorf("error creating room: %w", err)
	}
	return nil
}

// GetByID retrieves a room by its ID, consulting the cache first.
func (repo *MongoRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if cached, err := repo.cache.Get(ctxWithTimeout, roomCacheKey(id)).Result(); err == nil {
		var room models.Room
		if err := json.Unmarshal([]byte(cached), &room); err == nil {
			return &room, nil
		}
	}

	var room models.Room
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("room with id %s not found", id)
		}
		return nil, fmt.Errorf("error fetching room %s: %w", id, err)
	}

	if data, err := json.Marshal(room); err == nil {
		repo.cache.Set(ctxWithTimeout, roomCacheKey(id), data, roomCacheTTL)
	}
	return &room, nil
}

// List returns all rooms, optionally restricted to enabled ones.
func (repo *MongoRoomRepo) List(ctx context.Context, enabledOnly bool) ([]models.Room, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if enabledOnly {
		filter["enabled"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing rooms: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var rooms []models.Room
	if err := cursor.All(ctxWithTimeout, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}

// SetEnabled toggles whether a room accepts new bookings.
func (repo *MongoRoomRepo) SetEnabled(ctx context.Context, id string, enabled bool) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctxWithTimeout, bson.M{"id": id}, bson.M{"$set": bson.M{"enabled": enabled}})
	if err != nil {
		return fmt.Errorf("error updating room %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("room with id %s not found", id)
	}
	repo.cache.Del(ctxWithTimeout, roomCacheKey(id))
	return nil
}

// ensureIndexes creates indexes for frequently used fields in queries.
func (repo *MongoRoomRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "enabled", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetName("enabled_name_idx"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create room indexes: %w", err)
	}
	return nil
}
