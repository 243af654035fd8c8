package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"roomly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindOverlapping returns existing bookings for the given room and date whose
// [start,end) interval overlaps the given interval. Overlap uses the half-open
// test: existing.start < end && existing.end > start.
func (repo *MongoBookingRepo) FindOverlapping(ctx context.Context, roomID, date string, start, end int) ([]models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"room_id": roomID,
		"date":    date,
		"start":   bson.M{"$lt": end},
		"end":     bson.M{"$gt": start},
	}
	cursor, err := repo.coll.Find(ctxWithTimeout, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding overlapping bookings: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var overlapping []models.Booking
	if err := cursor.All(ctxWithTimeout, &overlapping); err != nil {
		return nil, fmt.Errorf("error decoding overlapping bookings: %w", err)
	}
	return overlapping, nil
}

// ListByRoomDate returns all bookings for a room on a given date, ordered by
// start time, for the calendar day view.
func (repo *MongoBookingRepo) ListByRoomDate(ctx context.Context, roomID, date string) ([]models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"room_id": roomID, "date": date}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings for room %s on %s: %w", roomID, date, err)
	}
	defer cursor.Close(ctxWithTimeout)

	var bookings []models.Booking
	if err := cursor.All(ctxWithTimeout, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// ListByUser returns all bookings owned by a user, newest date first, for the
// user dashboard.
func (repo *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "start", Value: 1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctxWithTimeout)

	var bookings []models.Booking
	if err := cursor.All(ctxWithTimeout, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
