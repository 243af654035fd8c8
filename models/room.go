package models

import "time"

// Room represents a bookable meeting room.
type Room struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Location  string    `bson:"location,omitempty" json:"location,omitempty"`
	Capacity  int       `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Enabled   bool      `bson:"enabled" json:"enabled"` // Disabled rooms reject new bookings
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
