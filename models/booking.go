package models

import "time"

// DateLayout is the wire and storage format for booking dates.
const DateLayout = "2006-01-02"

// Booking represents one dated reservation of a room.
type Booking struct {
	ID        string    `bson:"id" json:"id"`                               // Unique booking identifier (UUID)
	RoomID    string    `bson:"room_id" json:"room_id"`                     // Room being reserved
	UserID    string    `bson:"user_id" json:"user_id"`                     // User who owns the booking
	Title     string    `bson:"title" json:"title"`                         // Display title on the calendar
	Date      string    `bson:"date" json:"date"`                           // Booking date in "YYYY-MM-DD" format
	Start     int       `bson:"start" json:"start"`                         // Start time (minutes from midnight)
	End       int       `bson:"end" json:"end"`                             // End time (minutes from midnight)
	Remarks   string    `bson:"remarks,omitempty" json:"remarks,omitempty"` // Optional free-text note
	CreatedAt time.Time `bson:"created_at" json:"created_at"`               // Timestamp when booking was created
}

// Overlaps reports whether the booking's [start,end) interval intersects
// the given interval.
func (b Booking) Overlaps(start, end int) bool {
	return b.Start < end && b.End > start
}
