package booking

import "errors"

var (
	ErrMissingFields     = errors.New("booking is missing required fields")
	ErrInvalidTimeRange  = errors.New("booking start time must precede end time")
	ErrInvalidDate       = errors.New("booking date is not a valid calendar date")
	ErrInvalidEndDate    = errors.New("end date is not a valid calendar date")
	ErrInvalidRepeatType = errors.New("unknown repeat type")
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomDisabled      = errors.New("room is not accepting bookings")
	ErrBookingConflict   = errors.New("booking overlaps an existing booking in this room")
	ErrNotAllowed        = errors.New("not allowed to modify this booking")
)
