package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"roomly/models"
	"roomly/utils"
)

// MaxGeneratedOccurrences bounds how many repeat occurrences a single
// expansion may generate when no end date is supplied. Dates dropped by the
// holiday calendar do not count toward the cap.
const MaxGeneratedOccurrences = 730

// ExpandRecurrence expands a template booking into its repeat occurrences in
// a single linear pass: generate candidate dates, drop holiday-calendar
// exclusions (daily/custom only), skip candidates that collide with existing
// bookings in the same room, then persist the survivors as one batch.
//
// The caller has already persisted the template's own first occurrence;
// expansion starts one step past the template date and never re-inserts it.
func (svc *DefaultBookingService) ExpandRecurrence(ctx context.Context, template models.Booking, repeat models.RepeatType, endDate, requesterID string) (int, error) {
	logger := utils.GetLogger()

	if repeat == models.RepeatNone {
		return 0, nil
	}
	if !repeat.Valid() {
		return 0, ErrInvalidRepeatType
	}

	template.UserID = requesterID
	if err := svc.validateBooking(ctx, &template); err != nil {
		return 0, err
	}

	seed, err := time.Parse(models.DateLayout, template.Date)
	if err != nil {
		return 0, ErrInvalidDate
	}
	var until *time.Time
	if endDate != "" {
		t, err := time.Parse(models.DateLayout, endDate)
		if err != nil {
			return 0, ErrInvalidEndDate
		}
		until = &t
	}

	// The holiday calendar applies only to day-stepped rules.
	filtered := repeat == models.RepeatDaily || repeat == models.RepeatCustom

	var batch []models.Booking
	now := time.Now()
	generated := 0
	for step := 1; ; step++ {
		candidate := occurrenceDate(seed, repeat, step)
		if until != nil && candidate.After(*until) {
			break
		}
		if filtered && isExcludedDate(candidate) {
			continue
		}

		date := candidate.Format(models.DateLayout)
		if date == template.Date {
			// The first occurrence belongs to the caller; inserting it here
			// would duplicate it.
			continue
		}

		generated++
		existing, err := svc.Repo.FindOverlapping(ctx, template.RoomID, date, template.Start, template.End)
		switch {
		case err != nil:
			// An unanswered conflict query skips the candidate rather than
			// risking a double booking.
			logger.Warn("conflict query failed; skipping occurrence",
				zap.String("roomId", template.RoomID),
				zap.String("date", date),
				zap.Error(err))
		case len(existing) > 0:
			// A conflict is a normal filtering outcome, not an error.
		default:
			occ := template
			occ.ID = uuid.New().String()
			occ.Date = date
			occ.CreatedAt = now
			batch = append(batch, occ)
		}

		if generated >= MaxGeneratedOccurrences {
			logger.Warn("recurrence generation cap reached",
				zap.Int("cap", MaxGeneratedOccurrences),
				zap.String("roomId", template.RoomID),
				zap.String("seedDate", template.Date))
			break
		}
	}

	if len(batch) == 0 {
		return 0, nil
	}
	if err := svc.Repo.InsertMany(ctx, batch); err != nil {
		return 0, fmt.Errorf("failed to persist recurring bookings: %w", err)
	}
	svc.scheduleReminders(ctx, batch)
	return len(batch), nil
}

// occurrenceDate returns the date of the nth repeat occurrence after seed.
func occurrenceDate(seed time.Time, repeat models.RepeatType, n int) time.Time {
	switch repeat {
	case models.RepeatWeekly:
		return seed.AddDate(0, 0, 7*n)
	case models.RepeatMonthly:
		return addMonthsClamped(seed, n)
	default:
		// daily and custom step one calendar day at a time
		return seed.AddDate(0, 0, n)
	}
}

// addMonthsClamped adds months to seed keeping the seed's day-of-month,
// clamped per step to the length of the target month. Stepping from Jan 31
// yields Feb 28 (or 29), then Mar 31 — the clamp never accumulates.
func addMonthsClamped(seed time.Time, months int) time.Time {
	// time.AddDate would normalize Feb 31 into early March, so anchor at the
	// first of the target month and clamp the day explicitly.
	first := time.Date(seed.Year(), seed.Month(), 1, 0, 0, 0, 0, seed.Location()).AddDate(0, months, 0)
	lastDay := first.AddDate(0, 1, -1).Day()
	day := seed.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, seed.Location())
}
