package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomly/models"
)

func insertedDates(bookings []models.Booking) []string {
	dates := make([]string, 0, len(bookings))
	for _, b := range bookings {
		dates = append(dates, b.Date)
	}
	return dates
}

func TestOccurrenceDateMonthlyClamp(t *testing.T) {
	tests := []struct {
		seed string
		step int
		want string
	}{
		// Clamp applies per-step from the original day-of-month; it never drifts.
		{"2024-01-31", 1, "2024-02-29"},
		{"2024-01-31", 2, "2024-03-31"},
		{"2024-01-31", 3, "2024-04-30"},
		{"2023-01-31", 1, "2023-02-28"},
		{"2023-01-31", 2, "2023-03-31"},
		{"2024-01-15", 1, "2024-02-15"},
		{"2024-10-31", 4, "2025-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.seed, func(t *testing.T) {
			got := occurrenceDate(mustDate(t, tt.seed), models.RepeatMonthly, tt.step)
			assert.Equal(t, tt.want, got.Format(models.DateLayout))
		})
	}
}

func TestOccurrenceDateSteps(t *testing.T) {
	seed := mustDate(t, "2024-01-01")

	assert.Equal(t, "2024-01-02", occurrenceDate(seed, models.RepeatDaily, 1).Format(models.DateLayout))
	assert.Equal(t, "2024-01-04", occurrenceDate(seed, models.RepeatCustom, 3).Format(models.DateLayout))
	assert.Equal(t, "2024-01-15", occurrenceDate(seed, models.RepeatWeekly, 2).Format(models.DateLayout))
}

func TestExpandRecurrenceNoneReturnsImmediately(t *testing.T) {
	svc, repo := newTestService()

	count, err := svc.ExpandRecurrence(context.Background(), validTemplate(), models.RepeatNone, "", "user-1")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, repo.findCalls)
	assert.Empty(t, repo.inserted)
}

func TestExpandRecurrenceRejectsUnknownRepeatType(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ExpandRecurrence(context.Background(), validTemplate(), "fortnightly", "", "user-1")
	assert.ErrorIs(t, err, ErrInvalidRepeatType)
}

func TestExpandRecurrenceValidatesTemplate(t *testing.T) {
	svc, _ := newTestService()
	template := validTemplate()
	template.RoomID = "R2" // disabled

	_, err := svc.ExpandRecurrence(context.Background(), template, models.RepeatWeekly, "2024-01-22", "user-1")
	assert.ErrorIs(t, err, ErrRoomDisabled)
}

func TestExpandRecurrenceWeekly(t *testing.T) {
	svc, repo := newTestService()

	// Template on Monday 2024-01-01, 10:00-11:00, repeating weekly until
	// 2024-01-22 inclusive.
	count, err := svc.ExpandRecurrence(context.Background(), validTemplate(), models.RepeatWeekly, "2024-01-22", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, []string{"2024-01-08", "2024-01-15", "2024-01-22"}, insertedDates(repo.inserted))
}

func TestExpandRecurrenceWeeklyIsNotHolidayFiltered(t *testing.T) {
	svc, repo := newTestService()
	template := validTemplate()
	template.Date = "2024-03-01" // a Friday

	count, err := svc.ExpandRecurrence(context.Background(), template, models.RepeatWeekly, "2024-03-15", "user-1")
	require.NoError(t, err)
	// Both repeat occurrences land on Fridays and are still generated.
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"2024-03-08", "2024-03-15"}, insertedDates(repo.inserted))
}

func TestExpandRecurrenceDailyAppliesExclusionCalendar(t *testing.T) {
	svc, repo := newTestService()
	template := validTemplate()
	template.Date = "2024-03-01" // Friday seed; the seed itself is never filtered

	count, err := svc.ExpandRecurrence(context.Background(), template, models.RepeatDaily, "2024-03-08", "user-1")
	require.NoError(t, err)
	// 03-02 is the 1st Saturday (excluded), 03-08 is a Friday (excluded).
	assert.Equal(t, 5, count)
	assert.Equal(t, []string{"2024-03-03", "2024-03-04", "2024-03-05", "2024-03-06", "2024-03-07"}, insertedDates(repo.inserted))
}

func TestExpandRecurrenceCustomStepsDaily(t *testing.T) {
	svc, repo := newTestService()
	template := validTemplate()
	template.Date = "2024-03-01"

	count, err := svc.ExpandRecurrence(context.Background(), template, models.RepeatCustom, "2024-03-08", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.Len(t, repo.inserted, 5)
}

func TestExpandRecurrenceSkipsConflicts(t *testing.T) {
	svc, repo := newTestService()
	repo.addExisting(models.Booking{ID: "b0", RoomID: "R1", Date: "2024-01-15", Start: 600, End: 660})

	count, err := svc.ExpandRecurrence(context.Background(), validTemplate(), models.RepeatWeekly, "2024-01-22", "user-1")
	require.NoError(t, err)
	// The conflicting 2024-01-15 occurrence is silently dropped.
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"2024-01-08", "2024-01-22"}, insertedDates(repo.inserted))
}

func TestExpandRecurrenceOverlapBoundary(t *testing.T) {
	svc, repo := newTestService()
	// Adjacent interval [660,720) shares only the boundary minute; not a conflict.
	repo.addExisting(models.Booking{ID: "b0", RoomID: "R1", Date: "2024-01-08", Start: 660, End: 720})
	// Interval [659,720) overlaps [600,660) by one minute; a conflict.
	repo.addExisting(models.Booking{ID: "b1", RoomID: "R1", Date: "2024-01-15", Start: 659, End: 720})

	count, err := svc.ExpandRecurrence(context.Background(), validTemplate(), models.RepeatWeekly, "2024-01-22", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"2024-01-08", "2024-01-22"}, insertedDates(repo.inserted))
}

func TestExpandRecurrenceQueryFailureSkipsCandidateOnly(t *testing.T) {
	svc, repo := newTestService()
	repo.failFindDates["2024-01-15"] = true

	count, err := svc.ExpandRecurrence(context.Background(), validTemplate(), models.RepeatWeekly, "2024-01-22", "user-1")
	require.NoError(t, err)
	// The unanswerable candidate is conservatively skipped; the rest proceed.
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"2024-01-08", "2024-01-22"}, insertedDates(repo.inserted))
}

func TestExpandRecurrenceBulkInsertFailureIsFatal(t *testing.T) {
	svc, repo := newTestService()
	repo.insertErr = errors.New("write concern failure")

	count, err := svc.ExpandRecurrence(context.Background(), validTemplate(), models.RepeatWeekly, "2024-01-22", "user-1")
	require.Error(t, err)
	assert.Zero(t, count)
	assert.Empty(t, repo.inserted)
}

func TestExpandRecurrenceCapWithoutEndDate(t *testing.T) {
	svc, repo := newTestService()

	count, err := svc.ExpandRecurrence(context.Background(), validTemplate(), models.RepeatDaily, "", "user-1")
	require.NoError(t, err)
	// Unbounded daily generation stops at the hard cap. Holiday-excluded
	// dates do not count toward it, so exactly cap-many candidates were
	// conflict-checked and (with an empty store) inserted.
	assert.Equal(t, MaxGeneratedOccurrences, count)
	assert.Equal(t, MaxGeneratedOccurrences, repo.findCalls)
	for _, b := range repo.inserted {
		assert.False(t, isExcludedDate(mustDate(t, b.Date)), "excluded date %s was inserted", b.Date)
	}
}

func TestExpandRecurrenceAssignsOwnerAndIDs(t *testing.T) {
	svc, repo := newTestService()
	template := validTemplate()
	template.UserID = "someone-else"

	count, err := svc.ExpandRecurrence(context.Background(), template, models.RepeatWeekly, "2024-01-22", "user-9")
	require.NoError(t, err)
	require.Equal(t, 3, count)

	seen := make(map[string]bool)
	for _, b := range repo.inserted {
		assert.Equal(t, "user-9", b.UserID)
		assert.NotEmpty(t, b.ID)
		assert.False(t, seen[b.ID], "duplicate occurrence id")
		seen[b.ID] = true
		assert.NotEqual(t, template.Date, b.Date, "template's own occurrence must not be re-inserted")
	}
}

func TestExpandRecurrenceMonthlyEndDateInclusive(t *testing.T) {
	svc, repo := newTestService()
	template := validTemplate()
	template.Date = "2024-01-31"

	count, err := svc.ExpandRecurrence(context.Background(), template, models.RepeatMonthly, "2024-04-30", "user-1")
	require.NoError(t, err)
	// 2024-04-30 is exactly the clamped third step and is included.
	assert.Equal(t, 3, count)
	assert.Equal(t, []string{"2024-02-29", "2024-03-31", "2024-04-30"}, insertedDates(repo.inserted))
}
