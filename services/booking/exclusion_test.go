package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"roomly/models"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestIsExcludedDate(t *testing.T) {
	tests := []struct {
		date     string
		excluded bool
		reason   string
	}{
		{"2024-03-08", true, "Friday"},
		{"2024-03-15", true, "Friday"},
		{"2024-03-02", true, "1st Saturday"},
		{"2024-03-09", false, "2nd Saturday is a working day"},
		{"2024-03-16", true, "3rd Saturday"},
		{"2024-03-23", true, "4th Saturday"},
		{"2024-03-30", false, "5th Saturday is a working day"},
		{"2024-02-24", true, "4th Saturday in a month with only four Saturdays"},
		{"2024-02-10", false, "2nd Saturday"},
		{"2024-03-03", false, "Sunday"},
		{"2024-03-04", false, "Monday"},
		{"2024-03-07", false, "Thursday"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got := isExcludedDate(mustDate(t, tt.date))
			assert.Equal(t, tt.excluded, got, tt.reason)
		})
	}
}

func TestNoFridayIsEverIncluded(t *testing.T) {
	// Walk a full year of Fridays.
	d := mustDate(t, "2024-01-05")
	for i := 0; i < 52; i++ {
		assert.True(t, isExcludedDate(d), "expected %s to be excluded", d.Format(models.DateLayout))
		d = d.AddDate(0, 0, 7)
	}
}
