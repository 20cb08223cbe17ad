package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestApplicationDays(t *testing.T) {
	app := Application{StartDate: day(2025, 7, 10), EndDate: day(2025, 7, 12)}
	assert.Equal(t, 3, app.Days())

	single := Application{StartDate: day(2025, 7, 10), EndDate: day(2025, 7, 10)}
	assert.Equal(t, 1, single.Days())
}

func TestTotalLeaveDays(t *testing.T) {
	apps := []Application{
		{Status: StatusApproved, StartDate: day(2025, 7, 1), EndDate: day(2025, 7, 2)},
		{Status: StatusPending, StartDate: day(2025, 7, 5), EndDate: day(2025, 7, 9)},
		{Status: StatusRejected, StartDate: day(2025, 7, 5), EndDate: day(2025, 7, 9)},
		{Status: StatusApproved, StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 3)},
	}

	assert.Equal(t, 2, TotalLeaveDays(apps, 2025, time.July))
}

func TestTotalLeaveDays_OverlapCountsFullSpan(t *testing.T) {
	apps := []Application{
		{Status: StatusApproved, StartDate: day(2025, 6, 28), EndDate: day(2025, 7, 2)},
	}

	assert.Equal(t, 5, TotalLeaveDays(apps, 2025, time.July))
	assert.Equal(t, 5, TotalLeaveDays(apps, 2025, time.June))
	assert.Equal(t, 0, TotalLeaveDays(apps, 2025, time.August))
}
