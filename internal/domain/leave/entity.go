package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID        string    `json:"id"`
	StaffID   string    `json:"staff_id"`
	Type      string    `json:"type"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Reason    string    `json:"reason"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StaffName *string `json:"staff_name,omitempty"`
}

// Days returns the inclusive day count of the application's full span.
func (a Application) Days() int {
	return int(a.EndDate.Sub(a.StartDate).Hours()/24) + 1
}

// TotalLeaveDays sums the full inclusive spans of approved applications that
// overlap the given month. Spans are counted whole even when they extend
// past the month boundary.
func TotalLeaveDays(applications []Application, year int, month time.Month) int {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	total := 0
	for _, app := range applications {
		if app.Status != StatusApproved {
			continue
		}
		if app.StartDate.Before(monthEnd) && !app.EndDate.Before(monthStart) {
			total += app.Days()
		}
	}

	return total
}
