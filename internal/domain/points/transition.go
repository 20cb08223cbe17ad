package points

import (
	"github.com/kedaihq/staffops-backend-go/internal/domain/attendance"
)

// Adjustment is a signed delta applied to one ledger row.
type Adjustment struct {
	Points    int
	GoodDeeds int
	BadDeeds  int
}

func (a Adjustment) IsZero() bool {
	return a.Points == 0 && a.GoodDeeds == 0 && a.BadDeeds == 0
}

// ForTransition maps an attendance status correction to a ledger adjustment.
// Only late<->present moves points; transitions involving absent are no-ops,
// as is a correction that keeps the status unchanged.
func ForTransition(oldStatus, newStatus attendance.Status) Adjustment {
	if oldStatus == newStatus {
		return Adjustment{}
	}

	switch {
	case oldStatus == attendance.StatusLate && newStatus == attendance.StatusPresent:
		return Adjustment{Points: 1, GoodDeeds: 1}
	case oldStatus == attendance.StatusPresent && newStatus == attendance.StatusLate:
		return Adjustment{Points: -1, BadDeeds: 1}
	}

	return Adjustment{}
}
