package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleStaff      Role = "staff"
	RoleSupervisor Role = "supervisor"
	RoleManager    Role = "manager"
)

// CanManage reports whether the role may correct attendance records,
// approve leave/advances and record payroll payments.
func (r Role) CanManage() bool {
	return r == RoleManager || r == RoleSupervisor
}

// KitItem is one onboarding kit entry, snapshotted at hire time. The kit is
// immutable after hire and only ever read for the first-month deduction.
type KitItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type Member struct {
	ID            string
	FullName      string
	Station       string
	Role          Role
	DailyRate     decimal.Decimal
	StartDate     time.Time
	OnboardingKit []KitItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OnboardingKitTotal sums the snapshotted kit prices.
func (m Member) OnboardingKitTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range m.OnboardingKit {
		total = total.Add(item.Price)
	}
	return total
}
