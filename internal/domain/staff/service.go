package staff

import "context"

type StaffService interface {
	// GetMe returns the authenticated staff member's profile
	GetMe(ctx context.Context) (MemberResponse, error)

	// List returns the full roster (manager/supervisor only)
	List(ctx context.Context) ([]MemberResponse, error)

	// UpdateStation moves a member to a new station and reconciles their
	// daily tasks (manager/supervisor only)
	UpdateStation(ctx context.Context, req *UpdateStationRequest) error
}
