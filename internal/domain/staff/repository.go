package staff

import "context"

type StaffRepository interface {
	// GetByID retrieves a staff member by ID
	GetByID(ctx context.Context, id string) (Member, error)

	// List retrieves the full roster ordered by full name
	List(ctx context.Context) ([]Member, error)

	// ListManagers retrieves members whose role can manage (for notifications)
	ListManagers(ctx context.Context) ([]Member, error)

	// UpdateStation changes a member's station
	UpdateStation(ctx context.Context, id string, station string) error
}
