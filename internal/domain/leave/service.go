package leave

import "context"

type LeaveService interface {
	Submit(ctx context.Context, req *SubmitLeaveRequest) (ApplicationResponse, error)
	GetMyApplications(ctx context.Context) ([]ApplicationResponse, error)
	ListPending(ctx context.Context) ([]ApplicationResponse, error)

	// Decide approves or rejects a pending application; deciding twice
	// returns ErrAlreadyDecided
	Decide(ctx context.Context, id string, req *DecideLeaveRequest) error
}
