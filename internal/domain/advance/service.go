package advance

import "context"

type AdvanceService interface {
	// Submit validates the amount against the configured advance limit
	// before creating a pending request
	Submit(ctx context.Context, req *SubmitAdvanceRequest) (RequestResponse, error)

	GetMyRequests(ctx context.Context) ([]RequestResponse, error)
	ListPending(ctx context.Context) ([]RequestResponse, error)
	Decide(ctx context.Context, id string, req *DecideAdvanceRequest) error
}
