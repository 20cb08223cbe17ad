package shopconfig

import "context"

type ConfigRepository interface {
	// GetLatest retrieves the most recent configuration version
	GetLatest(ctx context.Context) (Config, error)

	// Create inserts a new configuration version
	Create(ctx context.Context, cfg Config) (Config, error)
}
