package shopconfig

import "context"

type ConfigService interface {
	// Get returns the latest configuration version
	Get(ctx context.Context) (ConfigResponse, error)

	// Update inserts a new configuration version from the latest one overlaid
	// with the request's fields (manager/supervisor only). Existing attendance
	// records keep the amounts they were priced with.
	Update(ctx context.Context, req *UpdateConfigRequest) (ConfigResponse, error)
}
