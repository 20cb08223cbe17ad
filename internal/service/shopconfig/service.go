package shopconfig

import (
	"context"

	"github.com/kedaihq/staffops-backend-go/internal/domain/shopconfig"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/jwt"
)

type ConfigServiceImpl struct {
	shopconfig.ConfigRepository
}

// Get implements shopconfig.ConfigService.
func (c *ConfigServiceImpl) Get(ctx context.Context) (shopconfig.ConfigResponse, error) {
	cfg, err := c.ConfigRepository.GetLatest(ctx)
	if err != nil {
		return shopconfig.ConfigResponse{}, err
	}

	return shopconfig.MapConfigToResponse(cfg), nil
}

// Update implements shopconfig.ConfigService. A new version row is inserted;
// earlier versions stay untouched for history.
func (c *ConfigServiceImpl) Update(ctx context.Context, req *shopconfig.UpdateConfigRequest) (shopconfig.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return shopconfig.ConfigResponse{}, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return shopconfig.ConfigResponse{}, err
	}
	if !identity.Role.CanManage() {
		return shopconfig.ConfigResponse{}, shopconfig.ErrPermissionDenied
	}

	latest, err := c.ConfigRepository.GetLatest(ctx)
	if err != nil {
		return shopconfig.ConfigResponse{}, err
	}

	created, err := c.ConfigRepository.Create(ctx, req.Apply(latest))
	if err != nil {
		return shopconfig.ConfigResponse{}, err
	}

	return shopconfig.MapConfigToResponse(created), nil
}

func NewConfigService(repo shopconfig.ConfigRepository) shopconfig.ConfigService {
	return &ConfigServiceImpl{ConfigRepository: repo}
}
