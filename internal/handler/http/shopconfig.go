package http

import (
	"encoding/json"
	"net/http"

	"github.com/kedaihq/staffops-backend-go/internal/domain/shopconfig"
	"github.com/kedaihq/staffops-backend-go/internal/handler/http/response"
)

type ConfigHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type configHandlerImpl struct {
	configService shopconfig.ConfigService
}

func NewConfigHandler(configService shopconfig.ConfigService) ConfigHandler {
	return &configHandlerImpl{
		configService: configService,
	}
}

// Get implements ConfigHandler.
func (h *configHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.configService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements ConfigHandler.
func (h *configHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req shopconfig.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.configService.Update(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Configuration updated", result)
}
