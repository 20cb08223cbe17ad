package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kedaihq/staffops-backend-go/internal/domain/staff"
	"github.com/kedaihq/staffops-backend-go/internal/handler/http/response"
)

type StaffHandler interface {
	GetMe(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStation(w http.ResponseWriter, r *http.Request)
}

type staffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &staffHandlerImpl{
		staffService: staffService,
	}
}

// GetMe implements StaffHandler.
func (h *staffHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	result, err := h.staffService.GetMe(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements StaffHandler.
func (h *staffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.staffService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateStation implements StaffHandler.
func (h *staffHandlerImpl) UpdateStation(w http.ResponseWriter, r *http.Request) {
	var req staff.UpdateStationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "staffID")

	if err := h.staffService.UpdateStation(r.Context(), &req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Station updated", nil)
}
