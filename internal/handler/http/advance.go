package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kedaihq/staffops-backend-go/internal/domain/advance"
	"github.com/kedaihq/staffops-backend-go/internal/handler/http/response"
)

type AdvanceHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &advanceHandlerImpl{
		advanceService: advanceService,
	}
}

// Submit implements AdvanceHandler.
func (h *advanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req advance.SubmitAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.advanceService.Submit(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance request submitted", result)
}

// GetMyRequests implements AdvanceHandler.
func (h *advanceHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	result, err := h.advanceService.GetMyRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPending implements AdvanceHandler.
func (h *advanceHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	result, err := h.advanceService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Decide implements AdvanceHandler.
func (h *advanceHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "requestID")

	var req advance.DecideAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.advanceService.Decide(r.Context(), id, &req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance request decided", nil)
}
