package http

import (
	"net/http"

	"github.com/kedaihq/staffops-backend-go/internal/domain/points"
	"github.com/kedaihq/staffops-backend-go/internal/handler/http/response"
)

type PointsHandler interface {
	GetRanking(w http.ResponseWriter, r *http.Request)
	GetMyBalance(w http.ResponseWriter, r *http.Request)
}

type pointsHandlerImpl struct {
	pointsService points.PointsService
}

func NewPointsHandler(pointsService points.PointsService) PointsHandler {
	return &pointsHandlerImpl{
		pointsService: pointsService,
	}
}

// GetRanking implements PointsHandler.
func (h *pointsHandlerImpl) GetRanking(w http.ResponseWriter, r *http.Request) {
	filter := points.RankingFilter{Month: r.URL.Query().Get("month")}
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.pointsService.GetRanking(r.Context(), filter.Month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyBalance implements PointsHandler.
func (h *pointsHandlerImpl) GetMyBalance(w http.ResponseWriter, r *http.Request) {
	filter := points.RankingFilter{Month: r.URL.Query().Get("month")}
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.pointsService.GetMyBalance(r.Context(), filter.Month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
