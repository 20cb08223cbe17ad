package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kedaihq/staffops-backend-go/internal/domain/notification"
	"github.com/kedaihq/staffops-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	GetMyNotifications(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notification.NotificationService
}

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandlerImpl{
		notificationService: notificationService,
	}
}

// GetMyNotifications implements NotificationHandler.
func (h *notificationHandlerImpl) GetMyNotifications(w http.ResponseWriter, r *http.Request) {
	result, err := h.notificationService.GetMyNotifications(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MarkRead implements NotificationHandler.
func (h *notificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "notificationID")

	if err := h.notificationService.MarkRead(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", nil)
}
