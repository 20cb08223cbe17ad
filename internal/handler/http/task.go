package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kedaihq/staffops-backend-go/internal/domain/task"
	"github.com/kedaihq/staffops-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	CreateTemplate(w http.ResponseWriter, r *http.Request)
	ListTemplates(w http.ResponseWriter, r *http.Request)
	DeleteTemplate(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
	GetMyTasks(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &taskHandlerImpl{
		taskService: taskService,
	}
}

// CreateTemplate implements TaskHandler.
func (h *taskHandlerImpl) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.taskService.CreateTemplate(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task template created", result)
}

// ListTemplates implements TaskHandler.
func (h *taskHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskService.ListTemplates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteTemplate implements TaskHandler.
func (h *taskHandlerImpl) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "templateID")

	if err := h.taskService.DeleteTemplate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task template deleted", nil)
}

// Reconcile implements TaskHandler.
func (h *taskHandlerImpl) Reconcile(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskService.Reconcile(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Tasks reconciled", result)
}

// GetMyTasks implements TaskHandler.
func (h *taskHandlerImpl) GetMyTasks(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskService.GetMyTasks(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Complete implements TaskHandler.
func (h *taskHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "instanceID")

	var req task.CompleteInstanceRequest

	// Proof photo is optional
	if err := r.ParseMultipartForm(10 << 20); err == nil {
		if file, fileHeader, err := r.FormFile("proof"); err == nil {
			defer file.Close()
			req.File = file
			req.FileHeader = fileHeader
		}
	}

	if err := h.taskService.CompleteTask(r.Context(), id, &req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task completed", nil)
}
