package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kedaihq/staffops-backend-go/internal/domain/payroll"
	"github.com/kedaihq/staffops-backend-go/internal/handler/http/response"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/jwt"
)

type PayrollHandler interface {
	GetMyBreakdown(w http.ResponseWriter, r *http.Request)
	GetBreakdown(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

func periodFromQuery(r *http.Request) (int, int, error) {
	filter := payroll.BreakdownFilter{Month: r.URL.Query().Get("month")}
	if err := filter.Validate(); err != nil {
		return 0, 0, err
	}

	year, month := filter.Period()
	return year, int(month), nil
}

// GetMyBreakdown implements PayrollHandler.
func (h *payrollHandlerImpl) GetMyBreakdown(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	year, month, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GetBreakdown(r.Context(), identity.StaffID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetBreakdown implements PayrollHandler.
func (h *payrollHandlerImpl) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	year, month, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GetBreakdown(r.Context(), staffID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PayrollHandler.
func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year, month, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.ListBreakdowns(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MarkPaid implements PayrollHandler.
func (h *payrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	year, month, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := payroll.MarkPaidRequest{
		PaymentMethod: r.FormValue("payment_method"),
	}

	// A missing proof surfaces as the service's proof-required error.
	if file, fileHeader, err := r.FormFile("proof"); err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = fileHeader
	}

	result, err := h.payrollService.MarkPaid(r.Context(), staffID, year, month, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment recorded", result)
}
