package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/kedaihq/staffops-backend-go/internal/handler/http/middleware"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Staff        StaffHandler
	Config       ConfigHandler
	Attendance   AttendanceHandler
	Points       PointsHandler
	Task         TaskHandler
	Leave        LeaveHandler
	Advance      AdvanceHandler
	Payroll      PayrollHandler
	Notification NotificationHandler
}

func NewRouter(JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffops-kedai"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/staff", func(r chi.Router) {
				r.Get("/me", h.Staff.GetMe)

				// Manager or supervisor only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.Staff.List)
					r.Put("/{staffID}/station", h.Staff.UpdateStation)
				})
			})

			r.Route("/config", func(r chi.Router) {
				r.Get("/", h.Config.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Put("/", h.Config.Update)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Get("/my", h.Attendance.GetMyRecords)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.Attendance.List)
					r.Put("/correct", h.Attendance.Correct)
				})
			})

			r.Route("/points", func(r chi.Router) {
				r.Get("/ranking", h.Points.GetRanking)
				r.Get("/my", h.Points.GetMyBalance)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/my", h.Task.GetMyTasks)
				r.Post("/{instanceID}/complete", h.Task.Complete)

				r.Route("/templates", func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.Task.ListTemplates)
					r.Post("/", h.Task.CreateTemplate)
					r.Delete("/{templateID}", h.Task.DeleteTemplate)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/reconcile", h.Task.Reconcile)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/my", h.Leave.GetMyApplications)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/pending", h.Leave.ListPending)
					r.Put("/{applicationID}/decide", h.Leave.Decide)
				})
			})

			r.Route("/advances", func(r chi.Router) {
				r.Post("/", h.Advance.Submit)
				r.Get("/my", h.Advance.GetMyRequests)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/pending", h.Advance.ListPending)
					r.Put("/{requestID}/decide", h.Advance.Decide)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", h.Payroll.GetMyBreakdown)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.Payroll.List)
					r.Get("/{staffID}", h.Payroll.GetBreakdown)
					r.Post("/{staffID}/pay", h.Payroll.MarkPaid)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/my", h.Notification.GetMyNotifications)
				r.Put("/{notificationID}/read", h.Notification.MarkRead)
			})
		})
	})
	return r
}
