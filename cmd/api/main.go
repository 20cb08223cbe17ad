package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/kedaihq/staffops-backend-go/internal/config"
	appHTTP "github.com/kedaihq/staffops-backend-go/internal/handler/http"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/database"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/jwt"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/storage"
	"github.com/kedaihq/staffops-backend-go/internal/repository/postgresql"
	advanceService "github.com/kedaihq/staffops-backend-go/internal/service/advance"
	attendanceService "github.com/kedaihq/staffops-backend-go/internal/service/attendance"
	"github.com/kedaihq/staffops-backend-go/internal/service/file"
	leaveService "github.com/kedaihq/staffops-backend-go/internal/service/leave"
	notificationService "github.com/kedaihq/staffops-backend-go/internal/service/notification"
	payrollService "github.com/kedaihq/staffops-backend-go/internal/service/payroll"
	pointsService "github.com/kedaihq/staffops-backend-go/internal/service/points"
	shopconfigService "github.com/kedaihq/staffops-backend-go/internal/service/shopconfig"
	staffService "github.com/kedaihq/staffops-backend-go/internal/service/staff"
	taskService "github.com/kedaihq/staffops-backend-go/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "staffops-kedai"),
		slog.String("env", cfg.App.Env),
	)

	staffRepo := postgresql.NewStaffRepository(db)
	configRepo := postgresql.NewShopConfigRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	pointsRepo := postgresql.NewPointsRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	fileSvc := file.NewFileService(fileStorage)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	configSvc := shopconfigService.NewConfigService(configRepo)
	pointsSvc := pointsService.NewPointsService(pointsRepo, configRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		staffRepo,
		configRepo,
		pointsRepo,
		notificationSvc,
		fileSvc,
		logger,
	)
	taskSvc := taskService.NewTaskService(db, taskRepo, staffRepo, fileSvc)
	staffSvc := staffService.NewStaffService(staffRepo, taskSvc)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, configRepo)
	payrollSvc := payrollService.NewPayrollService(
		payrollRepo,
		staffRepo,
		attendanceRepo,
		leaveRepo,
		advanceRepo,
		pointsRepo,
		configRepo,
		notificationSvc,
		fileSvc,
		logger,
	)

	handlers := appHTTP.Handlers{
		Staff:        appHTTP.NewStaffHandler(staffSvc),
		Config:       appHTTP.NewConfigHandler(configSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Points:       appHTTP.NewPointsHandler(pointsSvc),
		Task:         appHTTP.NewTaskHandler(taskSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Advance:      appHTTP.NewAdvanceHandler(advanceSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
	}

	router := appHTTP.NewRouter(JWTService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
