package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kedaihq/staffops-backend-go/internal/domain/attendance"
	"github.com/kedaihq/staffops-backend-go/internal/domain/notification"
	"github.com/kedaihq/staffops-backend-go/internal/domain/points"
	"github.com/kedaihq/staffops-backend-go/internal/domain/shopconfig"
	"github.com/kedaihq/staffops-backend-go/internal/domain/staff"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/database"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/geo"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/jwt"
	"github.com/kedaihq/staffops-backend-go/internal/repository/postgresql"
	"github.com/kedaihq/staffops-backend-go/internal/service/file"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	staff.StaffRepository
	shopconfig.ConfigRepository
	points.PointsRepository
	notificationService notification.NotificationService
	fileService         file.FileService
	logger              *slog.Logger
}

func penaltyTiers(cfg shopconfig.Config) attendance.PenaltyTiers {
	return attendance.PenaltyTiers{
		Tier1Amount:   cfg.Tier1Amount,
		Tier2Amount:   cfg.Tier2Amount,
		MaxAmount:     cfg.MaxAmount,
		PerMinuteRate: cfg.PerMinuteRate,
	}
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	cfg, err := a.ConfigRepository.GetLatest(ctx)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to load shop config: %w", err)
	}

	distance, within := geo.WithinRadius(req.Latitude, req.Longitude, cfg.Latitude, cfg.Longitude, cfg.AllowedRadiusMeters)
	if !within {
		return attendance.RecordResponse{}, attendance.ErrOutOfRange
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	workStart, err := cfg.WorkStartOn(now)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	minutesLate := attendance.LateMinutes(now, workStart)
	status, penalty := attendance.ClassifyLateness(minutesLate, penaltyTiers(cfg))

	selfieRef, err := a.fileService.UploadClockInSelfie(ctx, identity.StaffID, today, req.File, req.FileHeader.Filename)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to upload clock-in selfie: %w", err)
	}

	record, err := a.AttendanceRepository.Create(ctx, attendance.Record{
		StaffID:       identity.StaffID,
		Date:          today,
		ClockIn:       now,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Status:        status,
		PenaltyAmount: penalty,
		SelfieRef:     &selfieRef,
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if status == attendance.StatusLate {
		a.notifyManagersOfLateness(ctx, identity, minutesLate, record)
	}

	resp := attendance.MapRecordToResponse(record)
	resp.DistanceM = &distance
	return resp, nil
}

// notifyManagersOfLateness is best-effort: failures are logged and never
// roll back the clock-in.
func (a *AttendanceServiceImpl) notifyManagersOfLateness(ctx context.Context, identity jwt.Identity, minutesLate int, record attendance.Record) {
	managers, err := a.StaffRepository.ListManagers(ctx)
	if err != nil {
		a.logger.WarnContext(ctx, "failed to list managers for lateness notification", slog.Any("error", err))
		return
	}

	title := "Late clock-in"
	body := fmt.Sprintf("%s clocked in %d minutes late (penalty %s)", identity.Name, minutesLate, record.PenaltyAmount.String())
	link := "/attendance/" + record.ID

	for _, manager := range managers {
		if manager.ID == identity.StaffID {
			continue
		}
		if err := a.notificationService.Notify(ctx, manager.ID, title, body, link); err != nil {
			a.logger.WarnContext(ctx, "failed to send lateness notification",
				slog.String("manager_id", manager.ID), slog.Any("error", err))
		}
	}
}

// CorrectRecord implements attendance.AttendanceService. The record is
// re-derived from the corrected clock-in using the current config, and the
// points ledger is adjusted for the old->new status transition in the same
// transaction as the record update.
func (a *AttendanceServiceImpl) CorrectRecord(ctx context.Context, req attendance.CorrectRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !identity.Role.CanManage() {
		return attendance.RecordResponse{}, attendance.ErrPermissionDenied
	}

	newClockIn, _ := time.Parse(time.RFC3339, req.NewClockIn)
	day := time.Date(newClockIn.Year(), newClockIn.Month(), newClockIn.Day(), 0, 0, 0, 0, newClockIn.Location())

	existing, err := a.AttendanceRepository.GetByStaffAndDate(ctx, req.StaffID, day)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	cfg, err := a.ConfigRepository.GetLatest(ctx)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to load shop config: %w", err)
	}

	workStart, err := cfg.WorkStartOn(newClockIn)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	minutesLate := attendance.LateMinutes(newClockIn, workStart)
	status, penalty := attendance.ClassifyLateness(minutesLate, penaltyTiers(cfg))

	if req.OverrideStatus != nil {
		status = attendance.Status(strings.ToLower(*req.OverrideStatus))
	}
	if req.OverridePenalty != nil {
		penalty = *req.OverridePenalty
	}

	updated := existing
	updated.ClockIn = newClockIn
	updated.Status = status
	updated.PenaltyAmount = penalty

	adjustment := points.ForTransition(existing.Status, status)
	month := points.MonthKey(newClockIn)

	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		record, err := a.AttendanceRepository.Update(txCtx, updated, existing.UpdatedAt)
		if err != nil {
			return err
		}
		updated = record

		if adjustment.IsZero() {
			return nil
		}
		return a.PointsRepository.Apply(txCtx, req.StaffID, month, adjustment)
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.MapRecordToResponse(updated), nil
}

// GetMyRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyRecords(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	filter.StaffID = &identity.StaffID

	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.MapRecordToResponse(record))
	}

	return responses, nil
}

// ListRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !identity.Role.CanManage() {
		return nil, attendance.ErrPermissionDenied
	}

	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.MapRecordToResponse(record))
	}

	return responses, nil
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	staffRepo staff.StaffRepository,
	configRepo shopconfig.ConfigRepository,
	pointsRepo points.PointsRepository,
	notificationService notification.NotificationService,
	fileService file.FileService,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		StaffRepository:      staffRepo,
		ConfigRepository:     configRepo,
		PointsRepository:     pointsRepo,
		notificationService:  notificationService,
		fileService:          fileService,
		logger:               logger,
	}
}
