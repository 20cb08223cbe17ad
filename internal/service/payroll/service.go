package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kedaihq/staffops-backend-go/internal/domain/advance"
	"github.com/kedaihq/staffops-backend-go/internal/domain/attendance"
	"github.com/kedaihq/staffops-backend-go/internal/domain/leave"
	"github.com/kedaihq/staffops-backend-go/internal/domain/notification"
	"github.com/kedaihq/staffops-backend-go/internal/domain/payroll"
	"github.com/kedaihq/staffops-backend-go/internal/domain/points"
	"github.com/kedaihq/staffops-backend-go/internal/domain/shopconfig"
	"github.com/kedaihq/staffops-backend-go/internal/domain/staff"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/jwt"
	"github.com/kedaihq/staffops-backend-go/internal/service/file"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	staff.StaffRepository
	attendance.AttendanceRepository
	leave.LeaveRepository
	advance.AdvanceRepository
	points.PointsRepository
	shopconfig.ConfigRepository
	notificationService notification.NotificationService
	fileService         file.FileService
	logger              *slog.Logger
}

func monthKey(year int, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// rewardTable derives each staff member's ranking reward for the month once,
// so batch views don't recompute the ranking per member.
func (p *PayrollServiceImpl) rewardTable(ctx context.Context, cfg shopconfig.Config, year int, month int) (map[string]decimal.Decimal, error) {
	rows, err := p.PointsRepository.ListByMonth(ctx, monthKey(year, month))
	if err != nil {
		return nil, err
	}

	rewards := make(map[string]decimal.Decimal, len(rows))
	for _, entry := range points.ComputeRanking(rows, cfg.RewardForRank) {
		rewards[entry.StaffID] = entry.Reward
	}

	return rewards, nil
}

// computeFor assembles the fixed snapshot for one member and runs the pure
// breakdown computation over it.
func (p *PayrollServiceImpl) computeFor(ctx context.Context, member staff.Member, cfg shopconfig.Config, rewards map[string]decimal.Decimal, year int, month int) (payroll.Breakdown, error) {
	summary, err := p.AttendanceRepository.MonthlySummary(ctx, member.ID, year, time.Month(month))
	if err != nil {
		return payroll.Breakdown{}, err
	}

	leaveApps, err := p.LeaveRepository.ListApprovedOverlappingMonth(ctx, member.ID, year, time.Month(month))
	if err != nil {
		return payroll.Breakdown{}, err
	}

	advanceTotal, err := p.AdvanceRepository.SumApprovedInMonth(ctx, member.ID, year, time.Month(month))
	if err != nil {
		return payroll.Breakdown{}, err
	}

	reward := decimal.Zero
	if r, ok := rewards[member.ID]; ok {
		reward = r
	}

	inputs := payroll.Inputs{
		DailyRate:             member.DailyRate,
		StartDate:             member.StartDate,
		OnboardingKitTotal:    member.OnboardingKitTotal(),
		DaysWorked:            summary.DaysWorked,
		PenaltyTotal:          summary.PenaltyTotal,
		LeaveDays:             leave.TotalLeaveDays(leaveApps, year, time.Month(month)),
		AttendanceBonusAmount: cfg.AttendanceBonusAmount,
		RankingReward:         reward,
		AdvanceTotal:          advanceTotal,
	}

	return payroll.Compute(inputs, year, time.Month(month)), nil
}

// buildResponse merges an existing payment row into the computed breakdown.
// A paid row's stored amounts win over the fresh computation: payment froze
// them, and later attendance changes must not alter them.
func buildResponse(member staff.Member, computed payroll.Breakdown, record payroll.Record, recordExists bool, year int, month int) payroll.BreakdownResponse {
	resp := payroll.BreakdownResponse{
		StaffID:   member.ID,
		StaffName: member.FullName,
		Month:     monthKey(year, month),
		Breakdown: computed,
		Status:    payroll.StatusPending,
	}

	if recordExists {
		resp.Status = record.Status
		resp.PaymentMethod = record.PaymentMethod
		resp.ProofRef = record.ProofRef
		resp.PaidAt = record.PaidAt
		if record.Status == payroll.StatusPaid {
			resp.Breakdown = record.Breakdown
		}
	}

	return resp
}

// GetBreakdown implements payroll.PayrollService.
func (p *PayrollServiceImpl) GetBreakdown(ctx context.Context, staffID string, year int, month int) (payroll.BreakdownResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}
	if staffID != identity.StaffID && !identity.Role.CanManage() {
		return payroll.BreakdownResponse{}, payroll.ErrPermissionDenied
	}

	member, err := p.StaffRepository.GetByID(ctx, staffID)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	cfg, err := p.ConfigRepository.GetLatest(ctx)
	if err != nil {
		return payroll.BreakdownResponse{}, fmt.Errorf("failed to load shop config: %w", err)
	}

	rewards, err := p.rewardTable(ctx, cfg, year, month)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	computed, err := p.computeFor(ctx, member, cfg, rewards, year, month)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	record, err := p.PayrollRepository.GetByStaffAndPeriod(ctx, staffID, year, month)
	recordExists := err == nil
	if err != nil && err != payroll.ErrRecordNotFound {
		return payroll.BreakdownResponse{}, err
	}

	return buildResponse(member, computed, record, recordExists, year, month), nil
}

// ListBreakdowns implements payroll.PayrollService.
func (p *PayrollServiceImpl) ListBreakdowns(ctx context.Context, year int, month int) ([]payroll.BreakdownResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !identity.Role.CanManage() {
		return nil, payroll.ErrPermissionDenied
	}

	roster, err := p.StaffRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := p.ConfigRepository.GetLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop config: %w", err)
	}

	rewards, err := p.rewardTable(ctx, cfg, year, month)
	if err != nil {
		return nil, err
	}

	records, err := p.PayrollRepository.ListByPeriod(ctx, year, month)
	if err != nil {
		return nil, err
	}
	recordsByStaff := make(map[string]payroll.Record, len(records))
	for _, record := range records {
		recordsByStaff[record.StaffID] = record
	}

	responses := make([]payroll.BreakdownResponse, 0, len(roster))
	for _, member := range roster {
		computed, err := p.computeFor(ctx, member, cfg, rewards, year, month)
		if err != nil {
			return nil, err
		}

		record, recordExists := recordsByStaff[member.ID]
		responses = append(responses, buildResponse(member, computed, record, recordExists, year, month))
	}

	return responses, nil
}

// MarkPaid implements payroll.PayrollService. A record already marked paid is
// final and cannot be paid again. The proof upload is a precondition: if it
// fails, no payroll record is written. The breakdown persisted here is the one
// in effect at payment time.
func (p *PayrollServiceImpl) MarkPaid(ctx context.Context, staffID string, year int, month int, req *payroll.MarkPaidRequest) (payroll.BreakdownResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BreakdownResponse{}, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}
	if !identity.Role.CanManage() {
		return payroll.BreakdownResponse{}, payroll.ErrPermissionDenied
	}

	if req.File == nil || req.FileHeader == nil {
		return payroll.BreakdownResponse{}, payroll.ErrProofRequired
	}

	member, err := p.StaffRepository.GetByID(ctx, staffID)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	existing, err := p.PayrollRepository.GetByStaffAndPeriod(ctx, staffID, year, month)
	if err != nil && err != payroll.ErrRecordNotFound {
		return payroll.BreakdownResponse{}, err
	}
	if err == nil && existing.Status == payroll.StatusPaid {
		return payroll.BreakdownResponse{}, payroll.ErrAlreadyPaid
	}

	cfg, err := p.ConfigRepository.GetLatest(ctx)
	if err != nil {
		return payroll.BreakdownResponse{}, fmt.Errorf("failed to load shop config: %w", err)
	}

	rewards, err := p.rewardTable(ctx, cfg, year, month)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	computed, err := p.computeFor(ctx, member, cfg, rewards, year, month)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	proofRef, err := p.fileService.UploadPaymentProof(ctx, staffID, year, month, req.File, req.FileHeader.Filename)
	if err != nil {
		return payroll.BreakdownResponse{}, fmt.Errorf("failed to upload payment proof: %w", err)
	}

	now := time.Now()
	record := payroll.Record{
		StaffID:       staffID,
		PeriodYear:    year,
		PeriodMonth:   month,
		Breakdown:     computed,
		Status:        payroll.StatusPaid,
		PaymentMethod: &req.PaymentMethod,
		ProofRef:      &proofRef,
		PaidAt:        &now,
	}

	if err := p.PayrollRepository.Upsert(ctx, &record); err != nil {
		return payroll.BreakdownResponse{}, err
	}

	if err := p.notificationService.Notify(ctx, staffID, "Salary paid",
		fmt.Sprintf("Your salary for %s has been paid (net %s)", monthKey(year, month), computed.NetAmount.String()),
		"/payroll/"+monthKey(year, month)); err != nil {
		p.logger.WarnContext(ctx, "failed to send payment notification",
			slog.String("staff_id", staffID), slog.Any("error", err))
	}

	return buildResponse(member, computed, record, true, year, month), nil
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	staffRepo staff.StaffRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	advanceRepo advance.AdvanceRepository,
	pointsRepo points.PointsRepository,
	configRepo shopconfig.ConfigRepository,
	notificationService notification.NotificationService,
	fileService file.FileService,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:    payrollRepo,
		StaffRepository:      staffRepo,
		AttendanceRepository: attendanceRepo,
		LeaveRepository:      leaveRepo,
		AdvanceRepository:    advanceRepo,
		PointsRepository:     pointsRepo,
		ConfigRepository:     configRepo,
		notificationService:  notificationService,
		fileService:          fileService,
		logger:               logger,
	}
}
