package payroll

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kedaihq/staffops-backend-go/internal/domain/payroll"
	"github.com/kedaihq/staffops-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithRole(t *testing.T, staffID string, role staff.Role) context.Context {
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"staff_id": staffID,
		"name":     "Test User",
		"role":     string(role),
		"type":     "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type stubStaffRepository struct {
	member staff.Member
}

func (s *stubStaffRepository) GetByID(ctx context.Context, id string) (staff.Member, error) {
	return s.member, nil
}

func (s *stubStaffRepository) List(ctx context.Context) ([]staff.Member, error) {
	return []staff.Member{s.member}, nil
}

func (s *stubStaffRepository) ListManagers(ctx context.Context) ([]staff.Member, error) {
	return nil, nil
}

func (s *stubStaffRepository) UpdateStation(ctx context.Context, id string, station string) error {
	return nil
}

type stubPayrollRepository struct {
	record    payroll.Record
	hasRecord bool
}

func (s *stubPayrollRepository) GetByStaffAndPeriod(ctx context.Context, staffID string, year int, month int) (payroll.Record, error) {
	if !s.hasRecord {
		return payroll.Record{}, payroll.ErrRecordNotFound
	}
	return s.record, nil
}

func (s *stubPayrollRepository) Upsert(ctx context.Context, record *payroll.Record) error {
	return nil
}

func (s *stubPayrollRepository) ListByPeriod(ctx context.Context, year int, month int) ([]payroll.Record, error) {
	return nil, nil
}

func proofUpload(t *testing.T) (multipart.File, *multipart.FileHeader) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("proof", "proof.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpg bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)

	header := form.File["proof"][0]
	file, err := header.Open()
	require.NoError(t, err)
	return file, header
}

func TestMarkPaid_StaffRoleDenied(t *testing.T) {
	svc := &PayrollServiceImpl{}
	ctx := contextWithRole(t, "staff-1", staff.RoleStaff)

	file, header := proofUpload(t)
	defer file.Close()

	_, err := svc.MarkPaid(ctx, "staff-2", 2025, 7, &payroll.MarkPaidRequest{
		PaymentMethod: "cash",
		File:          file,
		FileHeader:    header,
	})
	assert.ErrorIs(t, err, payroll.ErrPermissionDenied)
}

func TestMarkPaid_MissingProof(t *testing.T) {
	svc := &PayrollServiceImpl{}
	ctx := contextWithRole(t, "mgr-1", staff.RoleManager)

	_, err := svc.MarkPaid(ctx, "staff-1", 2025, 7, &payroll.MarkPaidRequest{
		PaymentMethod: "cash",
	})
	assert.ErrorIs(t, err, payroll.ErrProofRequired)
}

func TestMarkPaid_AlreadyPaid(t *testing.T) {
	paidAt := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	svc := &PayrollServiceImpl{
		StaffRepository: &stubStaffRepository{member: staff.Member{ID: "staff-1", FullName: "Test Staff"}},
		PayrollRepository: &stubPayrollRepository{
			hasRecord: true,
			record: payroll.Record{
				StaffID:     "staff-1",
				PeriodYear:  2025,
				PeriodMonth: 7,
				Status:      payroll.StatusPaid,
				PaidAt:      &paidAt,
			},
		},
	}
	ctx := contextWithRole(t, "mgr-1", staff.RoleManager)

	file, header := proofUpload(t)
	defer file.Close()

	_, err := svc.MarkPaid(ctx, "staff-1", 2025, 7, &payroll.MarkPaidRequest{
		PaymentMethod: "cash",
		File:          file,
		FileHeader:    header,
	})
	assert.ErrorIs(t, err, payroll.ErrAlreadyPaid)
}
