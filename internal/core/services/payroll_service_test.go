package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hotelio/hotel_management_app/internal/apperrors"
	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/core/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
)

type PayrollServiceTestSuite struct {
	suite.Suite
	mockPayslipRepo *MockPayslipRepository
	mockUserRepo    *MockUserRepository
	mockCounterRepo *MockCounterRepository
	service         portssvc.PayrollSvcFacade
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.mockPayslipRepo = new(MockPayslipRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCounterRepo = new(MockCounterRepository)
	suite.service = services.NewPayrollService(suite.mockPayslipRepo, suite.mockUserRepo, suite.mockCounterRepo)
}

// activeProfile builds an employee profile hired the given number of
// years ago (plus a month, to stay clear of the year boundary).
func activeProfile(gross int64, yearsAgo int) *domain.EmployeeProfile {
	hiredAt := time.Now().UTC().AddDate(-yearsAgo, -1, 0)
	return &domain.EmployeeProfile{
		UserID:      uuid.NewString(),
		Position:    "Receptionist",
		GrossSalary: decimal.NewFromInt(gross),
		HiredAt:     &hiredAt,
		Status:      domain.EmployeeActive,
	}
}

func (suite *PayrollServiceTestSuite) TestGeneratePayslip_Computation() {
	ctx := context.Background()
	requestingUserID := uuid.NewString()
	profile := activeProfile(1000, 3)

	suite.mockUserRepo.On("FindEmployeeProfile", ctx, profile.UserID).Return(profile, nil).Once()
	suite.mockCounterRepo.On("NextSequence", ctx, "payslip:202503").Return(int64(1), nil).Once()
	suite.mockPayslipRepo.On("SavePayslip", ctx, mock.AnythingOfType("domain.PayrollSlip")).Return(nil).Once()

	slip, err := suite.service.GeneratePayslip(ctx, dto.GeneratePayslipRequest{
		EmployeeID: profile.UserID,
		Month:      "2025-03",
	}, requestingUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(slip)
	suite.Equal("FP2025030001", slip.Number)
	suite.Equal(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), slip.Month)
	suite.Equal(domain.PayslipToPay, slip.Status)

	// 3 full years of service: 3% seniority bonus on 1000 gross.
	suite.True(slip.SeniorityBonus.Equal(decimal.NewFromInt(30)), "seniority bonus: %s", slip.SeniorityBonus)
	suite.True(slip.SocialContributions.Equal(decimal.NewFromInt(220)), "social contributions: %s", slip.SocialContributions)
	suite.True(slip.IncomeTax.Equal(decimal.NewFromInt(150)), "income tax: %s", slip.IncomeTax)
	suite.True(slip.TotalBonuses.Equal(decimal.NewFromInt(30)), "total bonuses: %s", slip.TotalBonuses)
	suite.True(slip.TotalDeductions.Equal(decimal.NewFromInt(370)), "total deductions: %s", slip.TotalDeductions)
	suite.True(slip.NetSalary.Equal(decimal.NewFromInt(660)), "net salary: %s", slip.NetSalary)

	suite.mockPayslipRepo.AssertExpectations(suite.T())
	suite.mockCounterRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestGeneratePayslip_SeniorityCapped() {
	ctx := context.Background()
	profile := activeProfile(2000, 15)

	suite.mockUserRepo.On("FindEmployeeProfile", ctx, profile.UserID).Return(profile, nil).Once()
	suite.mockCounterRepo.On("NextSequence", ctx, "payslip:202503").Return(int64(12), nil).Once()
	suite.mockPayslipRepo.On("SavePayslip", ctx, mock.AnythingOfType("domain.PayrollSlip")).Return(nil).Once()

	slip, err := suite.service.GeneratePayslip(ctx, dto.GeneratePayslipRequest{
		EmployeeID: profile.UserID,
		Month:      "2025-03",
	}, uuid.NewString())

	suite.Require().NoError(err)
	// 15 years of service still caps at 10% of gross.
	suite.True(slip.SeniorityBonus.Equal(decimal.NewFromInt(200)), "seniority bonus: %s", slip.SeniorityBonus)
	suite.Equal("FP2025030012", slip.Number)
}

func (suite *PayrollServiceTestSuite) TestGeneratePayslip_BonusOverrides() {
	ctx := context.Background()
	profile := activeProfile(1000, 0)
	performance := decimal.NewFromInt(100)
	otherDeduction := decimal.NewFromInt(50)

	suite.mockUserRepo.On("FindEmployeeProfile", ctx, profile.UserID).Return(profile, nil).Once()
	suite.mockCounterRepo.On("NextSequence", ctx, "payslip:202503").Return(int64(2), nil).Once()
	suite.mockPayslipRepo.On("SavePayslip", ctx, mock.AnythingOfType("domain.PayrollSlip")).Return(nil).Once()

	slip, err := suite.service.GeneratePayslip(ctx, dto.GeneratePayslipRequest{
		EmployeeID:       profile.UserID,
		Month:            "2025-03",
		PerformanceBonus: &performance,
		OtherDeductions:  &otherDeduction,
	}, uuid.NewString())

	suite.Require().NoError(err)
	// No seniority in the first year; net = 1000 + 100 - (220 + 150 + 50).
	suite.True(slip.SeniorityBonus.IsZero())
	suite.True(slip.NetSalary.Equal(decimal.NewFromInt(680)), "net salary: %s", slip.NetSalary)
}

func (suite *PayrollServiceTestSuite) TestGeneratePayslip_InvalidMonth() {
	ctx := context.Background()

	slip, err := suite.service.GeneratePayslip(ctx, dto.GeneratePayslipRequest{
		EmployeeID: uuid.NewString(),
		Month:      "March 2025",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(slip)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPayslipRepo.AssertNotCalled(suite.T(), "SavePayslip", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestGeneratePayslip_Duplicate() {
	ctx := context.Background()
	profile := activeProfile(1000, 1)

	suite.mockUserRepo.On("FindEmployeeProfile", ctx, profile.UserID).Return(profile, nil).Once()
	suite.mockCounterRepo.On("NextSequence", ctx, "payslip:202503").Return(int64(3), nil).Once()
	suite.mockPayslipRepo.On("SavePayslip", ctx, mock.AnythingOfType("domain.PayrollSlip")).Return(apperrors.ErrDuplicate).Once()

	slip, err := suite.service.GeneratePayslip(ctx, dto.GeneratePayslipRequest{
		EmployeeID: profile.UserID,
		Month:      "2025-03",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(slip)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *PayrollServiceTestSuite) TestRunMonthlyPayroll_SkipsCoveredEmployees() {
	ctx := context.Background()
	covered := activeProfile(1500, 2)
	uncovered := activeProfile(1200, 1)
	month := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	suite.mockUserRepo.On("ListActiveEmployeeProfiles", ctx).Return([]domain.EmployeeProfile{*covered, *uncovered}, nil).Once()
	suite.mockPayslipRepo.On("PayslipExists", ctx, covered.UserID, month).Return(true, nil).Once()
	suite.mockPayslipRepo.On("PayslipExists", ctx, uncovered.UserID, month).Return(false, nil).Once()
	suite.mockCounterRepo.On("NextSequence", ctx, "payslip:202503").Return(int64(4), nil).Once()
	suite.mockPayslipRepo.On("SavePayslip", ctx, mock.AnythingOfType("domain.PayrollSlip")).Return(nil).Once()

	resp, err := suite.service.RunMonthlyPayroll(ctx, dto.RunMonthlyPayrollRequest{Month: "2025-03"}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(1, resp.Skipped)
	suite.Require().Len(resp.Generated, 1)
	suite.Equal(uncovered.UserID, resp.Generated[0].EmployeeID)
	suite.mockPayslipRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestRunMonthlyPayroll_LostRaceCountsAsSkipped() {
	ctx := context.Background()
	profile := activeProfile(1000, 1)
	month := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	suite.mockUserRepo.On("ListActiveEmployeeProfiles", ctx).Return([]domain.EmployeeProfile{*profile}, nil).Once()
	suite.mockPayslipRepo.On("PayslipExists", ctx, profile.UserID, month).Return(false, nil).Once()
	suite.mockCounterRepo.On("NextSequence", ctx, "payslip:202503").Return(int64(5), nil).Once()
	suite.mockPayslipRepo.On("SavePayslip", ctx, mock.AnythingOfType("domain.PayrollSlip")).Return(apperrors.ErrDuplicate).Once()

	resp, err := suite.service.RunMonthlyPayroll(ctx, dto.RunMonthlyPayrollRequest{Month: "2025-03"}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(1, resp.Skipped)
	suite.Empty(resp.Generated)
}

func (suite *PayrollServiceTestSuite) TestPayPayslip_Success() {
	ctx := context.Background()
	requestingUserID := uuid.NewString()
	slip := &domain.PayrollSlip{
		PayslipID: uuid.NewString(),
		Status:    domain.PayslipToPay,
		NetSalary: decimal.NewFromInt(660),
	}

	suite.mockPayslipRepo.On("FindPayslipByID", ctx, slip.PayslipID).Return(slip, nil).Once()
	suite.mockPayslipRepo.On("MarkPayslipPaid", ctx, slip.PayslipID, domain.PaymentTransfer, "SEPA-42", requestingUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	paid, err := suite.service.PayPayslip(ctx, slip.PayslipID, dto.PayPayslipRequest{
		PaymentMethod:    domain.PaymentTransfer,
		PaymentReference: "SEPA-42",
	}, requestingUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.PayslipPaid, paid.Status)
	suite.NotNil(paid.PaidAt)
	suite.mockPayslipRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestPayPayslip_AlreadyPaid() {
	ctx := context.Background()
	slip := &domain.PayrollSlip{
		PayslipID: uuid.NewString(),
		Status:    domain.PayslipPaid,
	}

	suite.mockPayslipRepo.On("FindPayslipByID", ctx, slip.PayslipID).Return(slip, nil).Once()

	paid, err := suite.service.PayPayslip(ctx, slip.PayslipID, dto.PayPayslipRequest{PaymentMethod: domain.PaymentCash}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(paid)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPayslipRepo.AssertNotCalled(suite.T(), "MarkPayslipPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
