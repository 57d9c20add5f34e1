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

type ChargeServiceTestSuite struct {
	suite.Suite
	mockChargeRepo *MockChargeRepository
	service        portssvc.ChargeSvcFacade
}

func (suite *ChargeServiceTestSuite) SetupTest() {
	suite.mockChargeRepo = new(MockChargeRepository)
	suite.service = services.NewChargeService(suite.mockChargeRepo, decimal.NewFromInt(20))
}

func (suite *ChargeServiceTestSuite) TestCreateCharge_DerivesTaxFromDefaultRate() {
	ctx := context.Background()
	invoiceDate := time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC)

	suite.mockChargeRepo.On("SaveCharge", ctx, mock.AnythingOfType("domain.AccountingCharge")).Return(nil).Once()

	charge, err := suite.service.CreateCharge(ctx, dto.CreateChargeRequest{
		Label:        "Electricity bill",
		Type:         domain.ChargeUtilities,
		PreTaxAmount: decimal.NewFromInt(100),
		InvoiceDate:  invoiceDate,
		Supplier:     "EDF",
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(charge.TaxAmount.Equal(decimal.NewFromInt(20)), "tax: %s", charge.TaxAmount)
	suite.True(charge.TotalAmount.Equal(decimal.NewFromInt(120)), "total: %s", charge.TotalAmount)
	suite.Equal(domain.ChargePending, charge.Status)
	suite.Equal(invoiceDate.AddDate(0, 0, 30), charge.DueDate)
	suite.mockChargeRepo.AssertExpectations(suite.T())
}

func (suite *ChargeServiceTestSuite) TestCreateCharge_ExplicitTaxRate() {
	ctx := context.Background()
	rate := decimal.NewFromFloat(5.5)

	suite.mockChargeRepo.On("SaveCharge", ctx, mock.AnythingOfType("domain.AccountingCharge")).Return(nil).Once()

	charge, err := suite.service.CreateCharge(ctx, dto.CreateChargeRequest{
		Label:        "Breakfast supplies",
		Type:         domain.ChargeOther,
		PreTaxAmount: decimal.NewFromInt(200),
		TaxRate:      &rate,
		InvoiceDate:  time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC),
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(charge.TaxRate.Equal(rate))
	suite.True(charge.TaxAmount.Equal(decimal.NewFromInt(11)), "tax: %s", charge.TaxAmount)
	suite.True(charge.TotalAmount.Equal(decimal.NewFromInt(211)), "total: %s", charge.TotalAmount)
}

func (suite *ChargeServiceTestSuite) TestCreateCharge_NegativeAmountRejected() {
	ctx := context.Background()

	charge, err := suite.service.CreateCharge(ctx, dto.CreateChargeRequest{
		Label:        "Bad entry",
		Type:         domain.ChargeOther,
		PreTaxAmount: decimal.NewFromInt(-5),
		InvoiceDate:  time.Now().UTC(),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(charge)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockChargeRepo.AssertNotCalled(suite.T(), "SaveCharge", mock.Anything, mock.Anything)
}

func (suite *ChargeServiceTestSuite) TestUpdateCharge_RecomputesTax() {
	ctx := context.Background()
	charge := &domain.AccountingCharge{
		ChargeID:     uuid.NewString(),
		Label:        "Electricity bill",
		Type:         domain.ChargeUtilities,
		PreTaxAmount: decimal.NewFromInt(100),
		TaxRate:      decimal.NewFromInt(20),
		TaxAmount:    decimal.NewFromInt(20),
		TotalAmount:  decimal.NewFromInt(120),
		Status:       domain.ChargePending,
	}
	newAmount := decimal.NewFromInt(150)

	suite.mockChargeRepo.On("FindChargeByID", ctx, charge.ChargeID).Return(charge, nil).Once()
	suite.mockChargeRepo.On("UpdateCharge", ctx, mock.AnythingOfType("domain.AccountingCharge")).Return(nil).Once()

	updated, err := suite.service.UpdateCharge(ctx, charge.ChargeID, dto.UpdateChargeRequest{
		PreTaxAmount: &newAmount,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(updated.TaxAmount.Equal(decimal.NewFromInt(30)), "tax: %s", updated.TaxAmount)
	suite.True(updated.TotalAmount.Equal(decimal.NewFromInt(180)), "total: %s", updated.TotalAmount)
	suite.mockChargeRepo.AssertExpectations(suite.T())
}

func (suite *ChargeServiceTestSuite) TestUpdateCharge_PaidChargeRejected() {
	ctx := context.Background()
	charge := &domain.AccountingCharge{
		ChargeID: uuid.NewString(),
		Status:   domain.ChargePaid,
	}
	label := "New label"

	suite.mockChargeRepo.On("FindChargeByID", ctx, charge.ChargeID).Return(charge, nil).Once()

	updated, err := suite.service.UpdateCharge(ctx, charge.ChargeID, dto.UpdateChargeRequest{Label: &label}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockChargeRepo.AssertNotCalled(suite.T(), "UpdateCharge", mock.Anything, mock.Anything)
}

func (suite *ChargeServiceTestSuite) TestPayCharge_Success() {
	ctx := context.Background()
	charge := &domain.AccountingCharge{
		ChargeID: uuid.NewString(),
		Status:   domain.ChargePending,
	}
	actorID := uuid.NewString()

	suite.mockChargeRepo.On("FindChargeByID", ctx, charge.ChargeID).Return(charge, nil).Once()
	suite.mockChargeRepo.On("MarkChargePaid", ctx, charge.ChargeID, domain.PaymentTransfer, actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	paid, err := suite.service.PayCharge(ctx, charge.ChargeID, dto.PayChargeRequest{
		PaymentMethod: domain.PaymentTransfer,
	}, actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.ChargePaid, paid.Status)
	suite.Require().NotNil(paid.PaidAt)
	suite.mockChargeRepo.AssertExpectations(suite.T())
}

func (suite *ChargeServiceTestSuite) TestPayCharge_AlreadyPaid() {
	ctx := context.Background()
	charge := &domain.AccountingCharge{
		ChargeID: uuid.NewString(),
		Status:   domain.ChargePaid,
	}

	suite.mockChargeRepo.On("FindChargeByID", ctx, charge.ChargeID).Return(charge, nil).Once()

	paid, err := suite.service.PayCharge(ctx, charge.ChargeID, dto.PayChargeRequest{
		PaymentMethod: domain.PaymentCash,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(paid)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *ChargeServiceTestSuite) TestRecordMaintenanceCharge_DueMidMonth() {
	ctx := context.Background()
	completedAt := time.Date(2025, time.July, 28, 14, 30, 0, 0, time.UTC)
	ticket := domain.MaintenanceTicket{
		TicketID:    uuid.NewString(),
		Title:       "Boiler replacement",
		Description: "Room 204 boiler leaking",
		CompletedAt: &completedAt,
	}

	suite.mockChargeRepo.On("SaveCharge", ctx, mock.AnythingOfType("domain.AccountingCharge")).Return(nil).Once()

	charge, err := suite.service.RecordMaintenanceCharge(ctx, ticket, decimal.NewFromInt(450), uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.ChargeMaintenance, charge.Type)
	suite.Equal("Maintenance: Boiler replacement", charge.Label)
	suite.Equal(time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC), charge.DueDate)
	suite.True(charge.PreTaxAmount.Equal(decimal.NewFromInt(450)))
	suite.True(charge.TaxAmount.Equal(decimal.NewFromInt(90)), "tax: %s", charge.TaxAmount)
	suite.True(charge.TotalAmount.Equal(decimal.NewFromInt(540)), "total: %s", charge.TotalAmount)
	suite.Equal(ticket.TicketID, charge.InvoiceReference)
}

func (suite *ChargeServiceTestSuite) TestRecordInventoryCharge_ZeroAmounts() {
	ctx := context.Background()
	item := domain.InventoryItem{
		ItemID:        uuid.NewString(),
		Name:          "Bath towels",
		Reference:     "LIN-0042",
		TotalQuantity: 80,
	}

	suite.mockChargeRepo.On("SaveCharge", ctx, mock.AnythingOfType("domain.AccountingCharge")).Return(nil).Once()

	charge, err := suite.service.RecordInventoryCharge(ctx, item, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.ChargeInventory, charge.Type)
	suite.True(charge.PreTaxAmount.IsZero())
	suite.True(charge.TaxAmount.IsZero())
	suite.True(charge.TotalAmount.IsZero())
	suite.Equal("LIN-0042", charge.InvoiceReference)
	suite.Equal(domain.ChargePending, charge.Status)
}

func TestChargeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChargeServiceTestSuite))
}
