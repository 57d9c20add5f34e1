package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hotelio/hotel_management_app/internal/apperrors"
	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/core/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	service         portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo)
}

func (suite *InvoiceServiceTestSuite) TestPayInvoice_Success() {
	ctx := context.Background()
	invoice := &domain.Invoice{
		InvoiceID: uuid.NewString(),
		Number:    "F202506100001",
		Status:    domain.InvoicePending,
	}
	actorID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.mockInvoiceRepo.On("MarkInvoicePaid", ctx, invoice.InvoiceID, domain.PaymentTransfer, "WIRE-99", actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	paid, err := suite.service.PayInvoice(ctx, invoice.InvoiceID, dto.PayInvoiceRequest{
		PaymentMethod:    domain.PaymentTransfer,
		PaymentReference: "WIRE-99",
	}, actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.InvoicePaid, paid.Status)
	suite.Require().NotNil(paid.PaidAt)
	suite.Equal(domain.PaymentTransfer, paid.PaymentMethod)
	suite.Equal("WIRE-99", paid.PaymentReference)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestPayInvoice_AlreadyPaid() {
	ctx := context.Background()
	invoice := &domain.Invoice{
		InvoiceID: uuid.NewString(),
		Status:    domain.InvoicePaid,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()

	paid, err := suite.service.PayInvoice(ctx, invoice.InvoiceID, dto.PayInvoiceRequest{
		PaymentMethod: domain.PaymentCash,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(paid)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "MarkInvoicePaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestRefundInvoice_Success() {
	ctx := context.Background()
	invoice := &domain.Invoice{
		InvoiceID: uuid.NewString(),
		Status:    domain.InvoicePaid,
	}
	actorID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceStatus", ctx, invoice.InvoiceID, domain.InvoiceRefunded, actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	refunded, err := suite.service.RefundInvoice(ctx, invoice.InvoiceID, actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceRefunded, refunded.Status)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestRefundInvoice_NotPaid() {
	ctx := context.Background()
	invoice := &domain.Invoice{
		InvoiceID: uuid.NewString(),
		Status:    domain.InvoicePending,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()

	refunded, err := suite.service.RefundInvoice(ctx, invoice.InvoiceID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(refunded)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoiceStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByReservation_NotFound() {
	ctx := context.Background()
	reservationID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByReservationID", ctx, reservationID).Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.GetInvoiceByReservation(ctx, reservationID)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
