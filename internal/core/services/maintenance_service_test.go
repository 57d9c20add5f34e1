package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/core/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
)

type MaintenanceServiceTestSuite struct {
	suite.Suite
	mockMaintenanceRepo *MockMaintenanceRepository
	mockChargeSvc       *MockChargeRecorder
	mockNotifySvc       *MockNotificationDispatcher
	service             portssvc.MaintenanceSvcFacade
}

func (suite *MaintenanceServiceTestSuite) SetupTest() {
	suite.mockMaintenanceRepo = new(MockMaintenanceRepository)
	suite.mockChargeSvc = new(MockChargeRecorder)
	suite.mockNotifySvc = new(MockNotificationDispatcher)
	suite.service = services.NewMaintenanceService(suite.mockMaintenanceRepo, suite.mockChargeSvc, suite.mockNotifySvc)
}

func (suite *MaintenanceServiceTestSuite) TestCreateTicket_CriticalPriorityNotifiesAdmins() {
	ctx := context.Background()

	suite.mockMaintenanceRepo.On("SaveTicket", ctx, mock.AnythingOfType("domain.MaintenanceTicket")).Return(nil).Once()

	var sent domain.Notification
	suite.mockNotifySvc.On("NotifyAdmins", ctx, mock.AnythingOfType("domain.Notification")).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(domain.Notification)
		}).Return(nil).Once()

	ticket, err := suite.service.CreateTicket(ctx, dto.CreateTicketRequest{
		Title:       "Boiler leaking",
		Description: "Water on the floor of room 204",
		Type:        domain.MaintenanceEmergency,
		Priority:    domain.PriorityCritical,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.MaintenancePending, ticket.Status)
	suite.Equal(domain.NotifyUrgentMaintenance, sent.Type)
	suite.Equal(domain.PriorityCritical, sent.Priority)
	suite.Require().NotNil(sent.MaintenanceID)
	suite.Equal(ticket.TicketID, *sent.MaintenanceID)
}

func (suite *MaintenanceServiceTestSuite) TestCreateTicket_LowPriorityStaysQuiet() {
	ctx := context.Background()

	suite.mockMaintenanceRepo.On("SaveTicket", ctx, mock.AnythingOfType("domain.MaintenanceTicket")).Return(nil).Once()

	ticket, err := suite.service.CreateTicket(ctx, dto.CreateTicketRequest{
		Title:    "Squeaky door hinge",
		Type:     domain.MaintenancePreventive,
		Priority: domain.PriorityLow,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotNil(ticket)
	suite.mockNotifySvc.AssertNotCalled(suite.T(), "NotifyAdmins", mock.Anything, mock.Anything)
}

func (suite *MaintenanceServiceTestSuite) TestCreateTicket_NotificationFailureDoesNotFailCreation() {
	ctx := context.Background()

	suite.mockMaintenanceRepo.On("SaveTicket", ctx, mock.AnythingOfType("domain.MaintenanceTicket")).Return(nil).Once()
	suite.mockNotifySvc.On("NotifyAdmins", ctx, mock.AnythingOfType("domain.Notification")).Return(errors.New("notifier down")).Once()

	ticket, err := suite.service.CreateTicket(ctx, dto.CreateTicketRequest{
		Title:    "Elevator stuck",
		Type:     domain.MaintenanceEmergency,
		Priority: domain.PriorityHigh,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotNil(ticket)
}

func (suite *MaintenanceServiceTestSuite) TestListTickets_StatusFilterReachesRepository() {
	ctx := context.Background()
	status := domain.MaintenancePending
	page := []domain.MaintenanceTicket{
		{TicketID: uuid.NewString(), Status: domain.MaintenancePending},
		{TicketID: uuid.NewString(), Status: domain.MaintenancePending},
	}

	suite.mockMaintenanceRepo.On("ListTickets", ctx, &status, 20, (*string)(nil)).Return(page, nil, nil).Once()

	resp, err := suite.service.ListTickets(ctx, dto.ListTicketsParams{Status: &status})

	suite.Require().NoError(err)
	suite.Len(resp.Tickets, 2)
	suite.mockMaintenanceRepo.AssertExpectations(suite.T())
}

func (suite *MaintenanceServiceTestSuite) TestUpdateTicket_ClosedTicketRejected() {
	ctx := context.Background()
	ticket := &domain.MaintenanceTicket{
		TicketID: uuid.NewString(),
		Status:   domain.MaintenanceCancelled,
	}
	title := "New title"

	suite.mockMaintenanceRepo.On("FindTicketByID", ctx, ticket.TicketID).Return(ticket, nil).Once()

	updated, err := suite.service.UpdateTicket(ctx, ticket.TicketID, dto.UpdateTicketRequest{Title: &title}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, services.ErrTicketClosed)
	suite.mockMaintenanceRepo.AssertNotCalled(suite.T(), "UpdateTicket", mock.Anything, mock.Anything)
}

func (suite *MaintenanceServiceTestSuite) TestUpdateTicket_MovingToInProgressStampsStart() {
	ctx := context.Background()
	ticket := &domain.MaintenanceTicket{
		TicketID: uuid.NewString(),
		Status:   domain.MaintenancePending,
	}
	status := domain.MaintenanceInProgress

	suite.mockMaintenanceRepo.On("FindTicketByID", ctx, ticket.TicketID).Return(ticket, nil).Once()
	suite.mockMaintenanceRepo.On("UpdateTicket", ctx, mock.AnythingOfType("domain.MaintenanceTicket")).Return(nil).Once()

	updated, err := suite.service.UpdateTicket(ctx, ticket.TicketID, dto.UpdateTicketRequest{Status: &status}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.MaintenanceInProgress, updated.Status)
	suite.NotNil(updated.StartedAt)
}

func (suite *MaintenanceServiceTestSuite) TestCompleteTicket_BooksChargeForActualCost() {
	ctx := context.Background()
	ticket := &domain.MaintenanceTicket{
		TicketID: uuid.NewString(),
		Title:    "Boiler replacement",
		Status:   domain.MaintenanceInProgress,
	}
	actorID := uuid.NewString()
	cost := decimal.NewFromInt(450)

	suite.mockMaintenanceRepo.On("FindTicketByID", ctx, ticket.TicketID).Return(ticket, nil).Once()
	suite.mockMaintenanceRepo.On("UpdateTicket", ctx, mock.AnythingOfType("domain.MaintenanceTicket")).Return(nil).Once()
	suite.mockChargeSvc.On("RecordMaintenanceCharge", ctx, mock.AnythingOfType("domain.MaintenanceTicket"), cost, actorID).Return(&domain.AccountingCharge{}, nil).Once()

	completed, err := suite.service.CompleteTicket(ctx, ticket.TicketID, dto.CompleteTicketRequest{
		ActualCost: &cost,
	}, actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.MaintenanceCompleted, completed.Status)
	suite.Require().NotNil(completed.CompletedAt)
	suite.mockChargeSvc.AssertExpectations(suite.T())
}

func (suite *MaintenanceServiceTestSuite) TestCompleteTicket_NoCostNoCharge() {
	ctx := context.Background()
	ticket := &domain.MaintenanceTicket{
		TicketID: uuid.NewString(),
		Status:   domain.MaintenancePending,
	}

	suite.mockMaintenanceRepo.On("FindTicketByID", ctx, ticket.TicketID).Return(ticket, nil).Once()
	suite.mockMaintenanceRepo.On("UpdateTicket", ctx, mock.AnythingOfType("domain.MaintenanceTicket")).Return(nil).Once()

	completed, err := suite.service.CompleteTicket(ctx, ticket.TicketID, dto.CompleteTicketRequest{}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.MaintenanceCompleted, completed.Status)
	suite.mockChargeSvc.AssertNotCalled(suite.T(), "RecordMaintenanceCharge", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MaintenanceServiceTestSuite) TestCompleteTicket_AlreadyCompleted() {
	ctx := context.Background()
	ticket := &domain.MaintenanceTicket{
		TicketID: uuid.NewString(),
		Status:   domain.MaintenanceCompleted,
	}

	suite.mockMaintenanceRepo.On("FindTicketByID", ctx, ticket.TicketID).Return(ticket, nil).Once()

	completed, err := suite.service.CompleteTicket(ctx, ticket.TicketID, dto.CompleteTicketRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(completed)
	suite.ErrorIs(err, services.ErrTicketClosed)
}

func (suite *MaintenanceServiceTestSuite) TestCompleteTicket_ChargeFailureDoesNotFailCompletion() {
	ctx := context.Background()
	ticket := &domain.MaintenanceTicket{
		TicketID: uuid.NewString(),
		Title:    "Window repair",
		Status:   domain.MaintenanceInProgress,
	}
	cost := decimal.NewFromInt(90)

	suite.mockMaintenanceRepo.On("FindTicketByID", ctx, ticket.TicketID).Return(ticket, nil).Once()
	suite.mockMaintenanceRepo.On("UpdateTicket", ctx, mock.AnythingOfType("domain.MaintenanceTicket")).Return(nil).Once()
	suite.mockChargeSvc.On("RecordMaintenanceCharge", ctx, mock.AnythingOfType("domain.MaintenanceTicket"), cost, mock.AnythingOfType("string")).Return(nil, errors.New("charge repo down")).Once()

	completed, err := suite.service.CompleteTicket(ctx, ticket.TicketID, dto.CompleteTicketRequest{
		ActualCost: &cost,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.MaintenanceCompleted, completed.Status)
}

func TestMaintenanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceServiceTestSuite))
}
