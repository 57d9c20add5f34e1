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

type ReservationServiceTestSuite struct {
	suite.Suite
	mockReservationRepo *MockReservationRepository
	mockInvoiceRepo     *MockInvoiceRepository
	mockClientRepo      *MockClientRepository
	mockRoomRepo        *MockRoomRepository
	mockUserRepo        *MockUserRepository
	mockCounterRepo     *MockCounterRepository
	service             portssvc.ReservationSvcFacade
}

func (suite *ReservationServiceTestSuite) SetupTest() {
	suite.mockReservationRepo = new(MockReservationRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockRoomRepo = new(MockRoomRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCounterRepo = new(MockCounterRepository)
	suite.service = services.NewReservationService(
		suite.mockReservationRepo,
		suite.mockInvoiceRepo,
		suite.mockClientRepo,
		suite.mockRoomRepo,
		suite.mockUserRepo,
		suite.mockCounterRepo,
		decimal.NewFromInt(20),
	)
}

func (suite *ReservationServiceTestSuite) freeRoom(pricePerNight int64, capacity int) *domain.Room {
	return &domain.Room{
		RoomID:        uuid.NewString(),
		Number:        "204",
		Type:          domain.RoomDouble,
		PricePerNight: decimal.NewFromInt(pricePerNight),
		Capacity:      capacity,
		Status:        domain.RoomFree,
	}
}

func (suite *ReservationServiceTestSuite) testClient() *domain.Client {
	return &domain.Client{
		ClientID:  uuid.NewString(),
		FirstName: "Amina",
		LastName:  "Diallo",
		Email:     "amina@example.com",
	}
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_CheckOutBeforeCheckIn() {
	ctx := context.Background()
	checkIn := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	reservation, err := suite.service.CreateReservation(ctx, dto.CreateReservationRequest{
		ClientID:  uuid.NewString(),
		RoomID:    uuid.NewString(),
		CheckIn:   checkIn,
		CheckOut:  checkIn,
		Occupants: 2,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(reservation)
	suite.ErrorIs(err, services.ErrCheckOutBeforeCheckIn)
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_OverCapacity() {
	ctx := context.Background()
	client := suite.testClient()
	room := suite.freeRoom(60, 2)

	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockRoomRepo.On("FindRoomByID", ctx, room.RoomID).Return(room, nil).Once()

	reservation, err := suite.service.CreateReservation(ctx, dto.CreateReservationRequest{
		ClientID:  client.ClientID,
		RoomID:    room.RoomID,
		CheckIn:   time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC),
		Occupants: 4,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(reservation)
	suite.ErrorIs(err, services.ErrRoomOverCapacity)
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_RoomUnavailable() {
	ctx := context.Background()
	client := suite.testClient()
	room := suite.freeRoom(60, 2)
	room.Status = domain.RoomMaintenance

	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockRoomRepo.On("FindRoomByID", ctx, room.RoomID).Return(room, nil).Once()

	reservation, err := suite.service.CreateReservation(ctx, dto.CreateReservationRequest{
		ClientID:  client.ClientID,
		RoomID:    room.RoomID,
		CheckIn:   time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC),
		Occupants: 2,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(reservation)
	suite.ErrorIs(err, services.ErrRoomUnavailable)
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_PendingHasNoBilling() {
	ctx := context.Background()
	client := suite.testClient()
	room := suite.freeRoom(60, 2)

	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockRoomRepo.On("FindRoomByID", ctx, room.RoomID).Return(room, nil).Once()
	suite.mockReservationRepo.On("SaveReservation", ctx, mock.AnythingOfType("domain.Reservation")).Return(nil).Once()

	reservation, err := suite.service.CreateReservation(ctx, dto.CreateReservationRequest{
		ClientID:  client.ClientID,
		RoomID:    room.RoomID,
		CheckIn:   time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC),
		Occupants: 2,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.ReservationPending, reservation.Status)
	suite.Equal(2, reservation.Nights)
	suite.True(reservation.TotalPrice.Equal(decimal.NewFromInt(120)), "total price: %s", reservation.TotalPrice)

	suite.mockReservationRepo.AssertNotCalled(suite.T(), "SaveReservationConfirmed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockCounterRepo.AssertNotCalled(suite.T(), "NextSequence", mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_ConfirmedIssuesInvoice() {
	ctx := context.Background()
	client := suite.testClient()
	room := suite.freeRoom(60, 2)
	adminID := uuid.NewString()
	confirmed := domain.ReservationConfirmed

	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockRoomRepo.On("FindRoomByID", ctx, room.RoomID).Return(room, nil).Once()
	suite.mockCounterRepo.On("NextSequence", ctx, mock.AnythingOfType("string")).Return(int64(7), nil).Once()
	suite.mockUserRepo.On("ListAdminUserIDs", ctx).Return([]string{adminID}, nil).Once()

	var issued domain.Invoice
	var notified domain.Notification
	suite.mockReservationRepo.On("SaveReservationConfirmed", ctx, mock.AnythingOfType("domain.Reservation"), true, mock.AnythingOfType("domain.Invoice"), mock.AnythingOfType("domain.Notification")).
		Run(func(args mock.Arguments) {
			issued = args.Get(3).(domain.Invoice)
			notified = args.Get(4).(domain.Notification)
		}).Return(nil).Once()

	reservation, err := suite.service.CreateReservation(ctx, dto.CreateReservationRequest{
		ClientID:  client.ClientID,
		RoomID:    room.RoomID,
		CheckIn:   time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC),
		Occupants: 2,
		Status:    &confirmed,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.ReservationConfirmed, reservation.Status)

	// The 120 total is tax-inclusive at 20% VAT.
	suite.True(issued.TotalAmount.Equal(decimal.NewFromInt(120)), "total: %s", issued.TotalAmount)
	suite.True(issued.PreTaxAmount.Equal(decimal.NewFromInt(100)), "pre-tax: %s", issued.PreTaxAmount)
	suite.True(issued.TaxAmount.Equal(decimal.NewFromInt(20)), "tax: %s", issued.TaxAmount)
	suite.Equal(domain.InvoicePaid, issued.Status)
	suite.Equal(domain.PaymentCard, issued.PaymentMethod)
	suite.Equal(reservation.ReservationID, issued.ReservationID)
	suite.Regexp(`^F\d{8}0007$`, issued.Number)
	suite.Equal(issued.IssuedAt.AddDate(0, 0, 30), issued.DueDate)

	suite.Equal(domain.NotifyNewReservation, notified.Type)
	suite.Equal([]string{adminID}, notified.Recipients)
	suite.Contains(notified.Message, issued.Number)
	suite.Contains(notified.Message, room.Number)
	suite.NotContains(notified.Message, room.RoomID)

	suite.mockReservationRepo.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestUpdateReservationStatus_ConfirmIsIdempotent() {
	ctx := context.Background()
	reservation := &domain.Reservation{
		ReservationID: uuid.NewString(),
		ClientID:      uuid.NewString(),
		Status:        domain.ReservationPending,
		TotalPrice:    decimal.NewFromInt(120),
	}
	existing := &domain.Invoice{InvoiceID: uuid.NewString(), ReservationID: reservation.ReservationID}

	suite.mockReservationRepo.On("FindReservationByID", ctx, reservation.ReservationID).Return(reservation, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceByReservationID", ctx, reservation.ReservationID).Return(existing, nil).Once()
	suite.mockReservationRepo.On("UpdateReservation", ctx, mock.AnythingOfType("domain.Reservation")).Return(nil).Once()

	updated, err := suite.service.UpdateReservationStatus(ctx, reservation.ReservationID, dto.UpdateReservationStatusRequest{
		Status: domain.ReservationConfirmed,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.ReservationConfirmed, updated.Status)
	suite.mockReservationRepo.AssertNotCalled(suite.T(), "SaveReservationConfirmed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockCounterRepo.AssertNotCalled(suite.T(), "NextSequence", mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestUpdateReservationStatus_ConcurrentConfirmConflicts() {
	ctx := context.Background()
	client := suite.testClient()
	room := suite.freeRoom(60, 2)
	reservation := &domain.Reservation{
		ReservationID: uuid.NewString(),
		ClientID:      client.ClientID,
		RoomID:        room.RoomID,
		Status:        domain.ReservationPending,
		TotalPrice:    decimal.NewFromInt(120),
	}

	suite.mockReservationRepo.On("FindReservationByID", ctx, reservation.ReservationID).Return(reservation, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceByReservationID", ctx, reservation.ReservationID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockRoomRepo.On("FindRoomByID", ctx, room.RoomID).Return(room, nil).Once()
	suite.mockCounterRepo.On("NextSequence", ctx, mock.AnythingOfType("string")).Return(int64(8), nil).Once()
	suite.mockUserRepo.On("ListAdminUserIDs", ctx).Return([]string{uuid.NewString()}, nil).Once()
	suite.mockReservationRepo.On("SaveReservationConfirmed", ctx, mock.AnythingOfType("domain.Reservation"), false, mock.AnythingOfType("domain.Invoice"), mock.AnythingOfType("domain.Notification")).Return(apperrors.ErrDuplicate).Once()

	updated, err := suite.service.UpdateReservationStatus(ctx, reservation.ReservationID, dto.UpdateReservationStatusRequest{
		Status: domain.ReservationConfirmed,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *ReservationServiceTestSuite) TestUpdateReservationStatus_InvalidTransition() {
	ctx := context.Background()
	reservation := &domain.Reservation{
		ReservationID: uuid.NewString(),
		Status:        domain.ReservationCompleted,
	}

	suite.mockReservationRepo.On("FindReservationByID", ctx, reservation.ReservationID).Return(reservation, nil).Once()

	updated, err := suite.service.UpdateReservationStatus(ctx, reservation.ReservationID, dto.UpdateReservationStatusRequest{
		Status: domain.ReservationCancelled,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, services.ErrInvalidTransition)
}

func (suite *ReservationServiceTestSuite) TestUpdateReservationStatus_CancelDelegatesToRepository() {
	ctx := context.Background()
	reservation := &domain.Reservation{
		ReservationID: uuid.NewString(),
		Status:        domain.ReservationConfirmed,
	}

	suite.mockReservationRepo.On("FindReservationByID", ctx, reservation.ReservationID).Return(reservation, nil).Once()
	suite.mockReservationRepo.On("CancelReservation", ctx, mock.AnythingOfType("domain.Reservation")).Return(nil).Once()

	updated, err := suite.service.UpdateReservationStatus(ctx, reservation.ReservationID, dto.UpdateReservationStatusRequest{
		Status: domain.ReservationCancelled,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.ReservationCancelled, updated.Status)
	suite.mockReservationRepo.AssertExpectations(suite.T())
}

func TestReservationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationServiceTestSuite))
}
