package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/core/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	mockInventoryRepo *MockInventoryRepository
	mockChargeSvc     *MockChargeRecorder
	mockNotifySvc     *MockNotificationDispatcher
	service           portssvc.InventorySvcFacade
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.mockChargeSvc = new(MockChargeRecorder)
	suite.mockNotifySvc = new(MockNotificationDispatcher)
	suite.service = services.NewInventoryService(suite.mockInventoryRepo, suite.mockChargeSvc, suite.mockNotifySvc)
}

func (suite *InventoryServiceTestSuite) stockedItem(available, total, threshold int) *domain.InventoryItem {
	return &domain.InventoryItem{
		ItemID:            uuid.NewString(),
		Name:              "Bath towels",
		Reference:         "LIN-0042",
		TotalQuantity:     total,
		AvailableQuantity: available,
		AlertThreshold:    threshold,
		Condition:         domain.ConditionGood,
	}
}

func (suite *InventoryServiceTestSuite) TestCreateItem_BooksIntakeCharge() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.mockInventoryRepo.On("SaveItem", ctx, mock.AnythingOfType("domain.InventoryItem")).Return(nil).Once()
	suite.mockChargeSvc.On("RecordInventoryCharge", ctx, mock.AnythingOfType("domain.InventoryItem"), actorID).Return(&domain.AccountingCharge{}, nil).Once()

	item, err := suite.service.CreateItem(ctx, dto.CreateItemRequest{
		Name:           "Bath towels",
		Reference:      "LIN-0042",
		CategoryID:     uuid.NewString(),
		TotalQuantity:  80,
		AlertThreshold: 10,
	}, actorID)

	suite.Require().NoError(err)
	suite.Equal(80, item.TotalQuantity)
	suite.Equal(80, item.AvailableQuantity)
	suite.Equal(domain.ConditionNew, item.Condition)
	suite.mockChargeSvc.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestCreateItem_ChargeFailureDoesNotFailIntake() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.mockInventoryRepo.On("SaveItem", ctx, mock.AnythingOfType("domain.InventoryItem")).Return(nil).Once()
	suite.mockChargeSvc.On("RecordInventoryCharge", ctx, mock.AnythingOfType("domain.InventoryItem"), actorID).Return(nil, errors.New("charge repo down")).Once()

	item, err := suite.service.CreateItem(ctx, dto.CreateItemRequest{
		Name:          "Pillows",
		Reference:     "LIN-0043",
		CategoryID:    uuid.NewString(),
		TotalQuantity: 40,
	}, actorID)

	suite.Require().NoError(err)
	suite.NotNil(item)
}

func (suite *InventoryServiceTestSuite) TestRecordMovement_NonPositiveQuantity() {
	ctx := context.Background()

	movement, err := suite.service.RecordMovement(ctx, uuid.NewString(), dto.RecordMovementRequest{
		Type:     domain.MovementOut,
		Quantity: 0,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, services.ErrMovementQuantity)
	suite.mockInventoryRepo.AssertNotCalled(suite.T(), "ApplyMovement", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestRecordMovement_InsufficientStock() {
	ctx := context.Background()
	item := suite.stockedItem(3, 80, 10)

	suite.mockInventoryRepo.On("FindItemByID", ctx, item.ItemID).Return(item, nil).Once()

	movement, err := suite.service.RecordMovement(ctx, item.ItemID, dto.RecordMovementRequest{
		Type:     domain.MovementOut,
		Quantity: 5,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, services.ErrInsufficientStock)
	suite.mockInventoryRepo.AssertNotCalled(suite.T(), "ApplyMovement", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestRecordMovement_ThresholdCrossingRaisesAlert() {
	ctx := context.Background()
	item := suite.stockedItem(12, 80, 10)
	updated := *item
	updated.AvailableQuantity = 8

	suite.mockInventoryRepo.On("FindItemByID", ctx, item.ItemID).Return(item, nil).Once()
	suite.mockInventoryRepo.On("ApplyMovement", ctx, mock.AnythingOfType("domain.InventoryMovement")).Return(&updated, nil).Once()
	suite.mockNotifySvc.On("NotifyStockAlert", ctx, updated).Return(nil).Once()

	movement, err := suite.service.RecordMovement(ctx, item.ItemID, dto.RecordMovementRequest{
		Type:     domain.MovementOut,
		Quantity: 4,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.MovementOut, movement.Type)
	suite.Equal(4, movement.Quantity)
	suite.mockNotifySvc.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestRecordMovement_AlertFailureDoesNotFailMovement() {
	ctx := context.Background()
	item := suite.stockedItem(12, 80, 10)
	updated := *item
	updated.AvailableQuantity = 0

	suite.mockInventoryRepo.On("FindItemByID", ctx, item.ItemID).Return(item, nil).Once()
	suite.mockInventoryRepo.On("ApplyMovement", ctx, mock.AnythingOfType("domain.InventoryMovement")).Return(&updated, nil).Once()
	suite.mockNotifySvc.On("NotifyStockAlert", ctx, updated).Return(errors.New("notifier down")).Once()

	movement, err := suite.service.RecordMovement(ctx, item.ItemID, dto.RecordMovementRequest{
		Type:     domain.MovementOut,
		Quantity: 12,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotNil(movement)
}

func (suite *InventoryServiceTestSuite) TestRecordMovement_HealthyStockStaysQuiet() {
	ctx := context.Background()
	item := suite.stockedItem(50, 80, 10)
	updated := *item
	updated.AvailableQuantity = 45

	suite.mockInventoryRepo.On("FindItemByID", ctx, item.ItemID).Return(item, nil).Once()
	suite.mockInventoryRepo.On("ApplyMovement", ctx, mock.AnythingOfType("domain.InventoryMovement")).Return(&updated, nil).Once()

	movement, err := suite.service.RecordMovement(ctx, item.ItemID, dto.RecordMovementRequest{
		Type:     domain.MovementAssignment,
		Quantity: 5,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotNil(movement)
	suite.mockNotifySvc.AssertNotCalled(suite.T(), "NotifyStockAlert", mock.Anything, mock.Anything)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
