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
)

type NotificationServiceTestSuite struct {
	suite.Suite
	mockNotificationRepo *MockNotificationRepository
	mockUserRepo         *MockUserRepository
	service              portssvc.NotificationSvcFacade
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockNotificationRepo = new(MockNotificationRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewNotificationService(suite.mockNotificationRepo, suite.mockUserRepo)
}

func (suite *NotificationServiceTestSuite) TestNotifyAdmins_FillsDefaultsAndRecipients() {
	ctx := context.Background()
	adminIDs := []string{uuid.NewString(), uuid.NewString()}

	suite.mockUserRepo.On("ListAdminUserIDs", ctx).Return(adminIDs, nil).Once()

	var saved domain.Notification
	suite.mockNotificationRepo.On("SaveNotification", ctx, mock.AnythingOfType("domain.Notification")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Notification)
		}).Return(nil).Once()

	err := suite.service.NotifyAdmins(ctx, domain.Notification{
		Type:    domain.NotifyUrgentMaintenance,
		Title:   "Boiler down",
		Message: "Room 204 boiler is leaking",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(saved.NotificationID)
	suite.False(saved.CreatedAt.IsZero())
	suite.Equal(domain.PriorityMedium, saved.Priority)
	suite.Equal(adminIDs, saved.Recipients)
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestNotifyAdmins_NoAdminsIsNotAnError() {
	ctx := context.Background()

	suite.mockUserRepo.On("ListAdminUserIDs", ctx).Return([]string{}, nil).Once()

	err := suite.service.NotifyAdmins(ctx, domain.Notification{
		Type:  domain.NotifySystem,
		Title: "Nightly job finished",
	})

	suite.Require().NoError(err)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "SaveNotification", mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestNotifyStockAlert_SkipsWhenRecentAlertExists() {
	ctx := context.Background()
	item := domain.InventoryItem{
		ItemID:            uuid.NewString(),
		Name:              "Bath towels",
		AvailableQuantity: 3,
		AlertThreshold:    5,
	}

	suite.mockNotificationRepo.On("HasRecentStockAlert", ctx, item.ItemID, mock.AnythingOfType("time.Time")).Return(true, nil).Once()

	err := suite.service.NotifyStockAlert(ctx, item)

	suite.Require().NoError(err)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "SaveNotification", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "ListAdminUserIDs", mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestNotifyStockAlert_DepletedIsCritical() {
	ctx := context.Background()
	item := domain.InventoryItem{
		ItemID:            uuid.NewString(),
		Name:              "Bath towels",
		Reference:         "LIN-0042",
		AvailableQuantity: 0,
		AlertThreshold:    5,
	}

	suite.mockNotificationRepo.On("HasRecentStockAlert", ctx, item.ItemID, mock.AnythingOfType("time.Time")).Return(false, nil).Once()
	suite.mockUserRepo.On("ListAdminUserIDs", ctx).Return([]string{uuid.NewString()}, nil).Once()

	var saved domain.Notification
	suite.mockNotificationRepo.On("SaveNotification", ctx, mock.AnythingOfType("domain.Notification")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Notification)
		}).Return(nil).Once()

	err := suite.service.NotifyStockAlert(ctx, item)

	suite.Require().NoError(err)
	suite.Equal(domain.NotifyStockAlert, saved.Type)
	suite.Equal(domain.PriorityCritical, saved.Priority)
	suite.Require().NotNil(saved.InventoryItemID)
	suite.Equal(item.ItemID, *saved.InventoryItemID)
}

func (suite *NotificationServiceTestSuite) TestNotifyStockAlert_LowStockIsHighPriority() {
	ctx := context.Background()
	item := domain.InventoryItem{
		ItemID:            uuid.NewString(),
		Name:              "Shampoo bottles",
		Reference:         "TOI-0007",
		AvailableQuantity: 4,
		AlertThreshold:    5,
	}

	suite.mockNotificationRepo.On("HasRecentStockAlert", ctx, item.ItemID, mock.AnythingOfType("time.Time")).Return(false, nil).Once()
	suite.mockUserRepo.On("ListAdminUserIDs", ctx).Return([]string{uuid.NewString()}, nil).Once()

	var saved domain.Notification
	suite.mockNotificationRepo.On("SaveNotification", ctx, mock.AnythingOfType("domain.Notification")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Notification)
		}).Return(nil).Once()

	err := suite.service.NotifyStockAlert(ctx, item)

	suite.Require().NoError(err)
	suite.Equal(domain.PriorityHigh, saved.Priority)
}

func (suite *NotificationServiceTestSuite) TestMarkRead_NonRecipientForbidden() {
	ctx := context.Background()
	notification := &domain.Notification{
		NotificationID: uuid.NewString(),
		Recipients:     []string{uuid.NewString()},
	}

	suite.mockNotificationRepo.On("FindNotificationByID", ctx, notification.NotificationID).Return(notification, nil).Once()

	err := suite.service.MarkRead(ctx, notification.NotificationID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "MarkNotificationRead", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestMarkRead_RecipientSucceeds() {
	ctx := context.Background()
	userID := uuid.NewString()
	notification := &domain.Notification{
		NotificationID: uuid.NewString(),
		Recipients:     []string{userID},
	}

	suite.mockNotificationRepo.On("FindNotificationByID", ctx, notification.NotificationID).Return(notification, nil).Once()
	suite.mockNotificationRepo.On("MarkNotificationRead", ctx, notification.NotificationID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.MarkRead(ctx, notification.NotificationID, userID)

	suite.Require().NoError(err)
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
