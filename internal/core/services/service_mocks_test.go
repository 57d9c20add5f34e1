package services_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
)

// MockChargeRecorder is a mock type for the ChargeRecorderSvc interface
type MockChargeRecorder struct {
	mock.Mock
}

func (m *MockChargeRecorder) RecordMaintenanceCharge(ctx context.Context, ticket domain.MaintenanceTicket, actualCost decimal.Decimal, requestingUserID string) (*domain.AccountingCharge, error) {
	args := m.Called(ctx, ticket, actualCost, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingCharge), args.Error(1)
}

func (m *MockChargeRecorder) RecordInventoryCharge(ctx context.Context, item domain.InventoryItem, requestingUserID string) (*domain.AccountingCharge, error) {
	args := m.Called(ctx, item, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingCharge), args.Error(1)
}

// MockNotificationDispatcher is a mock type for the NotificationDispatcherSvc interface
type MockNotificationDispatcher struct {
	mock.Mock
}

func (m *MockNotificationDispatcher) NotifyAdmins(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationDispatcher) NotifyStockAlert(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
