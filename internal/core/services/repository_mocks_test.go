package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
)

// Shared repository mocks for the service test suites in this package.

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, role *domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) ListAdminUserIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeactivateUser(ctx context.Context, userID string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, userID, updatedBy, now)
	return args.Error(0)
}

func (m *MockUserRepository) FindEmployeeProfile(ctx context.Context, userID string) (*domain.EmployeeProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeProfile), args.Error(1)
}

func (m *MockUserRepository) ListActiveEmployeeProfiles(ctx context.Context) ([]domain.EmployeeProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeProfile), args.Error(1)
}

func (m *MockUserRepository) SaveEmployeeProfile(ctx context.Context, profile domain.EmployeeProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateEmployeeProfile(ctx context.Context, profile domain.EmployeeProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockCounterRepository is a mock type for the DocumentCounterRepository interface
type MockCounterRepository struct {
	mock.Mock
}

func (m *MockCounterRepository) NextSequence(ctx context.Context, scope string) (int64, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(int64), args.Error(1)
}

// MockPayslipRepository is a mock type for the PayslipRepositoryFacade interface
type MockPayslipRepository struct {
	mock.Mock
}

func (m *MockPayslipRepository) FindPayslipByID(ctx context.Context, payslipID string) (*domain.PayrollSlip, error) {
	args := m.Called(ctx, payslipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollSlip), args.Error(1)
}

func (m *MockPayslipRepository) PayslipExists(ctx context.Context, employeeID string, month time.Time) (bool, error) {
	args := m.Called(ctx, employeeID, month)
	return args.Bool(0), args.Error(1)
}

func (m *MockPayslipRepository) ListPayslipsByMonth(ctx context.Context, month time.Time) ([]domain.PayrollSlip, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollSlip), args.Error(1)
}

func (m *MockPayslipRepository) ListPayslipsByEmployee(ctx context.Context, employeeID string) ([]domain.PayrollSlip, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollSlip), args.Error(1)
}

func (m *MockPayslipRepository) SavePayslip(ctx context.Context, slip domain.PayrollSlip) error {
	args := m.Called(ctx, slip)
	return args.Error(0)
}

func (m *MockPayslipRepository) MarkPayslipPaid(ctx context.Context, payslipID string, method domain.PaymentMethod, reference string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, payslipID, method, reference, updatedBy, now)
	return args.Error(0)
}

// MockReservationRepository is a mock type for the ReservationRepositoryFacade interface
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListReservations(ctx context.Context, limit int, nextToken *string) ([]domain.Reservation, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Reservation), token, args.Error(2)
}

func (m *MockReservationRepository) ListReservationsByClient(ctx context.Context, clientID string) ([]domain.Reservation, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) UpdateReservation(ctx context.Context, reservation domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) SaveReservationConfirmed(ctx context.Context, reservation domain.Reservation, created bool, invoice domain.Invoice, notification domain.Notification) error {
	args := m.Called(ctx, reservation, created, invoice, notification)
	return args.Error(0)
}

func (m *MockReservationRepository) CancelReservation(ctx context.Context, reservation domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByReservationID(ctx context.Context, reservationID string) (*domain.Invoice, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Invoice), token, args.Error(2)
}

func (m *MockInvoiceRepository) ListInvoicesByClient(ctx context.Context, clientID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string, now time.Time) error {
	args := m.Called(ctx, invoiceID, status, updatedBy, now)
	return args.Error(0)
}

func (m *MockInvoiceRepository) MarkInvoicePaid(ctx context.Context, invoiceID string, method domain.PaymentMethod, reference string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, invoiceID, method, reference, updatedBy, now)
	return args.Error(0)
}

// MockClientRepository is a mock type for the ClientRepositoryFacade interface
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, limit int, nextToken *string) ([]domain.Client, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Client), token, args.Error(2)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

// MockRoomRepository is a mock type for the RoomRepositoryFacade interface
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) FindRoomByNumber(ctx context.Context, number string) (*domain.Room, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListRooms(ctx context.Context, status *domain.RoomStatus) ([]domain.Room, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) UpdateRoom(ctx context.Context, room domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) UpdateRoomStatus(ctx context.Context, roomID string, status domain.RoomStatus, updatedBy string, now time.Time) error {
	args := m.Called(ctx, roomID, status, updatedBy, now)
	return args.Error(0)
}

// MockChargeRepository is a mock type for the ChargeRepositoryFacade interface
type MockChargeRepository struct {
	mock.Mock
}

func (m *MockChargeRepository) FindChargeByID(ctx context.Context, chargeID string) (*domain.AccountingCharge, error) {
	args := m.Called(ctx, chargeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingCharge), args.Error(1)
}

func (m *MockChargeRepository) ListCharges(ctx context.Context, chargeType *domain.ChargeType, status *domain.ChargeStatus, limit int, nextToken *string) ([]domain.AccountingCharge, *string, error) {
	args := m.Called(ctx, chargeType, status, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.AccountingCharge), token, args.Error(2)
}

func (m *MockChargeRepository) SaveCharge(ctx context.Context, charge domain.AccountingCharge) error {
	args := m.Called(ctx, charge)
	return args.Error(0)
}

func (m *MockChargeRepository) UpdateCharge(ctx context.Context, charge domain.AccountingCharge) error {
	args := m.Called(ctx, charge)
	return args.Error(0)
}

func (m *MockChargeRepository) MarkChargePaid(ctx context.Context, chargeID string, method domain.PaymentMethod, updatedBy string, now time.Time) error {
	args := m.Called(ctx, chargeID, method, updatedBy, now)
	return args.Error(0)
}

// MockNotificationRepository is a mock type for the NotificationRepositoryFacade interface
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListNotificationsForUser(ctx context.Context, userID string, limit int, nextToken *string, unreadOnly bool) ([]domain.Notification, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken, unreadOnly)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Notification), token, args.Error(2)
}

func (m *MockNotificationRepository) HasRecentStockAlert(ctx context.Context, itemID string, since time.Time) (bool, error) {
	args := m.Called(ctx, itemID, since)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string, now time.Time) error {
	args := m.Called(ctx, notificationID, now)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkNotificationProcessed(ctx context.Context, notificationID string, now time.Time) error {
	args := m.Called(ctx, notificationID, now)
	return args.Error(0)
}

// MockInventoryRepository is a mock type for the InventoryRepositoryFacade interface
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) FindItemByReference(ctx context.Context, reference string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) ListItems(ctx context.Context, limit int, nextToken *string) ([]domain.InventoryItem, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.InventoryItem), token, args.Error(2)
}

func (m *MockInventoryRepository) ListCategories(ctx context.Context) ([]domain.InventoryCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryCategory), args.Error(1)
}

func (m *MockInventoryRepository) ListMovementsByItem(ctx context.Context, itemID string) ([]domain.InventoryMovement, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryMovement), args.Error(1)
}

func (m *MockInventoryRepository) SaveCategory(ctx context.Context, category domain.InventoryCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) ApplyMovement(ctx context.Context, movement domain.InventoryMovement) (*domain.InventoryItem, error) {
	args := m.Called(ctx, movement)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

// MockMaintenanceRepository is a mock type for the MaintenanceRepositoryFacade interface
type MockMaintenanceRepository struct {
	mock.Mock
}

func (m *MockMaintenanceRepository) FindTicketByID(ctx context.Context, ticketID string) (*domain.MaintenanceTicket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceTicket), args.Error(1)
}

func (m *MockMaintenanceRepository) ListTickets(ctx context.Context, status *domain.MaintenanceStatus, limit int, nextToken *string) ([]domain.MaintenanceTicket, *string, error) {
	args := m.Called(ctx, status, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.MaintenanceTicket), token, args.Error(2)
}

func (m *MockMaintenanceRepository) SaveTicket(ctx context.Context, ticket domain.MaintenanceTicket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockMaintenanceRepository) UpdateTicket(ctx context.Context, ticket domain.MaintenanceTicket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}
