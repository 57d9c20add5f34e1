package services

import (
	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Dispatch and charge recording come first since several services
	// depend on them.
	container.Notification = NewNotificationService(repos.NotificationRepo, repos.UserRepo)
	container.Charge = NewChargeService(repos.ChargeRepo, cfg.DefaultTaxRate)

	container.Payroll = NewPayrollService(repos.PayslipRepo, repos.UserRepo, repos.CounterRepo)
	container.User = NewUserService(repos.UserRepo, container.Payroll)

	tokenSvc := NewTokenService(cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
	container.Auth = NewAuthService(repos.UserRepo, container.User, tokenSvc)

	container.Client = NewClientService(repos.ClientRepo)
	container.Room = NewRoomService(repos.RoomRepo)
	container.Reservation = NewReservationService(
		repos.ReservationRepo,
		repos.InvoiceRepo,
		repos.ClientRepo,
		repos.RoomRepo,
		repos.UserRepo,
		repos.CounterRepo,
		cfg.DefaultTaxRate,
	)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo)
	container.Maintenance = NewMaintenanceService(repos.MaintenanceRepo, container.Charge, container.Notification)
	container.Inventory = NewInventoryService(repos.InventoryRepo, container.Charge, container.Notification)
	container.Contact = NewContactService(repos.ContactRepo, container.Notification)

	return container
}
