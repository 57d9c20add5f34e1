package pgsql

import (
	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	clientRepo := newPgxClientRepository(dbPool)
	roomRepo := newPgxRoomRepository(dbPool)
	reservationRepo := newPgxReservationRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	payslipRepo := newPgxPayslipRepository(dbPool)
	chargeRepo := newPgxChargeRepository(dbPool)
	maintenanceRepo := newPgxMaintenanceRepository(dbPool)
	inventoryRepo := newPgxInventoryRepository(dbPool)
	notificationRepo := newPgxNotificationRepository(dbPool)
	contactRepo := newPgxContactRepository(dbPool)
	counterRepo := newPgxDocumentCounterRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:         userRepo,
		ClientRepo:       clientRepo,
		RoomRepo:         roomRepo,
		ReservationRepo:  reservationRepo,
		InvoiceRepo:      invoiceRepo,
		PayslipRepo:      payslipRepo,
		ChargeRepo:       chargeRepo,
		MaintenanceRepo:  maintenanceRepo,
		InventoryRepo:    inventoryRepo,
		NotificationRepo: notificationRepo,
		ContactRepo:      contactRepo,
		CounterRepo:      counterRepo,
	}
}
