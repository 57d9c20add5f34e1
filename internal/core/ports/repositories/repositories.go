package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	ClientRepo       ClientRepositoryFacade
	RoomRepo         RoomRepositoryFacade
	ReservationRepo  ReservationRepositoryFacade
	InvoiceRepo      InvoiceRepositoryFacade
	PayslipRepo      PayslipRepositoryFacade
	ChargeRepo       ChargeRepositoryFacade
	MaintenanceRepo  MaintenanceRepositoryFacade
	InventoryRepo    InventoryRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
	ContactRepo      ContactRepositoryFacade
	CounterRepo      DocumentCounterRepository
}
