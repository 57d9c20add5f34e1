package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotelio/hotel_management_app/internal/apperrors"
	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
	"github.com/hotelio/hotel_management_app/internal/middleware"
	"github.com/hotelio/hotel_management_app/internal/utils/money"
	"github.com/hotelio/hotel_management_app/internal/utils/numbering"
)

var (
	ErrCheckOutBeforeCheckIn = errors.New("check-out date must be after check-in date")
	ErrRoomOverCapacity      = errors.New("occupant count exceeds room capacity")
	ErrRoomUnavailable       = errors.New("room is not available for booking")
	ErrInvalidTransition     = errors.New("reservation status transition not allowed")
)

// invoiceDueDays is the payment term stamped on issued invoices.
const invoiceDueDays = 30

// allowedTransitions maps each reservation status to its legal successors.
var allowedTransitions = map[domain.ReservationStatus][]domain.ReservationStatus{
	domain.ReservationPending:    {domain.ReservationConfirmed, domain.ReservationCancelled},
	domain.ReservationConfirmed:  {domain.ReservationInProgress, domain.ReservationCancelled},
	domain.ReservationInProgress: {domain.ReservationCompleted, domain.ReservationCancelled},
}

// reservationService books rooms and drives the billing engine: a
// reservation entering CONFIRMED gets its invoice issued and the admins
// notified inside the same unit of work.
type reservationService struct {
	reservationRepo portsrepo.ReservationRepositoryFacade
	invoiceRepo     portsrepo.InvoiceReader
	clientRepo      portsrepo.ClientReader
	roomRepo        portsrepo.RoomReader
	userRepo        portsrepo.UserReader
	counterRepo     portsrepo.DocumentCounterRepository
	defaultTaxRate  decimal.Decimal
}

// NewReservationService creates a new ReservationService.
func NewReservationService(
	reservationRepo portsrepo.ReservationRepositoryFacade,
	invoiceRepo portsrepo.InvoiceReader,
	clientRepo portsrepo.ClientReader,
	roomRepo portsrepo.RoomReader,
	userRepo portsrepo.UserReader,
	counterRepo portsrepo.DocumentCounterRepository,
	defaultTaxRate decimal.Decimal,
) portssvc.ReservationSvcFacade {
	return &reservationService{
		reservationRepo: reservationRepo,
		invoiceRepo:     invoiceRepo,
		clientRepo:      clientRepo,
		roomRepo:        roomRepo,
		userRepo:        userRepo,
		counterRepo:     counterRepo,
		defaultTaxRate:  defaultTaxRate,
	}
}

// Ensure reservationService implements the facade interface
var _ portssvc.ReservationSvcFacade = (*reservationService)(nil)

// GetReservationByID retrieves a specific reservation by its ID.
func (s *reservationService) GetReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	return s.reservationRepo.FindReservationByID(ctx, reservationID)
}

// ListReservations retrieves a paginated list of reservations.
func (s *reservationService) ListReservations(ctx context.Context, params dto.ListReservationsParams) (*dto.ListReservationsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	reservations, nextToken, err := s.reservationRepo.ListReservations(ctx, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	resp := dto.ToListReservationsResponse(reservations, nextToken)
	return &resp, nil
}

// ListReservationsByClient retrieves the reservation history of a client.
func (s *reservationService) ListReservationsByClient(ctx context.Context, clientID string) ([]domain.Reservation, error) {
	return s.reservationRepo.ListReservationsByClient(ctx, clientID)
}

// CreateReservation books a room for a client. Nights and total price
// are derived once from the room's current nightly rate and stored.
// A requested CONFIRMED status issues the invoice immediately.
func (s *reservationService) CreateReservation(ctx context.Context, req dto.CreateReservationRequest, creatorUserID string) (*domain.Reservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	checkIn := req.CheckIn.Truncate(24 * time.Hour)
	checkOut := req.CheckOut.Truncate(24 * time.Hour)
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: %s to %s", ErrCheckOutBeforeCheckIn, checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"))
	}

	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}

	room, err := s.roomRepo.FindRoomByID(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	if req.Occupants > room.Capacity {
		return nil, fmt.Errorf("%w: %d occupants for capacity %d", ErrRoomOverCapacity, req.Occupants, room.Capacity)
	}
	if !room.IsAvailable() {
		return nil, fmt.Errorf("%w: room %s is %s", ErrRoomUnavailable, room.Number, room.Status)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	totalPrice := money.Round2(room.PricePerNight.Mul(decimal.NewFromInt(int64(nights))))

	status := domain.ReservationPending
	if req.Status != nil {
		status = *req.Status
	}

	now := time.Now().UTC()
	reservation := domain.Reservation{
		ReservationID: uuid.NewString(),
		ClientID:      req.ClientID,
		RoomID:        req.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Nights:        nights,
		TotalPrice:    totalPrice,
		Status:        status,
		Occupants:     req.Occupants,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if status != domain.ReservationConfirmed {
		if err := s.reservationRepo.SaveReservation(ctx, reservation); err != nil {
			return nil, fmt.Errorf("failed to save reservation: %w", err)
		}
		return &reservation, nil
	}

	if err := s.confirmWithBilling(ctx, reservation, true, client, room, creatorUserID, now); err != nil {
		return nil, err
	}
	logger.Info("Reservation created confirmed with invoice",
		slog.String("reservation_id", reservation.ReservationID),
		slog.String("client_id", reservation.ClientID),
	)
	return &reservation, nil
}

// UpdateReservationStatus transitions the reservation lifecycle.
// PENDING to CONFIRMED issues the invoice unless one already exists;
// CANCELLED cancels the linked invoice when it is still unpaid.
func (s *reservationService) UpdateReservationStatus(ctx context.Context, reservationID string, req dto.UpdateReservationStatusRequest, requestingUserID string) (*domain.Reservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reservation, err := s.reservationRepo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status == req.Status {
		return reservation, nil
	}
	if !transitionAllowed(reservation.Status, req.Status) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, reservation.Status, req.Status)
	}

	now := time.Now().UTC()
	reservation.Status = req.Status
	reservation.LastUpdatedAt = now
	reservation.LastUpdatedBy = requestingUserID

	switch req.Status {
	case domain.ReservationConfirmed:
		// Idempotency guard: a reservation confirmed twice keeps its
		// single invoice.
		_, err := s.invoiceRepo.FindInvoiceByReservationID(ctx, reservationID)
		if err == nil {
			logger.Info("Invoice already issued for reservation, skipping issuance", slog.String("reservation_id", reservationID))
			if err := s.reservationRepo.UpdateReservation(ctx, *reservation); err != nil {
				return nil, fmt.Errorf("failed to update reservation: %w", err)
			}
			return reservation, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check existing invoice: %w", err)
		}

		client, err := s.clientRepo.FindClientByID(ctx, reservation.ClientID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch client: %w", err)
		}
		room, err := s.roomRepo.FindRoomByID(ctx, reservation.RoomID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch room: %w", err)
		}
		if err := s.confirmWithBilling(ctx, *reservation, false, client, room, requestingUserID, now); err != nil {
			return nil, err
		}
		return reservation, nil

	case domain.ReservationCancelled:
		if err := s.reservationRepo.CancelReservation(ctx, *reservation); err != nil {
			return nil, fmt.Errorf("failed to cancel reservation: %w", err)
		}
		logger.Info("Reservation cancelled", slog.String("reservation_id", reservationID))
		return reservation, nil

	default:
		if err := s.reservationRepo.UpdateReservation(ctx, *reservation); err != nil {
			return nil, fmt.Errorf("failed to update reservation: %w", err)
		}
		return reservation, nil
	}
}

// confirmWithBilling builds the invoice and the admin notification for a
// confirmed reservation and persists all three records in one
// transaction. A duplicate invoice surfacing from the unique constraint
// means a concurrent confirmation won the race; callers treat that as a
// conflict, not data corruption.
func (s *reservationService) confirmWithBilling(ctx context.Context, reservation domain.Reservation, created bool, client *domain.Client, room *domain.Room, actorUserID string, now time.Time) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.buildInvoice(ctx, reservation, actorUserID, now)
	if err != nil {
		return err
	}

	notification, err := s.buildConfirmationNotification(ctx, reservation, client, room, invoice, now)
	if err != nil {
		return err
	}

	if err := s.reservationRepo.SaveReservationConfirmed(ctx, reservation, created, invoice, notification); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Concurrent confirmation detected", slog.String("reservation_id", reservation.ReservationID))
			return fmt.Errorf("%w: invoice already issued for reservation %s", apperrors.ErrConflict, reservation.ReservationID)
		}
		return fmt.Errorf("failed to persist confirmed reservation: %w", err)
	}

	logger.Info("Invoice issued",
		slog.String("invoice_number", invoice.Number),
		slog.String("reservation_id", reservation.ReservationID),
		slog.String("total", invoice.TotalAmount.String()),
	)
	return nil
}

// buildInvoice derives the invoice from the reservation total: the
// stored total is tax-inclusive, so the pre-tax base is recovered by
// dividing out the VAT rate. Reservation payments are taken at booking
// time, so the invoice is born PAID by card.
func (s *reservationService) buildInvoice(ctx context.Context, reservation domain.Reservation, actorUserID string, now time.Time) (domain.Invoice, error) {
	seq, err := s.counterRepo.NextSequence(ctx, numbering.InvoiceScope(now))
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to allocate invoice number: %w", err)
	}

	preTax := money.PreTaxFromTotal(reservation.TotalPrice, s.defaultTaxRate)
	taxAmount := money.Round2(reservation.TotalPrice.Sub(preTax))
	paidAt := now

	return domain.Invoice{
		InvoiceID:     uuid.NewString(),
		Number:        numbering.FormatInvoiceNumber(now, seq),
		ReservationID: reservation.ReservationID,
		ClientID:      reservation.ClientID,
		IssuedAt:      now,
		DueDate:       now.AddDate(0, 0, invoiceDueDays),
		PaidAt:        &paidAt,
		PreTaxAmount:  preTax,
		TaxRate:       s.defaultTaxRate,
		TaxAmount:     taxAmount,
		TotalAmount:   reservation.TotalPrice,
		Status:        domain.InvoicePaid,
		PaymentMethod: domain.PaymentCard,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}, nil
}

func (s *reservationService) buildConfirmationNotification(ctx context.Context, reservation domain.Reservation, client *domain.Client, room *domain.Room, invoice domain.Invoice, now time.Time) (domain.Notification, error) {
	adminIDs, err := s.userRepo.ListAdminUserIDs(ctx)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("failed to resolve admin recipients: %w", err)
	}

	reservationID := reservation.ReservationID
	return domain.Notification{
		NotificationID: uuid.NewString(),
		Type:           domain.NotifyNewReservation,
		Title:          fmt.Sprintf("New reservation by %s", client.FullName()),
		Message: fmt.Sprintf("%s booked room %s from %s to %s (%d nights, %s). Invoice %s issued and paid automatically.",
			client.FullName(), room.Number,
			reservation.CheckIn.Format("2006-01-02"), reservation.CheckOut.Format("2006-01-02"),
			reservation.Nights, reservation.TotalPrice.StringFixed(2), invoice.Number),
		Priority:      domain.PriorityMedium,
		ReservationID: &reservationID,
		Recipients:    adminIDs,
		CreatedAt:     now,
	}, nil
}

func transitionAllowed(from, to domain.ReservationStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
