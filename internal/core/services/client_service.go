package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
)

// clientService manages hotel guest records.
type clientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

// Ensure clientService implements the facade interface
var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// GetClientByID retrieves a specific client by its ID.
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, clientID)
}

// ListClients retrieves a paginated list of clients.
func (s *clientService) ListClients(ctx context.Context, params dto.ListClientsParams) (*dto.ListClientsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	clients, nextToken, err := s.clientRepo.ListClients(ctx, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	resp := dto.ToListClientsResponse(clients, nextToken)
	return &resp, nil
}

// CreateClient registers a new client.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	now := time.Now().UTC()
	client := domain.Client{
		ClientID:       uuid.NewString(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		IdentityNumber: req.IdentityNumber,
		Address:        req.Address,
		City:           req.City,
		Country:        req.Country,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to save client: %w", err)
	}
	return &client, nil
}

// UpdateClient updates client details.
func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, requestingUserID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		client.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		client.LastName = *req.LastName
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.City != nil {
		client.City = *req.City
	}
	if req.Country != nil {
		client.Country = *req.Country
	}
	client.LastUpdatedAt = time.Now().UTC()
	client.LastUpdatedBy = requestingUserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}
