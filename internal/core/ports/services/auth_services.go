package services

import (
	"context"
	"time"

	"github.com/hotelio/hotel_management_app/internal/core/domain"
	"github.com/hotelio/hotel_management_app/internal/dto"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed JWT carrying the user's role.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// AuthSvcFacade defines the interface for authentication operations.
type AuthSvcFacade interface {
	// Login verifies credentials and returns a token response.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// Register signs up a client account and logs it in.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.LoginResponse, error)
}
