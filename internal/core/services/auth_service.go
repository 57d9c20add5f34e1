package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hotelio/hotel_management_app/internal/apperrors"
	"github.com/hotelio/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hotelio/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hotelio/hotel_management_app/internal/core/ports/services"
	"github.com/hotelio/hotel_management_app/internal/dto"
	"github.com/hotelio/hotel_management_app/internal/middleware"
	"github.com/hotelio/hotel_management_app/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// authService verifies credentials and hands out tokens. Self-service
// registration always creates CLIENT accounts; staff accounts come from
// the user endpoints.
type authService struct {
	userRepo portsrepo.UserRepositoryFacade
	userSvc  portssvc.UserWriterSvc
	tokenSvc portssvc.TokenSvcFacade
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, userSvc portssvc.UserWriterSvc, tokenSvc portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		userRepo: userRepo,
		userSvc:  userSvc,
		tokenSvc: tokenSvc,
	}
}

// Ensure authService implements the facade interface
var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies credentials and returns a token response.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error for unknown email and bad password
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if !user.IsActive {
		logger.Warn("Login attempt on inactive account", slog.String("user_id", user.UserID))
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(ctx, user)
}

// Register signs up a client account and logs it in.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.LoginResponse, error) {
	user, err := s.userSvc.CreateUser(ctx, dto.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.RoleClient,
	}, "")
	if err != nil {
		return nil, err
	}
	return s.issueToken(ctx, user)
}

func (s *authService) issueToken(ctx context.Context, user *domain.User) (*dto.LoginResponse, error) {
	token, expiresAt, err := s.tokenSvc.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}, nil
}
