package service

import (
	"context"

	"scheduling-agent/core/errors"
	"scheduling-agent/core/logger"
	"scheduling-agent/core/utils"
	"scheduling-agent/modules/auth/dto"
	"scheduling-agent/modules/auth/repository"
)

// AuthService issues bearer tokens to registered API clients
type AuthService struct {
	repo repository.AuthRepositoryInterface
}

type AuthServiceInterface interface {
	IssueToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, *errors.AppError)
}

func NewAuthService(repo repository.AuthRepositoryInterface) AuthServiceInterface {
	return &AuthService{repo: repo}
}

// IssueToken validates the client credentials and returns a signed JWT.
// Unknown clients and bad secrets get the same answer; callers cannot
// probe which client ids exist.
func (s *AuthService) IssueToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, *errors.AppError) {
	if req == nil || req.ClientID == "" || req.ClientSecret == "" {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "client_id and client_secret are required", nil)
	}

	client, err := s.repo.GetClientByClientID(ctx, req.ClientID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load client", err)
	}
	if client == nil || !client.IsActive || !utils.CheckSecret(req.ClientSecret, client.SecretHash) {
		logger.Warn("AuthService:IssueToken:Rejected", "client_id", req.ClientID)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid client credentials", nil)
	}

	token, expiresAt, err := utils.GenerateToken(client.ClientID, client.Name)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to sign token", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
