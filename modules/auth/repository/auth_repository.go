package repository

import (
	"context"
	"database/sql"

	"scheduling-agent/core/database"
	"scheduling-agent/core/logger"
	"scheduling-agent/modules/auth/entity"
)

// AuthRepository handles API client database operations
type AuthRepository struct {
	DB database.Database
}

// NewAuthRepository creates a new repository instance
func NewAuthRepository(db database.Database) *AuthRepository {
	return &AuthRepository{DB: db}
}

// AuthRepositoryInterface defines the repository contract
type AuthRepositoryInterface interface {
	GetClientByClientID(ctx context.Context, clientID string) (*entity.APIClient, error)
	UpsertClient(ctx context.Context, client *entity.APIClient) error
}

func (r *AuthRepository) GetClientByClientID(ctx context.Context, clientID string) (*entity.APIClient, error) {
	query := `
		SELECT id, client_id, secret_hash, name, is_active, created_at
		FROM api_clients WHERE client_id = $1
	`

	var client entity.APIClient
	err := r.DB.GetContext(ctx, &client, query, clientID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetClientByClientID", "error", err)
		return nil, err
	}

	return &client, nil
}

func (r *AuthRepository) UpsertClient(ctx context.Context, client *entity.APIClient) error {
	query := `
		INSERT INTO api_clients (client_id, secret_hash, name, is_active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (client_id) DO UPDATE SET
			secret_hash = EXCLUDED.secret_hash,
			name = EXCLUDED.name,
			is_active = EXCLUDED.is_active
	`

	err := r.DB.ExecContext(ctx, query,
		client.ClientID, client.SecretHash, client.Name, client.IsActive)
	if err != nil {
		logger.Error("AuthRepository:UpsertClient", "error", err)
	}
	return err
}
