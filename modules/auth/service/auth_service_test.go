package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling-agent/core/errors"
	"scheduling-agent/core/utils"
	"scheduling-agent/modules/auth/dto"
	"scheduling-agent/modules/auth/entity"
)

type stubRepo struct {
	clients map[string]*entity.APIClient
}

func (s *stubRepo) GetClientByClientID(_ context.Context, clientID string) (*entity.APIClient, error) {
	return s.clients[clientID], nil
}

func (s *stubRepo) UpsertClient(_ context.Context, client *entity.APIClient) error {
	s.clients[client.ClientID] = client
	return nil
}

func TestIssueToken(t *testing.T) {
	hash, err := utils.HashSecret("s3cret")
	require.NoError(t, err)

	repo := &stubRepo{clients: map[string]*entity.APIClient{
		"good-client": {ClientID: "good-client", SecretHash: hash, Name: "Good", IsActive: true},
		"disabled":    {ClientID: "disabled", SecretHash: hash, Name: "Disabled", IsActive: false},
	}}
	svc := NewAuthService(repo)

	t.Run("missing credentials rejected", func(t *testing.T) {
		_, appErr := svc.IssueToken(context.Background(), &dto.TokenRequest{ClientID: "good-client"})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidRequestData, appErr.Code)
	})

	t.Run("unknown client and wrong secret look identical", func(t *testing.T) {
		_, unknownErr := svc.IssueToken(context.Background(), &dto.TokenRequest{
			ClientID: "ghost", ClientSecret: "s3cret",
		})
		_, wrongErr := svc.IssueToken(context.Background(), &dto.TokenRequest{
			ClientID: "good-client", ClientSecret: "nope",
		})
		require.NotNil(t, unknownErr)
		require.NotNil(t, wrongErr)
		assert.Equal(t, unknownErr.Code, wrongErr.Code)
		assert.Equal(t, unknownErr.Message, wrongErr.Message)
	})

	t.Run("inactive client rejected", func(t *testing.T) {
		_, appErr := svc.IssueToken(context.Background(), &dto.TokenRequest{
			ClientID: "disabled", ClientSecret: "s3cret",
		})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
	})
}
