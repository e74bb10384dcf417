package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"scheduling-agent/core/config"
	"scheduling-agent/core/constants"
	"scheduling-agent/core/logger"
	"scheduling-agent/modules/invite/entity"
	"scheduling-agent/modules/invite/repository"
	"scheduling-agent/modules/invite/service"
)

// InviteWorker consumes queued invite deliveries. Actual mail transport
// is an external collaborator; delivery here marks the invite sent and
// logs what a mailer would send.
type InviteWorker struct {
	server *asynq.Server
	repo   repository.InviteRepositoryInterface
}

func NewInviteWorker(cfg config.RedisConfig, repo repository.InviteRepositoryInterface) *InviteWorker {
	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB},
		asynq.Config{
			Concurrency: 5,
			Queues:      map[string]int{constants.QueueInvites: 1},
		},
	)
	return &InviteWorker{server: server, repo: repo}
}

// Start runs the worker in the background; errors surface on the
// returned channel once
func (w *InviteWorker) Start() <-chan error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(constants.TaskInviteDeliver, w.handleInviteDeliver)

	errCh := make(chan error, 1)
	go func() {
		if err := w.server.Run(mux); err != nil {
			logger.Error("InviteWorker:Start:Error", "error", err)
			errCh <- err
		}
	}()
	return errCh
}

func (w *InviteWorker) Shutdown() {
	w.server.Shutdown()
}

func (w *InviteWorker) handleInviteDeliver(ctx context.Context, task *asynq.Task) error {
	var payload service.InviteDeliverPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// Malformed payloads never become valid; do not retry.
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}

	invite, err := w.repo.GetInviteByID(ctx, payload.InviteID)
	if err != nil {
		return err
	}
	if invite == nil {
		logger.Warn("InviteWorker:handleInviteDeliver:Missing", "invite_id", payload.InviteID)
		return nil
	}
	if invite.Status == entity.StatusSent {
		return nil
	}

	logger.Info("InviteWorker:handleInviteDeliver:Delivered",
		"invite_id", invite.ID,
		"reference", invite.Reference,
		"subject", invite.Subject,
		"recipients", invite.Recipients,
	)

	now := time.Now().UTC()
	return w.repo.UpdateInviteStatus(ctx, invite.ID, entity.StatusSent, &now)
}
