package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"scheduling-agent/core/constants"
	"scheduling-agent/core/errors"
	"scheduling-agent/core/logger"
	"scheduling-agent/core/utils"
	directoryEntity "scheduling-agent/modules/directory/entity"
	"scheduling-agent/modules/invite/dto"
	"scheduling-agent/modules/invite/entity"
	"scheduling-agent/modules/invite/repository"
)

// Directory is the slice of the directory module the composer needs
type Directory interface {
	GetPerson(ctx context.Context, id string) (*directoryEntity.Person, *errors.AppError)
	GetPersonZone(ctx context.Context, personID string) (*time.Location, bool)
}

// TaskEnqueuer queues background tasks; satisfied by *asynq.Client
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// InviteDeliverPayload is the queued task body
type InviteDeliverPayload struct {
	InviteID uuid.UUID `json:"invite_id"`
}

// InviteService books proposals: it composes the invite text, records
// it, and queues delivery. Composition renders the meeting time in each
// recipient's own zone.
type InviteService struct {
	repo      repository.InviteRepositoryInterface
	directory Directory
	enqueuer  TaskEnqueuer
}

type InviteServiceInterface interface {
	BookProposal(ctx context.Context, req *dto.BookingRequest) (*dto.InviteResponse, *errors.AppError)
	GetInvitesForCandidate(ctx context.Context, candidateID string) ([]dto.InviteResponse, *errors.AppError)
}

func NewInviteService(repo repository.InviteRepositoryInterface, directory Directory, enqueuer TaskEnqueuer) InviteServiceInterface {
	return &InviteService{repo: repo, directory: directory, enqueuer: enqueuer}
}

func (s *InviteService) BookProposal(ctx context.Context, req *dto.BookingRequest) (*dto.InviteResponse, *errors.AppError) {
	if req == nil || req.CandidateID == "" {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "candidate_id is required", nil)
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "start must be RFC3339", err)
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "end must be RFC3339", err)
	}
	if !start.Before(end) {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "end must be after start", nil)
	}

	people, appErr := s.resolvePeople(ctx, req.CandidateID, req.Participants)
	if appErr != nil {
		return nil, appErr
	}

	subject, body := s.compose(ctx, req.MeetingType, people, start, end)

	emails := make([]string, 0, len(people))
	for _, p := range people {
		emails = append(emails, p.Email)
	}

	created, err := s.repo.CreateInvite(ctx, &entity.Invite{
		Reference:   utils.GenerateID(),
		CandidateID: req.CandidateID,
		MeetingType: req.MeetingType,
		Subject:     subject,
		Body:        body,
		Recipients:  strings.Join(emails, ","),
		StartTime:   start.UTC(),
		EndTime:     end.UTC(),
		Status:      entity.StatusQueued,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to record invite", err)
	}

	if appErr := s.enqueueDelivery(ctx, created.ID); appErr != nil {
		return nil, appErr
	}

	logger.Info("InviteService:BookProposal",
		"invite_id", created.ID, "reference", created.Reference,
		"candidate_id", created.CandidateID, "recipients", len(emails))

	return dto.ToInviteResponse(created), nil
}

func (s *InviteService) GetInvitesForCandidate(ctx context.Context, candidateID string) ([]dto.InviteResponse, *errors.AppError) {
	invites, err := s.repo.GetInvitesByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list invites", err)
	}

	responses := make([]dto.InviteResponse, 0, len(invites))
	for i := range invites {
		responses = append(responses, *dto.ToInviteResponse(&invites[i]))
	}
	return responses, nil
}

// resolvePeople loads candidate and participants, candidate first.
// An unknown candidate is a hard failure; unknown participants are
// skipped so one stale id does not block a booking.
func (s *InviteService) resolvePeople(ctx context.Context, candidateID string, participantIDs []string) ([]directoryEntity.Person, *errors.AppError) {
	candidate, appErr := s.directory.GetPerson(ctx, candidateID)
	if appErr != nil {
		return nil, appErr
	}

	people := []directoryEntity.Person{*candidate}
	for _, id := range participantIDs {
		if id == candidateID {
			continue
		}
		person, appErr := s.directory.GetPerson(ctx, id)
		if appErr != nil {
			if appErr.Code == errors.ErrNotFound {
				logger.Warn("InviteService:resolvePeople:UnknownParticipant", "person_id", id)
				continue
			}
			return nil, appErr
		}
		people = append(people, *person)
	}
	return people, nil
}

// compose builds the invite subject and body, rendering the meeting
// time in each recipient's local zone
func (s *InviteService) compose(ctx context.Context, meetingType string, people []directoryEntity.Person, start, end time.Time) (string, string) {
	if meetingType == "" {
		meetingType = "Meeting"
	}

	candidate := people[0]
	subject := fmt.Sprintf("%s: %s", meetingType, candidate.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "You are invited to %q with %s.\n\n", meetingType, candidate.Name)
	fmt.Fprintf(&b, "When (UTC): %s - %s\n\n", start.UTC().Format(time.RFC1123), end.UTC().Format(time.RFC1123))
	b.WriteString("Local times:\n")
	for _, p := range people {
		loc, ok := s.directory.GetPersonZone(ctx, p.ID)
		if !ok {
			loc = time.UTC
		}
		fmt.Fprintf(&b, "  %s (%s): %s - %s\n",
			p.Name, loc.String(),
			start.In(loc).Format("Mon, 02 Jan 2006 15:04"),
			end.In(loc).Format("15:04"))
	}

	return subject, b.String()
}

func (s *InviteService) enqueueDelivery(ctx context.Context, inviteID uuid.UUID) *errors.AppError {
	payload, err := json.Marshal(InviteDeliverPayload{InviteID: inviteID})
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to encode delivery task", err)
	}

	task := asynq.NewTask(constants.TaskInviteDeliver, payload)
	if _, err := s.enqueuer.EnqueueContext(ctx, task, asynq.Queue(constants.QueueInvites), asynq.MaxRetry(3)); err != nil {
		logger.Error("InviteService:enqueueDelivery:Error", "invite_id", inviteID, "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to queue invite delivery", err)
	}
	return nil
}
