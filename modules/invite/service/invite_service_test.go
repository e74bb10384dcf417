package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling-agent/core/constants"
	"scheduling-agent/core/errors"
	directoryEntity "scheduling-agent/modules/directory/entity"
	"scheduling-agent/modules/invite/dto"
	"scheduling-agent/modules/invite/entity"
)

type stubRepo struct {
	created *entity.Invite
	failing bool
}

func (s *stubRepo) CreateInvite(_ context.Context, invite *entity.Invite) (*entity.Invite, error) {
	if s.failing {
		return nil, assert.AnError
	}
	created := *invite
	created.ID = uuid.New()
	created.CreatedAt = time.Now().UTC()
	s.created = &created
	return &created, nil
}

func (s *stubRepo) GetInviteByID(_ context.Context, id uuid.UUID) (*entity.Invite, error) {
	if s.created != nil && s.created.ID == id {
		return s.created, nil
	}
	return nil, nil
}

func (s *stubRepo) GetInvitesByCandidateID(_ context.Context, candidateID string) ([]entity.Invite, error) {
	if s.created != nil && s.created.CandidateID == candidateID {
		return []entity.Invite{*s.created}, nil
	}
	return []entity.Invite{}, nil
}

func (s *stubRepo) UpdateInviteStatus(_ context.Context, id uuid.UUID, status string, sentAt *time.Time) error {
	if s.created != nil && s.created.ID == id {
		s.created.Status = status
		s.created.SentAt = sentAt
	}
	return nil
}

type stubDirectory struct {
	people map[string]directoryEntity.Person
	zones  map[string]string
}

func (s *stubDirectory) GetPerson(_ context.Context, id string) (*directoryEntity.Person, *errors.AppError) {
	p, ok := s.people[id]
	if !ok {
		return nil, errors.NewAppError(errors.ErrNotFound, "Person not found", nil)
	}
	return &p, nil
}

func (s *stubDirectory) GetPersonZone(_ context.Context, personID string) (*time.Location, bool) {
	name, ok := s.zones[personID]
	if !ok {
		return nil, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, false
	}
	return loc, true
}

type stubEnqueuer struct {
	tasks []*asynq.Task
}

func (s *stubEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	s.tasks = append(s.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func newStubDirectory() *stubDirectory {
	return &stubDirectory{
		people: map[string]directoryEntity.Person{
			"cand_001": {ID: "cand_001", Name: "Ravi Sharma", Email: "ravi@example.com", Timezone: "Asia/Kolkata"},
			"mgr_001":  {ID: "mgr_001", Name: "Sarah Chen", Email: "sarah@example.com", Timezone: "America/Los_Angeles"},
		},
		zones: map[string]string{
			"cand_001": "Asia/Kolkata",
			"mgr_001":  "America/Los_Angeles",
		},
	}
}

func TestBookProposal(t *testing.T) {
	t.Parallel()

	// Monday 2026-03-02 04:00 UTC
	start := "2026-03-02T04:00:00Z"
	end := "2026-03-02T04:30:00Z"

	t.Run("books a slot and queues delivery", func(t *testing.T) {
		t.Parallel()

		repo := &stubRepo{}
		enqueuer := &stubEnqueuer{}
		svc := NewInviteService(repo, newStubDirectory(), enqueuer)

		result, appErr := svc.BookProposal(context.Background(), &dto.BookingRequest{
			CandidateID:  "cand_001",
			Participants: []string{"mgr_001"},
			Start:        start,
			End:          end,
			MeetingType:  "Intro Meeting",
		})
		require.Nil(t, appErr)
		require.NotNil(t, result)

		assert.Equal(t, entity.StatusQueued, result.Status)
		assert.NotEmpty(t, result.Reference)
		assert.Equal(t, "Intro Meeting: Ravi Sharma", result.Subject)
		assert.Equal(t, []string{"ravi@example.com", "sarah@example.com"}, result.Recipients)

		// Body renders each recipient's local time
		assert.Contains(t, result.Body, "Ravi Sharma (Asia/Kolkata): Mon, 02 Mar 2026 09:30")
		assert.Contains(t, result.Body, "Sarah Chen (America/Los_Angeles): Sun, 01 Mar 2026 20:00")

		require.Len(t, enqueuer.tasks, 1)
		assert.Equal(t, constants.TaskInviteDeliver, enqueuer.tasks[0].Type())
	})

	t.Run("rejects malformed times", func(t *testing.T) {
		t.Parallel()

		svc := NewInviteService(&stubRepo{}, newStubDirectory(), &stubEnqueuer{})
		_, appErr := svc.BookProposal(context.Background(), &dto.BookingRequest{
			CandidateID: "cand_001", Start: "2026-03-02", End: end,
		})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidRequestData, appErr.Code)
	})

	t.Run("rejects inverted interval", func(t *testing.T) {
		t.Parallel()

		svc := NewInviteService(&stubRepo{}, newStubDirectory(), &stubEnqueuer{})
		_, appErr := svc.BookProposal(context.Background(), &dto.BookingRequest{
			CandidateID: "cand_001", Start: end, End: start,
		})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidRequestData, appErr.Code)
	})

	t.Run("unknown candidate is not found", func(t *testing.T) {
		t.Parallel()

		svc := NewInviteService(&stubRepo{}, newStubDirectory(), &stubEnqueuer{})
		_, appErr := svc.BookProposal(context.Background(), &dto.BookingRequest{
			CandidateID: "ghost", Start: start, End: end,
		})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrNotFound, appErr.Code)
	})

	t.Run("unknown participants are skipped", func(t *testing.T) {
		t.Parallel()

		repo := &stubRepo{}
		svc := NewInviteService(repo, newStubDirectory(), &stubEnqueuer{})

		result, appErr := svc.BookProposal(context.Background(), &dto.BookingRequest{
			CandidateID:  "cand_001",
			Participants: []string{"ghost", "mgr_001"},
			Start:        start,
			End:          end,
		})
		require.Nil(t, appErr)
		assert.Equal(t, []string{"ravi@example.com", "sarah@example.com"}, result.Recipients)
	})

	t.Run("nothing queued when the insert fails", func(t *testing.T) {
		t.Parallel()

		enqueuer := &stubEnqueuer{}
		svc := NewInviteService(&stubRepo{failing: true}, newStubDirectory(), enqueuer)

		_, appErr := svc.BookProposal(context.Background(), &dto.BookingRequest{
			CandidateID: "cand_001", Start: start, End: end,
		})
		require.NotNil(t, appErr)
		assert.Empty(t, enqueuer.tasks)
	})
}

func TestGetInvitesForCandidate(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{}
	svc := NewInviteService(repo, newStubDirectory(), &stubEnqueuer{})

	_, appErr := svc.BookProposal(context.Background(), &dto.BookingRequest{
		CandidateID: "cand_001", Start: "2026-03-02T04:00:00Z", End: "2026-03-02T04:30:00Z",
	})
	require.Nil(t, appErr)

	invites, appErr := svc.GetInvitesForCandidate(context.Background(), "cand_001")
	require.Nil(t, appErr)
	require.Len(t, invites, 1)
	assert.Equal(t, "cand_001", invites[0].CandidateID)

	none, appErr := svc.GetInvitesForCandidate(context.Background(), "cand_002")
	require.Nil(t, appErr)
	assert.Empty(t, none)
}
