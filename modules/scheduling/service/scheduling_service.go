package service

import (
	"context"
	"sync"
	"time"

	"scheduling-agent/core/config"
	"scheduling-agent/core/constants"
	"scheduling-agent/core/errors"
	"scheduling-agent/core/logger"
	availability "scheduling-agent/modules/availability/entity"
	availabilityService "scheduling-agent/modules/availability/service"
	"scheduling-agent/modules/scheduling/dto"
	"scheduling-agent/modules/scheduling/entity"
)

// Directory is the slice of the directory module this pipeline needs:
// the anchor date for the search window and a zone per participant.
type Directory interface {
	GetCandidateStartDate(ctx context.Context, candidateID string) (time.Time, *errors.AppError)
	GetPersonZone(ctx context.Context, personID string) (*time.Location, bool)
}

// SchedulingService runs the proposal pipeline: derive window, resolve
// each participant's free time concurrently, intersect, slice, score.
type SchedulingService struct {
	directory    Directory
	availability availabilityService.AvailabilityServiceInterface
}

type SchedulingServiceInterface interface {
	GenerateProposals(ctx context.Context, req *dto.ProposalRequest) (*dto.ProposalListResponse, *errors.AppError)
}

func NewSchedulingService(directory Directory, availability availabilityService.AvailabilityServiceInterface) SchedulingServiceInterface {
	return &SchedulingService{directory: directory, availability: availability}
}

// GenerateProposals validates the request, derives the search window
// around the candidate's start date, resolves every participant's free
// time in parallel, then folds the results into ranked proposals. An
// empty proposal list is a valid outcome, not an error.
func (s *SchedulingService) GenerateProposals(ctx context.Context, req *dto.ProposalRequest) (*dto.ProposalListResponse, *errors.AppError) {
	meetingReq, appErr := s.parseRequest(req)
	if appErr != nil {
		return nil, appErr
	}

	anchor, appErr := s.directory.GetCandidateStartDate(ctx, meetingReq.CandidateID)
	if appErr != nil {
		// Absence of directory data means no availability, not a fault.
		if appErr.Code == errors.ErrNotFound {
			logger.Info("SchedulingService:GenerateProposals:UnknownCandidate", "candidate_id", meetingReq.CandidateID)
			return &dto.ProposalListResponse{
				CandidateID: meetingReq.CandidateID,
				MeetingType: meetingReq.MeetingType,
				Proposals:   []dto.ProposalResponse{},
			}, nil
		}
		return nil, appErr
	}

	cfg := schedulingConfig()
	daysBefore, daysAfter := cfg.DaysBeforeStart, cfg.DaysAfterStart
	if meetingReq.DaysBefore > 0 {
		daysBefore = meetingReq.DaysBefore
	}
	if meetingReq.DaysAfter > 0 {
		daysAfter = meetingReq.DaysAfter
	}
	maxResults := cfg.MaxProposals
	if meetingReq.MaxResults > 0 {
		maxResults = meetingReq.MaxResults
	}

	windowStart, windowEnd := deriveWindow(anchor, time.Now().UTC(), daysBefore, daysAfter)

	if !meetingReq.Deadline.IsZero() && meetingReq.Deadline.Before(windowStart) {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData,
			"Deadline is before the earliest possible slot", nil)
	}

	// End date is inclusive; the resolver wants an exclusive instant.
	windowEndExclusive := windowEnd.AddDate(0, 0, 1)

	participants := append([]string{meetingReq.CandidateID}, meetingReq.ParticipantIDs...)
	lists, appErr := s.resolveAll(ctx, participants, windowStart, windowEndExclusive, cfg)
	if appErr != nil {
		return nil, appErr
	}

	common := availabilityService.IntersectAll(lists)
	sliced := availabilityService.SliceByDuration(common, meetingReq.DurationMinutes)

	zones := s.participantZones(ctx, participants)
	proposals := ScoreAndRank(sliced, ScoreInput{
		SubjectID:         meetingReq.CandidateID,
		MeetingType:       meetingReq.MeetingType,
		AnchorDate:        anchor,
		Deadline:          meetingReq.Deadline,
		Zones:             zones,
		BusinessStartHour: cfg.BusinessHoursStart,
		BusinessEndHour:   cfg.BusinessHoursEnd,
		MaxResults:        maxResults,
	})

	logger.Info("SchedulingService:GenerateProposals",
		"candidate_id", meetingReq.CandidateID,
		"participants", len(meetingReq.ParticipantIDs),
		"window_start", windowStart,
		"window_end", windowEnd,
		"proposals", len(proposals),
	)

	responses := make([]dto.ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		responses = append(responses, dto.ToProposalResponse(p, zones))
	}

	return &dto.ProposalListResponse{
		CandidateID: meetingReq.CandidateID,
		MeetingType: meetingReq.MeetingType,
		Window:      dto.WindowResponse{Start: windowStart, End: windowEndExclusive},
		Proposals:   responses,
		Count:       len(responses),
	}, nil
}

// parseRequest validates and normalizes the wire request. Rejections
// happen here, before any resolution work.
func (s *SchedulingService) parseRequest(req *dto.ProposalRequest) (*entity.MeetingRequest, *errors.AppError) {
	if req == nil || req.CandidateID == "" {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "candidate_id is required", nil)
	}
	if req.DurationMinutes <= 0 {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "duration_minutes must be positive", nil)
	}

	// A list that reduces to just the candidate is a valid candidate-only
	// request; only a list that names nobody at all is rejected.
	participantIDs := dedupeIDs(req.Participants, req.CandidateID)
	if len(participantIDs) == 0 && !namesAnyone(req.Participants) {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "participants must not be empty", nil)
	}

	if req.DaysBefore < 0 || req.DaysAfter < 0 || req.MaxResults < 0 {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData,
			"days_before, days_after and max_results must not be negative", nil)
	}

	var deadline time.Time
	if req.DeadlineDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.DeadlineDate, time.UTC)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidRequestData,
				"deadline_date must be YYYY-MM-DD", err)
		}
		deadline = parsed
	}

	return &entity.MeetingRequest{
		CandidateID:     req.CandidateID,
		ParticipantIDs:  participantIDs,
		DurationMinutes: req.DurationMinutes,
		Deadline:        deadline,
		MeetingType:     req.MeetingType,
		DaysBefore:      req.DaysBefore,
		DaysAfter:       req.DaysAfter,
		MaxResults:      req.MaxResults,
	}, nil
}

// resolveAll fans out free-time resolution across all participants.
// Resolution is independent per person, so each runs in its own
// goroutine writing to its own slot of the results slice.
func (s *SchedulingService) resolveAll(
	ctx context.Context,
	participantIDs []string,
	windowStart, windowEnd time.Time,
	cfg config.SchedulingConfig,
) ([][]availability.FreeSlot, *errors.AppError) {
	lists := make([][]availability.FreeSlot, len(participantIDs))
	errs := make([]*errors.AppError, len(participantIDs))

	var wg sync.WaitGroup
	for i, personID := range participantIDs {
		wg.Add(1)
		go func(i int, personID string) {
			defer wg.Done()
			slots, appErr := s.availability.ResolveFreeTime(ctx, personID,
				windowStart, windowEnd, cfg.BusinessHoursStart, cfg.BusinessHoursEnd)
			lists[i], errs[i] = slots, appErr
		}(i, personID)
	}
	wg.Wait()

	for _, appErr := range errs {
		if appErr != nil {
			return nil, appErr
		}
	}
	return lists, nil
}

// participantZones snapshots every participant's zone for the scorer.
// Unknown people fall back to UTC rendering.
func (s *SchedulingService) participantZones(ctx context.Context, participantIDs []string) map[string]*time.Location {
	zones := make(map[string]*time.Location, len(participantIDs))
	for _, id := range participantIDs {
		if loc, ok := s.directory.GetPersonZone(ctx, id); ok {
			zones[id] = loc
		}
	}
	return zones
}

// deriveWindow wraps the anchor date with the configured margins,
// clamped so the window never starts in the past. A window that
// collapses after clamping is repaired to a minimum span rather than
// rejected; upstream date arithmetic can legitimately produce it.
func deriveWindow(anchor, now time.Time, daysBefore, daysAfter int) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	start := anchor.AddDate(0, 0, -daysBefore)
	if start.Before(today) {
		start = today
	}

	end := anchor.AddDate(0, 0, daysAfter)
	if !end.After(start) {
		end = start.AddDate(0, 0, constants.MinSearchWindowDays)
	}

	return start, end
}

func namesAnyone(ids []string) bool {
	for _, id := range ids {
		if id != "" {
			return true
		}
	}
	return false
}

func dedupeIDs(ids []string, exclude string) []string {
	seen := map[string]struct{}{exclude: {}}
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func schedulingConfig() config.SchedulingConfig {
	if cfg, ok := config.GetSafe(); ok {
		return cfg.Scheduling
	}
	return config.SchedulingConfig{
		BusinessHoursStart: constants.DefaultBusinessHoursStart,
		BusinessHoursEnd:   constants.DefaultBusinessHoursEnd,
		DaysBeforeStart:    constants.DefaultDaysBeforeStart,
		DaysAfterStart:     constants.DefaultDaysAfterStart,
		MaxProposals:       constants.DefaultMaxProposals,
	}
}
