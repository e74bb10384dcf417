package service

import (
	"context"
	"time"

	"scheduling-agent/core/cache"
	"scheduling-agent/core/constants"
	"scheduling-agent/core/errors"
	"scheduling-agent/core/logger"
	"scheduling-agent/modules/directory/dto"
	"scheduling-agent/modules/directory/entity"
	"scheduling-agent/modules/directory/repository"
)

// DirectoryService answers who-is-this-person questions for the rest of
// the system. Lookups are idempotent, so results go through a
// short-TTL redis cache; a nil cache degrades to direct reads.
type DirectoryService struct {
	repo  repository.DirectoryRepositoryInterface
	cache *cache.Cache
}

type DirectoryServiceInterface interface {
	GetCandidate(ctx context.Context, id string) (*dto.CandidateResponse, *errors.AppError)
	ListCandidates(ctx context.Context) ([]dto.CandidateResponse, *errors.AppError)
	GetManager(ctx context.Context, id string) (*dto.ManagerResponse, *errors.AppError)
	GetRelatedManagers(ctx context.Context, candidateID string) ([]dto.ManagerResponse, *errors.AppError)
	GetPerson(ctx context.Context, id string) (*entity.Person, *errors.AppError)
	GetPersonZone(ctx context.Context, personID string) (*time.Location, bool)
	GetCandidateStartDate(ctx context.Context, candidateID string) (time.Time, *errors.AppError)
}

func NewDirectoryService(repo repository.DirectoryRepositoryInterface, c *cache.Cache) DirectoryServiceInterface {
	return &DirectoryService{repo: repo, cache: c}
}

func (s *DirectoryService) GetCandidate(ctx context.Context, id string) (*dto.CandidateResponse, *errors.AppError) {
	candidate, appErr := s.candidateByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToCandidateResponse(candidate), nil
}

func (s *DirectoryService) ListCandidates(ctx context.Context) ([]dto.CandidateResponse, *errors.AppError) {
	candidates, err := s.repo.ListCandidates(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list candidates", err)
	}

	responses := make([]dto.CandidateResponse, 0, len(candidates))
	for i := range candidates {
		responses = append(responses, *dto.ToCandidateResponse(&candidates[i]))
	}
	return responses, nil
}

func (s *DirectoryService) GetManager(ctx context.Context, id string) (*dto.ManagerResponse, *errors.AppError) {
	manager, appErr := s.managerByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToManagerResponse(manager), nil
}

// GetRelatedManagers returns the managers attached to a candidate in a
// fixed persona order: hiring manager, reporting manager, HRBP.
func (s *DirectoryService) GetRelatedManagers(ctx context.Context, candidateID string) ([]dto.ManagerResponse, *errors.AppError) {
	candidate, appErr := s.candidateByID(ctx, candidateID)
	if appErr != nil {
		return nil, appErr
	}

	ids := []string{}
	for _, id := range []string{candidate.HiringManagerID, candidate.ReportingManagerID, candidate.HRBPID} {
		if id != "" {
			ids = append(ids, id)
		}
	}

	managers, err := s.repo.GetManagersByIDs(ctx, ids)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load managers", err)
	}

	byID := make(map[string]*entity.Manager, len(managers))
	for i := range managers {
		byID[managers[i].ID] = &managers[i]
	}

	responses := make([]dto.ManagerResponse, 0, len(ids))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			responses = append(responses, *dto.ToManagerResponse(m))
		}
	}
	return responses, nil
}

// GetPerson resolves an id as a candidate first, then as a manager
func (s *DirectoryService) GetPerson(ctx context.Context, id string) (*entity.Person, *errors.AppError) {
	if candidate, appErr := s.candidateByID(ctx, id); appErr == nil {
		p := candidate.Person()
		return &p, nil
	} else if appErr.Code != errors.ErrNotFound {
		return nil, appErr
	}

	manager, appErr := s.managerByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	p := manager.Person()
	return &p, nil
}

// GetPersonZone loads the person's IANA zone. Unknown people and broken
// zone names both report not-ok; absence of data is not a fault here.
func (s *DirectoryService) GetPersonZone(ctx context.Context, personID string) (*time.Location, bool) {
	person, appErr := s.GetPerson(ctx, personID)
	if appErr != nil {
		return nil, false
	}

	loc, err := time.LoadLocation(person.Timezone)
	if err != nil {
		logger.Warn("DirectoryService:GetPersonZone:BadZone",
			"person_id", personID, "timezone", person.Timezone, "error", err)
		return nil, false
	}
	return loc, true
}

// GetCandidateStartDate returns the candidate's start date at UTC
// midnight, the anchor for search-window derivation.
func (s *DirectoryService) GetCandidateStartDate(ctx context.Context, candidateID string) (time.Time, *errors.AppError) {
	candidate, appErr := s.candidateByID(ctx, candidateID)
	if appErr != nil {
		return time.Time{}, appErr
	}

	d := candidate.StartDate.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

func (s *DirectoryService) candidateByID(ctx context.Context, id string) (*entity.Candidate, *errors.AppError) {
	key := constants.RedisKeyCandidate + id

	var cached entity.Candidate
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	candidate, err := s.repo.GetCandidateByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load candidate", err)
	}
	if candidate == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Candidate not found", nil)
	}

	s.cacheSet(ctx, key, candidate)
	return candidate, nil
}

func (s *DirectoryService) managerByID(ctx context.Context, id string) (*entity.Manager, *errors.AppError) {
	key := constants.RedisKeyManager + id

	var cached entity.Manager
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	manager, err := s.repo.GetManagerByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load manager", err)
	}
	if manager == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Manager not found", nil)
	}

	s.cacheSet(ctx, key, manager)
	return manager, nil
}

func (s *DirectoryService) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, dest)
	if err != nil {
		logger.Warn("DirectoryService:cacheGet:Error", "key", key, "error", err)
		return false
	}
	return hit
}

func (s *DirectoryService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value, constants.DirectoryCacheTTL); err != nil {
		logger.Warn("DirectoryService:cacheSet:Error", "key", key, "error", err)
	}
}
