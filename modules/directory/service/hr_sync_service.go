package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"golang.org/x/oauth2/clientcredentials"

	"scheduling-agent/core/config"
	"scheduling-agent/core/constants"
	"scheduling-agent/core/errors"
	"scheduling-agent/core/logger"
	"scheduling-agent/modules/directory/dto"
	"scheduling-agent/modules/directory/entity"
	"scheduling-agent/modules/directory/repository"
)

// DefaultTimezone applies when the employee master carries no zone
const DefaultTimezone = "Asia/Kolkata"

// HRSyncService pulls the employee master from the upstream HR API and
// upserts it into the directory tables. Field names in the upstream
// payload are not stable across tenants, so every field is read through
// a list of known variants.
type HRSyncService struct {
	repo repository.DirectoryRepositoryInterface
	cfg  config.HRAPIConfig
}

type HRSyncServiceInterface interface {
	SyncEmployees(ctx context.Context) (*dto.SyncResponse, *errors.AppError)
}

func NewHRSyncService(repo repository.DirectoryRepositoryInterface, cfg config.HRAPIConfig) HRSyncServiceInterface {
	return &HRSyncService{repo: repo, cfg: cfg}
}

type employeeMasterResponse struct {
	Status       int              `json:"status"`
	Message      string           `json:"message"`
	EmployeeData []map[string]any `json:"employee_data"`
}

// SyncEmployees fetches every employee record and upserts managers and
// candidates. A candidate is any record whose joining date is today or
// later; everyone else lands in the managers table only.
func (s *HRSyncService) SyncEmployees(ctx context.Context) (*dto.SyncResponse, *errors.AppError) {
	if s.cfg.BaseURL == "" {
		return nil, errors.NewAppError(errors.ErrUpstreamUnavailable, "HR API is not configured", nil)
	}

	records, appErr := s.fetchEmployees(ctx)
	if appErr != nil {
		return nil, appErr
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	candidates, managers := 0, 0

	for _, record := range records {
		manager := s.managerFromRecord(record)
		if manager == nil {
			continue
		}
		if err := s.repo.UpsertManager(ctx, manager); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upsert manager", err)
		}
		managers++

		candidate := s.candidateFromRecord(record, manager, today)
		if candidate == nil {
			continue
		}
		if err := s.repo.UpsertCandidate(ctx, candidate); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upsert candidate", err)
		}
		candidates++
	}

	logger.Info("HRSyncService:SyncEmployees", "records", len(records),
		"managers", managers, "candidates", candidates)

	return &dto.SyncResponse{
		CandidatesSynced: candidates,
		ManagersSynced:   managers,
		SyncedAt:         time.Now().UTC(),
	}, nil
}

// fetchEmployees posts the dataset request with an OAuth2
// client-credentials token when a token URL is configured.
func (s *HRSyncService) fetchEmployees(ctx context.Context) ([]map[string]any, *errors.AppError) {
	payload := map[string]any{
		"datasetKey":    s.cfg.DatasetKey,
		"last_modified": "01-01-2025",
		"employee_ids":  []string{},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to encode HR API request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to build HR API request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient(ctx).Do(req)
	if err != nil {
		logger.Error("HRSyncService:fetchEmployees:Request:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrUpstreamUnavailable, "HR API request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAppError(errors.ErrUpstreamUnavailable,
			fmt.Sprintf("HR API returned status %d", resp.StatusCode), nil)
	}

	var result employeeMasterResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.NewAppError(errors.ErrUpstreamUnavailable, "HR API response was not decodable", err)
	}

	if result.Status != 1 {
		msg := result.Message
		if msg == "" {
			msg = "unknown error"
		}
		return nil, errors.NewAppError(errors.ErrUpstreamUnavailable,
			fmt.Sprintf("HR API rejected the request: %s", msg), nil)
	}

	return result.EmployeeData, nil
}

func (s *HRSyncService) httpClient(ctx context.Context) *http.Client {
	if s.cfg.TokenURL == "" {
		return &http.Client{Timeout: constants.DefaultTimeout}
	}

	cc := clientcredentials.Config{
		ClientID:     s.cfg.ClientID,
		ClientSecret: s.cfg.ClientSecret,
		TokenURL:     s.cfg.TokenURL,
	}
	client := cc.Client(ctx)
	client.Timeout = constants.DefaultTimeout
	return client
}

func (s *HRSyncService) managerFromRecord(record map[string]any) *entity.Manager {
	id := getField(record, "employee_id", "employeeId", "emp_id")
	name := getField(record, "employee_name", "full_name", "name")
	if id == "" || name == "" {
		logger.Warn("HRSyncService:managerFromRecord:Skipped", "reason", "missing id or name")
		return nil
	}

	email := getField(record, "email", "email_id", "emailId", "employee_email")
	if email == "" {
		email = fmt.Sprintf("%s@%s", slug.Make(name), s.cfg.EmailDomain)
	}

	role := getField(record, "designation", "role", "job_title")
	if role == "" {
		role = entity.RoleReportingManager
	}

	tz := getField(record, "timezone", "time_zone", "tz")
	if tz == "" {
		tz = DefaultTimezone
	}

	return &entity.Manager{
		ID:       id,
		Name:     name,
		Email:    strings.ToLower(email),
		Role:     role,
		Timezone: tz,
	}
}

func (s *HRSyncService) candidateFromRecord(record map[string]any, manager *entity.Manager, today time.Time) *entity.Candidate {
	joining := getField(record, "date_of_joining", "joining_date", "start_date")
	startDate := parseHRDate(joining)
	if startDate.IsZero() {
		return nil
	}
	if startDate.Before(today) {
		return nil
	}

	return &entity.Candidate{
		ID:                 manager.ID,
		Name:               manager.Name,
		Email:              manager.Email,
		RoleTitle:          getField(record, "designation", "role", "job_title"),
		Timezone:           manager.Timezone,
		StartDate:          startDate,
		HiringManagerID:    getField(record, "hiring_manager_employee_id", "hiringManagerEmployeeId"),
		ReportingManagerID: getField(record, "direct_manager_employee_id", "directManagerEmployeeId", "manager_employee_id"),
		HRBPID:             getField(record, "hrbp_employee_id", "hrbpEmployeeId"),
	}
}

// getField tries each known key variant and returns the first non-empty
// value as a trimmed string
func getField(record map[string]any, keys ...string) string {
	for _, key := range keys {
		if raw, ok := record[key]; ok {
			if value := strings.TrimSpace(fmt.Sprintf("%v", raw)); value != "" && value != "<nil>" {
				return value
			}
		}
	}
	return ""
}

// parseHRDate accepts the date layouts the employee master is known to
// emit; zero means unparseable.
func parseHRDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{"02-01-2006", "2006-01-02", "02/01/2006"} {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t
		}
	}
	return time.Time{}
}
