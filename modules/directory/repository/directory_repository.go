package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"scheduling-agent/core/database"
	"scheduling-agent/core/logger"
	"scheduling-agent/modules/directory/entity"
)

// DirectoryRepository handles candidate and manager database operations
type DirectoryRepository struct {
	DB database.Database
}

// NewDirectoryRepository creates a new repository instance
func NewDirectoryRepository(db database.Database) *DirectoryRepository {
	return &DirectoryRepository{DB: db}
}

// DirectoryRepositoryInterface defines the repository contract
type DirectoryRepositoryInterface interface {
	GetCandidateByID(ctx context.Context, id string) (*entity.Candidate, error)
	ListCandidates(ctx context.Context) ([]entity.Candidate, error)
	UpsertCandidate(ctx context.Context, candidate *entity.Candidate) error
	GetManagerByID(ctx context.Context, id string) (*entity.Manager, error)
	GetManagersByIDs(ctx context.Context, ids []string) ([]entity.Manager, error)
	UpsertManager(ctx context.Context, manager *entity.Manager) error

	CreateDocument(ctx context.Context, doc *entity.CandidateDocument) (*entity.CandidateDocument, error)
	GetDocumentsByCandidateID(ctx context.Context, candidateID string) ([]entity.CandidateDocument, error)
}

func (r *DirectoryRepository) GetCandidateByID(ctx context.Context, id string) (*entity.Candidate, error) {
	query := `
		SELECT id, name, email, role_title, timezone, start_date,
		       hiring_manager_id, reporting_manager_id, hrbp_id, created_at, updated_at
		FROM candidates WHERE id = $1
	`

	var candidate entity.Candidate
	err := r.DB.GetContext(ctx, &candidate, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("DirectoryRepository:GetCandidateByID", "error", err)
		return nil, err
	}

	return &candidate, nil
}

func (r *DirectoryRepository) ListCandidates(ctx context.Context) ([]entity.Candidate, error) {
	query := `
		SELECT id, name, email, role_title, timezone, start_date,
		       hiring_manager_id, reporting_manager_id, hrbp_id, created_at, updated_at
		FROM candidates
		ORDER BY start_date, id
	`

	var candidates []entity.Candidate
	if err := r.DB.SelectContext(ctx, &candidates, query); err != nil {
		logger.Error("DirectoryRepository:ListCandidates", "error", err)
		return nil, err
	}

	return candidates, nil
}

func (r *DirectoryRepository) UpsertCandidate(ctx context.Context, candidate *entity.Candidate) error {
	query := `
		INSERT INTO candidates (id, name, email, role_title, timezone, start_date,
		                        hiring_manager_id, reporting_manager_id, hrbp_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			role_title = EXCLUDED.role_title,
			timezone = EXCLUDED.timezone,
			start_date = EXCLUDED.start_date,
			hiring_manager_id = EXCLUDED.hiring_manager_id,
			reporting_manager_id = EXCLUDED.reporting_manager_id,
			hrbp_id = EXCLUDED.hrbp_id,
			updated_at = NOW()
	`

	err := r.DB.ExecContext(ctx, query,
		candidate.ID, candidate.Name, candidate.Email, candidate.RoleTitle,
		candidate.Timezone, candidate.StartDate,
		candidate.HiringManagerID, candidate.ReportingManagerID, candidate.HRBPID)
	if err != nil {
		logger.Error("DirectoryRepository:UpsertCandidate", "error", err)
	}
	return err
}

func (r *DirectoryRepository) GetManagerByID(ctx context.Context, id string) (*entity.Manager, error) {
	query := `
		SELECT id, name, email, role, timezone, created_at, updated_at
		FROM managers WHERE id = $1
	`

	var manager entity.Manager
	err := r.DB.GetContext(ctx, &manager, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("DirectoryRepository:GetManagerByID", "error", err)
		return nil, err
	}

	return &manager, nil
}

func (r *DirectoryRepository) GetManagersByIDs(ctx context.Context, ids []string) ([]entity.Manager, error) {
	if len(ids) == 0 {
		return []entity.Manager{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, name, email, role, timezone, created_at, updated_at
		FROM managers WHERE id IN (?)
		ORDER BY id
	`, ids)
	if err != nil {
		return nil, err
	}

	var managers []entity.Manager
	if err := r.DB.SelectContext(ctx, &managers, r.DB.SQLx().Rebind(query), args...); err != nil {
		logger.Error("DirectoryRepository:GetManagersByIDs", "error", err)
		return nil, err
	}

	return managers, nil
}

func (r *DirectoryRepository) UpsertManager(ctx context.Context, manager *entity.Manager) error {
	query := `
		INSERT INTO managers (id, name, email, role, timezone)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			role = EXCLUDED.role,
			timezone = EXCLUDED.timezone,
			updated_at = NOW()
	`

	err := r.DB.ExecContext(ctx, query,
		manager.ID, manager.Name, manager.Email, manager.Role, manager.Timezone)
	if err != nil {
		logger.Error("DirectoryRepository:UpsertManager", "error", err)
	}
	return err
}

func (r *DirectoryRepository) CreateDocument(ctx context.Context, doc *entity.CandidateDocument) (*entity.CandidateDocument, error) {
	query := `
		INSERT INTO candidate_documents (candidate_id, file_name, object_key, content_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, candidate_id, file_name, object_key, content_type, size_bytes, created_at
	`

	var created entity.CandidateDocument
	err := r.DB.GetContext(ctx, &created, query,
		doc.CandidateID, doc.FileName, doc.ObjectKey, doc.ContentType, doc.SizeBytes)
	if err != nil {
		logger.Error("DirectoryRepository:CreateDocument", "error", err)
		return nil, err
	}

	return &created, nil
}

func (r *DirectoryRepository) GetDocumentsByCandidateID(ctx context.Context, candidateID string) ([]entity.CandidateDocument, error) {
	query := `
		SELECT id, candidate_id, file_name, object_key, content_type, size_bytes, created_at
		FROM candidate_documents
		WHERE candidate_id = $1
		ORDER BY created_at DESC
	`

	var docs []entity.CandidateDocument
	if err := r.DB.SelectContext(ctx, &docs, query, candidateID); err != nil {
		logger.Error("DirectoryRepository:GetDocumentsByCandidateID", "error", err)
		return nil, err
	}

	return docs, nil
}
