package database

import (
	"context"

	"scheduling-agent/core/logger"
)

// EnsureSchema creates the tables this service owns if they do not exist.
// Proposals are intentionally absent: they are computed per request and
// never persisted.
func EnsureSchema(ctx context.Context, db Database) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS candidates (
			id              TEXT PRIMARY KEY,
			name            TEXT NOT NULL,
			email           TEXT NOT NULL,
			role_title      TEXT NOT NULL DEFAULT 'Employee',
			timezone        TEXT NOT NULL,
			start_date      DATE NOT NULL,
			hiring_manager_id    TEXT NOT NULL DEFAULT '',
			reporting_manager_id TEXT NOT NULL DEFAULT '',
			hrbp_id              TEXT NOT NULL DEFAULT '',
			created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS managers (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			role       TEXT NOT NULL,
			timezone   TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS calendar_events (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			owner_id   TEXT NOT NULL,
			source     TEXT NOT NULL,
			title      TEXT NOT NULL,
			start_time TIMESTAMPTZ NOT NULL,
			end_time   TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_calendar_events_owner_window
			ON calendar_events (owner_id, source, start_time)`,
		`CREATE TABLE IF NOT EXISTS invites (
			id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			reference    TEXT NOT NULL UNIQUE,
			candidate_id TEXT NOT NULL,
			meeting_type TEXT NOT NULL,
			subject      TEXT NOT NULL,
			body         TEXT NOT NULL,
			recipients   TEXT NOT NULL,
			start_time   TIMESTAMPTZ NOT NULL,
			end_time     TIMESTAMPTZ NOT NULL,
			status       TEXT NOT NULL DEFAULT 'queued',
			sent_at      TIMESTAMPTZ,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS candidate_documents (
			id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			candidate_id TEXT NOT NULL,
			file_name    TEXT NOT NULL,
			object_key   TEXT NOT NULL,
			content_type TEXT NOT NULL,
			size_bytes   BIGINT NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS api_clients (
			id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			client_id   TEXT NOT NULL UNIQUE,
			secret_hash TEXT NOT NULL,
			name        TEXT NOT NULL,
			is_active   BOOLEAN NOT NULL DEFAULT TRUE,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if err := db.ExecContext(ctx, stmt); err != nil {
			logger.Error("EnsureSchema:Exec:Error", "error", err)
			return err
		}
	}

	logger.Info("Database schema ensured")
	return nil
}
