package constants

import "time"

// Context keys
const (
	ContextTokenData = "token_data"
	ContextRequestID = "request_id"
)

// Database defaults
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Redis key prefixes
const (
	RedisKeyCandidate = "directory:candidate:"
	RedisKeyManager   = "directory:manager:"
)

// DirectoryCacheTTL bounds staleness of cached directory lookups;
// lookups are idempotent so expiry is the only invalidation needed.
const DirectoryCacheTTL = 10 * time.Minute

const DefaultTimeout = 10 * time.Second

// Scheduling defaults mirror the request-builder conventions: the search
// window wraps the candidate start date, proposals are capped small.
const (
	DefaultBusinessHoursStart = 9
	DefaultBusinessHoursEnd   = 18
	DefaultDaysBeforeStart    = 3
	DefaultDaysAfterStart     = 7
	DefaultMaxProposals       = 5
	MinSearchWindowDays       = 7
)

// Asynq task types and queues
const (
	TaskInviteDeliver = "invite:deliver"
	QueueInvites      = "invites"
)
