package entity

import "time"

// TimeInterval is a half-open interval [Start, End) in UTC.
// Invariant: Start < End.
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewTimeInterval normalizes both endpoints to UTC
func NewTimeInterval(start, end time.Time) TimeInterval {
	return TimeInterval{Start: start.UTC(), End: end.UTC()}
}

// IsValid reports whether the interval is non-empty
func (i TimeInterval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Duration returns End - Start
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
