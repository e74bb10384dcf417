package dto

import "time"

// IntervalResponse is one half-open busy or free interval
type IntervalResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BusyTimelineResponse is a person's merged busy timeline in a window
type BusyTimelineResponse struct {
	PersonID    string             `json:"person_id"`
	WindowStart time.Time          `json:"window_start"`
	WindowEnd   time.Time          `json:"window_end"`
	Busy        []IntervalResponse `json:"busy"`
}

// FreeTimeResponse is a person's free slots in a window
type FreeTimeResponse struct {
	PersonID    string             `json:"person_id"`
	WindowStart time.Time          `json:"window_start"`
	WindowEnd   time.Time          `json:"window_end"`
	Free        []IntervalResponse `json:"free"`
}
