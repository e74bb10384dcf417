package entity

import "sort"

// SlotOrigin records which stage produced a free slot
type SlotOrigin string

const (
	OriginBusinessHours SlotOrigin = "business_hours"
	OriginIntersection  SlotOrigin = "intersection"
)

// FreeSlot is a period in which every listed participant is free.
// Immutable once created; Participants is kept sorted for deterministic
// labeling regardless of fold order.
type FreeSlot struct {
	Interval     TimeInterval `json:"interval"`
	Participants []string     `json:"participants"`
	Origin       SlotOrigin   `json:"origin"`
}

// NewFreeSlot builds a slot with a sorted copy of the participant ids
func NewFreeSlot(interval TimeInterval, participants []string, origin SlotOrigin) FreeSlot {
	ids := make([]string, len(participants))
	copy(ids, participants)
	sort.Strings(ids)
	return FreeSlot{Interval: interval, Participants: ids, Origin: origin}
}

// UnionParticipants merges two participant id sets into one sorted set
func UnionParticipants(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	merged := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}
	sort.Strings(merged)
	return merged
}
