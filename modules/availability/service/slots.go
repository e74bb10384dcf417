package service

import (
	"time"

	"scheduling-agent/modules/availability/entity"
)

// IntersectAll folds N participants' free-slot lists into the slots where
// everyone is free. Zero lists yields nil (the caller substitutes the
// subject's own availability); one list is returned unchanged. The
// pairwise fold is O(|A|*|B|); per-person slot counts are bounded by
// business days times gaps per day, so brute force beats an interval
// tree here.
func IntersectAll(lists [][]entity.FreeSlot) []entity.FreeSlot {
	if len(lists) == 0 {
		return nil
	}

	result := lists[0]
	for _, next := range lists[1:] {
		result = intersectPair(result, next)
	}
	return result
}

func intersectPair(a, b []entity.FreeSlot) []entity.FreeSlot {
	result := []entity.FreeSlot{}
	for _, sa := range a {
		for _, sb := range b {
			common, ok := Intersect(sa.Interval, sb.Interval)
			if !ok {
				continue
			}
			result = append(result, entity.FreeSlot{
				Interval:     common,
				Participants: entity.UnionParticipants(sa.Participants, sb.Participants),
				Origin:       entity.OriginIntersection,
			})
		}
	}
	return result
}

// SliceByDuration cuts each slot into contiguous sub-slots of exactly
// durationMinutes, aligned to the slot start. A tail remainder shorter
// than the duration is dropped. Participants and origin carry through.
func SliceByDuration(slots []entity.FreeSlot, durationMinutes int) []entity.FreeSlot {
	if durationMinutes <= 0 {
		return []entity.FreeSlot{}
	}

	duration := time.Duration(durationMinutes) * time.Minute
	result := []entity.FreeSlot{}

	for _, slot := range slots {
		start := slot.Interval.Start
		for !start.Add(duration).After(slot.Interval.End) {
			result = append(result, entity.FreeSlot{
				Interval:     entity.TimeInterval{Start: start, End: start.Add(duration)},
				Participants: slot.Participants,
				Origin:       slot.Origin,
			})
			start = start.Add(duration)
		}
	}

	return result
}
