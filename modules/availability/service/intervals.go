package service

import (
	"sort"

	"scheduling-agent/modules/availability/entity"
)

// Interval algebra on half-open UTC intervals. All functions are pure.

// Overlaps reports whether two intervals share any time.
// Touching endpoints do not overlap.
func Overlaps(a, b entity.TimeInterval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Intersect returns the common sub-interval of a and b, if any
func Intersect(a, b entity.TimeInterval) (entity.TimeInterval, bool) {
	start := a.Start
	if b.Start.After(start) {
		start = b.Start
	}
	end := a.End
	if b.End.Before(end) {
		end = b.End
	}
	if !start.Before(end) {
		return entity.TimeInterval{}, false
	}
	return entity.TimeInterval{Start: start, End: end}, true
}

// Subtract returns the free gaps left in window after removing busy.
// busy must be sorted by start, disjoint, and clipped to the window;
// this function does not merge.
func Subtract(window entity.TimeInterval, busy []entity.TimeInterval) []entity.TimeInterval {
	free := []entity.TimeInterval{}

	cursor := window.Start
	for _, b := range busy {
		if b.Start.After(cursor) {
			free = append(free, entity.TimeInterval{Start: cursor, End: b.Start})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}

	if cursor.Before(window.End) {
		free = append(free, entity.TimeInterval{Start: cursor, End: window.End})
	}

	return free
}

// MergePriority combines two busy lists into one disjoint, start-sorted
// list. Override intervals are kept; a primary interval overlapping ANY
// override is dropped wholesale, not trimmed. Surviving intervals that
// still overlap within a tier are coalesced so the output is disjoint.
func MergePriority(primary, override []entity.TimeInterval) []entity.TimeInterval {
	merged := make([]entity.TimeInterval, 0, len(primary)+len(override))
	merged = append(merged, override...)

	for _, p := range primary {
		conflicts := false
		for _, o := range override {
			if Overlaps(p, o) {
				conflicts = true
				break
			}
		}
		if !conflicts {
			merged = append(merged, p)
		}
	}

	return coalesce(merged)
}

// coalesce sorts intervals by start and merges any that overlap or touch
func coalesce(intervals []entity.TimeInterval) []entity.TimeInterval {
	if len(intervals) == 0 {
		return intervals
	}

	sorted := make([]entity.TimeInterval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	out := []entity.TimeInterval{sorted[0]}
	for _, cur := range sorted[1:] {
		last := &out[len(out)-1]
		if cur.Start.After(last.End) {
			out = append(out, cur)
			continue
		}
		if cur.End.After(last.End) {
			last.End = cur.End
		}
	}

	return out
}

// clip trims each interval to the window, dropping those entirely outside
func clip(window entity.TimeInterval, intervals []entity.TimeInterval) []entity.TimeInterval {
	out := make([]entity.TimeInterval, 0, len(intervals))
	for _, iv := range intervals {
		clipped, ok := Intersect(window, iv)
		if ok {
			out = append(out, clipped)
		}
	}
	return out
}
