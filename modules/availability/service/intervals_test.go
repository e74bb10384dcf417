package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling-agent/modules/availability/entity"
)

func utc(hour, minute int) time.Time {
	return time.Date(2026, time.March, 2, hour, minute, 0, 0, time.UTC)
}

func iv(startHour, startMin, endHour, endMin int) entity.TimeInterval {
	return entity.TimeInterval{Start: utc(startHour, startMin), End: utc(endHour, endMin)}
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b entity.TimeInterval
		want bool
	}{
		{name: "disjoint", a: iv(9, 0, 10, 0), b: iv(11, 0, 12, 0), want: false},
		{name: "touching endpoints do not overlap", a: iv(9, 0, 10, 0), b: iv(10, 0, 11, 0), want: false},
		{name: "partial overlap", a: iv(9, 0, 10, 30), b: iv(10, 0, 11, 0), want: true},
		{name: "containment", a: iv(9, 0, 12, 0), b: iv(10, 0, 11, 0), want: true},
		{name: "identical", a: iv(9, 0, 10, 0), b: iv(9, 0, 10, 0), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestIntersect(t *testing.T) {
	t.Parallel()

	t.Run("overlapping", func(t *testing.T) {
		t.Parallel()
		got, ok := Intersect(iv(9, 0, 11, 0), iv(10, 0, 12, 0))
		require.True(t, ok)
		assert.Equal(t, iv(10, 0, 11, 0), got)
	})

	t.Run("touching yields nothing", func(t *testing.T) {
		t.Parallel()
		_, ok := Intersect(iv(9, 0, 10, 0), iv(10, 0, 11, 0))
		assert.False(t, ok)
	})

	t.Run("disjoint yields nothing", func(t *testing.T) {
		t.Parallel()
		_, ok := Intersect(iv(9, 0, 10, 0), iv(14, 0, 15, 0))
		assert.False(t, ok)
	})
}

func TestSubtract(t *testing.T) {
	t.Parallel()

	window := iv(9, 0, 18, 0)

	t.Run("no busy means whole window free", func(t *testing.T) {
		t.Parallel()
		free := Subtract(window, nil)
		require.Len(t, free, 1)
		assert.Equal(t, window, free[0])
	})

	t.Run("gaps before, between and after", func(t *testing.T) {
		t.Parallel()
		busy := []entity.TimeInterval{iv(10, 0, 11, 0), iv(13, 0, 14, 0)}
		free := Subtract(window, busy)
		require.Len(t, free, 3)
		assert.Equal(t, iv(9, 0, 10, 0), free[0])
		assert.Equal(t, iv(11, 0, 13, 0), free[1])
		assert.Equal(t, iv(14, 0, 18, 0), free[2])
	})

	t.Run("busy at window edges", func(t *testing.T) {
		t.Parallel()
		busy := []entity.TimeInterval{iv(9, 0, 9, 30), iv(17, 30, 18, 0)}
		free := Subtract(window, busy)
		require.Len(t, free, 1)
		assert.Equal(t, iv(9, 30, 17, 30), free[0])
	})

	t.Run("fully busy window", func(t *testing.T) {
		t.Parallel()
		free := Subtract(window, []entity.TimeInterval{window})
		assert.Empty(t, free)
	})
}

func TestMergePriority(t *testing.T) {
	t.Parallel()

	t.Run("overlapping primary dropped wholesale", func(t *testing.T) {
		t.Parallel()
		// Primary 9:00-11:00 overlaps override 10:00-10:30: the whole
		// primary span must vanish, not just the overlapping part.
		primary := []entity.TimeInterval{iv(9, 0, 11, 0)}
		override := []entity.TimeInterval{iv(10, 0, 10, 30)}

		merged := MergePriority(primary, override)
		require.Len(t, merged, 1)
		assert.Equal(t, iv(10, 0, 10, 30), merged[0])
	})

	t.Run("non-overlapping events from both tiers survive", func(t *testing.T) {
		t.Parallel()
		// Standup 9:00-9:30 primary, client sync 11:00-12:00 override:
		// no conflict, both stay busy.
		primary := []entity.TimeInterval{iv(9, 0, 9, 30)}
		override := []entity.TimeInterval{iv(11, 0, 12, 0)}

		merged := MergePriority(primary, override)
		require.Len(t, merged, 2)
		assert.Equal(t, iv(9, 0, 9, 30), merged[0])
		assert.Equal(t, iv(11, 0, 12, 0), merged[1])
	})

	t.Run("touching is not a conflict", func(t *testing.T) {
		t.Parallel()
		primary := []entity.TimeInterval{iv(9, 0, 10, 0)}
		override := []entity.TimeInterval{iv(10, 0, 11, 0)}

		merged := MergePriority(primary, override)
		// Adjacent intervals coalesce into one busy block.
		require.Len(t, merged, 1)
		assert.Equal(t, iv(9, 0, 11, 0), merged[0])
	})

	t.Run("output sorted by start", func(t *testing.T) {
		t.Parallel()
		primary := []entity.TimeInterval{iv(14, 0, 15, 0)}
		override := []entity.TimeInterval{iv(11, 0, 12, 0), iv(16, 0, 17, 0)}

		merged := MergePriority(primary, override)
		require.Len(t, merged, 3)
		for i := 1; i < len(merged); i++ {
			assert.True(t, merged[i-1].End.Before(merged[i].Start) || merged[i-1].End.Equal(merged[i].Start))
		}
	})

	t.Run("subtract after merge leaves no overlap with either source", func(t *testing.T) {
		t.Parallel()
		window := iv(9, 0, 18, 0)
		primary := []entity.TimeInterval{iv(9, 0, 9, 30), iv(14, 0, 15, 0)}
		override := []entity.TimeInterval{iv(11, 0, 12, 0)}

		merged := MergePriority(primary, override)
		free := Subtract(window, clip(window, merged))

		for _, f := range free {
			for _, b := range append(primary, override...) {
				assert.False(t, Overlaps(f, b), "free %v overlaps busy %v", f, b)
			}
		}
	})
}
