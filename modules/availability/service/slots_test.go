package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling-agent/modules/availability/entity"
)

func freeSlot(startHour, startMin, endHour, endMin int, participants ...string) entity.FreeSlot {
	return entity.NewFreeSlot(iv(startHour, startMin, endHour, endMin), participants, entity.OriginBusinessHours)
}

func intervalsOf(slots []entity.FreeSlot) []entity.TimeInterval {
	out := make([]entity.TimeInterval, len(slots))
	for i, s := range slots {
		out[i] = s.Interval
	}
	return out
}

func TestIntersectAll(t *testing.T) {
	t.Parallel()

	t.Run("zero lists yields nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, IntersectAll(nil))
	})

	t.Run("single list returned unchanged", func(t *testing.T) {
		t.Parallel()
		list := []entity.FreeSlot{freeSlot(9, 0, 12, 0, "cand_001")}
		got := IntersectAll([][]entity.FreeSlot{list})
		assert.Equal(t, list, got)
	})

	t.Run("pairwise intersection unions participants", func(t *testing.T) {
		t.Parallel()
		a := []entity.FreeSlot{freeSlot(9, 0, 12, 0, "cand_001")}
		b := []entity.FreeSlot{freeSlot(10, 0, 14, 0, "mgr_001")}

		got := IntersectAll([][]entity.FreeSlot{a, b})
		require.Len(t, got, 1)
		assert.Equal(t, iv(10, 0, 12, 0), got[0].Interval)
		assert.Equal(t, []string{"cand_001", "mgr_001"}, got[0].Participants)
		assert.Equal(t, entity.OriginIntersection, got[0].Origin)
	})

	t.Run("commutative up to participant labels", func(t *testing.T) {
		t.Parallel()
		a := []entity.FreeSlot{freeSlot(9, 0, 11, 0, "a"), freeSlot(13, 0, 16, 0, "a")}
		b := []entity.FreeSlot{freeSlot(10, 0, 14, 0, "b")}

		ab := IntersectAll([][]entity.FreeSlot{a, b})
		ba := IntersectAll([][]entity.FreeSlot{b, a})
		assert.ElementsMatch(t, intervalsOf(ab), intervalsOf(ba))
	})

	t.Run("three participants fold", func(t *testing.T) {
		t.Parallel()
		a := []entity.FreeSlot{freeSlot(9, 0, 12, 0, "a")}
		b := []entity.FreeSlot{freeSlot(10, 0, 12, 0, "b")}
		c := []entity.FreeSlot{freeSlot(11, 0, 13, 0, "c")}

		got := IntersectAll([][]entity.FreeSlot{a, b, c})
		require.Len(t, got, 1)
		assert.Equal(t, iv(11, 0, 12, 0), got[0].Interval)
		assert.Equal(t, []string{"a", "b", "c"}, got[0].Participants)
	})

	t.Run("no common time yields empty", func(t *testing.T) {
		t.Parallel()
		a := []entity.FreeSlot{freeSlot(9, 0, 10, 0, "a")}
		b := []entity.FreeSlot{freeSlot(10, 0, 11, 0, "b")}
		assert.Empty(t, IntersectAll([][]entity.FreeSlot{a, b}))
	})
}

func TestSliceByDuration(t *testing.T) {
	t.Parallel()

	t.Run("exact division", func(t *testing.T) {
		t.Parallel()
		slots := SliceByDuration([]entity.FreeSlot{freeSlot(9, 0, 10, 0, "a")}, 30)
		require.Len(t, slots, 2)
		assert.Equal(t, iv(9, 0, 9, 30), slots[0].Interval)
		assert.Equal(t, iv(9, 30, 10, 0), slots[1].Interval)
	})

	t.Run("remainder dropped", func(t *testing.T) {
		t.Parallel()
		// A 70-minute gap with 45-minute meetings: one slot, 25 minutes wasted.
		slots := SliceByDuration([]entity.FreeSlot{freeSlot(9, 0, 10, 10, "a")}, 45)
		require.Len(t, slots, 1)
		assert.Equal(t, iv(9, 0, 9, 45), slots[0].Interval)
	})

	t.Run("gap shorter than duration yields nothing", func(t *testing.T) {
		t.Parallel()
		slots := SliceByDuration([]entity.FreeSlot{freeSlot(9, 0, 9, 20, "a")}, 30)
		assert.Empty(t, slots)
	})

	t.Run("sub-slots never overlap and keep exact duration", func(t *testing.T) {
		t.Parallel()
		slots := SliceByDuration([]entity.FreeSlot{freeSlot(9, 0, 13, 45, "a", "b")}, 45)
		require.NotEmpty(t, slots)
		for i, s := range slots {
			assert.Equal(t, 45*60.0, s.Interval.Duration().Seconds())
			assert.Equal(t, []string{"a", "b"}, s.Participants)
			if i > 0 {
				assert.False(t, Overlaps(slots[i-1].Interval, s.Interval))
			}
		}
	})

	t.Run("non-positive duration yields nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, SliceByDuration([]entity.FreeSlot{freeSlot(9, 0, 12, 0, "a")}, 0))
	})
}
