package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	"github.com/m04kA/SMC-LessonBooking/pkg/types"
)

func everyDay(start, end int) domain.WeeklySchedule {
	var s domain.WeeklySchedule
	for i := range s {
		s[i] = &domain.DayWindow{Start: start, End: end}
	}
	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateDaySlots(t *testing.T) {
	t.Run("half-open window", func(t *testing.T) {
		slots := GenerateDaySlots(date(2025, 7, 20), everyDay(9, 17))

		assert.Len(t, slots, 16)
		assert.Equal(t, types.TimeString("09:00"), slots[0])
		assert.Equal(t, types.TimeString("09:30"), slots[1])
		assert.Equal(t, types.TimeString("16:30"), slots[len(slots)-1])
		assert.NotContains(t, slots, types.TimeString("17:00"))
	})

	t.Run("one hour window", func(t *testing.T) {
		slots := GenerateDaySlots(date(2025, 7, 20), everyDay(9, 10))
		assert.Equal(t, []types.TimeString{"09:00", "09:30"}, slots)
	})

	t.Run("start equals end", func(t *testing.T) {
		assert.Empty(t, GenerateDaySlots(date(2025, 7, 20), everyDay(12, 12)))
	})

	t.Run("full day ends at 23:30", func(t *testing.T) {
		slots := GenerateDaySlots(date(2025, 7, 20), everyDay(0, 24))
		assert.Len(t, slots, 48)
		assert.Equal(t, types.TimeString("23:30"), slots[47])
	})

	t.Run("no window for weekday", func(t *testing.T) {
		var s domain.WeeklySchedule
		s[time.Monday] = &domain.DayWindow{Start: 9, End: 17}

		// 2025-07-20 воскресенье
		assert.Empty(t, GenerateDaySlots(date(2025, 7, 20), s))
		assert.Len(t, GenerateDaySlots(date(2025, 7, 21), s), 16)
	})
}

func TestIsDateSelectable(t *testing.T) {
	schedule := everyDay(9, 17)
	today := time.Date(2025, 7, 18, 15, 45, 0, 0, time.UTC)

	assert.False(t, IsDateSelectable(date(2025, 7, 17), schedule, today), "yesterday")
	assert.True(t, IsDateSelectable(date(2025, 7, 18), schedule, today), "today regardless of time of day")
	assert.True(t, IsDateSelectable(date(2025, 7, 20), schedule, today))

	var weekdaysOnly domain.WeeklySchedule
	weekdaysOnly[time.Monday] = &domain.DayWindow{Start: 9, End: 17}
	assert.False(t, IsDateSelectable(date(2025, 7, 20), weekdaysOnly, today), "sunday without window")
	assert.True(t, IsDateSelectable(date(2025, 7, 21), weekdaysOnly, today))

	t.Run("empty window is a day off", func(t *testing.T) {
		var s domain.WeeklySchedule
		s[time.Sunday] = &domain.DayWindow{Start: 12, End: 12}
		s[time.Monday] = &domain.DayWindow{Start: 17, End: 9}

		assert.False(t, IsDateSelectable(date(2025, 7, 20), s, today))
		assert.False(t, IsDateSelectable(date(2025, 7, 21), s, today))
	})
}

func TestIsOnSlotGrid(t *testing.T) {
	assert.True(t, IsOnSlotGrid("10:00"))
	assert.True(t, IsOnSlotGrid("10:30"))
	assert.False(t, IsOnSlotGrid("10:15"))
	assert.False(t, IsOnSlotGrid("bad"))
}
