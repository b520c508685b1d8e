package calendar

import (
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	"github.com/m04kA/SMC-LessonBooking/pkg/types"
)

// IsDateSelectable дата выбираема, если она не раньше today и у инструктора есть непустое окно в этот день недели.
// Сравниваются только календарные даты, время суток игнорируется.
func IsDateSelectable(date time.Time, schedule domain.WeeklySchedule, today time.Time) bool {
	if IsDateInPast(date, today) {
		return false
	}
	_, _, ok := openWindow(schedule, date.Weekday())
	return ok
}

// GenerateDaySlots генерирует все стартовые позиции дня с шагом 30 минут на полуинтервале [start, end).
// Для окна {9, 17}: 09:00, 09:30, ..., 16:30. Окно start == end не даёт слотов.
func GenerateDaySlots(date time.Time, schedule domain.WeeklySchedule) []types.TimeString {
	start, end, ok := openWindow(schedule, date.Weekday())
	if !ok {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0, (end-start)*60/domain.SlotStepMinutes)
	for m := start * 60; m < end*60; m += domain.SlotStepMinutes {
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}
	return slots
}

// IsOnSlotGrid проверяет, что время кратно шагу сетки
func IsOnSlotGrid(t types.TimeString) bool {
	m, err := t.Minutes()
	if err != nil {
		return false
	}
	return m%domain.SlotStepMinutes == 0
}

// IsDateInPast проверяет, что дата раньше сегодняшнего дня
func IsDateInPast(date, today time.Time) bool {
	return domain.DateOnly(date).Before(domain.DateOnly(today.In(date.Location())))
}

// openWindow рабочие часы дня; окно без часов (start >= end) считается выходным
func openWindow(schedule domain.WeeklySchedule, weekday time.Weekday) (start, end int, ok bool) {
	window := schedule.ForWeekday(weekday)
	if window == nil {
		return 0, 0, false
	}
	start, end = clampHour(window.Start), clampHour(window.End)
	return start, end, start < end
}

func clampHour(h int) int {
	if h < 0 {
		return 0
	}
	if h > domain.HoursPerDay {
		return domain.HoursPerDay
	}
	return h
}
