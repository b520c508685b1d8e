package get_month_calendar

import (
	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	getMonthCalendar "github.com/m04kA/SMC-LessonBooking/internal/usecase/get_month_calendar"
)

// MonthCalendarResponse HTTP response model
type MonthCalendarResponse struct {
	InstructorID  string        `json:"proId"`
	Month         string        `json:"month"`
	PrevMonth     string        `json:"prevMonth"`
	NextMonth     string        `json:"nextMonth"`
	FirstWeekday  int           `json:"firstWeekday"` // 0 = воскресенье
	LeadingBlanks int           `json:"leadingBlanks"`
	Days          []CalendarDay `json:"days"`
}

// CalendarDay ячейка сетки; для пустой ячейки day = 0 и date не заполняется
type CalendarDay struct {
	Day        int    `json:"day"`
	Date       string `json:"date,omitempty"`
	Selectable bool   `json:"selectable"`
	Today      bool   `json:"today"`
	FreeSlots  int    `json:"freeSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthCalendar.Response) *MonthCalendarResponse {
	days := make([]CalendarDay, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = CalendarDay{
			Day:        d.Day,
			Selectable: d.Selectable,
			Today:      d.Today,
			FreeSlots:  d.FreeSlots,
		}
		if d.Day != 0 {
			days[i].Date = d.Date.Format(domain.DateFormat)
		}
	}

	return &MonthCalendarResponse{
		InstructorID:  resp.InstructorID,
		Month:         resp.Month.String(),
		PrevMonth:     resp.PrevMonth.String(),
		NextMonth:     resp.NextMonth.String(),
		FirstWeekday:  int(resp.FirstWeekday),
		LeadingBlanks: resp.LeadingBlanks,
		Days:          days,
	}
}
