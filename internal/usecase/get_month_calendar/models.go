package get_month_calendar

import (
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/calendar"
)

// Request модель запроса сетки месяца
type Request struct {
	InstructorID string
	Month        string // YYYY-MM; пустая строка - текущий месяц
}

// Response сетка месяца с отметками по дням
type Response struct {
	InstructorID  string
	Month         calendar.YearMonth
	PrevMonth     calendar.YearMonth
	NextMonth     calendar.YearMonth
	FirstWeekday  time.Weekday
	LeadingBlanks int
	Days          []Day
}

// Day ячейка календаря; пустые ведущие ячейки имеют Day == 0
type Day struct {
	Day        int
	Date       time.Time
	Selectable bool
	Today      bool
	FreeSlots  int
}
