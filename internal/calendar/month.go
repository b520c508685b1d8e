package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
)

// ErrInvalidYearMonth возвращается при некорректном формате месяца
var ErrInvalidYearMonth = errors.New("calendar: invalid year-month, expected YYYY-MM")

// YearMonth календарный месяц без привязки к часовому поясу
type YearMonth struct {
	Year  int
	Month time.Month
}

// ParseYearMonth парсит строку формата YYYY-MM
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(domain.MonthFormat, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: %q", ErrInvalidYearMonth, s)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// YearMonthOf возвращает месяц, содержащий t
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// AddMonths сдвигает месяц на n (n может быть отрицательным), с переносом года
func (ym YearMonth) AddMonths(n int) YearMonth {
	idx := ym.Year*12 + int(ym.Month-1) + n
	year, month := idx/12, idx%12
	if month < 0 {
		month += 12
		year--
	}
	return YearMonth{Year: year, Month: time.Month(month + 1)}
}

func (ym YearMonth) Next() YearMonth {
	return ym.AddMonths(1)
}

func (ym YearMonth) Prev() YearMonth {
	return ym.AddMonths(-1)
}

// DaysIn количество дней в месяце по григорианскому календарю
func (ym YearMonth) DaysIn() int {
	// нулевой день следующего месяца = последний день текущего
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date возвращает дату day этого месяца в полночь в указанном поясе
func (ym YearMonth) Date(day int, loc *time.Location) time.Time {
	return time.Date(ym.Year, ym.Month, day, 0, 0, 0, 0, loc)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// GridCell ячейка сетки месяца; Day == 0 для пустой ведущей ячейки
type GridCell struct {
	Day int
}

func (c GridCell) IsBlank() bool {
	return c.Day == 0
}

// MonthGrid сетка месяца: ведущие пустые ячейки, затем по ячейке на каждый день
type MonthGrid struct {
	Month         YearMonth
	FirstWeekday  time.Weekday
	LeadingBlanks int
	Cells         []GridCell
}

// GenerateMonthGrid строит сетку месяца для недели, начинающейся с firstWeekday.
// Количество пустых ячеек = (день недели 1-го числа - firstWeekday) mod 7.
func GenerateMonthGrid(ym YearMonth, firstWeekday time.Weekday) MonthGrid {
	firstWeekday = time.Weekday((int(firstWeekday)%7 + 7) % 7)
	first := ym.Date(1, time.UTC).Weekday()
	blanks := (int(first) - int(firstWeekday) + 7) % 7
	days := ym.DaysIn()

	cells := make([]GridCell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		cells = append(cells, GridCell{})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, GridCell{Day: d})
	}

	return MonthGrid{
		Month:         ym,
		FirstWeekday:  firstWeekday,
		LeadingBlanks: blanks,
		Cells:         cells,
	}
}
