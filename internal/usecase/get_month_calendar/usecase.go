package get_month_calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/calendar"
	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	catalogService "github.com/m04kA/SMC-LessonBooking/internal/service/catalog"
)

// UseCase use case для построения календаря месяца
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      CatalogService
	timeProvider TimeProvider
	firstWeekday time.Weekday
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog CatalogService,
	timeProvider TimeProvider,
	firstWeekday time.Weekday,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		timeProvider: timeProvider,
		firstWeekday: firstWeekday,
		logger:       logger,
	}
}

// Execute строит сетку месяца и отмечает выбираемые дни, сегодняшний день и число свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthCalendar: instructor=%s, month=%s", req.InstructorID, req.Month)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.InstructorID) == "" {
		return nil, fmt.Errorf("%w: instructorId is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 2. Месяц из запроса или текущий
	month := calendar.YearMonthOf(now)
	if req.Month != "" {
		parsed, err := calendar.ParseYearMonth(req.Month)
		if err != nil {
			uc.logger.Warn("GetMonthCalendar: invalid month %q: %v", req.Month, err)
			return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, req.Month)
		}
		month = parsed
	}

	// 3. Получаем инструктора
	instructor, err := uc.catalog.GetInstructor(ctx, req.InstructorID)
	if err != nil {
		if errors.Is(err, catalogService.ErrInstructorNotFound) {
			uc.logger.Warn("GetMonthCalendar: instructor id=%s not found", req.InstructorID)
			return nil, ErrInstructorNotFound
		}
		uc.logger.Error("GetMonthCalendar: failed to get instructor id=%s: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: failed to get instructor: %v", ErrInternal, err)
	}

	// 4. Сетка и отметки по дням
	grid := calendar.GenerateMonthGrid(month, uc.firstWeekday)
	days := make([]Day, 0, len(grid.Cells))
	for _, cell := range grid.Cells {
		if cell.IsBlank() {
			days = append(days, Day{})
			continue
		}

		date := month.Date(cell.Day, now.Location())
		day := Day{
			Day:        cell.Day,
			Date:       date,
			Selectable: calendar.IsDateSelectable(date, instructor.Schedule, now),
			Today:      domain.SameDate(date, now),
		}
		if day.Selectable {
			day.FreeSlots = len(uc.bookingRepo.AvailableSlots(ctx, instructor.ID, date, instructor.Schedule))
		}
		days = append(days, day)
	}

	return &Response{
		InstructorID:  instructor.ID,
		Month:         month,
		PrevMonth:     month.Prev(),
		NextMonth:     month.Next(),
		FirstWeekday:  grid.FirstWeekday,
		LeadingBlanks: grid.LeadingBlanks,
		Days:          days,
	}, nil
}
