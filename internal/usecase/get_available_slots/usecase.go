package get_available_slots

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

// UseCase use case для получения слотов инструктора на день
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      CatalogService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog CatalogService,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: instructor=%s, date=%s", req.InstructorID, req.Date)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.InstructorID) == "" {
		return nil, fmt.Errorf("%w: instructorId is required", ErrInvalidInput)
	}

	// 2. Получаем текущее время; дата трактуется в той же зоне
	now := uc.timeProvider.Now()

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, now.Location())
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	// 3. Получаем инструктора
	instructor, err := uc.catalog.GetInstructor(ctx, req.InstructorID)
	if err != nil {
		if errors.Is(err, catalogService.ErrInstructorNotFound) {
			uc.logger.Warn("GetAvailableSlots: instructor id=%s not found", req.InstructorID)
			return nil, ErrInstructorNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get instructor id=%s: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: failed to get instructor: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:         date,
		InstructorID: instructor.ID,
		Selectable:   calendar.IsDateSelectable(date, instructor.Schedule, now),
		Slots:        []Slot{},
	}

	// 4. Для недоступной даты слотов нет
	if !resp.Selectable {
		uc.logger.Info("GetAvailableSlots: date %s is not selectable for instructor=%s", req.Date, instructor.ID)
		return resp, nil
	}

	// 5. Слоты по расписанию с учётом занятых
	for _, s := range uc.bookingRepo.DaySlots(ctx, instructor.ID, date, instructor.Schedule) {
		resp.Slots = append(resp.Slots, Slot{
			StartTime:       s.StartTime,
			DurationMinutes: domain.SlotStepMinutes,
			Available:       s.Available,
		})
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for instructor=%s, date=%s",
		len(resp.Slots), instructor.ID, req.Date)

	return resp, nil
}
