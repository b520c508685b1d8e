package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// DaySlots возвращает все слоты дня по расписанию с признаком занятости
	DaySlots(ctx context.Context, instructorID string, date time.Time, schedule domain.WeeklySchedule) []domain.Slot
}

// CatalogService интерфейс справочника
type CatalogService interface {
	GetInstructor(ctx context.Context, id string) (*domain.Instructor, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
