package get_month_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	"github.com/m04kA/SMC-LessonBooking/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	AvailableSlots(ctx context.Context, instructorID string, date time.Time, schedule domain.WeeklySchedule) []types.TimeString
}

// CatalogService интерфейс справочника
type CatalogService interface {
	GetInstructor(ctx context.Context, id string) (*domain.Instructor, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
