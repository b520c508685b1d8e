package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований (только чтение)
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (domain.Booking, error)
	ListAll(ctx context.Context) []domain.Booking
	ListByInstructor(ctx context.Context, instructorID string) []domain.Booking
	ListUpcoming(ctx context.Context, now time.Time) []domain.Booking
}

// CatalogService интерфейс справочника
type CatalogService interface {
	GetInstructor(ctx context.Context, id string) (*domain.Instructor, error)
}

// CancellationPolicy правило отмены, используется для признака canCancel
type CancellationPolicy interface {
	CanCancel(b domain.Booking, now time.Time) bool
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
