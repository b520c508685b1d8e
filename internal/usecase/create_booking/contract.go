package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	"github.com/m04kA/SMC-LessonBooking/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	IsSlotTaken(ctx context.Context, instructorID string, date time.Time, startTime types.TimeString) bool
	GetByID(ctx context.Context, id string) (domain.Booking, error)
	Create(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	Count() int
}

// CatalogService интерфейс справочника
type CatalogService interface {
	GetInstructor(ctx context.Context, id string) (*domain.Instructor, error)
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
}

// BookingPolicy правила допуска бронирования
type BookingPolicy interface {
	ValidateBookingRequest(req domain.BookingRequest, instructor *domain.Instructor, now time.Time) (domain.ValidatedRequest, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикация событий бронирования
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, booking domain.Booking) error
}

// MetricsRecorder метрики операций
type MetricsRecorder interface {
	RecordBookingOperation(operation, outcome string)
	SetLiveBookings(n int)
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
