package cancel_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (domain.Booking, error)
	Delete(ctx context.Context, id string) (domain.Booking, error)
	Count() int
}

// CancellationPolicy правило отмены
type CancellationPolicy interface {
	CanCancel(b domain.Booking, now time.Time) bool
	CancellationNotice() time.Duration
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикация событий бронирования
type EventPublisher interface {
	PublishBookingCancelled(ctx context.Context, booking domain.Booking) error
}

// MetricsRecorder метрики операций
type MetricsRecorder interface {
	RecordBookingOperation(operation, outcome string)
	SetLiveBookings(n int)
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
