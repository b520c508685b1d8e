package booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	"github.com/m04kA/SMC-LessonBooking/pkg/types"
)

// SnapshotStore граница хранения: список бронирований читается и пишется целиком
type SnapshotStore interface {
	Load(ctx context.Context) ([]domain.Booking, error)
	Save(ctx context.Context, bookings []domain.Booking) error
}

// Ledger леджер живых бронирований в памяти
type Ledger interface {
	IsSlotTaken(instructorID string, date time.Time, startTime types.TimeString) bool
	AvailableSlots(instructorID string, date time.Time, schedule domain.WeeklySchedule) []types.TimeString
	DaySlots(instructorID string, date time.Time, schedule domain.WeeklySchedule) []domain.Slot
	Add(b domain.Booking) error
	Remove(id string) (domain.Booking, error)
	FindByID(id string) (domain.Booking, bool)
	ListAll() []domain.Booking
	ListByInstructor(instructorID string) []domain.Booking
	ListUpcoming(now time.Time) []domain.Booking
	Len() int
	Restore(bookings []domain.Booking) (int, []domain.Booking)
	WithAdded(b domain.Booking) ([]domain.Booking, error)
	WithRemoved(id string) ([]domain.Booking, domain.Booking, error)
}
