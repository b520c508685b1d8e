package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	"github.com/m04kA/SMC-LessonBooking/internal/ledger"
	"github.com/m04kA/SMC-LessonBooking/pkg/types"
)

// Repository путь записи леджера: каждое изменение сначала сохраняется в хранилище,
// и только после успешного Save применяется в памяти.
// Create и Delete должны вызываться внутри сериализованной транзакции.
type Repository struct {
	ledger Ledger
	store  SnapshotStore
}

// NewRepository создает репозиторий поверх леджера и хранилища
func NewRepository(l Ledger, store SnapshotStore) *Repository {
	return &Repository{ledger: l, store: store}
}

// Load заполняет леджер из хранилища.
// Записи, конфликтующие с уже загруженными, пропускаются и возвращаются вызывающему для логирования.
func (r *Repository) Load(ctx context.Context) (int, []domain.Booking, error) {
	bookings, err := r.store.Load(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	loaded, skipped := r.ledger.Restore(bookings)
	return loaded, skipped, nil
}

// Create сохраняет новое бронирование
func (r *Repository) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	next, err := r.ledger.WithAdded(b)
	if err != nil {
		return domain.Booking{}, mapLedgerError(err)
	}

	if err := r.store.Save(ctx, next); err != nil {
		return domain.Booking{}, fmt.Errorf("%w: Create id=%s: %v", ErrPersistence, b.ID, err)
	}

	if err := r.ledger.Add(b); err != nil {
		return domain.Booking{}, mapLedgerError(err)
	}
	return b, nil
}

// Delete удаляет бронирование и возвращает удалённую запись
func (r *Repository) Delete(ctx context.Context, id string) (domain.Booking, error) {
	rest, removed, err := r.ledger.WithRemoved(id)
	if err != nil {
		return domain.Booking{}, mapLedgerError(err)
	}

	if err := r.store.Save(ctx, rest); err != nil {
		return domain.Booking{}, fmt.Errorf("%w: Delete id=%s: %v", ErrPersistence, id, err)
	}

	if _, err := r.ledger.Remove(id); err != nil {
		return domain.Booking{}, mapLedgerError(err)
	}
	return removed, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(_ context.Context, id string) (domain.Booking, error) {
	b, ok := r.ledger.FindByID(id)
	if !ok {
		return domain.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (r *Repository) IsSlotTaken(_ context.Context, instructorID string, date time.Time, startTime types.TimeString) bool {
	return r.ledger.IsSlotTaken(instructorID, date, startTime)
}

func (r *Repository) AvailableSlots(_ context.Context, instructorID string, date time.Time, schedule domain.WeeklySchedule) []types.TimeString {
	return r.ledger.AvailableSlots(instructorID, date, schedule)
}

func (r *Repository) DaySlots(_ context.Context, instructorID string, date time.Time, schedule domain.WeeklySchedule) []domain.Slot {
	return r.ledger.DaySlots(instructorID, date, schedule)
}

func (r *Repository) ListAll(_ context.Context) []domain.Booking {
	return r.ledger.ListAll()
}

func (r *Repository) ListByInstructor(_ context.Context, instructorID string) []domain.Booking {
	return r.ledger.ListByInstructor(instructorID)
}

func (r *Repository) ListUpcoming(_ context.Context, now time.Time) []domain.Booking {
	return r.ledger.ListUpcoming(now)
}

// Count количество живых бронирований
func (r *Repository) Count() int {
	return r.ledger.Len()
}

func mapLedgerError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrConflict):
		return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
	case errors.Is(err, ledger.ErrDuplicateID):
		return fmt.Errorf("%w: %v", ErrDuplicateID, err)
	case errors.Is(err, ledger.ErrNotFound):
		return ErrBookingNotFound
	default:
		return err
	}
}
