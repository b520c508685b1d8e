package ledger

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/calendar"
	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	"github.com/m04kA/SMC-LessonBooking/pkg/types"
)

// Ledger множество живых бронирований в порядке создания.
// Чтения безопасны параллельно с записью; согласованность "проверка + запись"
// обеспечивается вызывающей стороной через сериализатор транзакций.
type Ledger struct {
	mu       sync.RWMutex
	bookings []domain.Booking
}

func New() *Ledger {
	return &Ledger{}
}

// IsSlotTaken проверяет, есть ли живое бронирование на (инструктор, дата, время)
func (l *Ledger) IsSlotTaken(instructorID string, date time.Time, startTime types.TimeString) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.indexOfSlot(instructorID, date, startTime) >= 0
}

// AvailableSlots слоты дня из расписания минус занятые, в порядке возрастания
func (l *Ledger) AvailableSlots(instructorID string, date time.Time, schedule domain.WeeklySchedule) []types.TimeString {
	all := calendar.GenerateDaySlots(date, schedule)

	l.mu.RLock()
	defer l.mu.RUnlock()

	free := make([]types.TimeString, 0, len(all))
	for _, slot := range all {
		if l.indexOfSlot(instructorID, date, slot) < 0 {
			free = append(free, slot)
		}
	}
	return free
}

// DaySlots все слоты дня с признаком доступности
func (l *Ledger) DaySlots(instructorID string, date time.Time, schedule domain.WeeklySchedule) []domain.Slot {
	all := calendar.GenerateDaySlots(date, schedule)

	l.mu.RLock()
	defer l.mu.RUnlock()

	slots := make([]domain.Slot, 0, len(all))
	for _, slot := range all {
		slots = append(slots, domain.Slot{
			StartTime: slot,
			Available: l.indexOfSlot(instructorID, date, slot) < 0,
		})
	}
	return slots
}

// Add добавляет бронирование в конец леджера
func (l *Ledger) Add(b domain.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkAddLocked(b); err != nil {
		return err
	}
	l.bookings = append(l.bookings, b)
	return nil
}

// Remove удаляет бронирование по ID и возвращает его
func (l *Ledger) Remove(id string) (domain.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOfID(id)
	if idx < 0 {
		return domain.Booking{}, fmt.Errorf("%w: id=%s", ErrNotFound, id)
	}

	removed := l.bookings[idx]
	next := make([]domain.Booking, 0, len(l.bookings)-1)
	next = append(next, l.bookings[:idx]...)
	next = append(next, l.bookings[idx+1:]...)
	l.bookings = next
	return removed, nil
}

// FindByID возвращает копию бронирования
func (l *Ledger) FindByID(id string) (domain.Booking, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx := l.indexOfID(id)
	if idx < 0 {
		return domain.Booking{}, false
	}
	return l.bookings[idx], true
}

// ListAll все бронирования в порядке создания
func (l *Ledger) ListAll() []domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

// ListByInstructor бронирования инструктора в порядке создания
func (l *Ledger) ListByInstructor(instructorID string) []domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Booking, 0)
	for _, b := range l.bookings {
		if b.InstructorID == instructorID {
			out = append(out, b)
		}
	}
	return out
}

// ListUpcoming бронирования с началом не раньше now, по возрастанию начала
func (l *Ledger) ListUpcoming(now time.Time) []domain.Booking {
	type entry struct {
		booking domain.Booking
		start   time.Time
	}

	l.mu.RLock()
	entries := make([]entry, 0, len(l.bookings))
	for _, b := range l.bookings {
		start, err := b.StartsAt()
		if err != nil || start.Before(now) {
			continue
		}
		entries = append(entries, entry{booking: b, start: start})
	}
	l.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].start.Before(entries[j].start)
	})

	out := make([]domain.Booking, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.booking)
	}
	return out
}

// Len количество живых бронирований
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bookings)
}

// Snapshot копия содержимого для сохранения
func (l *Ledger) Snapshot() []domain.Booking {
	return l.ListAll()
}

// Restore заменяет содержимое загруженными бронированиями.
// Записи, нарушающие уникальность ID или слота, пропускаются и возвращаются вторым значением.
func (l *Ledger) Restore(bookings []domain.Booking) (loaded int, skipped []domain.Booking) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.bookings = make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if err := l.checkAddLocked(b); err != nil {
			skipped = append(skipped, b)
			continue
		}
		l.bookings = append(l.bookings, b)
	}
	return len(l.bookings), skipped
}

// WithAdded возвращает содержимое леджера с добавленным b, не изменяя леджер
func (l *Ledger) WithAdded(b domain.Booking) ([]domain.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err := l.checkAddLocked(b); err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(l.bookings)+1)
	out = append(out, l.bookings...)
	return append(out, b), nil
}

// WithRemoved возвращает содержимое леджера без бронирования id, не изменяя леджер
func (l *Ledger) WithRemoved(id string) ([]domain.Booking, domain.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx := l.indexOfID(id)
	if idx < 0 {
		return nil, domain.Booking{}, fmt.Errorf("%w: id=%s", ErrNotFound, id)
	}
	out := make([]domain.Booking, 0, len(l.bookings)-1)
	out = append(out, l.bookings[:idx]...)
	out = append(out, l.bookings[idx+1:]...)
	return out, l.bookings[idx], nil
}

func (l *Ledger) checkAddLocked(b domain.Booking) error {
	if l.indexOfID(b.ID) >= 0 {
		return fmt.Errorf("%w: id=%s", ErrDuplicateID, b.ID)
	}
	if l.indexOfSlot(b.InstructorID, b.Date, b.StartTime) >= 0 {
		return fmt.Errorf("%w: instructor=%s date=%s time=%s",
			ErrConflict, b.InstructorID, b.Date.Format(domain.DateFormat), b.StartTime)
	}
	return nil
}

func (l *Ledger) indexOfID(id string) int {
	for i := range l.bookings {
		if l.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) indexOfSlot(instructorID string, date time.Time, startTime types.TimeString) int {
	for i := range l.bookings {
		if l.bookings[i].OccupiesSlot(instructorID, date, startTime) {
			return i
		}
	}
	return -1
}
