package ledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	"github.com/m04kA/SMC-LessonBooking/pkg/types"
)

func schedule9to17() domain.WeeklySchedule {
	var s domain.WeeklySchedule
	for i := range s {
		s[i] = &domain.DayWindow{Start: 9, End: 17}
	}
	return s
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func booking(id, instructor string, date time.Time, at types.TimeString) domain.Booking {
	return domain.Booking{
		ID:           id,
		InstructorID: instructor,
		Date:         date,
		StartTime:    at,
		SessionName:  "60 Minute Lesson",
		Price:        75,
	}
}

func TestLedger_AddAndConflict(t *testing.T) {
	l := New()
	d := day(2025, 7, 20)

	require.NoError(t, l.Add(booking("b1", "ahmet-yilmaz", d, "10:00")))
	assert.True(t, l.IsSlotTaken("ahmet-yilmaz", d, "10:00"))
	assert.False(t, l.IsSlotTaken("ahmet-yilmaz", d, "10:30"))
	assert.False(t, l.IsSlotTaken("mehmet-kaya", d, "10:00"))

	err := l.Add(booking("b2", "ahmet-yilmaz", d, "10:00"))
	assert.ErrorIs(t, err, ErrConflict)

	err = l.Add(booking("b1", "mehmet-kaya", d, "11:00"))
	assert.ErrorIs(t, err, ErrDuplicateID)

	// Другой инструктор в то же время - не конфликт
	require.NoError(t, l.Add(booking("b3", "mehmet-kaya", d, "10:00")))
	assert.Equal(t, 2, l.Len())
}

func TestLedger_SameSlotMatchesDateIgnoringTimeOfDay(t *testing.T) {
	l := New()
	require.NoError(t, l.Add(booking("b1", "ahmet-yilmaz", day(2025, 7, 20), "10:00")))

	noon := time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)
	assert.True(t, l.IsSlotTaken("ahmet-yilmaz", noon, "10:00"))
}

func TestLedger_AvailableSlots(t *testing.T) {
	l := New()
	d := day(2025, 7, 20)
	require.NoError(t, l.Add(booking("b1", "ahmet-yilmaz", d, "10:00")))

	free := l.AvailableSlots("ahmet-yilmaz", d, schedule9to17())
	assert.Len(t, free, 15)
	assert.NotContains(t, free, types.TimeString("10:00"))
	assert.Contains(t, free, types.TimeString("09:30"))
	assert.Contains(t, free, types.TimeString("10:30"))

	other := l.AvailableSlots("ahmet-yilmaz", day(2025, 7, 21), schedule9to17())
	assert.Len(t, other, 16)

	slots := l.DaySlots("ahmet-yilmaz", d, schedule9to17())
	require.Len(t, slots, 16)
	assert.Equal(t, domain.Slot{StartTime: "10:00", Available: false}, slots[2])
	assert.True(t, slots[3].Available)
}

func TestLedger_RemoveRoundTrip(t *testing.T) {
	l := New()
	d := day(2025, 7, 20)
	require.NoError(t, l.Add(booking("b1", "ahmet-yilmaz", d, "10:00")))
	before := l.AvailableSlots("ahmet-yilmaz", d, schedule9to17())

	removed, err := l.Remove("b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", removed.ID)
	assert.False(t, l.IsSlotTaken("ahmet-yilmaz", d, "10:00"))

	after := l.AvailableSlots("ahmet-yilmaz", d, schedule9to17())
	assert.Len(t, after, len(before)+1)
	assert.Contains(t, after, types.TimeString("10:00"))

	_, err = l.Remove("b1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLedger_ListOrdering(t *testing.T) {
	l := New()
	require.NoError(t, l.Add(booking("late", "ahmet-yilmaz", day(2025, 7, 22), "09:00")))
	require.NoError(t, l.Add(booking("past", "ahmet-yilmaz", day(2025, 7, 1), "09:00")))
	require.NoError(t, l.Add(booking("early", "mehmet-kaya", day(2025, 7, 20), "16:30")))

	all := l.ListAll()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"late", "past", "early"}, ids(all))

	assert.Equal(t, []string{"late", "past"}, ids(l.ListByInstructor("ahmet-yilmaz")))
	assert.Empty(t, l.ListByInstructor("nobody"))

	now := time.Date(2025, 7, 18, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"early", "late"}, ids(l.ListUpcoming(now)))
}

func TestLedger_FindByIDReturnsCopy(t *testing.T) {
	l := New()
	require.NoError(t, l.Add(booking("b1", "ahmet-yilmaz", day(2025, 7, 20), "10:00")))

	got, ok := l.FindByID("b1")
	require.True(t, ok)
	got.Price = 0

	again, _ := l.FindByID("b1")
	assert.Equal(t, 75.0, again.Price)

	_, ok = l.FindByID("missing")
	assert.False(t, ok)
}

func TestLedger_Restore(t *testing.T) {
	l := New()
	d := day(2025, 7, 20)

	loaded, skipped := l.Restore([]domain.Booking{
		booking("b1", "ahmet-yilmaz", d, "10:00"),
		booking("b2", "ahmet-yilmaz", d, "10:00"),
		booking("b1", "mehmet-kaya", d, "11:00"),
		booking("b3", "mehmet-kaya", d, "11:00"),
	})

	assert.Equal(t, 2, loaded)
	assert.Equal(t, []string{"b2", "b1"}, ids(skipped))
	assert.Equal(t, []string{"b1", "b3"}, ids(l.Snapshot()))
}

func TestLedger_WithAddedDoesNotMutate(t *testing.T) {
	l := New()
	d := day(2025, 7, 20)
	require.NoError(t, l.Add(booking("b1", "ahmet-yilmaz", d, "10:00")))

	next, err := l.WithAdded(booking("b2", "ahmet-yilmaz", d, "11:00"))
	require.NoError(t, err)
	assert.Len(t, next, 2)
	assert.Equal(t, 1, l.Len())

	_, err = l.WithAdded(booking("b3", "ahmet-yilmaz", d, "10:00"))
	assert.ErrorIs(t, err, ErrConflict)

	rest, removed, err := l.WithRemoved("b1")
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, "b1", removed.ID)
	assert.Equal(t, 1, l.Len())
}

func TestLedger_ConcurrentReaders(t *testing.T) {
	l := New()
	d := day(2025, 7, 20)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = l.AvailableSlots("ahmet-yilmaz", d, schedule9to17())
			_ = l.ListAll()
		}
	}()
	for i := 0; i < 16; i++ {
		slot, err := types.TimeString("09:00").AddMinutes(i * 30)
		require.NoError(t, err)
		require.NoError(t, l.Add(booking(fmt.Sprintf("b%d", i), "ahmet-yilmaz", d, slot)))
	}
	<-done

	assert.Empty(t, l.AvailableSlots("ahmet-yilmaz", d, schedule9to17()))
}

func ids(bookings []domain.Booking) []string {
	out := make([]string, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ID)
	}
	return out
}
