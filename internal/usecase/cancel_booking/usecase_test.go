package cancel_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LessonBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-LessonBooking/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-LessonBooking/internal/ledger"
	"github.com/m04kA/SMC-LessonBooking/internal/policy"
	catalogService "github.com/m04kA/SMC-LessonBooking/internal/service/catalog"
	"github.com/m04kA/SMC-LessonBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-LessonBooking/pkg/clock"
	"github.com/m04kA/SMC-LessonBooking/pkg/logger"
	"github.com/m04kA/SMC-LessonBooking/pkg/metrics"
	"github.com/m04kA/SMC-LessonBooking/pkg/txmanager"
)

type failingStore struct {
	*snapshot.MemoryStore
	fail bool
}

func (s *failingStore) Save(ctx context.Context, bookings []domain.Booking) error {
	if s.fail {
		return errors.New("disk full")
	}
	return s.MemoryStore.Save(ctx, bookings)
}

type recordingPublisher struct {
	mu        sync.Mutex
	created   []domain.Booking
	cancelled []domain.Booking
}

func (p *recordingPublisher) PublishBookingCreated(_ context.Context, b domain.Booking) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, b)
	return nil
}

func (p *recordingPublisher) PublishBookingCancelled(_ context.Context, b domain.Booking) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelled = append(p.cancelled, b)
	return nil
}

type fixture struct {
	create    *create_booking.UseCase
	cancel    *UseCase
	repo      *bookingRepo.Repository
	store     *failingStore
	publisher *recordingPublisher
	clock     *clock.Fixed
}

var lessonDay = time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)

func newFixture() *fixture {
	log := logger.NewNop()

	var schedule domain.WeeklySchedule
	for i := range schedule {
		schedule[i] = &domain.DayWindow{Start: 9, End: 17}
	}
	catalog := &domain.Catalog{
		Venues:  []domain.Venue{{ID: "cornelia-diamond"}},
		Courses: []domain.Course{{ID: "carya-golf"}},
		Instructors: []domain.Instructor{{
			ID:           "ahmet-yilmaz",
			Schedule:     schedule,
			SessionTypes: []domain.SessionType{{Name: "60 Minute Lesson", Price: 75, DurationMinutes: 60}},
		}},
	}

	store := &failingStore{MemoryStore: snapshot.NewMemoryStore(time.UTC)}
	repo := bookingRepo.NewRepository(ledger.New(), store)
	pol := policy.New(0)
	tx := txmanager.NewTransactionManager()
	pub := &recordingPublisher{}
	clk := &clock.Fixed{At: time.Date(2025, 7, 18, 9, 0, 0, 0, time.UTC)}
	var m *metrics.Metrics

	return &fixture{
		create:    create_booking.NewUseCase(repo, catalogService.NewService(catalog, log), pol, tx, pub, m, clk, 0, log),
		cancel:    NewUseCase(repo, pol, tx, pub, m, clk, log),
		repo:      repo,
		store:     store,
		publisher: pub,
		clock:     clk,
	}
}

func (f *fixture) book(t *testing.T) string {
	t.Helper()
	resp, err := f.create.Execute(context.Background(), &create_booking.Request{
		InstructorID: "ahmet-yilmaz",
		VenueID:      "cornelia-diamond",
		CourseID:     "carya-golf",
		Date:         "2025-07-20",
		Time:         "10:00",
		SessionName:  "60 Minute Lesson",
		Contact:      domain.Contact{Name: "Jane Doe", Email: "jane@example.com"},
	})
	require.NoError(t, err)
	return resp.ID
}

func TestExecute_CancellationWindow(t *testing.T) {
	lessonStart := time.Date(2025, 7, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{"two days ahead", lessonStart.Add(-48 * time.Hour), nil},
		{"just over a day ahead", lessonStart.Add(-24*time.Hour - time.Minute), nil},
		{"exactly a day ahead", lessonStart.Add(-24 * time.Hour), ErrPolicyViolation},
		{"two hours ahead", lessonStart.Add(-2 * time.Hour), ErrPolicyViolation},
		{"already started", lessonStart.Add(time.Hour), ErrPolicyViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			id := f.book(t)
			f.clock.Set(tt.now)

			resp, err := f.cancel.Execute(context.Background(), &Request{BookingID: id})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 1, f.repo.Count())
				assert.Empty(t, f.publisher.cancelled)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, id, resp.ID)
			assert.Equal(t, tt.now, resp.CancelledAt)
			assert.Equal(t, 0, f.repo.Count())
			require.Len(t, f.publisher.cancelled, 1)
			assert.Equal(t, id, f.publisher.cancelled[0].ID)
		})
	}
}

func TestExecute_CancelReopensSlot(t *testing.T) {
	f := newFixture()
	id := f.book(t)

	ctx := context.Background()
	assert.True(t, f.repo.IsSlotTaken(ctx, "ahmet-yilmaz", lessonDay, "10:00"))

	_, err := f.cancel.Execute(ctx, &Request{BookingID: id})
	require.NoError(t, err)
	assert.False(t, f.repo.IsSlotTaken(ctx, "ahmet-yilmaz", lessonDay, "10:00"))
	assert.NotContains(t, string(f.store.Raw()), id)

	// слот снова можно забронировать
	f.book(t)
	assert.Equal(t, 1, f.repo.Count())
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.cancel.Execute(context.Background(), &Request{BookingID: "missing"})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.cancel.Execute(context.Background(), &Request{BookingID: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CancelTwice(t *testing.T) {
	f := newFixture()
	id := f.book(t)

	_, err := f.cancel.Execute(context.Background(), &Request{BookingID: id})
	require.NoError(t, err)

	_, err = f.cancel.Execute(context.Background(), &Request{BookingID: id})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_PersistenceFailureKeepsBooking(t *testing.T) {
	f := newFixture()
	id := f.book(t)
	f.store.fail = true

	_, err := f.cancel.Execute(context.Background(), &Request{BookingID: id})
	assert.ErrorIs(t, err, ErrPersistence)

	_, err = f.repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Empty(t, f.publisher.cancelled)
}
