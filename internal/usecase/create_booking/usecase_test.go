package create_booking

import (
	"context"
	"errors"
	"fmt"
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
	"github.com/m04kA/SMC-LessonBooking/pkg/clock"
	"github.com/m04kA/SMC-LessonBooking/pkg/logger"
	"github.com/m04kA/SMC-LessonBooking/pkg/types"
	"github.com/m04kA/SMC-LessonBooking/pkg/txmanager"
)

type switchableStore struct {
	*snapshot.MemoryStore
	mu      sync.Mutex
	saveErr error
}

func (s *switchableStore) Save(ctx context.Context, bookings []domain.Booking) error {
	s.mu.Lock()
	err := s.saveErr
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.MemoryStore.Save(ctx, bookings)
}

type recordingPublisher struct {
	mu      sync.Mutex
	created []domain.Booking
	err     error
}

func (p *recordingPublisher) PublishBookingCreated(_ context.Context, b domain.Booking) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, b)
	return p.err
}

type countingMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
	live     int
}

func (m *countingMetrics) RecordBookingOperation(operation, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[operation+":"+outcome]++
}

func (m *countingMetrics) SetLiveBookings(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.live = n
}

type fixture struct {
	uc        *UseCase
	ledger    *ledger.Ledger
	store     *switchableStore
	publisher *recordingPublisher
	metrics   *countingMetrics
	clock     *clock.Fixed
}

func testCatalog() *domain.Catalog {
	var schedule domain.WeeklySchedule
	for i := range schedule {
		schedule[i] = &domain.DayWindow{Start: 9, End: 17}
	}
	return &domain.Catalog{
		Venues:  []domain.Venue{{ID: "cornelia-diamond"}},
		Courses: []domain.Course{{ID: "carya-golf"}},
		Instructors: []domain.Instructor{{
			ID:       "ahmet-yilmaz",
			Schedule: schedule,
			SessionTypes: []domain.SessionType{
				{Name: "30 Minute Lesson", Price: 40, DurationMinutes: 30},
				{Name: "60 Minute Lesson", Price: 75, DurationMinutes: 60},
			},
		}},
	}
}

func newFixture() *fixture {
	log := logger.NewNop()
	l := ledger.New()
	store := &switchableStore{MemoryStore: snapshot.NewMemoryStore(time.UTC)}
	f := &fixture{
		ledger:    l,
		store:     store,
		publisher: &recordingPublisher{},
		metrics:   &countingMetrics{outcomes: map[string]int{}},
		clock:     &clock.Fixed{At: time.Date(2025, 7, 18, 9, 0, 0, 0, time.UTC)},
	}
	f.uc = NewUseCase(
		bookingRepo.NewRepository(l, store),
		catalogService.NewService(testCatalog(), log),
		policy.New(0),
		txmanager.NewTransactionManager(),
		f.publisher,
		f.metrics,
		f.clock,
		0,
		log,
	)
	return f
}

func sundayLesson() *Request {
	return &Request{
		InstructorID: "ahmet-yilmaz",
		VenueID:      "cornelia-diamond",
		CourseID:     "carya-golf",
		Date:         "2025-07-20",
		Time:         "10:00",
		SessionName:  "60 Minute Lesson",
		Contact:      domain.Contact{Name: " Jane Doe ", Email: "jane@example.com"},
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), sundayLesson())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 75.0, resp.Price)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, "60 Minute Lesson", resp.SessionName)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC), resp.Date)
	assert.Equal(t, "Jane Doe", resp.Contact.Name)
	assert.Equal(t, f.clock.At, resp.CreatedAt)

	assert.True(t, f.ledger.IsSlotTaken("ahmet-yilmaz", resp.Date, "10:00"))
	assert.Contains(t, string(f.store.Raw()), resp.ID)
	require.Len(t, f.publisher.created, 1)
	assert.Equal(t, resp.ID, f.publisher.created[0].ID)
	assert.Equal(t, 1, f.metrics.outcomes["create:success"])
	assert.Equal(t, 1, f.metrics.live)
}

func TestExecute_SecondRequestForSameSlotConflicts(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), sundayLesson())
	require.NoError(t, err)

	req := sundayLesson()
	req.SessionName = "30 Minute Lesson"
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 1, f.ledger.Len())
	assert.Equal(t, 1, f.metrics.outcomes["create:conflict"])
}

func TestExecute_ConcurrentRequestsOnlyOneWins(t *testing.T) {
	f := newFixture()

	const workers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := sundayLesson()
			req.Contact.Email = fmt.Sprintf("player%d@example.com", i)

			_, err := f.uc.Execute(context.Background(), req)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrSlotNotAvailable):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)
	assert.Equal(t, 1, f.ledger.Len())
}

func TestExecute_PersistenceFailureLeavesSlotFree(t *testing.T) {
	f := newFixture()
	f.store.saveErr = errors.New("quota exceeded")

	_, err := f.uc.Execute(context.Background(), sundayLesson())
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, 0, f.ledger.Len())
	assert.Empty(t, f.publisher.created)

	f.store.saveErr = nil
	_, err = f.uc.Execute(context.Background(), sundayLesson())
	assert.NoError(t, err)
}

func TestExecute_UnknownReferences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
		want   error
	}{
		{"instructor", func(r *Request) { r.InstructorID = "tiger" }, ErrInstructorNotFound},
		{"venue", func(r *Request) { r.VenueID = "ritz" }, ErrVenueNotFound},
		{"course", func(r *Request) { r.CourseID = "augusta" }, ErrCourseNotFound},
		{"empty instructor", func(r *Request) { r.InstructorID = "" }, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := sundayLesson()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, f.ledger.Len())
		})
	}
}

func TestExecute_PolicyRejection(t *testing.T) {
	f := newFixture()
	req := sundayLesson()
	req.Contact.Email = "no-at-sign"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, policy.ErrValidation)

	var verr *policy.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, policy.KindInvalidContact, verr.Kind)
	assert.Equal(t, 1, f.metrics.outcomes["create:rejected"])
}

func TestExecute_PublisherFailureDoesNotFailBooking(t *testing.T) {
	f := newFixture()
	f.publisher.err = errors.New("broker down")

	_, err := f.uc.Execute(context.Background(), sundayLesson())
	assert.NoError(t, err)
	assert.Equal(t, 1, f.ledger.Len())
}

func TestExecute_RegeneratesDuplicateID(t *testing.T) {
	f := newFixture()
	ids := []string{"fixed", "fixed", "second"}
	f.uc.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	first, err := f.uc.Execute(context.Background(), sundayLesson())
	require.NoError(t, err)
	assert.Equal(t, "fixed", first.ID)

	req := sundayLesson()
	req.Time = "11:00"
	second, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "second", second.ID)
}

func TestExecute_ProcessingDelayHonoursCancellation(t *testing.T) {
	f := newFixture()
	f.uc.processingDelay = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.uc.Execute(ctx, sundayLesson())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 0, f.ledger.Len())
}
