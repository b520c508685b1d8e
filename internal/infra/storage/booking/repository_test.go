package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	"github.com/m04kA/SMC-LessonBooking/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-LessonBooking/internal/ledger"
	"github.com/m04kA/SMC-LessonBooking/pkg/types"
)

type flakyStore struct {
	*snapshot.MemoryStore
	saveErr error
	loadErr error
}

func (s *flakyStore) Save(ctx context.Context, bookings []domain.Booking) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	return s.MemoryStore.Save(ctx, bookings)
}

func (s *flakyStore) Load(ctx context.Context) ([]domain.Booking, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.MemoryStore.Load(ctx)
}

func newRepo() (*Repository, *flakyStore, *ledger.Ledger) {
	l := ledger.New()
	store := &flakyStore{MemoryStore: snapshot.NewMemoryStore(time.UTC)}
	return NewRepository(l, store), store, l
}

var lessonDay = time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)

func lesson(id string, at types.TimeString) domain.Booking {
	return domain.Booking{
		ID:           id,
		Date:         lessonDay,
		StartTime:    at,
		InstructorID: "ahmet-yilmaz",
		SessionName:  "60 Minute Lesson",
		Price:        75,
	}
}

func TestRepository_CreatePersistsBeforeApplying(t *testing.T) {
	ctx := context.Background()
	repo, store, l := newRepo()

	created, err := repo.Create(ctx, lesson("b1", "10:00"))
	require.NoError(t, err)
	assert.Equal(t, "b1", created.ID)
	assert.Equal(t, 1, l.Len())

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "b1", saved[0].ID)
}

func TestRepository_CreateConflicts(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := newRepo()
	_, err := repo.Create(ctx, lesson("b1", "10:00"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, lesson("b2", "10:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	_, err = repo.Create(ctx, lesson("b1", "11:00"))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestRepository_SaveFailureLeavesLedgerUnchanged(t *testing.T) {
	ctx := context.Background()
	repo, store, l := newRepo()
	_, err := repo.Create(ctx, lesson("b1", "10:00"))
	require.NoError(t, err)

	store.saveErr = errors.New("disk full")

	_, err = repo.Create(ctx, lesson("b2", "11:00"))
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, 1, l.Len())
	assert.False(t, repo.IsSlotTaken(ctx, "ahmet-yilmaz", lessonDay, "11:00"))

	_, err = repo.Delete(ctx, "b1")
	assert.ErrorIs(t, err, ErrPersistence)
	_, err = repo.GetByID(ctx, "b1")
	assert.NoError(t, err)
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo, store, _ := newRepo()
	_, err := repo.Create(ctx, lesson("b1", "10:00"))
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", removed.ID)

	_, err = repo.GetByID(ctx, "b1")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, saved)

	_, err = repo.Delete(ctx, "b1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_Load(t *testing.T) {
	ctx := context.Background()
	repo, store, l := newRepo()
	require.NoError(t, store.MemoryStore.Save(ctx, []domain.Booking{
		lesson("b1", "10:00"),
		lesson("b2", "10:00"),
		lesson("b3", "10:30"),
	}))

	loaded, skipped, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded)
	require.Len(t, skipped, 1)
	assert.Equal(t, "b2", skipped[0].ID)
	assert.Equal(t, 2, l.Len())

	store.loadErr = errors.New("timeout")
	_, _, err = repo.Load(ctx)
	assert.ErrorIs(t, err, ErrLoad)
}
