package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
)

// MemoryStore хранит сериализованный список в памяти процесса.
// Формат тот же, что у внешних хранилищ, поэтому поведение Load/Save совпадает.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
	loc  *time.Location
}

func NewMemoryStore(loc *time.Location) *MemoryStore {
	return &MemoryStore{loc: loc}
}

func (s *MemoryStore) Load(_ context.Context) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Decode(s.data, s.loc)
}

func (s *MemoryStore) Save(_ context.Context, bookings []domain.Booking) error {
	data, err := Encode(bookings)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// Raw возвращает сохранённый JSON
func (s *MemoryStore) Raw() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}
