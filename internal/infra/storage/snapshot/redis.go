package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
)

// RedisStore хранит JSON массив строкой по ключу <prefix>:<namespace>
type RedisStore struct {
	client RedisClient
	key    string
	loc    *time.Location
}

func NewRedisStore(client RedisClient, prefix, namespace string, loc *time.Location) *RedisStore {
	key := namespace
	if prefix != "" {
		key = prefix + ":" + namespace
	}
	return &RedisStore{client: client, key: key, loc: loc}
}

func (s *RedisStore) Load(ctx context.Context) ([]domain.Booking, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []domain.Booking{}, nil
		}
		return nil, fmt.Errorf("%w: Load key=%s: %v", ErrExecQuery, s.key, err)
	}
	return Decode(data, s.loc)
}

func (s *RedisStore) Save(ctx context.Context, bookings []domain.Booking) error {
	data, err := Encode(bookings)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: Save key=%s: %v", ErrExecQuery, s.key, err)
	}
	return nil
}
