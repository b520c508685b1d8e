package snapshot

import (
	"context"
	"database/sql"
	"time"

	"github.com/redis/go-redis/v9"
)

// DBExecutor подмножество *sql.DB, используемое PostgresStore
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// RedisClient подмножество redis.Cmdable, используемое RedisStore
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}
