package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-LessonBooking/internal/domain"
	"github.com/m04kA/SMC-LessonBooking/pkg/psqlbuilder"
)

const snapshotsTable = "booking_snapshots"

const createTableSQL = `CREATE TABLE IF NOT EXISTS booking_snapshots (
	namespace  TEXT PRIMARY KEY,
	payload    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore хранит весь список бронирований одной строкой jsonb по ключу namespace
type PostgresStore struct {
	db        DBExecutor
	namespace string
	loc       *time.Location
}

func NewPostgresStore(db DBExecutor, namespace string, loc *time.Location) *PostgresStore {
	return &PostgresStore{db: db, namespace: namespace, loc: loc}
}

// EnsureSchema создаёт таблицу, если её нет
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Load читает список; отсутствие строки означает пустой список
func (s *PostgresStore) Load(ctx context.Context) ([]domain.Booking, error) {
	query, args, err := buildLoadQuery(s.namespace)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var payload []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.Booking{}, nil
		}
		return nil, fmt.Errorf("%w: Load: %v", ErrExecQuery, err)
	}

	return Decode(payload, s.loc)
}

// Save перезаписывает список целиком (upsert)
func (s *PostgresStore) Save(ctx context.Context, bookings []domain.Booking) error {
	payload, err := Encode(bookings)
	if err != nil {
		return err
	}

	query, args, err := buildSaveQuery(s.namespace, payload)
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save: %v", ErrExecQuery, err)
	}
	return nil
}

func buildLoadQuery(namespace string) (string, []interface{}, error) {
	return psqlbuilder.Select("payload").
		From(snapshotsTable).
		Where(squirrel.Eq{"namespace": namespace}).
		ToSql()
}

func buildSaveQuery(namespace string, payload []byte) (string, []interface{}, error) {
	return psqlbuilder.Insert(snapshotsTable).
		Columns("namespace", "payload", "updated_at").
		Values(namespace, string(payload), squirrel.Expr("now()")).
		Suffix("ON CONFLICT (namespace) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		ToSql()
}
