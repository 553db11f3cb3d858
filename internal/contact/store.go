package contact

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no stored message has the requested id.
var ErrNotFound = errors.New("contact: message not found")

// Record is a stored contact message.
type Record struct {
	ID uuid.UUID
	Message
	CreatedAt time.Time
}

// Store persists contact messages.
type Store interface {
	Save(ctx context.Context, msg Message) (Record, error)
	Get(ctx context.Context, id uuid.UUID) (Record, error)
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]Record, error)
}

// MemoryStore keeps messages in memory. Used when no database is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (s *MemoryStore) Save(_ context.Context, msg Message) (Record, error) {
	rec := Record{ID: uuid.New(), Message: msg, CreatedAt: s.now().UTC()}

	s.mu.Lock()
	s.records = append(s.records, rec)
	s.mu.Unlock()
	return rec, nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return Record{}, ErrNotFound
}

func (s *MemoryStore) Recent(_ context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	out := slices.Clone(s.records)
	s.mu.RUnlock()

	slices.Reverse(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// PGStore stores messages in the contact_messages table.
type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

const recordColumns = `id, name, email, topic, subject, message, created_at`

func (s *PGStore) Save(ctx context.Context, msg Message) (Record, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (id, name, email, topic, subject, message)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+recordColumns,
		uuid.New(), msg.Name, msg.Email, msg.Topic, msg.Subject, msg.Message,
	)
	return scanRecord(row)
}

func (s *PGStore) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	rec, err := scanRecord(s.pool.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM contact_messages WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	return rec, err
}

func (s *PGStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+recordColumns+` FROM contact_messages ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Record, error) {
		return scanRecord(row)
	})
}

func scanRecord(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Topic, &rec.Subject, &rec.Message, &rec.CreatedAt)
	return rec, err
}
