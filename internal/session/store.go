// Package session stores issued bearer tokens server-side, keyed by an opaque
// session id carried in a cookie. The session is a second credential carrier:
// requests without an Authorization header can still authenticate through it.
package session

import (
	"context" // Context for store operations
	"errors"  // Sentinel errors
	"sync"    // Mutex for the in-memory store
	"time"    // Session TTL

	"github.com/google/uuid"       // Session id generation
	"github.com/redis/go-redis/v9" // Redis client
)

// TTL matches the bearer token lifetime so both credential carriers expire together
const TTL = 24 * time.Hour

// ErrNotFound is returned when a session id does not resolve to a stored token
var ErrNotFound = errors.New("session not found")

// Store persists the mapping from session id to issued token
type Store interface {
	Create(ctx context.Context, token string) (string, error) // Store a token, return a new session id
	Get(ctx context.Context, id string) (string, error)       // Resolve a session id to its token
	Delete(ctx context.Context, id string) error              // Drop a session
}

// RedisStore keeps sessions in Redis under session:<id>
type RedisStore struct {
	rdb *redis.Client // Redis client
}

// NewRedisStore wraps a Redis client as a session store
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Create stores the token under a fresh random id with the session TTL
func (s *RedisStore) Create(ctx context.Context, token string) (string, error) {
	id := uuid.NewString() // Opaque session id
	if err := s.rdb.Set(ctx, "session:"+id, token, TTL).Err(); err != nil {
		return "", err // Redis write failed
	}
	return id, nil
}

// Get resolves a session id back to the stored token
func (s *RedisStore) Get(ctx context.Context, id string) (string, error) {
	token, err := s.rdb.Get(ctx, "session:"+id).Result() // Look up the session key
	if err == redis.Nil {
		return "", ErrNotFound // Unknown or expired session
	} else if err != nil {
		return "", err // Other Redis error
	}
	return token, nil
}

// Delete removes a session; deleting an unknown id is not an error
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, "session:"+id).Err()
}

// MemoryStore is an in-process Store used in tests
type MemoryStore struct {
	mu       sync.Mutex          // Guards sessions
	sessions map[string]memEntry // Session id -> token + expiry
}

type memEntry struct {
	token string    // Stored bearer token
	exp   time.Time // Absolute expiry
}

// NewMemoryStore returns an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memEntry)}
}

// Create stores the token under a fresh random id
func (s *MemoryStore) Create(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString() // Opaque session id
	s.sessions[id] = memEntry{token: token, exp: time.Now().Add(TTL)}
	return id, nil
}

// Get resolves a session id, honoring expiry
func (s *MemoryStore) Get(_ context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok || time.Now().After(e.exp) {
		delete(s.sessions, id) // Drop expired entries lazily
		return "", ErrNotFound
	}
	return e.token, nil
}

// Delete removes a session
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
