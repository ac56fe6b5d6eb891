package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/adubrov/boiler-parts/internal/core/domain"
	"github.com/adubrov/boiler-parts/internal/port"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps sessions as JSON values under session:<uuid> keys
// with a sliding-free TTL: a session simply expires ttl after login.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Create(ctx context.Context, userID int64, username string) (string, error) {
	session := domain.Session{
		ID:       uuid.NewString(),
		UserID:   userID,
		Username: username,
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return "", errors.Wrap(err, "marshal session")
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+session.ID, payload, s.ttl).Err(); err != nil {
		return "", errors.Wrap(err, "store session")
	}

	return session.ID, nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, port.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "load session")
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, errors.Wrap(err, "unmarshal session")
	}

	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return errors.Wrap(s.client.Del(ctx, sessionKeyPrefix+sessionID).Err(), "delete session")
}
