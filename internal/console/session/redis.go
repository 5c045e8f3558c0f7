package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/stellar/pkg/cryptox"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces slot keys.
const DefaultRedisPrefix = "stellar:session:"

// RedisStore keeps one key per session with no expiry. Keys are the
// prefix plus a fingerprint of the session id.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + cryptox.Fingerprint(id)
}

func (s *RedisStore) Load(ctx context.Context, id string) (Identity, bool, error) {
	if id == "" {
		return Identity{}, false, ErrEmptyID
	}

	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Identity{}, false, nil
		}
		return Identity{}, false, fmt.Errorf("session: redis get: %w", err)
	}

	ident, err := decode(data)
	if err != nil {
		return Identity{}, false, err
	}
	return ident, true, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, ident Identity) error {
	if id == "" {
		return ErrEmptyID
	}
	data, err := encode(ident)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(id), data, 0).Err(); err != nil {
		return fmt.Errorf("session: redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("session: redis del: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
