package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/riskwatch/riskwatch/internal/models"
	"github.com/riskwatch/riskwatch/pkg"
	"go.uber.org/zap"
)

// RedisStore keeps the session in Redis under pkg.SessionKey, for
// deployments where several instances share one session.
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisStore(client *redis.Client, logger *zap.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func (s *RedisStore) Load(ctx context.Context) (*models.User, error) {
	data, err := s.client.Get(ctx, pkg.SessionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil || user.ID == "" {
		s.logger.Warn("discarding malformed session entry", zap.Error(err))
		return nil, nil
	}
	return &user, nil
}

func (s *RedisStore) Save(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, pkg.SessionKey, data, 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, pkg.SessionKey).Err()
}
