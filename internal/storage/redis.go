package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"smartjob-utils/internal/config"
	"smartjob-utils/internal/logging"
	"smartjob-utils/pkg/models"
)

// RedisRepository persists resume text and search results in Redis with the
// configured TTL.
type RedisRepository struct {
	client *redis.Client
	config *config.Config
	logger logging.Logger
}

// NewRedisRepository creates a new Redis-backed repository
func NewRedisRepository(cfg *config.Config) *RedisRepository {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB
	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = cfg.Redis.Timeout
	opts.WriteTimeout = cfg.Redis.Timeout

	return &RedisRepository{
		client: redis.NewClient(opts),
		config: cfg,
		logger: logging.GetGlobalLogger().WithField("component", "redis_repository"),
	}
}

func (r *RedisRepository) resumeKey(userID string) string {
	return fmt.Sprintf("resume:text:%s", userID)
}

func (r *RedisRepository) resultsKey(userID string) string {
	return fmt.Sprintf("search:results:%s", userID)
}

// SaveResumeText stores the extracted resume text for a user. Resume text
// outlives search results, so it carries its own TTL.
func (r *RedisRepository) SaveResumeText(ctx context.Context, userID, text string) error {
	if err := r.client.Set(ctx, r.resumeKey(userID), text, r.config.Redis.ResumeTTL).Err(); err != nil {
		return fmt.Errorf("failed to save resume text: %w", err)
	}
	return nil
}

// GetResumeText retrieves the stored resume text for a user
func (r *RedisRepository) GetResumeText(ctx context.Context, userID string) (string, error) {
	text, err := r.client.Get(ctx, r.resumeKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get resume text: %w", err)
	}
	return text, nil
}

// SaveSearchResults stores a ranked result set for a user
func (r *RedisRepository) SaveSearchResults(ctx context.Context, userID string, results models.RankedResultSet) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal search results: %w", err)
	}

	if err := r.client.Set(ctx, r.resultsKey(userID), data, r.config.Redis.ResultTTL).Err(); err != nil {
		return fmt.Errorf("failed to save search results: %w", err)
	}

	r.logger.Debug("Search results saved", map[string]interface{}{
		"user_id": userID,
		"results": len(results.Results),
		"ttl":     r.config.Redis.ResultTTL.String(),
	})
	return nil
}

// GetSearchResults retrieves the stored ranked result set for a user
func (r *RedisRepository) GetSearchResults(ctx context.Context, userID string) (models.RankedResultSet, error) {
	data, err := r.client.Get(ctx, r.resultsKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return models.RankedResultSet{}, ErrNotFound
	}
	if err != nil {
		return models.RankedResultSet{}, fmt.Errorf("failed to get search results: %w", err)
	}

	var results models.RankedResultSet
	if err := json.Unmarshal([]byte(data), &results); err != nil {
		return models.RankedResultSet{}, fmt.Errorf("failed to unmarshal search results: %w", err)
	}

	return results, nil
}

// Ping tests the Redis connection
func (r *RedisRepository) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.client.Ping(pingCtx).Err()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}
