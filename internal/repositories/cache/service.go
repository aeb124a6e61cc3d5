package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"credlytics/internal/models"

	"github.com/redis/go-redis/v9"
)

// catalogKey holds the full template catalog. The catalog is seeded,
// immutable data, so a single key with a long TTL is enough.
const catalogKey = "catalog:templates"

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// User caching
func (s *CacheService) CacheUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("cannot cache nil user")
	}

	keys := []string{
		s.GenerateKey("user", "id", user.ID),
		s.GenerateKey("user", "email", user.Email),
	}

	for _, key := range keys {
		if err := s.Set(ctx, key, user); err != nil {
			return err
		}
	}
	return nil
}

func (s *CacheService) GetUser(ctx context.Context, key string) (*models.User, error) {
	var user models.User
	found, err := s.Get(ctx, key, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, redis.Nil
	}
	return &user, nil
}

func (s *CacheService) InvalidateUser(ctx context.Context, userID uint, email string) error {
	keys := []string{s.GenerateKey("user", "id", userID)}
	if email != "" {
		keys = append(keys, s.GenerateKey("user", "email", email))
	}
	return s.Delete(ctx, keys...)
}

// Catalog caching
func (s *CacheService) CacheTemplates(ctx context.Context, templates []models.CardTemplate) error {
	return s.Set(ctx, catalogKey, templates)
}

func (s *CacheService) GetTemplates(ctx context.Context) ([]models.CardTemplate, bool, error) {
	var templates []models.CardTemplate
	found, err := s.Get(ctx, catalogKey, &templates)
	if err != nil || !found {
		return nil, false, err
	}
	return templates, true, nil
}

func (s *CacheService) InvalidateTemplates(ctx context.Context) error {
	return s.Delete(ctx, catalogKey)
}

func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *CacheService) Close() error {
	return s.client.Close()
}

func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *CacheService) GetStats(ctx context.Context) *redis.PoolStats {
	return s.client.PoolStats()
}
