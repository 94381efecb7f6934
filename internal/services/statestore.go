package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v7"
	"github.com/patrickmn/go-cache"

	"oficina-tg-client/internal/constants"
	"oficina-tg-client/internal/models"
)

// StateStore keeps the per-user screen state
type StateStore interface {
	Get(userID int64) (*models.UserState, bool, error)
	Set(userID int64, state models.UserState) error
	Delete(userID int64) error
}

// MemoryStateStore keeps states in process memory
type MemoryStateStore struct {
	cache *cache.Cache
}

// NewMemoryStateStore creates an in-memory state store
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{
		cache: cache.New(constants.CacheExpiration*time.Minute, constants.CacheCleanupInterval*time.Minute),
	}
}

func memoryKey(userID int64) string {
	return fmt.Sprintf("user_state_%d", userID)
}

// Get implements StateStore
func (s *MemoryStateStore) Get(userID int64) (*models.UserState, bool, error) {
	data, found := s.cache.Get(memoryKey(userID))
	if !found {
		return nil, false, nil
	}

	state, ok := data.(*models.UserState)
	if !ok {
		return nil, false, fmt.Errorf("invalid state type for user %d", userID)
	}

	copied := *state
	return &copied, true, nil
}

// Set implements StateStore
func (s *MemoryStateStore) Set(userID int64, state models.UserState) error {
	s.cache.Set(memoryKey(userID), &state, cache.DefaultExpiration)
	return nil
}

// Delete implements StateStore
func (s *MemoryStateStore) Delete(userID int64) error {
	s.cache.Delete(memoryKey(userID))
	return nil
}

// RedisStateStore keeps states in Redis so they survive restarts
type RedisStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStateStore connects to Redis and checks the connection
func NewRedisStateStore(addr, password string, db int) (*RedisStateStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping().Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &RedisStateStore{
		client: client,
		ttl:    constants.CacheExpiration * time.Minute,
	}, nil
}

func redisKey(userID int64) string {
	return constants.RedisKeyPrefix + strconv.FormatInt(userID, 10)
}

// Get implements StateStore
func (s *RedisStateStore) Get(userID int64) (*models.UserState, bool, error) {
	raw, err := s.client.Get(redisKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read state for user %d: %w", userID, err)
	}

	var state models.UserState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, false, fmt.Errorf("failed to decode state for user %d: %w", userID, err)
	}

	return &state, true, nil
}

// Set implements StateStore
func (s *RedisStateStore) Set(userID int64, state models.UserState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state for user %d: %w", userID, err)
	}

	if err := s.client.Set(redisKey(userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write state for user %d: %w", userID, err)
	}
	return nil
}

// Delete implements StateStore
func (s *RedisStateStore) Delete(userID int64) error {
	if err := s.client.Del(redisKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete state for user %d: %w", userID, err)
	}
	return nil
}

// Close closes the Redis connection
func (s *RedisStateStore) Close() error {
	return s.client.Close()
}
