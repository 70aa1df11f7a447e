package tmpstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Drolfothesgnir/tagfinder/finder"
	"github.com/Drolfothesgnir/tagfinder/util"
	"github.com/redis/go-redis/v9"
)

// Different key prefixes for different use cases
const (
	TagsPrefix = "tags:"
)

// ErrCacheMiss is returned when no Tags are cached for the line.
var ErrCacheMiss = errors.New("tags are not cached")

// Store keeps the results of the previous scans so the same line is not scanned twice.
type Store interface {
	GetTags(ctx context.Context, line string) ([]finder.Tag, error)
	SaveTags(ctx context.Context, line string, tags []finder.Tag, ttl time.Duration) error
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// TagsKey returns the cache key of the line. Lines are hashed to keep the keys short.
func TagsKey(line string) string {
	sum := sha256.Sum256([]byte(line))
	return TagsPrefix + hex.EncodeToString(sum[:])
}

func (s *RedisStore) GetTags(ctx context.Context, line string) ([]finder.Tag, error) {
	raw, err := s.client.Get(ctx, TagsKey(line)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	var tags []finder.Tag
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
	}

	return tags, nil
}

func (s *RedisStore) SaveTags(ctx context.Context, line string, tags []finder.Tag, ttl time.Duration) error {
	data, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}

	if err := s.client.Set(ctx, TagsKey(line), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save tags: %w", err)
	}

	return nil
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// NopStore is used when no cache is configured. It never has anything cached.
type NopStore struct{}

func (NopStore) GetTags(context.Context, string) ([]finder.Tag, error) {
	return nil, ErrCacheMiss
}

func (NopStore) SaveTags(context.Context, string, []finder.Tag, time.Duration) error {
	return nil
}
