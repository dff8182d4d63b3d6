// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/mangaread/internal/platform/apperr"
	redisclient "github.com/taibuivan/mangaread/internal/platform/redis"
)

// RedisRepository stores progress as JSON values in one hash keyed by manga
// id. A sorted set next to it remembers first-save order; its scores are
// microseconds, ties fall back to member order.
type RedisRepository struct {
	client   *redis.Client
	hashKey  string
	orderKey string
}

// NewRedisRepository creates a repository under key.
func NewRedisRepository(client *redis.Client, key string) *RedisRepository {
	return &RedisRepository{
		client:   client,
		hashKey:  key,
		orderKey: key + ":order",
	}
}

// Find implements [Repository].
func (repository *RedisRepository) Find(ctx context.Context, mangaID string) (*ReadingProgress, error) {
	raw, err := repository.client.HGet(ctx, repository.hashKey, mangaID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrProgressNotFound
	}
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("find_progress: %w", err))
	}
	return decodeProgress(raw)
}

// FindMany implements [Repository].
func (repository *RedisRepository) FindMany(ctx context.Context, mangaIDs []string) (map[string]*ReadingProgress, error) {
	result := make(map[string]*ReadingProgress)
	if len(mangaIDs) == 0 {
		return result, nil
	}

	values, err := repository.client.HMGet(ctx, repository.hashKey, mangaIDs...).Result()
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("find_many_progress: %w", err))
	}

	records, err := decodeValues(values)
	if err != nil {
		return nil, err
	}
	for _, progress := range records {
		result[progress.MangaID] = progress
	}
	return result, nil
}

// Upsert implements [Repository]. Both keys change in one MULTI/EXEC.
func (repository *RedisRepository) Upsert(ctx context.Context, progress *ReadingProgress) error {
	encoded, err := json.Marshal(progress)
	if err != nil {
		return apperr.Internal(fmt.Errorf("encode_progress: %w", err))
	}

	_, err = repository.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, repository.hashKey, progress.MangaID, encoded)
		pipe.ZAddNX(ctx, repository.orderKey, redis.Z{
			Score:  float64(time.Now().UnixMicro()),
			Member: progress.MangaID,
		})
		return nil
	})
	if err != nil {
		return apperr.Internal(fmt.Errorf("upsert_progress: %w", err))
	}
	return nil
}

// List implements [Repository].
func (repository *RedisRepository) List(ctx context.Context) ([]*ReadingProgress, error) {
	order, err := repository.client.ZRange(ctx, repository.orderKey, 0, -1).Result()
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list_progress: %w", err))
	}
	if len(order) == 0 {
		return make([]*ReadingProgress, 0), nil
	}

	values, err := repository.client.HMGet(ctx, repository.hashKey, order...).Result()
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list_progress: %w", err))
	}
	return decodeValues(values)
}

// Ping implements [Repository].
func (repository *RedisRepository) Ping(ctx context.Context) error {
	return redisclient.Ping(ctx, repository.client)
}

// decodeValues skips nil entries, which HMGET returns for missing fields.
func decodeValues(values []any) ([]*ReadingProgress, error) {
	records := make([]*ReadingProgress, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		progress, err := decodeProgress(raw)
		if err != nil {
			return nil, err
		}
		records = append(records, progress)
	}
	return records, nil
}

func decodeProgress(raw string) (*ReadingProgress, error) {
	progress := &ReadingProgress{}
	if err := json.Unmarshal([]byte(raw), progress); err != nil {
		return nil, apperr.Internal(fmt.Errorf("decode_progress: %w", err))
	}
	return progress, nil
}
