package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anbusan19/wealth-empire-sub001/internal/model"
)

// ResultCache handles Redis operations for a user's latest assessment
type ResultCache interface {
	SetLatest(ctx context.Context, userID string, assessment *model.Assessment) error
	GetLatest(ctx context.Context, userID string) (*model.Assessment, error)
	Invalidate(ctx context.Context, userID string) error
}

type resultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a new result cache
func NewResultCache(client *redis.Client) ResultCache {
	return &resultCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *resultCache) key(userID string) string {
	return fmt.Sprintf("user:%s:assessment:latest", userID)
}

func (c *resultCache) SetLatest(ctx context.Context, userID string, assessment *model.Assessment) error {
	data, err := json.Marshal(assessment)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID), data, c.ttl).Err()
}

func (c *resultCache) GetLatest(ctx context.Context, userID string) (*model.Assessment, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var assessment model.Assessment
	if err := json.Unmarshal(data, &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (c *resultCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
