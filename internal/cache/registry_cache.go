package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anbusan19/wealth-empire-sub001/internal/model"
)

// RegistryCache handles Redis operations for company-registry lookups.
// Registry data changes rarely, so entries live longer than result entries.
type RegistryCache interface {
	Set(ctx context.Context, cin string, profile *model.CompanyProfile) error
	Get(ctx context.Context, cin string) (*model.CompanyProfile, error)
}

type registryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRegistryCache creates a new registry cache
func NewRegistryCache(client *redis.Client) RegistryCache {
	return &registryCache{
		client: client,
		ttl:    7 * 24 * time.Hour,
	}
}

func (c *registryCache) key(cin string) string {
	return fmt.Sprintf("registry:cin:%s", cin)
}

func (c *registryCache) Set(ctx context.Context, cin string, profile *model.CompanyProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(cin), data, c.ttl).Err()
}

func (c *registryCache) Get(ctx context.Context, cin string) (*model.CompanyProfile, error) {
	data, err := c.client.Get(ctx, c.key(cin)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile model.CompanyProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
