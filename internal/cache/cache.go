// Package cache is a small read cache in front of the storage bin endpoints.
// A nil *Cache is valid and disables caching, so handlers never branch on
// whether redis is configured.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"warehouse-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

const binTTL = 5 * time.Minute

type Cache struct {
	client *redis.Client
}

// New connects to redis when an address is configured, otherwise returns nil.
func New(cfg *config.Config) *Cache {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("[WARN] redis unreachable (%v), storage bin cache disabled", err)
		return nil
	}

	return &Cache{client: client}
}

// GetBin loads a cached value into dest, reporting whether it was present.
func (c *Cache) GetBin(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	data, err := c.client.Get(ctx, "storage_bin:"+key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (c *Cache) SetBin(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, "storage_bin:"+key, data, binTTL)
}

func (c *Cache) DeleteBin(ctx context.Context, key string) {
	if c == nil {
		return
	}
	c.client.Del(ctx, "storage_bin:"+key)
}

// InvalidateBinLists drops every cached list page.
func (c *Cache) InvalidateBinLists(ctx context.Context) {
	if c == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, "storage_bin:list:*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}
