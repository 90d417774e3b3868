package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/embercove/content-sync/app/sync"
)

const (
	lastReportKey = "sync:last_report"
	lastReportTTL = 24 * time.Hour
)

// Cache stores the last aggregate sync report in Redis.
type Cache struct {
	client *redis.Client
}

func New(addr string) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Debug("Connected to Redis", "addr", addr)

	return &Cache{client: client}, nil
}

// SetReport stores the report, replacing any previous one.
func (c *Cache) SetReport(ctx context.Context, report *sync.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal sync report: %w", err)
	}

	if err := c.client.Set(ctx, lastReportKey, data, lastReportTTL).Err(); err != nil {
		return fmt.Errorf("failed to store sync report: %w", err)
	}

	return nil
}

// GetReport returns the last stored report, or nil when none exists.
func (c *Cache) GetReport(ctx context.Context) (*sync.Report, error) {
	data, err := c.client.Get(ctx, lastReportKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read sync report: %w", err)
	}

	var report sync.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sync report: %w", err)
	}

	return &report, nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}
