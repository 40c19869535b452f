package database

import (
	"context"
	"time"
)

// PoolHealth is a point-in-time connectivity probe plus connection pool
// pressure counters for the health endpoint.
type PoolHealth struct {
	Status       string        `json:"status"`
	ResponseTime time.Duration `json:"response_time"`

	OpenConnections int   `json:"open_connections"`
	InUse           int   `json:"in_use"`
	Idle            int   `json:"idle"`
	WaitCount       int64 `json:"wait_count"`
	MaxOpenConns    int   `json:"max_open_conns"`
}

// Health pings the database and reports pool pressure. On ping failure the
// probe is returned alongside the error so callers can degrade the report
// instead of dropping it.
func (c *Client) Health(ctx context.Context) (*PoolHealth, error) {
	start := time.Now()

	if err := c.db.PingContext(ctx); err != nil {
		return &PoolHealth{
			Status:       "unhealthy",
			ResponseTime: time.Since(start),
		}, err
	}

	stats := c.db.Stats()
	return &PoolHealth{
		Status:          "healthy",
		ResponseTime:    time.Since(start),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		MaxOpenConns:    stats.MaxOpenConnections,
	}, nil
}
