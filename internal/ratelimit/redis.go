package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

// hitScript counts a hit and opens the window in one step. A key that lost
// its TTL gets one again.
var hitScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 or redis.call("PTTL", KEYS[1]) == -1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// Limiter is a fixed-window request counter per client kept in Redis.
type Limiter struct {
	rdb         *redis.Client
	maxRequests int
	window      time.Duration
}

func NewLimiter(addr string, maxRequests int, window time.Duration) (*Limiter, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	return &Limiter{rdb: rdb, maxRequests: maxRequests, window: window}, nil
}

// Allow reports whether the client may make another request in the current
// window. Redis failures let the request through.
func (l *Limiter) Allow(ctx context.Context, client string) bool {
	key := fmt.Sprintf("ratelimit:%s", client)

	count, err := hitScript.Run(ctx, l.rdb, []string{key}, l.window.Milliseconds()).Int64()
	if err != nil {
		slog.Warn("Rate limiter unavailable", "error", err)
		return true
	}

	return count <= int64(l.maxRequests)
}

func (l *Limiter) Close() error {
	return l.rdb.Close()
}
