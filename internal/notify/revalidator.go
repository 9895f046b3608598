package notify

import (
	"context"
	"fmt"
	"time"

	portssvc "github.com/cabindev/sdnfutsal/internal/core/ports/services"
	"github.com/cabindev/sdnfutsal/internal/middleware"
	"github.com/redis/go-redis/v9"
)

// revalidateChannel is the pub/sub channel the frontend cache listener
// subscribes to. Each message is a single stale view name.
const revalidateChannel = "sdnfutsal:revalidate"

const publishTimeout = 2 * time.Second

// RedisRevalidator publishes stale-view signals over redis pub/sub. Publish
// failures are logged and swallowed: the views eventually revalidate on their
// own schedule, so a lost signal must never fail the triggering request.
type RedisRevalidator struct {
	client *redis.Client
}

type Options struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisRevalidator(opts Options) (*RedisRevalidator, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RedisRevalidator{client: client}, nil
}

// Ensure RedisRevalidator implements portssvc.ViewRevalidator
var _ portssvc.ViewRevalidator = (*RedisRevalidator)(nil)

func (n *RedisRevalidator) RevalidateViews(ctx context.Context, views ...string) {
	logger := middleware.GetLoggerFromCtx(ctx)
	// Detach from the request context so a finished request doesn't cancel
	// the publish mid-flight.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	for _, view := range views {
		if err := n.client.Publish(pubCtx, revalidateChannel, view).Err(); err != nil {
			logger.Warn("failed to publish view revalidation", "view", view, "error", err)
		}
	}
}

// Close releases the underlying redis connection.
func (n *RedisRevalidator) Close() error {
	return n.client.Close()
}

// NoopRevalidator is used when no redis endpoint is configured.
type NoopRevalidator struct{}

var _ portssvc.ViewRevalidator = NoopRevalidator{}

func (NoopRevalidator) RevalidateViews(context.Context, ...string) {}
