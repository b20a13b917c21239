package lock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

// RedisLocker shares scan locks between kiosk backends using SET NX.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	retry  time.Duration
	prefix string
}

func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RedisLocker{client: client, ttl: ttl, retry: 25 * time.Millisecond, prefix: "lock:"}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	key = l.prefix + key
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, errors.Join(ErrNotAcquired, ctx.Err())
			}
			return nil, err
		}
		if ok {
			break
		}

		select {
		case <-time.After(l.retry):
		case <-ctx.Done():
			return nil, errors.Join(ErrNotAcquired, ctx.Err())
		}
	}

	return func() {
		// Fresh context: the caller's may already be done.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		releaseScript.Run(releaseCtx, l.client, []string{key}, token)
	}, nil
}
