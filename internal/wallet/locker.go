package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	lockPrefix         = "signer-lock:"
	defaultLockTTL     = 5 * time.Minute
	defaultLockBackoff = 100 * time.Millisecond
	releaseTimeout     = 5 * time.Second
)

var ErrLockNotHeld error = errors.New("signer lock not held")

// MemoryLocker serializes signers within one process.
type MemoryLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{
		slots: make(map[string]chan struct{}),
	}
}

func (l *MemoryLocker) Lock(ctx context.Context, signer string) (func(), error) {
	key := strings.ToLower(signer)

	l.mu.Lock()
	slot, ok := l.slots[key]
	if !ok {
		slot = make(chan struct{}, 1)
		l.slots[key] = slot
	}
	l.mu.Unlock()

	select {
	case slot <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() { <-slot })
	}, nil
}

// releaseScript deletes the lock only if it is still owned by the caller.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// refreshScript extends the lock only if it is still owned by the caller.
var refreshScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// RedisLocker serializes signers across service instances. The lease is
// extended every ttl/3 while held, so ttl only bounds how long a crashed
// holder can block a signer.
type RedisLocker struct {
	logs    *zap.SugaredLogger
	client  *goredis.Client
	ttl     time.Duration
	backoff time.Duration
}

func NewRedisLocker(logger *zap.SugaredLogger, client *goredis.Client, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}

	return &RedisLocker{
		logs:    logger,
		client:  client,
		ttl:     ttl,
		backoff: defaultLockBackoff,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, signer string) (func(), error) {
	key := lockPrefix + strings.ToLower(signer)
	token := uuid.NewString()

	for {
		acquired, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("redis set lock: %w", err)
		}
		if acquired {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.backoff):
		}
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go l.keepAlive(key, token, signer, stop, done)

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-done
			if err := l.release(key, token); err != nil {
				l.logs.Errorw("failed to release signer lock", "error", err, "signer", signer)
			}
		})
	}, nil
}

func (l *RedisLocker) keepAlive(key, token, signer string, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(max(l.ttl/3, time.Millisecond))
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		if err := l.refresh(key, token); err != nil {
			l.logs.Errorw("failed to extend signer lock", "error", err, "signer", signer)
			if errors.Is(err, ErrLockNotHeld) {
				return
			}
		}
	}
}

func (l *RedisLocker) refresh(key, token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	extended, err := refreshScript.Run(ctx, l.client, []string{key}, token, l.ttl.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("redis extend lock: %w", err)
	}
	if extended == 0 {
		return ErrLockNotHeld
	}
	return nil
}

func (l *RedisLocker) release(key, token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	deleted, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int()
	if err != nil {
		return fmt.Errorf("redis release lock: %w", err)
	}
	if deleted == 0 {
		return ErrLockNotHeld
	}
	return nil
}
