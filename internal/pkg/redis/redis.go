package redis

import (
	"context"
	"fmt"
	"time"

	"travel-service/config"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

func SetupClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// LimiterStorage backs the fiber rate limiter with redis so limits hold
// across instances.
type LimiterStorage struct {
	client *redis.Client
	prefix string
}

func NewLimiterStorage(client *redis.Client) *LimiterStorage {
	return &LimiterStorage{client: client, prefix: "ratelimit:"}
}

func (s *LimiterStorage) Get(key string) ([]byte, error) {
	val, err := s.client.Get(context.Background(), s.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return val, err
}

func (s *LimiterStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.client.Set(context.Background(), s.prefix+key, val, exp).Err()
}

func (s *LimiterStorage) Delete(key string) error {
	return s.client.Del(context.Background(), s.prefix+key).Err()
}

func (s *LimiterStorage) Reset() error {
	ctx := context.Background()
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *LimiterStorage) Close() error {
	return nil
}

// Locker serializes work on a named resource.
type Locker interface {
	Acquire(ctx context.Context, name string) (release func(), err error)
}

type RedsyncLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
}

func NewLocker(client *redis.Client) *RedsyncLocker {
	return &RedsyncLocker{
		rs:     redsync.New(goredis.NewPool(client)),
		expiry: time.Minute,
	}
}

func (l *RedsyncLocker) Acquire(ctx context.Context, name string) (func(), error) {
	mutex := l.rs.NewMutex("lock:"+name, redsync.WithExpiry(l.expiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}

// NoopLocker is used when redis is disabled.
type NoopLocker struct{}

func (NoopLocker) Acquire(context.Context, string) (func(), error) {
	return func() {}, nil
}
