package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

func InitRedis(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	redisClient := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, err
	}

	return redisClient, nil
}

// Storage adapts a redis client to fiber.Storage so middleware state
// (limiter counters) is shared between instances. Keys live under Prefix.
type Storage struct {
	Client *redis.Client
	Prefix string
}

func NewStorage(client *redis.Client, prefix string) *Storage {
	return &Storage{Client: client, Prefix: prefix}
}

func (s *Storage) key(k string) string { return s.Prefix + k }

func (s *Storage) Get(key string) ([]byte, error) {
	if len(key) == 0 {
		return nil, nil
	}
	val, err := s.Client.Get(context.Background(), s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	if len(key) == 0 || len(val) == 0 {
		return nil
	}
	return s.Client.Set(context.Background(), s.key(key), val, exp).Err()
}

func (s *Storage) Delete(key string) error {
	if len(key) == 0 {
		return nil
	}
	return s.Client.Del(context.Background(), s.key(key)).Err()
}

// Reset drops every key under Prefix.
func (s *Storage) Reset() error {
	ctx := context.Background()
	iter := s.Client.Scan(ctx, 0, s.Prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *Storage) Close() error { return s.Client.Close() }
