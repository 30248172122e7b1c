package reporter

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the list unknown-error lines are pushed onto.
const DefaultRedisKey = "rpcerr:unknown"

// RedisSink pushes each record line onto a Redis list. RPUSH appends one
// element atomically, so concurrent reporters never split a line.
type RedisSink struct {
	client redis.Cmdable
	key    string
	maxLen int64
}

// NewRedisSink builds a sink on key. A positive maxLen trims the list to the
// newest maxLen lines after each push.
func NewRedisSink(client redis.Cmdable, key string, maxLen int64) *RedisSink {
	if client == nil {
		return nil
	}
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisSink{client: client, key: key, maxLen: maxLen}
}

// Name implements Sink.
func (s *RedisSink) Name() string { return "redis" }

// Append implements Sink.
func (s *RedisSink) Append(ctx context.Context, rec Record) error {
	if s == nil {
		return errors.New("redis sink not configured")
	}
	if err := s.client.RPush(ctx, s.key, rec.Line()).Err(); err != nil {
		return err
	}
	if s.maxLen > 0 {
		return s.client.LTrim(ctx, s.key, -s.maxLen, -1).Err()
	}
	return nil
}
