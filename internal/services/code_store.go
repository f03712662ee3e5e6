package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Code kinds; they key separate redis namespaces so a reset code cannot
// confirm a signup.
const (
	CodeKindVerify = "verify"
	CodeKindReset  = "reset"
)

// CodeStore holds short-lived verification codes. Check consumes the code on
// success so each code is single-use.
type CodeStore interface {
	Save(ctx context.Context, kind, email, code string) error
	Check(ctx context.Context, kind, email, code string) error
}

type redisCodeStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCodeStore(rdb *redis.Client, ttl time.Duration) CodeStore {
	return &redisCodeStore{rdb: rdb, ttl: ttl}
}

func codeKey(kind, email string) string {
	return fmt.Sprintf("%s_code:%s", kind, email)
}

func (s *redisCodeStore) Save(ctx context.Context, kind, email, code string) error {
	return s.rdb.Set(ctx, codeKey(kind, email), code, s.ttl).Err()
}

func (s *redisCodeStore) Check(ctx context.Context, kind, email, code string) error {
	key := codeKey(kind, email)
	stored, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ErrCodeExpired
	}
	if err != nil {
		return fmt.Errorf("reading verification code: %w", err)
	}
	if stored != code {
		return ErrInvalidCode
	}
	s.rdb.Del(ctx, key)
	return nil
}
