package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/teamplan/team-calendar-backend/internal/config"
	"github.com/teamplan/team-calendar-backend/internal/model"
	"go.uber.org/zap"
)

const (
	sessionsKey       = "sessions"
	sessionsExpiryKey = "sessions_expiry"
	memberSessionsKey = "member_sessions:%d"
)

// RefreshTokenRepository keeps refresh sessions in redis: a token to member id
// hash, an expiry index and a per-member token set so all sessions of one
// member can be dropped at once.
type RefreshTokenRepository struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
}

func NewRefreshTokenRepository(pool *redis.Pool, logger *zap.SugaredLogger) *RefreshTokenRepository {
	return &RefreshTokenRepository{pool: pool, logger: logger}
}

func (r *RefreshTokenRepository) Add(ctx context.Context, session string, id int64) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get redis connection: %w", err)
	}
	defer conn.Close()

	exists, err := redis.Bool(conn.Do("HEXISTS", sessionsKey, session))
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if exists {
		return model.ErrAlreadyExists
	}

	expiresAt := time.Now().Add(config.SessionTTl()).Unix()

	if err := conn.Send("MULTI"); err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	_ = conn.Send("HSET", sessionsKey, session, id)
	_ = conn.Send("ZADD", sessionsExpiryKey, expiresAt, session)
	_ = conn.Send("SADD", fmt.Sprintf(memberSessionsKey, id), session)
	if _, err := conn.Do("EXEC"); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) Get(ctx context.Context, session string) (int64, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("get redis connection: %w", err)
	}
	defer conn.Close()

	id, err := redis.Int64(conn.Do("HGET", sessionsKey, session))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return 0, model.ErrNoRecord
		}
		return 0, fmt.Errorf("get session: %w", err)
	}

	expiresAt, err := redis.Int64(conn.Do("ZSCORE", sessionsExpiryKey, session))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return 0, model.ErrNoRecord
		}
		return 0, fmt.Errorf("get session expiry: %w", err)
	}

	if time.Now().Unix() > expiresAt {
		if err := r.remove(conn, session, id); err != nil {
			r.logger.Errorw("failed removing expired session", "err", err)
		}
		return 0, model.ErrNoRecord
	}

	return id, nil
}

// Refresh issues the new session and keeps the old one alive for a short
// window, so an in-flight request racing the rotation does not get kicked out.
func (r *RefreshTokenRepository) Refresh(ctx context.Context, old, new string) error {
	id, err := r.Get(ctx, old)
	if err != nil {
		return err
	}

	if err := r.Add(ctx, new, id); err != nil {
		return err
	}

	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get redis connection: %w", err)
	}
	defer conn.Close()

	windowEnd := time.Now().Add(config.SessionWindowPeriod()).Unix()
	if _, err := conn.Do("ZADD", sessionsExpiryKey, "XX", windowEnd, old); err != nil {
		return fmt.Errorf("shrink old session: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, session string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get redis connection: %w", err)
	}
	defer conn.Close()

	id, err := redis.Int64(conn.Do("HGET", sessionsKey, session))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return model.ErrNoRecord
		}
		return fmt.Errorf("get session: %w", err)
	}

	return r.remove(conn, session, id)
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get redis connection: %w", err)
	}
	defer conn.Close()

	expired, err := redis.Strings(conn.Do("ZRANGEBYSCORE", sessionsExpiryKey, "-inf", time.Now().Unix()))
	if err != nil {
		return fmt.Errorf("list expired sessions: %w", err)
	}

	for _, session := range expired {
		id, err := redis.Int64(conn.Do("HGET", sessionsKey, session))
		if err != nil && !errors.Is(err, redis.ErrNil) {
			return fmt.Errorf("get session: %w", err)
		}

		if err := r.remove(conn, session, id); err != nil {
			return err
		}
	}

	return nil
}

func (r *RefreshTokenRepository) DeleteByUserID(ctx context.Context, id int64) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get redis connection: %w", err)
	}
	defer conn.Close()

	sessions, err := redis.Strings(conn.Do("SMEMBERS", fmt.Sprintf(memberSessionsKey, id)))
	if err != nil {
		return fmt.Errorf("list member sessions: %w", err)
	}

	for _, session := range sessions {
		if err := r.remove(conn, session, id); err != nil {
			return err
		}
	}

	return nil
}

func (r *RefreshTokenRepository) remove(conn redis.Conn, session string, id int64) error {
	if err := conn.Send("MULTI"); err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	_ = conn.Send("HDEL", sessionsKey, session)
	_ = conn.Send("ZREM", sessionsExpiryKey, session)
	_ = conn.Send("SREM", fmt.Sprintf(memberSessionsKey, id), session)
	if _, err := conn.Do("EXEC"); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}

	return nil
}
