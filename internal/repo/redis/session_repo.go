package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/syberke1354/exion-sub001/internal/services/adminauth"
)

const sessionPrefix = "admin_sessions:"

// SessionRepo keeps one hash per live admin session. The key TTL is the
// idle timeout; every Touch pushes it forward, so an unused session
// simply falls out of Redis.
type SessionRepo struct {
	client *goredis.Client
}

func NewSessionRepo(client *goredis.Client) *SessionRepo {
	return &SessionRepo{client: client}
}

func (r *SessionRepo) Create(ctx context.Context, sid uuid.UUID, adminID int64, role string, idleTimeout time.Duration) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if adminID <= 0 || idleTimeout <= 0 {
		return fmt.Errorf("invalid session parameters")
	}

	key := sessionKey(sid)
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"admin_id": adminID,
		"role":     role,
	})
	pipe.Expire(ctx, key, idleTimeout)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("create admin session: %w", err)
	}

	return nil
}

// Touch refreshes the idle timeout and returns the session's current
// role. A session whose stored admin does not match the token's claim
// is treated as missing.
func (r *SessionRepo) Touch(ctx context.Context, sid uuid.UUID, adminID int64, idleTimeout time.Duration) (string, error) {
	if r.client == nil {
		return "", fmt.Errorf("redis client is nil")
	}

	key := sessionKey(sid)
	values, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("get admin session: %w", err)
	}
	if len(values) == 0 {
		return "", adminauth.ErrSessionNotFound
	}

	storedID, err := strconv.ParseInt(values["admin_id"], 10, 64)
	if err != nil || storedID != adminID {
		return "", adminauth.ErrSessionNotFound
	}

	if idleTimeout > 0 {
		if err := r.client.Expire(ctx, key, idleTimeout).Err(); err != nil {
			return "", fmt.Errorf("refresh admin session ttl: %w", err)
		}
	}

	return values["role"], nil
}

func (r *SessionRepo) Delete(ctx context.Context, sid uuid.UUID) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if err := r.client.Del(ctx, sessionKey(sid)).Err(); err != nil {
		return fmt.Errorf("delete admin session: %w", err)
	}
	return nil
}

func sessionKey(sid uuid.UUID) string {
	return sessionPrefix + sid.String()
}
