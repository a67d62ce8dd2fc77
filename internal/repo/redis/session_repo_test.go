package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/syberke1354/exion-sub001/internal/services/adminauth"
)

func newTestRepo(t *testing.T) (*SessionRepo, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionRepo(client), mr
}

func TestSessionLifecycle(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	sid := uuid.New()

	if err := repo.Create(ctx, sid, 42, "super_admin", 30*time.Minute); err != nil {
		t.Fatalf("create: %v", err)
	}

	role, err := repo.Touch(ctx, sid, 42, 30*time.Minute)
	if err != nil {
		t.Fatalf("touch: %v", err)
	}
	if role != "super_admin" {
		t.Fatalf("role = %q, want super_admin", role)
	}

	if err := repo.Delete(ctx, sid); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Touch(ctx, sid, 42, 30*time.Minute); !errors.Is(err, adminauth.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestTouchExpiredSession(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()
	sid := uuid.New()

	if err := repo.Create(ctx, sid, 42, "admin_futsal", time.Minute); err != nil {
		t.Fatalf("create: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := repo.Touch(ctx, sid, 42, time.Minute); !errors.Is(err, adminauth.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for expired session, got %v", err)
	}
}

func TestTouchRefreshesIdleTimeout(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()
	sid := uuid.New()

	if err := repo.Create(ctx, sid, 42, "admin_pramuka", time.Minute); err != nil {
		t.Fatalf("create: %v", err)
	}

	mr.FastForward(45 * time.Second)
	if _, err := repo.Touch(ctx, sid, 42, time.Minute); err != nil {
		t.Fatalf("touch: %v", err)
	}

	// Past the original deadline but inside the refreshed one.
	mr.FastForward(45 * time.Second)
	if _, err := repo.Touch(ctx, sid, 42, time.Minute); err != nil {
		t.Fatalf("session must survive after refresh: %v", err)
	}
}

func TestTouchRejectsMismatchedAdmin(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	sid := uuid.New()

	if err := repo.Create(ctx, sid, 42, "super_admin", time.Minute); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.Touch(ctx, sid, 99, time.Minute); !errors.Is(err, adminauth.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for mismatched admin, got %v", err)
	}
}
