package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiter_AllowsUpToLimit(t *testing.T) {
	limiter := NewMemoryLimiter(time.Minute, 3)
	defer limiter.Close()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, _, err := limiter.Allow(ctx, "client-1")
		if err != nil {
			t.Fatalf("Allow failed: %v", err)
		}
		if !ok {
			t.Fatalf("Request %d should be allowed", i+1)
		}
	}

	ok, retryAfter, err := limiter.Allow(ctx, "client-1")
	if err != nil {
		t.Fatalf("Allow failed: %v", err)
	}
	if ok {
		t.Error("Request over the limit should be denied")
	}
	if retryAfter <= 0 || retryAfter > time.Minute {
		t.Errorf("Retry-after should point at the window reset, got %v", retryAfter)
	}
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewMemoryLimiter(time.Minute, 1)
	defer limiter.Close()
	ctx := context.Background()

	if ok, _, _ := limiter.Allow(ctx, "client-1"); !ok {
		t.Fatal("First request should be allowed")
	}
	if ok, _, _ := limiter.Allow(ctx, "client-1"); ok {
		t.Error("Second request for the same key should be denied")
	}
	if ok, _, _ := limiter.Allow(ctx, "client-2"); !ok {
		t.Error("A different key should have its own window")
	}
}

func TestMemoryLimiter_WindowResets(t *testing.T) {
	limiter := NewMemoryLimiter(50*time.Millisecond, 1)
	defer limiter.Close()
	ctx := context.Background()

	if ok, _, _ := limiter.Allow(ctx, "client-1"); !ok {
		t.Fatal("First request should be allowed")
	}
	if ok, _, _ := limiter.Allow(ctx, "client-1"); ok {
		t.Fatal("Second request should be denied")
	}

	time.Sleep(60 * time.Millisecond)

	if ok, _, _ := limiter.Allow(ctx, "client-1"); !ok {
		t.Error("Request after the window elapses should be allowed")
	}
}

func TestMemoryLimiter_CloseIsIdempotent(t *testing.T) {
	limiter := NewMemoryLimiter(time.Minute, 1)

	if err := limiter.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := limiter.Close(); err != nil {
		t.Fatalf("Second Close failed: %v", err)
	}

	if ok, _, _ := limiter.Allow(context.Background(), "client-1"); !ok {
		t.Error("Allow should still work after Close")
	}
}
