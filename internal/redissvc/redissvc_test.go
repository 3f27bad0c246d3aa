package redissvc

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestRedisService_Unreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	svc := NewRedisService(rdb, "dashboard:")
	ctx := context.Background()

	if err := svc.Ping(ctx); err == nil {
		t.Error("expected ping error against closed port")
	}

	_, ok, err := svc.Get(ctx, "weather:2024-01-01:2024-01-02")
	if err == nil {
		t.Fatal("expected get error, got nil")
	}
	if ok {
		t.Error("expected miss on error")
	}

	if err := svc.Set(ctx, "k", []byte("v"), time.Minute); err == nil {
		t.Error("expected set error, got nil")
	}
}
