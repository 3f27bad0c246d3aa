package rate_limiter

import (
	"testing"
	"time"
)

func TestGetVisitor_PerIP(t *testing.T) {
	t.Cleanup(CleanupAllVisitors)
	SetLimits(1, 2)
	t.Cleanup(func() { SetLimits(defaultRPS, defaultBurst) })

	a := GetVisitor("10.0.0.1")
	if a != GetVisitor("10.0.0.1") {
		t.Fatal("expected the same limiter for the same ip")
	}
	if a == GetVisitor("10.0.0.2") {
		t.Fatal("expected distinct limiters per ip")
	}

	if !a.Allow() || !a.Allow() {
		t.Fatal("expected burst of 2 to be allowed")
	}
	if a.Allow() {
		t.Error("expected third request to be limited")
	}
}

func TestEvictIdle(t *testing.T) {
	t.Cleanup(CleanupAllVisitors)
	GetVisitor("10.0.0.1")
	GetVisitor("10.0.0.2")

	if n := evictIdle(time.Now()); n != 0 {
		t.Errorf("expected no eviction of fresh visitors, got %d", n)
	}
	if n := evictIdle(time.Now().Add(visitorTTL + time.Second)); n != 2 {
		t.Errorf("expected 2 evictions, got %d", n)
	}
}
