package utils

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c, err := NewCache(10)
	if err != nil {
		t.Fatalf("NewCache failed: %v", err)
	}

	c.Set("key", "value", time.Minute)
	if got := c.Get("key"); got != "value" {
		t.Errorf("expected value, got %v", got)
	}
	if got := c.Get("missing"); got != nil {
		t.Errorf("expected nil for missing key, got %v", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	c, err := NewCache(10)
	if err != nil {
		t.Fatalf("NewCache failed: %v", err)
	}

	c.Set("key", "value", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	if got := c.Get("key"); got != nil {
		t.Errorf("expected expired entry to be gone, got %v", got)
	}
}

func TestCacheDelete(t *testing.T) {
	c, err := NewCache(10)
	if err != nil {
		t.Fatalf("NewCache failed: %v", err)
	}

	c.Set("key", "value", time.Minute)
	c.Delete("key")
	if got := c.Get("key"); got != nil {
		t.Errorf("expected deleted entry to be gone, got %v", got)
	}
}
