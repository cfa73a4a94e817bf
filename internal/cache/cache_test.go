package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKey_Deterministic(t *testing.T) {
	a := Key("the same document text")
	b := Key("the same document text")
	if a != b {
		t.Errorf("identical text must yield identical keys: %q vs %q", a, b)
	}

	c := Key("a different document")
	if a == c {
		t.Error("different text must yield different keys")
	}

	if !strings.HasPrefix(a, "docent:v1:") {
		t.Errorf("expected versioned key prefix, got %q", a)
	}
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	key := Key("doc")
	if err := c.Set(key, []byte(`{"engine":"heuristic"}`), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get(key)
	if !found {
		t.Fatal("expected cache hit")
	}
	if string(val) != `{"engine":"heuristic"}` {
		t.Errorf("unexpected cached value %q", val)
	}

	if _, found := c.Get(Key("other doc")); found {
		t.Error("expected miss for a different key")
	}
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	c.Set("a", []byte("1"), time.Minute)
	c.Set("b", []byte("2"), time.Minute)

	if err := c.Delete("a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("expected deleted key to miss")
	}
	if _, found := c.Get("b"); !found {
		t.Error("unrelated key should survive a delete")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, found := c.Get("b"); found {
		t.Error("expected empty cache after Clear")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	c.Set("ephemeral", []byte("x"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("ephemeral"); found {
		t.Error("expected entry to expire after its TTL")
	}
}
