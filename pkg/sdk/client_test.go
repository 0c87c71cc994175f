package divdex

import (
	"context"
	"testing"
	"time"
)

func TestNew_NoAddress(t *testing.T) {
	_, err := New(context.Background())
	if err == nil {
		t.Fatal("expected error when no address provided")
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}

	WithRedis("localhost:6379", "secret").apply(cfg)
	if cfg.addrs[0] != "localhost:6379" {
		t.Errorf("addr = %q, want localhost:6379", cfg.addrs[0])
	}
	if cfg.password != "secret" {
		t.Errorf("password = %q, want secret", cfg.password)
	}

	WithKeyPrefix("test:").apply(cfg)
	if cfg.keyPrefix != "test:" {
		t.Errorf("key prefix = %q, want test:", cfg.keyPrefix)
	}

	WithReadinessTimeout(3 * time.Second).apply(cfg)
	if cfg.readinessTimeout != 3*time.Second {
		t.Errorf("readiness timeout = %v, want 3s", cfg.readinessTimeout)
	}
}

func TestObserver_NilSafe(t *testing.T) {
	var o *observer
	o.observe("query", time.Now(), nil) // must not panic
}
