package db

import (
	"testing"
	"time"

	"github.com/yigit/coursehub/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.Password = "secret"
	cfg.Database.DBName = "coursehub"
	cfg.Database.SSLMode = "disable"
	cfg.Database.MaxOpenConns = 20
	cfg.Database.MaxIdleConns = 5
	cfg.Database.ConnMaxLifetime = "15m"
	return cfg
}

func TestPoolConfig(t *testing.T) {
	pc, err := PoolConfig(testConfig())
	if err != nil {
		t.Fatalf("PoolConfig: %v", err)
	}
	if pc.MaxConns != 20 || pc.MinConns != 5 {
		t.Fatalf("unexpected pool sizes: max=%d min=%d", pc.MaxConns, pc.MinConns)
	}
	if pc.MaxConnLifetime != 15*time.Minute {
		t.Fatalf("unexpected lifetime: %v", pc.MaxConnLifetime)
	}
	if pc.ConnConfig.Database != "coursehub" || pc.ConnConfig.User != "postgres" {
		t.Fatalf("unexpected connection config: %+v", pc.ConnConfig)
	}
	if pc.BeforeAcquire == nil {
		t.Fatal("expected connection health check")
	}
}

func TestPoolConfigFallsBackOnBadLifetime(t *testing.T) {
	cfg := testConfig()
	cfg.Database.ConnMaxLifetime = "soon"
	cfg.Database.MaxIdleConns = 50

	pc, err := PoolConfig(cfg)
	if err != nil {
		t.Fatalf("PoolConfig: %v", err)
	}
	if pc.MaxConnLifetime != time.Hour {
		t.Fatalf("expected 1h fallback, got %v", pc.MaxConnLifetime)
	}
	if pc.MinConns > pc.MaxConns {
		t.Fatalf("min conns %d exceeds max %d", pc.MinConns, pc.MaxConns)
	}
}
