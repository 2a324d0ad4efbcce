package localstore

import (
	"context"
	"errors"
	"os"
	"testing"

	"scoopdash/internal/domain"
	"scoopdash/internal/migrate"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestMemory_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if _, err := store.Load(ctx, KeyCart); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := store.Save(ctx, KeyCart, []byte(`[{"line_id":"l1"}]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load(ctx, KeyCart)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `[{"line_id":"l1"}]` {
		t.Fatalf("unexpected value %s", got)
	}
}

func TestMemory_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	if err := store.Save(ctx, KeyOrders, []byte(`[]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(ctx, KeyOrders, []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load(ctx, KeyOrders)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Fatalf("unexpected value %s", got)
	}
}

func TestPostgres_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE app_state`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	store := NewPostgres(pool)

	if _, err := store.Load(ctx, KeyCart); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := store.Save(ctx, KeyCart, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(ctx, KeyCart, []byte(`{"a":2}`)); err != nil {
		t.Fatalf("Save upsert: %v", err)
	}
	got, err := store.Load(ctx, KeyCart)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `{"a": 2}` && string(got) != `{"a":2}` {
		t.Fatalf("unexpected value %s", got)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}
