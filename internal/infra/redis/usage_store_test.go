package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestUsageStoreRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewUsageStore(client)
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "used_accounts_log"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "used_accounts_log", `{"GT0001":1750000000000}`); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, ok, err := store.Get(ctx, "used_accounts_log")
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if value != `{"GT0001":1750000000000}` {
		t.Fatalf("unexpected value %q", value)
	}
}

func TestUsageStoreSurfacesConnectionErrors(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	store := NewUsageStore(client)
	if _, _, err := store.Get(context.Background(), "used_accounts_log"); err == nil {
		t.Fatal("expected an error from a closed backend")
	}
}
