package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"childscreen-service/internal/app"
	"childscreen-service/internal/credential"
	"childscreen-service/internal/domain"
	"childscreen-service/internal/infra/memory"
)

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	service := app.NewAuthService(credential.BuildRegistry(), memory.NewUsageStore(), 0)

	if _, err := service.Login(ctx, "GT9999", "113342"); err != domain.ErrAccountNotFound {
		t.Fatalf("expected account-not-found, got %v", err)
	}
	if _, err := service.Login(ctx, "GT0001", "000000"); err != domain.ErrSecretMismatch {
		t.Fatalf("expected secret mismatch, got %v", err)
	}
}

func TestLoginCooldown(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	service := app.NewAuthServiceWithClock(credential.BuildRegistry(), memory.NewUsageStore(), 0, clock)

	result, err := service.Login(ctx, "GT0001", "113342")
	if err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	if result.Instrument != domain.InstrumentSensory || result.IsAdmin {
		t.Fatalf("unexpected login result: %+v", result)
	}

	if err := service.MarkUsed(ctx, "GT0001"); err != nil {
		t.Fatalf("mark used: %v", err)
	}

	// Immediate retry is locked for a near-full window.
	_, err = service.Login(ctx, "GT0001", "113342")
	var locked *domain.AccountLockedError
	if !errors.As(err, &locked) {
		t.Fatalf("expected lock error, got %v", err)
	}
	if locked.HoursLeft < 23 || locked.HoursLeft > 24 {
		t.Fatalf("expected 23-24 hours remaining, got %d", locked.HoursLeft)
	}

	// One minute before expiry the card is still locked, with 1 hour shown.
	now = now.Add(24*time.Hour - time.Minute)
	_, err = service.Login(ctx, "GT0001", "113342")
	if !errors.As(err, &locked) {
		t.Fatalf("expected lock error near expiry, got %v", err)
	}
	if locked.HoursLeft != 1 {
		t.Fatalf("expected 1 hour remaining, got %d", locked.HoursLeft)
	}

	// After the window the card works again.
	now = now.Add(2 * time.Minute)
	if _, err := service.Login(ctx, "GT0001", "113342"); err != nil {
		t.Fatalf("login after cooldown failed: %v", err)
	}
}

func TestAdminBypassesCooldownAndLog(t *testing.T) {
	ctx := context.Background()
	store := memory.NewUsageStore()
	service := app.NewAuthService(credential.BuildRegistry(), store, 0)

	for i := 0; i < 3; i++ {
		result, err := service.Login(ctx, credential.AdminAccountID, "gtdd001")
		if err != nil {
			t.Fatalf("admin login %d failed: %v", i, err)
		}
		if !result.IsAdmin {
			t.Fatalf("expected admin flag, got %+v", result)
		}
		if err := service.MarkUsed(ctx, credential.AdminAccountID); err != nil {
			t.Fatalf("admin mark used: %v", err)
		}
	}

	if usageLog := service.UsageLog(ctx); len(usageLog) != 0 {
		t.Fatalf("admin logins must not be recorded, got %v", usageLog)
	}
}

func TestMarkUsedOverwritesTimestamp(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	service := app.NewAuthServiceWithClock(credential.BuildRegistry(), memory.NewUsageStore(), 0, clock)

	_ = service.MarkUsed(ctx, "DD0001")
	first := service.UsageLog(ctx)["DD0001"]

	now = now.Add(30 * time.Hour)
	_ = service.MarkUsed(ctx, "DD0001")
	second := service.UsageLog(ctx)["DD0001"]

	if second-first != (30 * time.Hour).Milliseconds() {
		t.Fatalf("expected overwritten timestamp, got %d then %d", first, second)
	}
}

func TestLoginFailsOpenOnStoreErrors(t *testing.T) {
	ctx := context.Background()
	service := app.NewAuthService(credential.BuildRegistry(), &brokenStore{}, 0)

	if _, err := service.Login(ctx, "GT0001", "113342"); err != nil {
		t.Fatalf("login should fail open on read errors, got %v", err)
	}

	// Corrupt payloads also read as an empty log.
	corrupt := memory.NewUsageStore()
	_ = corrupt.Set(ctx, "used_accounts_log", "{not json")
	service = app.NewAuthService(credential.BuildRegistry(), corrupt, 0)
	if _, err := service.Login(ctx, "GT0001", "113342"); err != nil {
		t.Fatalf("login should fail open on corrupt log, got %v", err)
	}
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("store unavailable")
}

func (brokenStore) Set(context.Context, string, string) error {
	return errors.New("store unavailable")
}
