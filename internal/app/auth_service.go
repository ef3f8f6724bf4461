package app

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"sync"
	"time"

	"childscreen-service/internal/credential"
	"childscreen-service/internal/domain"
)

// UsageStore abstracts the persisted record backing the usage log
// (in-memory, Redis, Postgres). The engine only needs one string value
// under one well-known key.
type UsageStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// usageLogKey is the single well-known key holding the JSON map from
// account ID to last-used unix-millisecond timestamp.
const usageLogKey = "used_accounts_log"

// DefaultCooldown is the window during which a used card stays locked.
const DefaultCooldown = 24 * time.Hour

// AuthService validates access cards against the generated registry and
// enforces the single-use cooldown via the persisted usage log.
type AuthService struct {
	registry credential.Registry
	store    UsageStore
	cooldown time.Duration
	now      func() time.Time

	// mu serializes the usage log read-modify-write so two concurrent
	// logins for the same card cannot both observe "not locked".
	mu sync.Mutex
}

func NewAuthService(registry credential.Registry, store UsageStore, cooldown time.Duration) *AuthService {
	return NewAuthServiceWithClock(registry, store, cooldown, time.Now)
}

// NewAuthServiceWithClock allows deterministic timestamps in tests.
func NewAuthServiceWithClock(registry credential.Registry, store UsageStore, cooldown time.Duration, now func() time.Time) *AuthService {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &AuthService{registry: registry, store: store, cooldown: cooldown, now: now}
}

// Login checks an account ID and secret. Administrators succeed
// unconditionally; other cards additionally pass the cooldown check.
// Login never consumes the card: the caller commits that separately with
// MarkUsed once the surrounding flow accepts the session.
func (s *AuthService) Login(ctx context.Context, accountID, secret string) (domain.LoginResult, error) {
	record, ok := s.registry.Lookup(accountID)
	if !ok {
		return domain.LoginResult{}, domain.ErrAccountNotFound
	}
	if record.Secret != secret {
		return domain.LoginResult{}, domain.ErrSecretMismatch
	}

	result := domain.LoginResult{
		AccountID:  record.AccountID,
		Instrument: record.Instrument,
		IsAdmin:    record.IsAdmin,
	}
	if record.IsAdmin {
		return result, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	usageLog := s.readLog(ctx)
	if lastUsed, ok := usageLog[accountID]; ok {
		elapsed := s.now().Sub(time.UnixMilli(lastUsed))
		if elapsed < s.cooldown {
			remaining := s.cooldown - elapsed
			return domain.LoginResult{}, &domain.AccountLockedError{
				HoursLeft: int(math.Ceil(remaining.Hours())),
			}
		}
	}
	return result, nil
}

// MarkUsed stamps the card's usage-log entry with the current time,
// starting its cooldown. No-op for the administrator. The write is best
// effort; a failed write is reported but must not abort the session.
func (s *AuthService) MarkUsed(ctx context.Context, accountID string) error {
	if record, ok := s.registry.Lookup(accountID); !ok || record.IsAdmin {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	usageLog := s.readLog(ctx)
	usageLog[accountID] = s.now().UnixMilli()
	data, err := json.Marshal(usageLog)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, usageLogKey, string(data))
}

// UsageLog returns a copy of the persisted log for the admin view.
func (s *AuthService) UsageLog(ctx context.Context) map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLog(ctx)
}

// readLog loads the usage log, failing open: an unreadable or corrupt
// store reads as an empty log so valid cards are never rejected by a
// storage fault.
func (s *AuthService) readLog(ctx context.Context) map[string]int64 {
	usageLog := make(map[string]int64)
	raw, ok, err := s.store.Get(ctx, usageLogKey)
	if err != nil {
		log.Printf("usage log read failed, treating as empty: %v", err)
		return usageLog
	}
	if !ok || raw == "" {
		return usageLog
	}
	if err := json.Unmarshal([]byte(raw), &usageLog); err != nil {
		log.Printf("usage log corrupt, treating as empty: %v", err)
		return make(map[string]int64)
	}
	return usageLog
}
