// Package credential generates the fixed access-card set. Cards are printed
// and distributed physically, so generation must reproduce the exact same
// account/secret pairs on every run.
package credential

import (
	"fmt"
	"sort"

	"childscreen-service/internal/domain"
)

const (
	// AdminAccountID is the single administrator card.
	AdminAccountID = "admin"
	adminSecret    = "gtdd001"

	sensoryPrefix    = "GT"
	behavioralPrefix = "DD"
	cardsPerPrefix   = 100

	// Secret derivation constants. The two multiplier/offset pairs are
	// frozen: changing either invalidates cards already in circulation.
	sensoryMultiplier    = 997
	sensoryOffset        = 12345
	behavioralMultiplier = 883
	behavioralOffset     = 54321
)

// Registry is the immutable account set, keyed by account ID.
type Registry map[string]domain.CredentialRecord

// BuildRegistry derives the full card set: one administrator, 100 sensory
// cards (GT0001-GT0100) and 100 behavioral cards (DD0001-DD0100). Pure
// arithmetic, no randomness, no I/O.
func BuildRegistry() Registry {
	registry := make(Registry, 2*cardsPerPrefix+1)

	registry[AdminAccountID] = domain.CredentialRecord{
		AccountID:  AdminAccountID,
		Secret:     adminSecret,
		Instrument: domain.InstrumentBehavioral,
		IsAdmin:    true,
	}

	for i := 1; i <= cardsPerPrefix; i++ {
		id := fmt.Sprintf("%s%04d", sensoryPrefix, i)
		registry[id] = domain.CredentialRecord{
			AccountID:  id,
			Secret:     deriveSecret(i, sensoryMultiplier, sensoryOffset),
			Instrument: domain.InstrumentSensory,
		}

		id = fmt.Sprintf("%s%04d", behavioralPrefix, i)
		registry[id] = domain.CredentialRecord{
			AccountID:  id,
			Secret:     deriveSecret(i, behavioralMultiplier, behavioralOffset),
			Instrument: domain.InstrumentBehavioral,
		}
	}
	return registry
}

// deriveSecret maps a sequence number onto a 6-digit numeral. All
// intermediate values fit comfortably in a signed 32-bit int.
func deriveSecret(seq, multiplier, offset int) string {
	return fmt.Sprintf("%d", (seq*multiplier+offset)%900000+100000)
}

// Lookup returns the record for an account ID.
func (r Registry) Lookup(accountID string) (domain.CredentialRecord, bool) {
	record, ok := r[accountID]
	return record, ok
}

// Records returns every card sorted by account ID, administrator first.
func (r Registry) Records() []domain.CredentialRecord {
	records := make([]domain.CredentialRecord, 0, len(r))
	for _, record := range r {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].IsAdmin != records[j].IsAdmin {
			return records[i].IsAdmin
		}
		return records[i].AccountID < records[j].AccountID
	})
	return records
}
