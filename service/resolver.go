package service

import (
	"fmt"

	"github.com/loviluz/remittance.api.loviluz.es/config"
)

// Stored identifiers shorter than this cannot be an IBAN and are treated as
// absent
const minPlausibleIBANLength = 10

// Resolution is the outcome of resolving a debtor account. Substitution is
// tagged so that a fallback account number is never an invisible default.
type Resolution struct {
	IBAN        string
	Substituted bool
	Reason      string
}

// ResolveDebtorAccount returns the account a collection should debit. A
// stored identifier of plausible length is used as-is; otherwise the
// configured fallback is substituted, or an AccountResolutionError returned
// under the reject policy.
func ResolveDebtorAccount(stored string, opts Options) (Resolution, error) {
	if len(stored) >= minPlausibleIBANLength {
		return Resolution{IBAN: stored}, nil
	}

	reason := "customer has no stored bank account identifier"
	if stored != "" {
		reason = fmt.Sprintf("stored identifier [%s] is shorter than %d characters", stored, minPlausibleIBANLength)
	}

	if opts.AccountFallbackPolicy == config.FallbackPolicyReject {
		return Resolution{}, &AccountResolutionError{Reason: reason}
	}

	return Resolution{IBAN: opts.FallbackIBAN, Substituted: true, Reason: reason}, nil
}
