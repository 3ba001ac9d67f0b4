package domain

import "time"

// ArchivedClaim is a claim event with its timestamp already normalized,
// retained in the analytics archive. Only events that normalized to a valid
// instant are archived.
type ArchivedClaim struct {
	Wallet    string
	Amount    string // lamports, decimal digits
	Signature string
	ClaimedAt time.Time
}
