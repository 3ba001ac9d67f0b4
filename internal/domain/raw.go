package domain

// FeeRecipientRecord is one raw upstream record describing a fee recipient.
// The same shape is returned by two endpoints with different authority: the
// creator configuration endpoint is authoritative for claimer-set membership
// and royalty_bps, the claim statistics endpoint is authoritative only for
// the total_claimed value.
type FeeRecipientRecord struct {
	Wallet       string `json:"wallet"`
	RoyaltyBps   int    `json:"royaltyBps"`
	IsCreator    bool   `json:"isCreator"`
	TotalClaimed string `json:"totalClaimed,omitempty"` // lamports, decimal digits

	Username         string `json:"username,omitempty"`
	Pfp              string `json:"pfp,omitempty"`
	Provider         string `json:"provider,omitempty"`
	ProviderUsername string `json:"providerUsername,omitempty"`
}

// ClaimEvent is a single fee withdrawal record. Events are only used in
// aggregate: counted within a window and scanned for the most recent valid
// instant.
type ClaimEvent struct {
	Wallet    string   `json:"wallet"`
	Amount    string   `json:"amount"` // lamports, decimal digits
	Signature string   `json:"signature"`
	Timestamp FlexTime `json:"timestamp"`
}

// RawTokenData holds the five upstream collections the analysis engine
// consumes. All fields are in-memory copies of upstream responses; the engine
// never fetches anything itself.
type RawTokenData struct {
	Mint string

	// LifetimeFees is the lamport total of fees ever accrued. Required
	// upstream field; presence is enforced by the fetch layer.
	LifetimeFees string

	// ClaimStats holds per-wallet claim statistics records.
	ClaimStats []FeeRecipientRecord

	// Events24h is pre-filtered upstream to a 24-hour window and is
	// count-accurate for that window.
	Events24h []ClaimEvent

	// RecentEvents is fetched independently of Events24h (typically
	// newest-first, bounded count) because the windowed list may omit the
	// globally most recent event when pagination differs. Used only for the
	// last-claim instant.
	RecentEvents []ClaimEvent

	// Creators holds the creator configuration records, the source of truth
	// for claimer-set membership.
	Creators []FeeRecipientRecord
}
