package domain

// Claimer is a wallet configured to receive a nonzero share of fee revenue.
// Claimers are constructed fresh for each analysis by merging the creator
// configuration records with the claim statistics records, and are never
// mutated after construction.
type Claimer struct {
	Wallet     string `json:"wallet"`
	RoyaltyBps int    `json:"royaltyBps"`
	IsCreator  bool   `json:"isCreator"`

	// TotalClaimed is the amount actually withdrawn so far, in lamports.
	// TotalClaimedSOL is the same amount converted to whole SOL.
	TotalClaimed    string  `json:"totalClaimed"`
	TotalClaimedSOL float64 `json:"totalClaimedSol"`

	// Display metadata, no analytical weight.
	Username         string `json:"username,omitempty"`
	Pfp              string `json:"pfp,omitempty"`
	Provider         string `json:"provider,omitempty"`
	ProviderUsername string `json:"providerUsername,omitempty"`
}
