package analysis

import "creator-fee-scan/internal/domain"

// MergeClaimers builds the claimer set from the two upstream record lists.
//
// This is a left-outer join with the creator configuration list as the
// driving side: a wallet is a claimer iff it appears in the configuration
// records with royalty_bps > 0. Claim-statistics records contribute only the
// total_claimed value for wallets that are already members; statistics-only
// wallets are noise from stale or off-protocol records and are excluded.
// Reversing the join direction silently changes the claimer set, so keep the
// configuration list on the left.
func MergeClaimers(creators, stats []domain.FeeRecipientRecord) []domain.Claimer {
	claimedByWallet := make(map[string]string, len(stats))
	for _, s := range stats {
		if _, ok := claimedByWallet[s.Wallet]; !ok {
			claimedByWallet[s.Wallet] = s.TotalClaimed
		}
	}

	seen := make(map[string]struct{}, len(creators))
	claimers := make([]domain.Claimer, 0, len(creators))
	for _, c := range creators {
		if c.RoyaltyBps <= 0 {
			continue
		}
		if _, dup := seen[c.Wallet]; dup {
			// First configuration occurrence wins.
			continue
		}
		seen[c.Wallet] = struct{}{}

		claimed := claimedByWallet[c.Wallet]
		if claimed == "" {
			claimed = "0"
		}
		claimedSOL, _ := LamportsToSOL(claimed)

		claimers = append(claimers, domain.Claimer{
			Wallet:           c.Wallet,
			RoyaltyBps:       c.RoyaltyBps,
			IsCreator:        c.IsCreator,
			TotalClaimed:     claimed,
			TotalClaimedSOL:  claimedSOL,
			Username:         c.Username,
			Pfp:              c.Pfp,
			Provider:         c.Provider,
			ProviderUsername: c.ProviderUsername,
		})
	}

	return claimers
}
