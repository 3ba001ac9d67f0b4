package analysis

import (
	"sort"

	"creator-fee-scan/internal/domain"
)

// distribution holds the configured-royalty-weighted share metrics.
type distribution struct {
	TotalBps           int
	CreatorSharePct    float64
	NonCreatorSharePct float64
	Top1Pct            float64
	Top5Pct            float64
}

// sortClaimers orders claimers by royalty descending. The sort is stable:
// ties keep their original (upstream) order.
func sortClaimers(claimers []domain.Claimer) {
	sort.SliceStable(claimers, func(i, j int) bool {
		return claimers[i].RoyaltyBps > claimers[j].RoyaltyBps
	})
}

// computeDistribution derives share percentages from an already-sorted
// claimer list. All zero-denominator cases resolve to a zero share, which
// makes NonCreatorSharePct 100 for an empty or zero-royalty set.
func computeDistribution(sorted []domain.Claimer) distribution {
	var d distribution
	creatorBps := 0
	for _, c := range sorted {
		d.TotalBps += c.RoyaltyBps
		if c.IsCreator {
			creatorBps += c.RoyaltyBps
		}
	}

	if d.TotalBps > 0 {
		d.CreatorSharePct = float64(creatorBps) / float64(d.TotalBps) * 100
		d.Top1Pct = float64(sorted[0].RoyaltyBps) / float64(d.TotalBps) * 100

		topN := len(sorted)
		if topN > 5 {
			topN = 5
		}
		top5Bps := 0
		for _, c := range sorted[:topN] {
			top5Bps += c.RoyaltyBps
		}
		d.Top5Pct = float64(top5Bps) / float64(d.TotalBps) * 100
	}

	d.NonCreatorSharePct = 100 - d.CreatorSharePct
	return d
}
