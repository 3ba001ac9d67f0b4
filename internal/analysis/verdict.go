package analysis

import (
	"fmt"

	"creator-fee-scan/internal/domain"
)

// Verdict thresholds.
const (
	dormantFeeFloorSOL = 0.1
	top1CentralizedPct = 50.0
	top5CentralizedPct = 80.0
)

// verdictFacts is the numeric input to the verdict ladder.
type verdictFacts struct {
	LifetimeFeesSOL float64
	ClaimerCount    int
	Top1Pct         float64
	Top5Pct         float64
}

// verdictRule pairs a predicate with the verdict and explanation it produces.
// The ladder is evaluated top-to-bottom, first match wins.
type verdictRule struct {
	match  func(verdictFacts) bool
	result func(verdictFacts) (domain.Verdict, string, string)
}

var verdictRules = []verdictRule{
	{
		match: func(f verdictFacts) bool {
			return f.LifetimeFeesSOL < dormantFeeFloorSOL || f.ClaimerCount == 0
		},
		result: func(f verdictFacts) (domain.Verdict, string, string) {
			why := fmt.Sprintf("Lifetime fees total just %.2f SOL.", f.LifetimeFeesSOL)
			if f.ClaimerCount == 0 {
				why = "No wallets are configured to claim fees."
			}
			return domain.VerdictDormant, "Fee revenue is dormant.", why
		},
	},
	{
		match: func(f verdictFacts) bool { return f.Top1Pct > top1CentralizedPct },
		result: func(f verdictFacts) (domain.Verdict, string, string) {
			return domain.VerdictCentralized,
				"Fee revenue is concentrated in a single wallet.",
				fmt.Sprintf("The top claimer holds %.1f%% of configured royalties.", f.Top1Pct)
		},
	},
	{
		// With five or fewer claimers the top five trivially hold 100%, so
		// the rule only applies when they are a proper subset.
		match: func(f verdictFacts) bool {
			return f.ClaimerCount > 5 && f.Top5Pct > top5CentralizedPct
		},
		result: func(f verdictFacts) (domain.Verdict, string, string) {
			return domain.VerdictCentralized,
				"Fee revenue is concentrated among a handful of wallets.",
				fmt.Sprintf("The top five claimers hold %.1f%% of configured royalties.", f.Top5Pct)
		},
	},
	{
		match: func(verdictFacts) bool { return true },
		result: func(f verdictFacts) (domain.Verdict, string, string) {
			return domain.VerdictHealthy,
				"Fee revenue is healthily distributed.",
				fmt.Sprintf("The top claimer holds %.1f%% and the top five hold %.1f%% of configured royalties.",
					f.Top1Pct, f.Top5Pct)
		},
	},
}

// classifyVerdict runs the verdict ladder and returns the verdict with its
// summary and rationale strings.
func classifyVerdict(f verdictFacts) (domain.Verdict, string, string) {
	for _, rule := range verdictRules {
		if rule.match(f) {
			return rule.result(f)
		}
	}
	// Unreachable: the last rule always matches.
	return domain.VerdictHealthy, "", ""
}
