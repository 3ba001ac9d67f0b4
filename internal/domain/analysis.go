package domain

import "time"

// Verdict is the coarse risk classification of a token's fee distribution.
type Verdict string

const (
	VerdictHealthy     Verdict = "HEALTHY"
	VerdictCentralized Verdict = "CENTRALIZED"
	VerdictDormant     Verdict = "DORMANT"
)

// Pattern describes the shape of the distribution. It is classified
// independently of the verdict: verdict is risk framing, pattern is shape
// framing, and the two ladders intentionally use different thresholds.
type Pattern string

const (
	PatternAbandonedFees       Pattern = "Abandoned fees"
	PatternSingleExtractor     Pattern = "Single-extractor"
	PatternCreatorHeavy        Pattern = "Creator-heavy"
	PatternBroadDistribution   Pattern = "Broad distribution"
	PatternMultiClaimerBalance Pattern = "Multi-claimer balance"
)

// ActivityStatus is the qualitative claim-activity classification.
type ActivityStatus string

const (
	ActivityActive ActivityStatus = "Active"
	ActivityQuiet  ActivityStatus = "Quiet"
	ActivityDead   ActivityStatus = "Dead"
)

// TokenAnalysis is the immutable snapshot produced by one analysis run. It is
// a pure function of the five raw inputs plus a single wall-clock read at
// evaluation time (which affects only activity status and the last-claim
// validity window).
type TokenAnalysis struct {
	Mint string `json:"mint"`

	// Fee metrics. UnclaimedPct is 100 - ClaimedPct by construction and is
	// deliberately not clamped: a negative value signals that upstream claim
	// totals exceed lifetime fees.
	LifetimeFeesSOL float64 `json:"lifetimeFeesSol"`
	ClaimedPct      float64 `json:"claimedPct"`
	UnclaimedPct    float64 `json:"unclaimedPct"`

	// Distribution metrics, weighted by configured royalty_bps rather than by
	// claimed amounts.
	CreatorSharePct    float64 `json:"creatorSharePct"`
	NonCreatorSharePct float64 `json:"nonCreatorSharePct"`
	Top1Pct            float64 `json:"top1Pct"`
	Top5Pct            float64 `json:"top5Pct"`

	// Activity metrics.
	ClaimCount24h int            `json:"claimCount24h"`
	ClaimerCount  int            `json:"claimerCount"`
	LastClaimAt   *time.Time     `json:"lastClaimAt,omitempty"`
	Activity      ActivityStatus `json:"activity"`

	// Claimers is the full merged set, sorted by royalty descending.
	Claimers []Claimer `json:"claimers"`

	Verdict Verdict `json:"verdict"`
	Summary string  `json:"summary"`
	Why     string  `json:"why"`
	Pattern Pattern `json:"pattern"`

	AnalyzedAt time.Time `json:"analyzedAt"`
}
