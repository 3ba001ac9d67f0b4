// Package analysis implements the normalization and verdict-derivation
// engine: a pure, deterministic transformation from five raw upstream
// collections into one TokenAnalysis snapshot. The engine is total over
// well-typed input; every numeric and timestamp edge case resolves to a
// defined default rather than an error, because the upstream source is known
// to be occasionally inconsistent and one bad record must not sink the whole
// analysis.
package analysis

import (
	"time"

	"creator-fee-scan/internal/domain"
)

// Analyze produces a snapshot from raw upstream data, reading the wall clock
// once. Safe to call concurrently; the engine holds no state between calls.
func Analyze(raw domain.RawTokenData) *domain.TokenAnalysis {
	return AnalyzeAt(raw, time.Now().UTC())
}

// AnalyzeAt is the deterministic core of Analyze. now affects only the
// activity status and the last-claim validity window.
func AnalyzeAt(raw domain.RawTokenData, now time.Time) *domain.TokenAnalysis {
	claimers := MergeClaimers(raw.Creators, raw.ClaimStats)
	sortClaimers(claimers)

	lifetimeSOL, _ := LamportsToSOL(raw.LifetimeFees)

	claimedSOL := 0.0
	for _, c := range claimers {
		claimedSOL += c.TotalClaimedSOL
	}

	var claimedPct float64
	if lifetimeSOL > 0 {
		claimedPct = claimedSOL / lifetimeSOL * 100
	}

	dist := computeDistribution(claimers)

	count24h := countValidClaims(raw.Events24h)
	lastClaim := lastClaimInstant(raw.RecentEvents, now)

	verdict, summary, why := classifyVerdict(verdictFacts{
		LifetimeFeesSOL: lifetimeSOL,
		ClaimerCount:    len(claimers),
		Top1Pct:         dist.Top1Pct,
		Top5Pct:         dist.Top5Pct,
	})

	pattern := classifyPattern(patternFacts{
		ClaimedPct:      claimedPct,
		Top1Pct:         dist.Top1Pct,
		CreatorSharePct: dist.CreatorSharePct,
		ClaimerCount:    len(claimers),
		Verdict:         verdict,
	})

	return &domain.TokenAnalysis{
		Mint:               raw.Mint,
		LifetimeFeesSOL:    lifetimeSOL,
		ClaimedPct:         claimedPct,
		UnclaimedPct:       100 - claimedPct,
		CreatorSharePct:    dist.CreatorSharePct,
		NonCreatorSharePct: dist.NonCreatorSharePct,
		Top1Pct:            dist.Top1Pct,
		Top5Pct:            dist.Top5Pct,
		ClaimCount24h:      count24h,
		ClaimerCount:       len(claimers),
		LastClaimAt:        lastClaim,
		Activity:           classifyActivity(count24h, lastClaim, now),
		Claimers:           claimers,
		Verdict:            verdict,
		Summary:            summary,
		Why:                why,
		Pattern:            pattern,
		AnalyzedAt:         now,
	}
}
