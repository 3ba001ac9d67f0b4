package analysis

import "creator-fee-scan/internal/domain"

// Pattern thresholds. These overlap with the verdict thresholds but are
// intentionally distinct (top1 > 50 is CENTRALIZED while top1 > 70 is
// Single-extractor); the two ladders classify different things and are not
// unified.
const (
	abandonedClaimedPct   = 30.0
	singleExtractorTop1   = 70.0
	creatorHeavySharePct  = 60.0
	broadTop1CeilingPct   = 40.0
	balanceTop1CeilingPct = 60.0
)

// patternFacts is the numeric input to the pattern ladder.
type patternFacts struct {
	ClaimedPct      float64
	Top1Pct         float64
	CreatorSharePct float64
	ClaimerCount    int
	Verdict         domain.Verdict
}

// patternRule pairs a pattern with its predicate; first match wins.
type patternRule struct {
	pattern domain.Pattern
	match   func(patternFacts) bool
}

var patternRules = []patternRule{
	{domain.PatternAbandonedFees, func(f patternFacts) bool {
		return f.ClaimedPct < abandonedClaimedPct && f.ClaimerCount > 0
	}},
	{domain.PatternSingleExtractor, func(f patternFacts) bool {
		return f.Top1Pct > singleExtractorTop1
	}},
	{domain.PatternCreatorHeavy, func(f patternFacts) bool {
		return f.CreatorSharePct > creatorHeavySharePct
	}},
	{domain.PatternBroadDistribution, func(f patternFacts) bool {
		return f.ClaimerCount >= 5 && f.Top1Pct < broadTop1CeilingPct
	}},
	{domain.PatternMultiClaimerBalance, func(f patternFacts) bool {
		return f.ClaimerCount >= 2 && f.Top1Pct < balanceTop1CeilingPct
	}},
}

// classifyPattern runs the pattern ladder. Only the fallback consults the
// verdict: dormant tokens with no matching shape read as abandoned, everything
// else defaults to creator-heavy.
func classifyPattern(f patternFacts) domain.Pattern {
	for _, rule := range patternRules {
		if rule.match(f) {
			return rule.pattern
		}
	}
	if f.Verdict == domain.VerdictDormant {
		return domain.PatternAbandonedFees
	}
	return domain.PatternCreatorHeavy
}
