package analysis

import (
	"time"

	"creator-fee-scan/internal/domain"
)

// minValidClaimInstant is the lower bound for a claim timestamp to be
// considered real. The launchpad protocol did not exist before 2020, so
// anything earlier is upstream garbage (zeroed or corrupted timestamps).
var minValidClaimInstant = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// countValidClaims counts events whose timestamp normalizes to a valid
// instant at or after minValidClaimInstant. Non-parseable, zero, and negative
// timestamps are excluded.
func countValidClaims(events []domain.ClaimEvent) int {
	count := 0
	for _, e := range events {
		ts, ok := e.Timestamp.Instant()
		if !ok || ts.Before(minValidClaimInstant) {
			continue
		}
		count++
	}
	return count
}

// lastClaimInstant scans events in given order and returns the first whose
// instant lies strictly between minValidClaimInstant and now+24h. The upper
// bound tolerates minor clock skew from the upstream source. Returns nil when
// no event qualifies.
func lastClaimInstant(events []domain.ClaimEvent, now time.Time) *time.Time {
	upper := now.Add(24 * time.Hour)
	for _, e := range events {
		ts, ok := e.Timestamp.Instant()
		if !ok || !ts.After(minValidClaimInstant) || !ts.Before(upper) {
			continue
		}
		return &ts
	}
	return nil
}

// ValidClaims normalizes events into archive records, dropping any whose
// timestamp does not resolve to a valid instant at or after
// minValidClaimInstant. Used to feed the analytics archive with the same
// validity rules the 24h count applies.
func ValidClaims(events []domain.ClaimEvent) []domain.ArchivedClaim {
	claims := make([]domain.ArchivedClaim, 0, len(events))
	for _, e := range events {
		ts, ok := e.Timestamp.Instant()
		if !ok || ts.Before(minValidClaimInstant) {
			continue
		}
		claims = append(claims, domain.ArchivedClaim{
			Wallet:    e.Wallet,
			Amount:    e.Amount,
			Signature: e.Signature,
			ClaimedAt: ts,
		})
	}
	return claims
}

// activityRule pairs a status with its predicate. Rules are evaluated
// top-to-bottom with early exit; order is load-bearing.
type activityRule struct {
	status domain.ActivityStatus
	match  func(count24h int, last *time.Time, now time.Time) bool
}

var activityRules = []activityRule{
	{domain.ActivityDead, func(_ int, last *time.Time, _ time.Time) bool {
		return last == nil
	}},
	{domain.ActivityActive, func(count24h int, _ *time.Time, _ time.Time) bool {
		return count24h >= 5
	}},
	{domain.ActivityQuiet, func(count24h int, last *time.Time, now time.Time) bool {
		return count24h >= 1 || now.Sub(*last).Hours() < 48
	}},
}

// classifyActivity runs the activity ladder.
func classifyActivity(count24h int, last *time.Time, now time.Time) domain.ActivityStatus {
	for _, rule := range activityRules {
		if rule.match(count24h, last, now) {
			return rule.status
		}
	}
	return domain.ActivityDead
}
