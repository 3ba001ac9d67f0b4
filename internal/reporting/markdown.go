// Package reporting renders analysis snapshots for human consumption.
package reporting

import (
	"fmt"
	"strings"
	"time"

	"creator-fee-scan/internal/domain"
	"creator-fee-scan/internal/validate"
)

// RenderMarkdown renders a TokenAnalysis as a Markdown report.
func RenderMarkdown(a *domain.TokenAnalysis) string {
	var sb strings.Builder

	sb.WriteString("# Fee Distribution Report\n\n")
	sb.WriteString(fmt.Sprintf("Mint: `%s`\n\n", a.Mint))
	sb.WriteString(fmt.Sprintf("## Verdict: %s\n\n", a.Verdict))
	sb.WriteString(a.Summary + "\n\n")
	sb.WriteString(a.Why + "\n\n")
	sb.WriteString(fmt.Sprintf("Pattern: %s | Activity: %s\n\n", a.Pattern, a.Activity))

	sb.WriteString("## Fees\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Lifetime fees | %.4f SOL |\n", a.LifetimeFeesSOL))
	sb.WriteString(fmt.Sprintf("| Claimed | %.1f%% |\n", a.ClaimedPct))
	sb.WriteString(fmt.Sprintf("| Unclaimed | %.1f%% |\n", a.UnclaimedPct))
	sb.WriteString("\n")

	sb.WriteString("## Distribution\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Creator share | %.1f%% |\n", a.CreatorSharePct))
	sb.WriteString(fmt.Sprintf("| Non-creator share | %.1f%% |\n", a.NonCreatorSharePct))
	sb.WriteString(fmt.Sprintf("| Top claimer | %.1f%% |\n", a.Top1Pct))
	sb.WriteString(fmt.Sprintf("| Top five claimers | %.1f%% |\n", a.Top5Pct))
	sb.WriteString("\n")

	sb.WriteString("## Activity\n\n")
	sb.WriteString(fmt.Sprintf("Claims in the last 24h: %d\n\n", a.ClaimCount24h))
	if a.LastClaimAt != nil {
		sb.WriteString(fmt.Sprintf("Last claim: %s\n\n", a.LastClaimAt.Format(time.RFC3339)))
	} else {
		sb.WriteString("Last claim: never\n\n")
	}

	sb.WriteString(fmt.Sprintf("## Claimers (%d)\n\n", a.ClaimerCount))
	if len(a.Claimers) == 0 {
		sb.WriteString("No wallets are configured to receive fees.\n")
	} else {
		sb.WriteString("| # | Wallet | Royalty | Creator | Claimed (SOL) | Type |\n")
		sb.WriteString("|---|--------|---------|---------|---------------|------|\n")
		for i, c := range a.Claimers {
			sb.WriteString(fmt.Sprintf("| %d | %s | %.1f%% | %s | %.4f | %s |\n",
				i+1,
				claimerLabel(c),
				float64(c.RoyaltyBps)/100,
				yesNo(c.IsCreator),
				c.TotalClaimedSOL,
				walletType(c.Wallet),
			))
		}
	}

	return sb.String()
}

// claimerLabel prefers the display username over the raw wallet.
func claimerLabel(c domain.Claimer) string {
	if c.Username != "" {
		return c.Username
	}
	return "`" + c.Wallet + "`"
}

// walletType annotates whether the recipient is a user wallet or a
// program-derived vault.
func walletType(wallet string) string {
	if validate.IsOnCurve(wallet) {
		return "wallet"
	}
	return "vault"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
