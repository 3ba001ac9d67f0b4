package analysis

import (
	"testing"

	"creator-fee-scan/internal/domain"
)

func TestSortClaimers_RoyaltyDescendingStable(t *testing.T) {
	claimers := []domain.Claimer{
		{Wallet: "walletA", RoyaltyBps: 1000},
		{Wallet: "walletB", RoyaltyBps: 5000},
		{Wallet: "walletC", RoyaltyBps: 1000},
	}

	sortClaimers(claimers)

	if claimers[0].Wallet != "walletB" {
		t.Errorf("Expected walletB first, got %s", claimers[0].Wallet)
	}
	// Equal royalties keep upstream order.
	if claimers[1].Wallet != "walletA" || claimers[2].Wallet != "walletC" {
		t.Errorf("Tie order not preserved: %s, %s", claimers[1].Wallet, claimers[2].Wallet)
	}
}

func TestComputeDistribution_Shares(t *testing.T) {
	claimers := []domain.Claimer{
		{Wallet: "walletA", RoyaltyBps: 6000, IsCreator: true},
		{Wallet: "walletB", RoyaltyBps: 3000},
		{Wallet: "walletC", RoyaltyBps: 1000},
	}

	d := computeDistribution(claimers)

	if d.TotalBps != 10000 {
		t.Errorf("TotalBps = %d, want 10000", d.TotalBps)
	}
	if d.CreatorSharePct != 60 {
		t.Errorf("CreatorSharePct = %v, want 60", d.CreatorSharePct)
	}
	if d.NonCreatorSharePct != 40 {
		t.Errorf("NonCreatorSharePct = %v, want 40", d.NonCreatorSharePct)
	}
	if d.Top1Pct != 60 {
		t.Errorf("Top1Pct = %v, want 60", d.Top1Pct)
	}
	if d.Top5Pct != 100 {
		t.Errorf("Top5Pct = %v, want 100", d.Top5Pct)
	}
}

func TestComputeDistribution_MoreThanFiveClaimers(t *testing.T) {
	claimers := []domain.Claimer{
		{Wallet: "w1", RoyaltyBps: 3000},
		{Wallet: "w2", RoyaltyBps: 2000},
		{Wallet: "w3", RoyaltyBps: 2000},
		{Wallet: "w4", RoyaltyBps: 1000},
		{Wallet: "w5", RoyaltyBps: 1000},
		{Wallet: "w6", RoyaltyBps: 500},
		{Wallet: "w7", RoyaltyBps: 500},
	}

	d := computeDistribution(claimers)

	if d.TotalBps != 10000 {
		t.Fatalf("TotalBps = %d, want 10000", d.TotalBps)
	}
	if d.Top1Pct != 30 {
		t.Errorf("Top1Pct = %v, want 30", d.Top1Pct)
	}
	if d.Top5Pct != 90 {
		t.Errorf("Top5Pct = %v, want 90", d.Top5Pct)
	}
}

func TestComputeDistribution_EmptySet(t *testing.T) {
	d := computeDistribution(nil)

	if d.TotalBps != 0 || d.CreatorSharePct != 0 || d.Top1Pct != 0 || d.Top5Pct != 0 {
		t.Errorf("Expected zero shares for empty set, got %+v", d)
	}
	// Zero creator share means a 100% non-creator share.
	if d.NonCreatorSharePct != 100 {
		t.Errorf("NonCreatorSharePct = %v, want 100", d.NonCreatorSharePct)
	}
}
