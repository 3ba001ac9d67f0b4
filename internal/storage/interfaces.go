// Package storage defines the persistence contracts for analysis snapshots
// and the claim-event archive. Snapshots are append-only history: each
// analysis run inserts a new row, nothing is ever updated.
package storage

import (
	"context"
	"time"

	"creator-fee-scan/internal/domain"
)

// AnalysisStore provides access to token analysis snapshot storage.
type AnalysisStore interface {
	// Insert adds a snapshot. Returns ErrDuplicateKey if a snapshot for the
	// same (mint, analyzed_at) already exists.
	Insert(ctx context.Context, a *domain.TokenAnalysis) error

	// GetLatestByMint retrieves the most recent snapshot for a mint.
	// Returns ErrNotFound if the mint has never been analyzed.
	GetLatestByMint(ctx context.Context, mint string) (*domain.TokenAnalysis, error)

	// GetByMint retrieves up to limit snapshots for a mint, newest first.
	GetByMint(ctx context.Context, mint string, limit int) ([]*domain.TokenAnalysis, error)
}

// ClaimEventArchive provides access to the claim-event analytics archive.
type ClaimEventArchive interface {
	// InsertBulk archives claim events observed during an analysis.
	// Re-archiving the same signature is allowed; readers deduplicate.
	InsertBulk(ctx context.Context, mint string, observedAt time.Time, claims []domain.ArchivedClaim) error

	// CountSince returns the number of distinct archived claims for a mint
	// with claimed_at at or after since.
	CountSince(ctx context.Context, mint string, since time.Time) (uint64, error)
}
