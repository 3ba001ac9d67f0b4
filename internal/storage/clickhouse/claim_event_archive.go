package clickhouse

import (
	"context"
	"fmt"
	"time"

	"creator-fee-scan/internal/domain"
	"creator-fee-scan/internal/storage"
)

// ClaimEventArchive implements storage.ClaimEventArchive using ClickHouse.
// The archive is insert-heavy and read rarely; signatures may be archived
// more than once (one row per analysis that observed the event), so reads
// count distinct signatures.
type ClaimEventArchive struct {
	conn *Conn
}

// NewClaimEventArchive creates a new ClaimEventArchive.
func NewClaimEventArchive(conn *Conn) *ClaimEventArchive {
	return &ClaimEventArchive{conn: conn}
}

// Compile-time interface check.
var _ storage.ClaimEventArchive = (*ClaimEventArchive)(nil)

// InsertBulk archives claim events observed during an analysis.
func (s *ClaimEventArchive) InsertBulk(ctx context.Context, mint string, observedAt time.Time, claims []domain.ArchivedClaim) error {
	if mint == "" {
		return storage.ErrInvalidInput
	}
	if len(claims) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO claim_events (mint, wallet, amount_lamports, signature, claimed_at, observed_at)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, c := range claims {
		if err := batch.Append(mint, c.Wallet, c.Amount, c.Signature, c.ClaimedAt, observedAt); err != nil {
			return fmt.Errorf("append claim event: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send claim event batch: %w", err)
	}
	return nil
}

// CountSince returns the number of distinct archived claims for a mint with
// claimed_at at or after since.
func (s *ClaimEventArchive) CountSince(ctx context.Context, mint string, since time.Time) (uint64, error) {
	query := `
		SELECT count(DISTINCT signature)
		FROM claim_events
		WHERE mint = ? AND claimed_at >= ?
	`

	var count uint64
	if err := s.conn.QueryRow(ctx, query, mint, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count claim events: %w", err)
	}
	return count, nil
}
