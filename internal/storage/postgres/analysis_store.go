package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"creator-fee-scan/internal/domain"
	"creator-fee-scan/internal/storage"
)

// AnalysisStore implements storage.AnalysisStore using PostgreSQL. Claimer
// lists are persisted as JSONB alongside the flat snapshot columns.
type AnalysisStore struct {
	pool *Pool
}

// NewAnalysisStore creates a new AnalysisStore.
func NewAnalysisStore(pool *Pool) *AnalysisStore {
	return &AnalysisStore{pool: pool}
}

// Compile-time interface check.
var _ storage.AnalysisStore = (*AnalysisStore)(nil)

const analysisColumns = `
	mint, analyzed_at, lifetime_fees_sol, claimed_pct, unclaimed_pct,
	creator_share_pct, non_creator_share_pct, top1_pct, top5_pct,
	claim_count_24h, claimer_count, last_claim_at, activity,
	verdict, summary, why, pattern, claimers
`

// Insert adds a snapshot. Returns ErrDuplicateKey if a snapshot exists for
// the same (mint, analyzed_at).
func (s *AnalysisStore) Insert(ctx context.Context, a *domain.TokenAnalysis) error {
	if a == nil || a.Mint == "" {
		return storage.ErrInvalidInput
	}

	claimers, err := json.Marshal(a.Claimers)
	if err != nil {
		return fmt.Errorf("marshal claimers: %w", err)
	}

	query := `
		INSERT INTO token_analyses (` + analysisColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err = s.pool.Exec(ctx, query,
		a.Mint, a.AnalyzedAt, a.LifetimeFeesSOL, a.ClaimedPct, a.UnclaimedPct,
		a.CreatorSharePct, a.NonCreatorSharePct, a.Top1Pct, a.Top5Pct,
		a.ClaimCount24h, a.ClaimerCount, a.LastClaimAt, string(a.Activity),
		string(a.Verdict), a.Summary, a.Why, string(a.Pattern), claimers,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

// GetLatestByMint retrieves the most recent snapshot for a mint. Returns
// ErrNotFound if the mint has never been analyzed.
func (s *AnalysisStore) GetLatestByMint(ctx context.Context, mint string) (*domain.TokenAnalysis, error) {
	query := `
		SELECT ` + analysisColumns + `
		FROM token_analyses
		WHERE mint = $1
		ORDER BY analyzed_at DESC
		LIMIT 1
	`

	a, err := scanAnalysis(s.pool.QueryRow(ctx, query, mint))
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get latest analysis: %w", err)
	}
	return a, nil
}

// GetByMint retrieves up to limit snapshots for a mint, newest first.
func (s *AnalysisStore) GetByMint(ctx context.Context, mint string, limit int) ([]*domain.TokenAnalysis, error) {
	if limit <= 0 {
		return nil, storage.ErrInvalidInput
	}

	query := `
		SELECT ` + analysisColumns + `
		FROM token_analyses
		WHERE mint = $1
		ORDER BY analyzed_at DESC
		LIMIT $2
	`

	rows, err := s.pool.Query(ctx, query, mint, limit)
	if err != nil {
		return nil, fmt.Errorf("get analyses by mint: %w", err)
	}
	defer rows.Close()

	var result []*domain.TokenAnalysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analyses: %w", err)
	}
	return result, nil
}

// rowScanner abstracts pgx.Row and pgx.Rows for scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAnalysis reads one snapshot row.
func scanAnalysis(row rowScanner) (*domain.TokenAnalysis, error) {
	var (
		a           domain.TokenAnalysis
		activity    string
		verdict     string
		pattern     string
		lastClaimAt *time.Time
		claimers    []byte
	)

	err := row.Scan(
		&a.Mint, &a.AnalyzedAt, &a.LifetimeFeesSOL, &a.ClaimedPct, &a.UnclaimedPct,
		&a.CreatorSharePct, &a.NonCreatorSharePct, &a.Top1Pct, &a.Top5Pct,
		&a.ClaimCount24h, &a.ClaimerCount, &lastClaimAt, &activity,
		&verdict, &a.Summary, &a.Why, &pattern, &claimers,
	)
	if err != nil {
		return nil, err
	}

	a.Activity = domain.ActivityStatus(activity)
	a.Verdict = domain.Verdict(verdict)
	a.Pattern = domain.Pattern(pattern)
	a.LastClaimAt = lastClaimAt
	a.AnalyzedAt = a.AnalyzedAt.UTC()
	if lastClaimAt != nil {
		utc := lastClaimAt.UTC()
		a.LastClaimAt = &utc
	}

	if len(claimers) > 0 {
		if err := json.Unmarshal(claimers, &a.Claimers); err != nil {
			return nil, fmt.Errorf("unmarshal claimers: %w", err)
		}
	}
	return &a, nil
}
