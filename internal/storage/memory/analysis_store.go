// Package memory provides in-memory storage implementations for development
// and tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"creator-fee-scan/internal/domain"
	"creator-fee-scan/internal/storage"
)

// AnalysisStore is an in-memory implementation of storage.AnalysisStore.
type AnalysisStore struct {
	mu   sync.RWMutex
	data map[string][]*domain.TokenAnalysis // keyed by mint, newest first
}

// NewAnalysisStore creates a new in-memory analysis store.
func NewAnalysisStore() *AnalysisStore {
	return &AnalysisStore{
		data: make(map[string][]*domain.TokenAnalysis),
	}
}

var _ storage.AnalysisStore = (*AnalysisStore)(nil)

// Insert adds a snapshot. Returns ErrDuplicateKey if one exists for the same
// (mint, analyzed_at).
func (s *AnalysisStore) Insert(_ context.Context, a *domain.TokenAnalysis) error {
	if a == nil || a.Mint == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.data[a.Mint] {
		if existing.AnalyzedAt.Equal(a.AnalyzedAt) {
			return storage.ErrDuplicateKey
		}
	}

	// Store a copy to prevent external mutation.
	snapshot := copySnapshot(a)
	s.data[a.Mint] = append(s.data[a.Mint], snapshot)
	sort.SliceStable(s.data[a.Mint], func(i, j int) bool {
		return s.data[a.Mint][i].AnalyzedAt.After(s.data[a.Mint][j].AnalyzedAt)
	})
	return nil
}

// GetLatestByMint retrieves the most recent snapshot for a mint.
func (s *AnalysisStore) GetLatestByMint(_ context.Context, mint string) (*domain.TokenAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.data[mint]
	if len(history) == 0 {
		return nil, storage.ErrNotFound
	}
	return copySnapshot(history[0]), nil
}

// GetByMint retrieves up to limit snapshots for a mint, newest first.
func (s *AnalysisStore) GetByMint(_ context.Context, mint string, limit int) ([]*domain.TokenAnalysis, error) {
	if limit <= 0 {
		return nil, storage.ErrInvalidInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.data[mint]
	if len(history) > limit {
		history = history[:limit]
	}
	result := make([]*domain.TokenAnalysis, len(history))
	for i, a := range history {
		result[i] = copySnapshot(a)
	}
	return result, nil
}

// copySnapshot deep-copies a snapshot, including the claimer slice.
func copySnapshot(a *domain.TokenAnalysis) *domain.TokenAnalysis {
	snapshot := *a
	if a.LastClaimAt != nil {
		last := *a.LastClaimAt
		snapshot.LastClaimAt = &last
	}
	snapshot.Claimers = make([]domain.Claimer, len(a.Claimers))
	copy(snapshot.Claimers, a.Claimers)
	return &snapshot
}
