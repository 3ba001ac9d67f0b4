package launchpad

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"creator-fee-scan/internal/domain"
)

// recentClaimLimit bounds the independent recent-events fetch. The 24h window
// list is count-accurate but may omit the globally most recent event when
// pagination differs, so the two lists are fetched separately.
const recentClaimLimit = 100

// Fetcher retrieves the raw collections for one token. Implemented by Client;
// the API layer takes this interface so handlers can be tested with stubs.
type Fetcher interface {
	FetchTokenData(ctx context.Context, mint string) (*domain.RawTokenData, error)
}

var _ Fetcher = (*Client)(nil)

// lifetimeFeesResponse is the raw lifetime-fees endpoint payload.
type lifetimeFeesResponse struct {
	Mint         string `json:"mint"`
	LifetimeFees string `json:"lifetimeFees"`
}

// claimEventsResponse wraps a claim-event list.
type claimEventsResponse struct {
	Events []domain.ClaimEvent `json:"events"`
}

// FetchTokenData issues the five endpoint calls concurrently and joins on all
// of them. The fetch is all-or-nothing: a failure or timeout on any one call
// cancels the rest and fails the combined operation, so partial snapshots are
// never produced.
func (c *Client) FetchTokenData(ctx context.Context, mint string) (*domain.RawTokenData, error) {
	raw := &domain.RawTokenData{Mint: mint}

	// Each goroutine writes a distinct field of raw, so no locking is needed.
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var resp lifetimeFeesResponse
		if err := c.get(ctx, "/fees/lifetime/"+mint, &resp); err != nil {
			return fmt.Errorf("lifetime fees: %w", err)
		}
		if strings.TrimSpace(resp.LifetimeFees) == "" {
			return ErrMissingLifetimeFees
		}
		raw.LifetimeFees = resp.LifetimeFees
		return nil
	})

	g.Go(func() error {
		if err := c.get(ctx, "/fees/claim-stats/"+mint, &raw.ClaimStats); err != nil {
			return fmt.Errorf("claim stats: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var resp claimEventsResponse
		if err := c.get(ctx, "/fees/claims/"+mint+"?window=24h", &resp); err != nil {
			return fmt.Errorf("claim events 24h: %w", err)
		}
		raw.Events24h = resp.Events
		return nil
	})

	g.Go(func() error {
		var resp claimEventsResponse
		if err := c.get(ctx, fmt.Sprintf("/fees/claims/%s?limit=%d", mint, recentClaimLimit), &resp); err != nil {
			return fmt.Errorf("recent claim events: %w", err)
		}
		raw.RecentEvents = resp.Events
		return nil
	})

	g.Go(func() error {
		if err := c.get(ctx, "/coins/"+mint+"/creators", &raw.Creators); err != nil {
			return fmt.Errorf("creators: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return raw, nil
}
