// Package analytics loads the creator dashboard. All four panels for a
// range are fetched together and swapped in atomically: a partial failure
// keeps the previous snapshot instead of passing stale panels off as fresh.
package analytics

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lumeapp/sync-client/internal/model"
	"github.com/lumeapp/sync-client/internal/pkg/validator"
)

type Dashboard struct {
	api   API
	valid *validator.Validator

	mu      sync.Mutex
	loading bool
	current *model.AnalyticsOverview
}

func NewDashboard(api API) *Dashboard {
	return &Dashboard{
		api:   api,
		valid: validator.New(),
	}
}

// Load fetches the four panels for dateRange concurrently. The snapshot is
// replaced only once every fetch has succeeded; any error leaves the
// current snapshot untouched and is returned to the caller.
func (d *Dashboard) Load(ctx context.Context, dateRange string) (*model.AnalyticsOverview, error) {
	if err := d.valid.ValidateAnalyticsRange(dateRange); err != nil {
		return nil, err
	}

	d.mu.Lock()
	if d.loading {
		d.mu.Unlock()
		return nil, nil
	}
	d.loading = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.loading = false
		d.mu.Unlock()
	}()

	next := &model.AnalyticsOverview{Range: dateRange}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		growth, err := d.api.GetAccountGrowth(gctx, dateRange)
		if err != nil {
			return fmt.Errorf("failed to load growth panel: %w", err)
		}
		next.Growth = growth
		return nil
	})

	g.Go(func() error {
		engagement, err := d.api.GetEngagement(gctx, dateRange)
		if err != nil {
			return fmt.Errorf("failed to load engagement panel: %w", err)
		}
		next.Engagement = engagement
		return nil
	})

	g.Go(func() error {
		audience, err := d.api.GetAudience(gctx)
		if err != nil {
			return fmt.Errorf("failed to load audience panel: %w", err)
		}
		next.Audience = *audience
		return nil
	})

	g.Go(func() error {
		posts, err := d.api.GetRecentPosts(gctx, dateRange)
		if err != nil {
			return fmt.Errorf("failed to load recent posts panel: %w", err)
		}
		next.RecentPosts = posts
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.current = next
	d.mu.Unlock()

	return next, nil
}

func (d *Dashboard) Current() (*model.AnalyticsOverview, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.current == nil {
		return nil, false
	}

	copied := *d.current
	return &copied, true
}
