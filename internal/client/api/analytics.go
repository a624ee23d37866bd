package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lumeapp/sync-client/internal/model"
)

func (c *Client) GetAccountGrowth(ctx context.Context, dateRange string) ([]model.GrowthPoint, error) {
	var points []model.GrowthPoint
	err := c.doJSON(ctx, http.MethodGet, "/analytics/account-growth/"+pathEscape(dateRange), nil, "", &points)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account growth: %w", err)
	}

	return points, nil
}

func (c *Client) GetEngagement(ctx context.Context, dateRange string) ([]model.EngagementPoint, error) {
	var points []model.EngagementPoint
	err := c.doJSON(ctx, http.MethodGet, "/analytics/engagement/"+pathEscape(dateRange), nil, "", &points)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch engagement: %w", err)
	}

	return points, nil
}

func (c *Client) GetAudience(ctx context.Context) (*model.AudienceBreakdown, error) {
	var audience model.AudienceBreakdown
	err := c.doJSON(ctx, http.MethodGet, "/analytics/audience", nil, "", &audience)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audience: %w", err)
	}

	return &audience, nil
}

func (c *Client) GetRecentPosts(ctx context.Context, dateRange string) ([]model.RecentPost, error) {
	var posts []model.RecentPost
	err := c.doJSON(ctx, http.MethodGet, "/analytics/recent-posts/"+pathEscape(dateRange), nil, "", &posts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent posts: %w", err)
	}

	return posts, nil
}

func (c *Client) GetMetrics(ctx context.Context, dateRange string) (map[string]int64, error) {
	var metrics map[string]int64
	err := c.doJSON(ctx, http.MethodGet, "/analytics/metrics/"+pathEscape(dateRange), nil, "", &metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metrics: %w", err)
	}

	return metrics, nil
}
