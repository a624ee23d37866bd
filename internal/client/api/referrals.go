package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lumeapp/sync-client/internal/model"
)

func (c *Client) GetReferrals(ctx context.Context, cursor string, limit int) (*model.Page[model.Referral], error) {
	path := fmt.Sprintf("/referrals?limit=%d", limit)
	if cursor != "" {
		path += "&cursor=" + pathEscape(cursor)
	}

	var page model.Page[model.Referral]
	err := c.doJSON(ctx, http.MethodGet, path, nil, "", &page)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch referrals: %w", err)
	}

	return &page, nil
}

func (c *Client) GetPointsBalance(ctx context.Context) (*model.PointsBalance, error) {
	var balance model.PointsBalance
	err := c.doJSON(ctx, http.MethodGet, "/points/balance", nil, "", &balance)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch points balance: %w", err)
	}

	return &balance, nil
}
