package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lumeapp/sync-client/internal/model"
)

func (c *Client) GetNotifications(ctx context.Context, cursor string, limit int) (*model.Page[model.Notification], error) {
	path := fmt.Sprintf("/notifications?limit=%d", limit)
	if cursor != "" {
		path += "&cursor=" + pathEscape(cursor)
	}

	var page model.Page[model.Notification]
	err := c.doJSON(ctx, http.MethodGet, path, nil, "", &page)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	return &page, nil
}

func (c *Client) GetUnreadNotificationCount(ctx context.Context) (int, error) {
	var result struct {
		Count int `json:"count"`
	}

	err := c.doJSON(ctx, http.MethodGet, "/notifications/unread-count", nil, "", &result)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch unread count: %w", err)
	}

	return result.Count, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	req := map[string]string{"id": notificationID}

	err := c.doJSON(ctx, http.MethodPost, "/notifications/mark-read", req, "", nil)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	err := c.doJSON(ctx, http.MethodPost, "/notifications/mark-all-read", nil, "", nil)
	if err != nil {
		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}

	return nil
}
