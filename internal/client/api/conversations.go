package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/lumeapp/sync-client/internal/model"
)

func (c *Client) GetReceiver(ctx context.Context, conversationID string) (*model.Receiver, error) {
	var receiver model.Receiver
	err := c.doJSON(ctx, http.MethodGet, "/conversations/receiver/"+pathEscape(conversationID), nil, "", &receiver)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to fetch receiver: %w", err)
	}

	return &receiver, nil
}

func (c *Client) CheckBlockStatus(ctx context.Context, userID int64) (*model.BlockStatus, error) {
	var status model.BlockStatus
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/conversations/block-status/%d", userID), nil, "", &status)
	if err != nil {
		return nil, fmt.Errorf("failed to check block status: %w", err)
	}

	return &status, nil
}

func (c *Client) GetFreeMessageStatus(ctx context.Context, conversationID string) (*model.FreeMessageStatus, error) {
	var status model.FreeMessageStatus
	err := c.doJSON(ctx, http.MethodGet, "/conversations/free-message-status/"+pathEscape(conversationID), nil, "", &status)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch free message status: %w", err)
	}

	return &status, nil
}

func (c *Client) ToggleFreeMessages(ctx context.Context, conversationID string, enabled bool) (*model.FreeMessageStatus, error) {
	req := map[string]any{
		"conversationId": conversationID,
		"enabled":        enabled,
	}

	var status model.FreeMessageStatus
	err := c.doJSON(ctx, http.MethodPost, "/conversations/toggle-free-messages", req, "", &status)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle free messages: %w", err)
	}

	return &status, nil
}

// GetThreadMessages loads one page of history, oldest-last, bounded by the
// opaque cursor returned with the previous page.
func (c *Client) GetThreadMessages(ctx context.Context, threadID, cursor string, limit int) (*model.Page[model.Message], error) {
	path := fmt.Sprintf("/conversations/%s/messages?limit=%d", pathEscape(threadID), limit)
	if cursor != "" {
		path += "&cursor=" + pathEscape(cursor)
	}

	var page model.Page[model.Message]
	err := c.doJSON(ctx, http.MethodGet, path, nil, "", &page)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to fetch thread messages: %w", err)
	}

	return &page, nil
}
