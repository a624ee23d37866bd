package api

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) Logout(ctx context.Context) error {
	err := c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, "", nil)
	if err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}

	if err := c.tokens.SaveTokens(ctx, "", ""); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}

	return nil
}

// RefreshSession forces the token rotation that otherwise runs lazily on a
// 403. The daemon calls this ahead of the access token's expiry.
func (c *Client) RefreshSession(ctx context.Context) error {
	access, _, err := c.tokens.Tokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	return c.refresh(ctx, access)
}
