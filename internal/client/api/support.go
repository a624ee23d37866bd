package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lumeapp/sync-client/internal/model"
)

func (c *Client) GetSupportTickets(ctx context.Context) ([]model.SupportTicket, error) {
	var tickets []model.SupportTicket
	err := c.doJSON(ctx, http.MethodGet, "/support/tickets", nil, "", &tickets)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch support tickets: %w", err)
	}

	return tickets, nil
}

func (c *Client) GetSupportTicket(ctx context.Context, ticketID string) (*model.SupportTicket, error) {
	var ticket model.SupportTicket
	err := c.doJSON(ctx, http.MethodGet, "/support/tickets/"+pathEscape(ticketID), nil, "", &ticket)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch support ticket: %w", err)
	}

	return &ticket, nil
}

func (c *Client) CreateSupportTicket(ctx context.Context, subject, message string) (*model.SupportTicket, error) {
	req := map[string]string{
		"subject": subject,
		"message": message,
	}

	var ticket model.SupportTicket
	err := c.doJSON(ctx, http.MethodPost, "/support/tickets", req, "", &ticket)
	if err != nil {
		return nil, fmt.Errorf("failed to create support ticket: %w", err)
	}

	return &ticket, nil
}

func (c *Client) ReplySupportTicket(ctx context.Context, ticketID, message string) error {
	req := map[string]string{"message": message}

	err := c.doJSON(ctx, http.MethodPost, "/support/tickets/"+pathEscape(ticketID)+"/reply", req, "", nil)
	if err != nil {
		return fmt.Errorf("failed to reply to support ticket: %w", err)
	}

	return nil
}
