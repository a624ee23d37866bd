//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package notifications

import (
	"context"

	"github.com/lumeapp/sync-client/internal/model"
)

type API interface {
	GetNotifications(ctx context.Context, cursor string, limit int) (*model.Page[model.Notification], error)
	GetUnreadNotificationCount(ctx context.Context) (int, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context) error
}

type Sanitizer interface {
	HTML(raw string) string
}

type Cache interface {
	SaveNotifications(ctx context.Context, notifications model.NotificationList) error
	LoadNotifications(ctx context.Context, limit int) (model.NotificationList, error)
}
