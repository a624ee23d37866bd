//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package status

import (
	"context"

	"github.com/lumeapp/sync-client/internal/model"
)

type ThreadSource interface {
	Snapshot(threadID string) (*model.ThreadSnapshot, bool)
	TypingUsers(threadID string) []string
}

type NotificationSource interface {
	Items() model.NotificationList
	Unread() int
	HasMore() bool
}

type SocketState interface {
	Connected() bool
}

type PreferenceStore interface {
	Preference(ctx context.Context, name string) (string, error)
	SetPreference(ctx context.Context, name, value string) error
}
