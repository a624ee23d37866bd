//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package thread

import (
	"context"

	"github.com/lumeapp/sync-client/internal/model"
	"github.com/lumeapp/sync-client/internal/socket"
)

type EventRouter interface {
	Subscribe(op string, h socket.Handler) func()
	Emit(op string, data any) error
	JoinRoom(roomID string) error
	LeaveRoom(roomID string) error
}

type HistoryClient interface {
	GetThreadMessages(ctx context.Context, threadID, cursor string, limit int) (*model.Page[model.Message], error)
}

type Sanitizer interface {
	HTML(raw string) string
}

type MessageCache interface {
	SaveMessages(ctx context.Context, threadID string, messages model.MessageList) error
	LoadMessages(ctx context.Context, threadID string, limit int) (model.MessageList, error)
}
