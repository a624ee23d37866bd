//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package conversation

import (
	"context"

	"github.com/lumeapp/sync-client/internal/model"
)

type API interface {
	GetReceiver(ctx context.Context, conversationID string) (*model.Receiver, error)
	CheckBlockStatus(ctx context.Context, userID int64) (*model.BlockStatus, error)
	GetFreeMessageStatus(ctx context.Context, conversationID string) (*model.FreeMessageStatus, error)
	ToggleFreeMessages(ctx context.Context, conversationID string, enabled bool) (*model.FreeMessageStatus, error)
}
