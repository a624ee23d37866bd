//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package comments

import (
	"context"

	"github.com/lumeapp/sync-client/internal/client/api"
	"github.com/lumeapp/sync-client/internal/model"
)

type API interface {
	PostComment(ctx context.Context, req *api.NewCommentRequest) (*model.Comment, error)
	GetCommentReplies(ctx context.Context, commentID string, page int) (*model.Page[model.Comment], error)
	ToggleCommentLike(ctx context.Context, commentID string) error
}

type Sanitizer interface {
	HTML(raw string) string
}
