//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package analytics

import (
	"context"

	"github.com/lumeapp/sync-client/internal/model"
)

type API interface {
	GetAccountGrowth(ctx context.Context, dateRange string) ([]model.GrowthPoint, error)
	GetEngagement(ctx context.Context, dateRange string) ([]model.EngagementPoint, error)
	GetAudience(ctx context.Context) (*model.AudienceBreakdown, error)
	GetRecentPosts(ctx context.Context, dateRange string) ([]model.RecentPost, error)
}
